package queries

import (
	"context"

	"booking-engine/internal/domain/schedule"
	"booking-engine/internal/pkg/clock"
)

type OccupancyReadStore interface {
	OccupiedSlots(ctx context.Context) (schedule.OccupiedSet, error)
}

type AvailabilityQueries interface {
	// OpenSlots returns every free slot over the rolling booking window,
	// today's already-passed slots excluded.
	OpenSlots(ctx context.Context) ([]*OpenDayView, error)
}

type availabilityQueriesImpl struct {
	store       OccupancyReadStore
	template    schedule.Template
	clock       clock.Clock
	horizonDays int
}

func NewAvailabilityQueries(store OccupancyReadStore, template schedule.Template, clk clock.Clock, horizonDays int) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:       store,
		template:    template,
		clock:       clk,
		horizonDays: horizonDays,
	}
}

func (q *availabilityQueriesImpl) OpenSlots(ctx context.Context) ([]*OpenDayView, error) {
	occupied, err := q.store.OccupiedSlots(ctx)
	if err != nil {
		return nil, err
	}

	days := schedule.OpenSlots(q.template, q.clock.Now(), q.horizonDays, occupied)
	views := make([]*OpenDayView, 0, len(days))
	for _, d := range days {
		labels := make([]string, 0, len(d.Slots))
		for _, s := range d.Slots {
			labels = append(labels, s.Label())
		}
		views = append(views, &OpenDayView{Day: d.Day, Date: d.Date, Slots: labels})
	}
	return views, nil
}
