package scheduler

import (
	"context"
	"time"

	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
)

// WaitingListSweep watches the open-slot calendar and tells queued customers
// about days that gained availability since the previous pass. The snapshot
// lives only in this sweep's goroutine; no locking needed.
type WaitingListSweep struct {
	availability queries.AvailabilityQueries
	waitingList  commands.WaitingListCommands
	interval     time.Duration

	previous map[string]map[string]struct{}
}

func NewWaitingListSweep(availability queries.AvailabilityQueries, waitingList commands.WaitingListCommands, interval time.Duration) *WaitingListSweep {
	return &WaitingListSweep{
		availability: availability,
		waitingList:  waitingList,
		interval:     interval,
	}
}

func (s *WaitingListSweep) Name() string            { return "waiting-list" }
func (s *WaitingListSweep) Interval() time.Duration { return s.interval }

func (s *WaitingListSweep) RunOnce(ctx context.Context) error {
	days, err := s.availability.OpenSlots(ctx)
	if err != nil {
		return err
	}

	current := make(map[string]map[string]struct{}, len(days))
	for _, d := range days {
		set := make(map[string]struct{}, len(d.Slots))
		for _, slot := range d.Slots {
			set[slot] = struct{}{}
		}
		current[d.Day] = set
	}

	// The first pass only seeds the snapshot; slots that were already open
	// at startup are not news.
	if s.previous == nil {
		s.previous = current
		return nil
	}

	for _, d := range days {
		prev := s.previous[d.Day]
		var gained []string
		for _, slot := range d.Slots {
			if _, ok := prev[slot]; !ok {
				gained = append(gained, slot)
			}
		}
		if len(gained) == 0 {
			continue
		}
		if err := s.waitingList.MatchAndNotify(ctx, d.Day, gained); err != nil {
			return err
		}
	}

	s.previous = current
	return nil
}
