package queries

import (
	"context"
	"time"

	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
)

type BookingReadStore interface {
	FindByCustomer(ctx context.Context, customerID int64) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListByStatus(ctx context.Context, status string) ([]*BookingView, error)
	ListUpcomingActive(ctx context.Context, from, to time.Time) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByCustomer(ctx context.Context, customerID int64) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListPending(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByCustomer(ctx context.Context, customerID int64) (*BookingView, error) {
	view, err := q.store.FindByCustomer(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.store.ListAll(ctx)
}

func (q *bookingQueriesImpl) ListPending(ctx context.Context) ([]*BookingView, error) {
	return q.store.ListByStatus(ctx, "pending")
}
