package shared

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/rating"
	"booking-engine/internal/domain/waitinglist"
	"booking-engine/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Ratings() RatingRepository
	WaitingList() WaitingListRepository
	DB() db.DBTX
}

// BookingRecord pairs a booking entity with its row identifier. The row id
// outlives status changes and is what ratings reference.
type BookingRecord struct {
	RowID   int64
	Booking *booking.Booking
}

type BookingRepository interface {
	// Insert fails with a duplicate-key repository error when the customer
	// already holds an active booking.
	Insert(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error)
	// Replace drops any prior booking of the customer and inserts the new
	// one in its place.
	Replace(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error)
	FindByCustomer(ctx context.Context, tx db.DBTX, customerID int64) (*BookingRecord, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, customerID int64, status booking.Status, now time.Time) error
	Delete(ctx context.Context, tx db.DBTX, customerID int64) (bool, error)
	// ClaimDueReminders locks confirmed bookings whose appointment falls in
	// (from, to] and whose reminder has not been sent, skipping rows held by
	// concurrent sweeps.
	ClaimDueReminders(ctx context.Context, tx db.DBTX, from, to time.Time) ([]*BookingRecord, error)
	MarkReminderSent(ctx context.Context, tx db.DBTX, customerIDs []int64, sentAt time.Time) error
}

type RatingRepository interface {
	// Insert fails with a duplicate-key repository error when the booking
	// was already rated.
	Insert(ctx context.Context, tx db.DBTX, r *rating.Rating) error
}

type WaitingListRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, e *waitinglist.Entry) error
	Delete(ctx context.Context, tx db.DBTX, customerID int64) (bool, error)
	ListOldestFirst(ctx context.Context, tx db.DBTX) ([]*waitinglist.Entry, error)
}
