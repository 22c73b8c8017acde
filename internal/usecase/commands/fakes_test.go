//go:build unit

package commands_test

import (
	"context"
	"sort"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/rating"
	"booking-engine/internal/domain/waitinglist"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/notify"
	"booking-engine/internal/usecase/shared"
)

// =============================================================================
// In-memory unit of work
// =============================================================================

// fakeUoW backs the command tests with map-based repositories that enforce
// the same uniqueness rules as the real schema.
type fakeUoW struct {
	bookings *fakeBookingRepo
	ratings  *fakeRatingRepo
	waiting  *fakeWaitingListRepo
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		bookings: &fakeBookingRepo{byCustomer: map[int64]*shared.BookingRecord{}},
		ratings:  &fakeRatingRepo{byBooking: map[int64]*rating.Rating{}},
		waiting:  &fakeWaitingListRepo{byCustomer: map[int64]*waitinglist.Entry{}},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{uow: u})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	uow *fakeUoW
}

func (t *fakeTx) Bookings() shared.BookingRepository       { return t.uow.bookings }
func (t *fakeTx) Ratings() shared.RatingRepository         { return t.uow.ratings }
func (t *fakeTx) WaitingList() shared.WaitingListRepository { return t.uow.waiting }
func (t *fakeTx) DB() db.DBTX                              { return nil }

// =============================================================================
// Booking repository fake
// =============================================================================

type fakeBookingRepo struct {
	byCustomer map[int64]*shared.BookingRecord
	nextID     int64
}

func (r *fakeBookingRepo) slotHeldByOther(b *booking.Booking, customerID int64) bool {
	for id, rec := range r.byCustomer {
		if id == customerID {
			continue
		}
		if rec.Booking.Occupying() &&
			rec.Booking.Day() == b.Day() &&
			rec.Booking.Slot().Label() == b.Slot().Label() {
			return true
		}
	}
	return false
}

func (r *fakeBookingRepo) Insert(_ context.Context, _ db.DBTX, b *booking.Booking) (int64, error) {
	if _, exists := r.byCustomer[b.CustomerID()]; exists {
		return 0, infra.WrapRepoErr("insert booking", nil, infra.KindDuplicateKey)
	}
	if r.slotHeldByOther(b, b.CustomerID()) {
		return 0, infra.WrapRepoErr("insert booking", nil, infra.KindSlotConflict)
	}
	r.nextID++
	r.byCustomer[b.CustomerID()] = &shared.BookingRecord{RowID: r.nextID, Booking: b}
	return r.nextID, nil
}

func (r *fakeBookingRepo) Replace(_ context.Context, _ db.DBTX, b *booking.Booking) (int64, error) {
	delete(r.byCustomer, b.CustomerID())
	if r.slotHeldByOther(b, b.CustomerID()) {
		return 0, infra.WrapRepoErr("replace booking", nil, infra.KindSlotConflict)
	}
	r.nextID++
	r.byCustomer[b.CustomerID()] = &shared.BookingRecord{RowID: r.nextID, Booking: b}
	return r.nextID, nil
}

func (r *fakeBookingRepo) FindByCustomer(_ context.Context, _ db.DBTX, customerID int64) (*shared.BookingRecord, error) {
	rec, ok := r.byCustomer[customerID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, customerID int64, _ booking.Status, _ time.Time) error {
	if _, ok := r.byCustomer[customerID]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	// The entity held by the record was already mutated via Apply.
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, _ db.DBTX, customerID int64) (bool, error) {
	if _, ok := r.byCustomer[customerID]; !ok {
		return false, nil
	}
	delete(r.byCustomer, customerID)
	return true, nil
}

func (r *fakeBookingRepo) ClaimDueReminders(_ context.Context, _ db.DBTX, from, to time.Time) ([]*shared.BookingRecord, error) {
	var due []*shared.BookingRecord
	for _, rec := range r.byCustomer {
		b := rec.Booking
		if b.Status() != booking.StatusConfirmed || b.ReminderSentAt() != nil {
			continue
		}
		if b.AppointmentAt().After(from) && !b.AppointmentAt().After(to) {
			due = append(due, rec)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].RowID < due[j].RowID })
	return due, nil
}

func (r *fakeBookingRepo) MarkReminderSent(_ context.Context, _ db.DBTX, customerIDs []int64, sentAt time.Time) error {
	for _, id := range customerIDs {
		if rec, ok := r.byCustomer[id]; ok {
			rec.Booking.MarkReminderSent(sentAt)
		}
	}
	return nil
}

// =============================================================================
// Rating repository fake
// =============================================================================

type fakeRatingRepo struct {
	byBooking map[int64]*rating.Rating
}

func (r *fakeRatingRepo) Insert(_ context.Context, _ db.DBTX, rt *rating.Rating) error {
	id := rt.BookingID()
	if id == nil {
		return nil
	}
	if _, exists := r.byBooking[*id]; exists {
		return infra.WrapRepoErr("insert rating", nil, infra.KindDuplicateKey)
	}
	r.byBooking[*id] = rt
	return nil
}

// =============================================================================
// Waiting list repository fake
// =============================================================================

type fakeWaitingListRepo struct {
	byCustomer map[int64]*waitinglist.Entry
	deleteErr  error
}

func (r *fakeWaitingListRepo) Upsert(_ context.Context, _ db.DBTX, e *waitinglist.Entry) error {
	r.byCustomer[e.CustomerID()] = e
	return nil
}

func (r *fakeWaitingListRepo) Delete(_ context.Context, _ db.DBTX, customerID int64) (bool, error) {
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	if _, ok := r.byCustomer[customerID]; !ok {
		return false, nil
	}
	delete(r.byCustomer, customerID)
	return true, nil
}

func (r *fakeWaitingListRepo) ListOldestFirst(_ context.Context, _ db.DBTX) ([]*waitinglist.Entry, error) {
	entries := make([]*waitinglist.Entry, 0, len(r.byCustomer))
	for _, e := range r.byCustomer {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].JoinedAt().Equal(entries[j].JoinedAt()) {
			return entries[i].JoinedAt().Before(entries[j].JoinedAt())
		}
		return entries[i].CustomerID() < entries[j].CustomerID()
	})
	return entries, nil
}

// =============================================================================
// Recording dispatcher
// =============================================================================

// recordingDispatcher captures every notification and can be told to fail
// for specific recipients.
type recordingDispatcher struct {
	sent    []notify.Notification
	failFor map[string]error
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{failFor: map[string]error{}}
}

func (d *recordingDispatcher) Send(_ context.Context, n notify.Notification) error {
	if err, ok := d.failFor[n.Recipient]; ok {
		return err
	}
	d.sent = append(d.sent, n)
	return nil
}

func (d *recordingDispatcher) subjects() []string {
	out := make([]string, len(d.sent))
	for i, n := range d.sent {
		out[i] = n.Subject
	}
	return out
}
