//go:build unit

package scheduler_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/notify"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"
	"booking-engine/internal/weather"
)

// =============================================================================
// Unit of work stub
// =============================================================================

type stubUoW struct {
	bookings *stubBookingRepo
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &stubTx{uow: u})
}

func (u *stubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error {
	return fn(ctx, nil)
}

type stubTx struct {
	uow *stubUoW
}

func (t *stubTx) Bookings() shared.BookingRepository        { return t.uow.bookings }
func (t *stubTx) Ratings() shared.RatingRepository          { return nil }
func (t *stubTx) WaitingList() shared.WaitingListRepository { return nil }
func (t *stubTx) DB() db.DBTX                               { return nil }

// stubBookingRepo only serves the reminder claim cycle; the other repository
// methods are never reached from a sweep.
type stubBookingRepo struct {
	records []*shared.BookingRecord
}

func (r *stubBookingRepo) Insert(context.Context, db.DBTX, *booking.Booking) (int64, error) {
	panic("not used by sweeps")
}

func (r *stubBookingRepo) Replace(context.Context, db.DBTX, *booking.Booking) (int64, error) {
	panic("not used by sweeps")
}

func (r *stubBookingRepo) FindByCustomer(context.Context, db.DBTX, int64) (*shared.BookingRecord, error) {
	panic("not used by sweeps")
}

func (r *stubBookingRepo) UpdateStatus(context.Context, db.DBTX, int64, booking.Status, time.Time) error {
	panic("not used by sweeps")
}

func (r *stubBookingRepo) Delete(context.Context, db.DBTX, int64) (bool, error) {
	panic("not used by sweeps")
}

func (r *stubBookingRepo) ClaimDueReminders(_ context.Context, _ db.DBTX, from, to time.Time) ([]*shared.BookingRecord, error) {
	var due []*shared.BookingRecord
	for _, rec := range r.records {
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

func (r *stubBookingRepo) MarkReminderSent(_ context.Context, _ db.DBTX, customerIDs []int64, sentAt time.Time) error {
	for _, id := range customerIDs {
		for _, rec := range r.records {
			if rec.Booking.CustomerID() == id {
				rec.Booking.MarkReminderSent(sentAt)
			}
		}
	}
	return nil
}

// =============================================================================
// Dispatcher capture
// =============================================================================

type captureDispatcher struct {
	mu      sync.Mutex
	sent    []notify.Notification
	sendErr error
}

func (d *captureDispatcher) Send(_ context.Context, n notify.Notification) error {
	if d.sendErr != nil {
		return d.sendErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, n)
	return nil
}

func (d *captureDispatcher) recipients() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.sent))
	for i, n := range d.sent {
		out[i] = n.Recipient
	}
	return out
}

// =============================================================================
// Availability / waiting list stubs
// =============================================================================

// scriptedAvailability replays one OpenSlots result per call.
type scriptedAvailability struct {
	responses [][]*queries.OpenDayView
	errs      []error
	calls     int
}

func (s *scriptedAvailability) OpenSlots(context.Context) ([]*queries.OpenDayView, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i >= len(s.responses) {
		return nil, nil
	}
	return s.responses[i], nil
}

type matchCall struct {
	day   string
	slots []string
}

type recordingWaitingList struct {
	calls    []matchCall
	matchErr error
}

func (r *recordingWaitingList) Join(context.Context, commands.JoinWaitingListRequest) error {
	panic("not used by sweeps")
}

func (r *recordingWaitingList) Leave(context.Context, int64) (bool, error) {
	panic("not used by sweeps")
}

func (r *recordingWaitingList) MatchAndNotify(_ context.Context, day string, slots []string) error {
	if r.matchErr != nil {
		return r.matchErr
	}
	r.calls = append(r.calls, matchCall{day: day, slots: slots})
	return nil
}

// =============================================================================
// Weather stubs
// =============================================================================

type stubProvider struct {
	advisory *weather.Advisory
	err      error
}

func (p *stubProvider) CurrentAdvisory(context.Context) (*weather.Advisory, error) {
	return p.advisory, p.err
}

type stubBookingReadStore struct {
	upcoming []*queries.BookingView
}

func (s *stubBookingReadStore) FindByCustomer(context.Context, int64) (*queries.BookingView, error) {
	panic("not used by sweeps")
}

func (s *stubBookingReadStore) ListAll(context.Context) ([]*queries.BookingView, error) {
	panic("not used by sweeps")
}

func (s *stubBookingReadStore) ListByStatus(context.Context, string) ([]*queries.BookingView, error) {
	panic("not used by sweeps")
}

func (s *stubBookingReadStore) ListUpcomingActive(context.Context, time.Time, time.Time) ([]*queries.BookingView, error) {
	return s.upcoming, nil
}

type optOutPreferences struct {
	optedOut map[int64]bool
}

func (p *optOutPreferences) WeatherAlertsEnabled(_ context.Context, customerID int64) bool {
	return !p.optedOut[customerID]
}
