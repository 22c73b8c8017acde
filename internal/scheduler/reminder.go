package scheduler

import (
	"context"
	"time"

	"booking-engine/internal/notify"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/shared"
)

// ReminderSweep sends each confirmed booking exactly one reminder as its
// appointment enters the reminder window. Rows are claimed and marked inside
// one transaction, so a reminder can be lost to a crashed dispatch but never
// duplicated.
type ReminderSweep struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	clock      clock.Clock
	interval   time.Duration
	window     time.Duration
}

func NewReminderSweep(uow shared.UnitOfWork, dispatcher notify.Dispatcher, clk clock.Clock, interval, window time.Duration) *ReminderSweep {
	return &ReminderSweep{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
		interval:   interval,
		window:     window,
	}
}

func (s *ReminderSweep) Name() string            { return "reminders" }
func (s *ReminderSweep) Interval() time.Duration { return s.interval }

func (s *ReminderSweep) RunOnce(ctx context.Context) error {
	now := s.clock.Now()

	var due []*shared.BookingRecord
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, cerr := tx.Bookings().ClaimDueReminders(ctx, tx.DB(), now, now.Add(s.window))
		if cerr != nil {
			return cerr
		}
		due = claimed

		if len(claimed) == 0 {
			return nil
		}
		ids := make([]int64, len(claimed))
		for i, rec := range claimed {
			ids[i] = rec.Booking.CustomerID()
		}
		return tx.Bookings().MarkReminderSent(ctx, tx.DB(), ids, now)
	})
	if err != nil {
		return err
	}

	for _, rec := range due {
		b := rec.Booking
		notify.SendQuietly(ctx, s.dispatcher, notify.AppointmentReminder(notify.BookingDetails{
			Recipient:   b.Phone().String(),
			Name:        b.Name().String(),
			Service:     b.Service().String(),
			Day:         b.Day(),
			SlotTime:    b.Slot().Label(),
			Appointment: b.AppointmentAt(),
		}))
	}
	return nil
}
