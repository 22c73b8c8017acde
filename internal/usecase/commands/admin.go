package commands

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/notify"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"
)

type AdminCommands interface {
	// ApplyEvent runs one lifecycle event against a customer's booking.
	ApplyEvent(ctx context.Context, customerID int64, event string) error
	// Remove deletes a booking outright. Removing an absent booking is a
	// no-op.
	Remove(ctx context.Context, customerID int64) (bool, error)
}

type adminUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	clock      clock.Clock
}

func NewAdminUseCase(uow shared.UnitOfWork, dispatcher notify.Dispatcher, clk clock.Clock) AdminCommands {
	return &adminUseCaseImpl{uow: uow, dispatcher: dispatcher, clock: clk}
}

func (uc *adminUseCaseImpl) ApplyEvent(ctx context.Context, customerID int64, event string) error {
	ev := booking.Event(event)
	if !ev.IsValid() {
		return errs.Mark(errs.New("unknown lifecycle event "+event), errs.ErrInvalidTransition)
	}

	now := uc.clock.Now()
	var b *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, ferr := tx.Bookings().FindByCustomer(ctx, tx.DB(), customerID)
		if ferr != nil {
			return ferr
		}
		b = rec.Booking

		if aerr := b.Apply(ev, now); aerr != nil {
			return aerr
		}

		if ev == booking.EventCancel {
			// Cancellation frees the slot by removing the row.
			_, derr := tx.Bookings().Delete(ctx, tx.DB(), customerID)
			return derr
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), customerID, b.Status(), now)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return err
	}

	uc.notifyFor(ctx, ev, b)
	return nil
}

func (uc *adminUseCaseImpl) notifyFor(ctx context.Context, ev booking.Event, b *booking.Booking) {
	details := bookingDetails(b)
	switch ev {
	case booking.EventConfirm:
		notify.SendQuietly(ctx, uc.dispatcher, notify.BookingConfirmed(details))
	case booking.EventComplete:
		notify.SendQuietly(ctx, uc.dispatcher, notify.RatingPrompt(details))
	case booking.EventCancel:
		notify.SendQuietly(ctx, uc.dispatcher, notify.BookingCancelled(details))
	case booking.EventNoShow:
		// No customer-facing message for a no-show.
	}
}

func (uc *adminUseCaseImpl) Remove(ctx context.Context, customerID int64) (bool, error) {
	removed := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.Bookings().Delete(ctx, tx.DB(), customerID)
		removed = ok
		return derr
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
