package commands

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/schedule"
	"booking-engine/internal/infra"
	"booking-engine/internal/notify"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"
)

type ReserveRequest struct {
	CustomerID int64
	Name       string
	Phone      string
	Service    string
	Day        string
	SlotTime   string
	Urgency    string
}

type ReserveResult struct {
	Replaced      bool
	AppointmentAt string
}

type ReservationCommands interface {
	Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error)
	Cancel(ctx context.Context, customerID int64) error
}

type reservationUseCaseImpl struct {
	uow        shared.UnitOfWork
	template   schedule.Template
	dispatcher notify.Dispatcher
	clock      clock.Clock
	cfg        config.BookingConfig
	operators  []string
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	template schedule.Template,
	dispatcher notify.Dispatcher,
	clk clock.Clock,
	cfg config.BookingConfig,
	operators []string,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:        uow,
		template:   template,
		dispatcher: dispatcher,
		clock:      clk,
		cfg:        cfg,
		operators:  operators,
	}
}

func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error) {
	name, err := booking.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	phone, err := booking.NewPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	service, err := booking.NewServiceType(req.Service)
	if err != nil {
		return nil, err
	}

	urgency := booking.Urgency(req.Urgency)
	if req.Urgency == "" {
		urgency = booking.UrgencyNormal
	}
	if !urgency.IsValid() {
		return nil, errs.New("unknown urgency " + req.Urgency)
	}

	slot, err := uc.template.Lookup(req.SlotTime)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	date, ok := schedule.DateForDay(now, uc.cfg.HorizonDays, req.Day)
	if !ok {
		return nil, errs.Mark(errs.New("day "+req.Day+" outside booking window"), errs.ErrUnknownSlot)
	}

	b, err := booking.NewBooking(req.CustomerID, name, phone, service, slot, date, urgency, now)
	if err != nil {
		return nil, err
	}

	replaced := false
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if uc.cfg.ReplaceExisting {
			_, ferr := tx.Bookings().FindByCustomer(ctx, tx.DB(), req.CustomerID)
			switch {
			case ferr == nil:
				replaced = true
			case !infra.IsKind(ferr, infra.KindNotFound):
				return ferr
			}
			_, ierr := tx.Bookings().Replace(ctx, tx.DB(), b)
			return ierr
		}
		_, ierr := tx.Bookings().Insert(ctx, tx.DB(), b)
		return ierr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindSlotConflict) {
			return nil, errs.Mark(err, errs.ErrSlotTaken)
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrCustomerHasActiveBooking)
		}
		return nil, err
	}

	details := bookingDetails(b)
	notify.SendQuietly(ctx, uc.dispatcher, notify.BookingReceived(details))
	for _, op := range uc.operators {
		notify.SendQuietly(ctx, uc.dispatcher, notify.OperatorNewBooking(op, details))
	}

	return &ReserveResult{
		Replaced:      replaced,
		AppointmentAt: b.AppointmentAt().Format("2006-01-02 15:04"),
	}, nil
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, customerID int64) error {
	var rec *shared.BookingRecord
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, ferr := tx.Bookings().FindByCustomer(ctx, tx.DB(), customerID)
		if ferr != nil {
			return ferr
		}
		rec = found
		// Cancelled bookings leave the table entirely; the slot frees up and
		// the customer can book again immediately.
		_, derr := tx.Bookings().Delete(ctx, tx.DB(), customerID)
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return err
	}

	notify.SendQuietly(ctx, uc.dispatcher, notify.BookingCancelled(bookingDetails(rec.Booking)))
	return nil
}

func bookingDetails(b *booking.Booking) notify.BookingDetails {
	return notify.BookingDetails{
		Recipient:   b.Phone().String(),
		Name:        b.Name().String(),
		Service:     b.Service().String(),
		Day:         b.Day(),
		SlotTime:    b.Slot().Label(),
		Appointment: b.AppointmentAt(),
		Emergency:   b.Urgency() == booking.UrgencyEmergency,
	}
}
