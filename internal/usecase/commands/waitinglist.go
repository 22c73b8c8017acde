package commands

import (
	"context"
	"log/slog"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/waitinglist"
	"booking-engine/internal/notify"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/shared"
)

// At most this many slot labels are named in a slots-freed message.
const maxSlotsPerMessage = 3

type JoinWaitingListRequest struct {
	CustomerID int64
	Name       string
	Phone      string
	Service    string
}

type WaitingListCommands interface {
	// Join queues a customer for slot-opening notifications. Re-joining
	// refreshes the entry and moves the customer to the back of the queue.
	Join(ctx context.Context, req JoinWaitingListRequest) error
	// Leave removes a customer from the queue. Leaving when not queued is a
	// no-op.
	Leave(ctx context.Context, customerID int64) (bool, error)
	// MatchAndNotify tells queued customers, oldest first, that slots opened
	// up on a day. Each entry is dropped from the queue only after its
	// notification went out; failed deliveries keep the entry for the next
	// sweep.
	MatchAndNotify(ctx context.Context, day string, slots []string) error
}

type waitingListUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	clock      clock.Clock
}

func NewWaitingListUseCase(uow shared.UnitOfWork, dispatcher notify.Dispatcher, clk clock.Clock) WaitingListCommands {
	return &waitingListUseCaseImpl{uow: uow, dispatcher: dispatcher, clock: clk}
}

func (uc *waitingListUseCaseImpl) Join(ctx context.Context, req JoinWaitingListRequest) error {
	name, err := booking.NewName(req.Name)
	if err != nil {
		return err
	}
	phone, err := booking.NewPhone(req.Phone)
	if err != nil {
		return err
	}
	service, err := booking.NewServiceType(req.Service)
	if err != nil {
		return err
	}

	entry := waitinglist.NewEntry(req.CustomerID, name, phone, service, uc.clock.Now())
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.WaitingList().Upsert(ctx, tx.DB(), entry)
	})
}

func (uc *waitingListUseCaseImpl) Leave(ctx context.Context, customerID int64) (bool, error) {
	removed := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.WaitingList().Delete(ctx, tx.DB(), customerID)
		removed = ok
		return derr
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (uc *waitingListUseCaseImpl) MatchAndNotify(ctx context.Context, day string, slots []string) error {
	if len(slots) == 0 {
		return nil
	}
	if len(slots) > maxSlotsPerMessage {
		slots = slots[:maxSlotsPerMessage]
	}

	labeled := make([]string, len(slots))
	for i, s := range slots {
		labeled[i] = day + " " + s
	}

	var entries []*waitinglist.Entry
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, lerr := tx.WaitingList().ListOldestFirst(ctx, tx.DB())
		entries = list
		return lerr
	})
	if err != nil {
		return err
	}

	for _, e := range entries {
		n := notify.SlotsFreed(e.Phone().String(), e.Name().String(), labeled)
		if serr := uc.dispatcher.Send(ctx, n); serr != nil {
			slog.Warn("waiting list notification failed, keeping entry",
				"customer_id", e.CustomerID(),
				"error", serr.Error())
			continue
		}

		entry := e
		if derr := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.WaitingList().Delete(ctx, tx.DB(), entry.CustomerID())
			return err
		}); derr != nil {
			slog.Warn("failed to drop notified waiting list entry",
				"customer_id", e.CustomerID(),
				"error", derr.Error())
		}
	}
	return nil
}
