package commands

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/rating"
	"booking-engine/internal/infra"
	"booking-engine/internal/notify"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type RateRequest struct {
	CustomerID int64
	Stars      int
	Feedback   string
}

type RateResult struct {
	RatingID      uuid.UUID
	FeedbackAsked bool
}

type RatingCommands interface {
	Rate(ctx context.Context, req RateRequest) (*RateResult, error)
}

type ratingUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	clock      clock.Clock
	operators  []string
}

func NewRatingUseCase(uow shared.UnitOfWork, dispatcher notify.Dispatcher, clk clock.Clock, operators []string) RatingCommands {
	return &ratingUseCaseImpl{uow: uow, dispatcher: dispatcher, clock: clk, operators: operators}
}

func (uc *ratingUseCaseImpl) Rate(ctx context.Context, req RateRequest) (*RateResult, error) {
	now := uc.clock.Now()

	var (
		created *rating.Rating
		rec     *shared.BookingRecord
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, ferr := tx.Bookings().FindByCustomer(ctx, tx.DB(), req.CustomerID)
		if ferr != nil {
			return ferr
		}
		rec = found

		if rec.Booking.Status() != booking.StatusCompleted {
			return errs.ErrBookingNotCompleted
		}

		bookingID := rec.RowID
		r, rerr := rating.NewRating(uuid.New(), req.CustomerID, &bookingID, req.Stars, req.Feedback, now)
		if rerr != nil {
			return rerr
		}
		created = r
		return tx.Ratings().Insert(ctx, tx.DB(), r)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrRatingAlreadyExists)
		}
		return nil, err
	}

	askFeedback := created.Stars().NeedsFeedback() && created.Feedback().IsEmpty()
	notify.SendQuietly(ctx, uc.dispatcher, notify.RatingThanks(
		rec.Booking.Phone().String(),
		rec.Booking.Name().String(),
		created.Stars().Value(),
		askFeedback,
	))
	for _, op := range uc.operators {
		notify.SendQuietly(ctx, uc.dispatcher, notify.OperatorNewRating(
			op, rec.Booking.Name().String(), created.Stars().Value(), created.Feedback().String()))
	}

	return &RateResult{RatingID: created.ID(), FeedbackAsked: askFeedback}, nil
}
