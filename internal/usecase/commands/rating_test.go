//go:build unit

package commands_test

import (
	"context"
	"testing"

	"booking-engine/internal/domain/rating"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRatingFixture(t *testing.T) (commands.RatingCommands, commands.AdminCommands, commands.ReservationCommands, *fakeUoW, *recordingDispatcher) {
	t.Helper()

	reserve, uow, dispatcher, clk := newReservationFixture(t, false)
	admin := commands.NewAdminUseCase(uow, dispatcher, clk)
	rate := commands.NewRatingUseCase(uow, dispatcher, clk, []string{"ops@example.com"})
	return rate, admin, reserve, uow, dispatcher
}

func completeBooking(t *testing.T, admin commands.AdminCommands, reserve commands.ReservationCommands, customerID int64, slotTime string) {
	t.Helper()

	mustReserve(t, reserve, customerID, slotTime)
	ctx := context.Background()
	require.NoError(t, admin.ApplyEvent(ctx, customerID, "confirm"))
	require.NoError(t, admin.ApplyEvent(ctx, customerID, "complete"))
}

// =============================================================================
// Rate Tests
// =============================================================================

func TestRate_CompletedBooking(t *testing.T) {
	rate, admin, reserve, _, dispatcher := newRatingFixture(t)
	completeBooking(t, admin, reserve, 1, "10:00 AM")

	result, err := rate.Rate(context.Background(), commands.RateRequest{
		CustomerID: 1,
		Stars:      5,
		Feedback:   "great service",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.RatingID)
	assert.False(t, result.FeedbackAsked)
	assert.Contains(t, dispatcher.subjects(), "Thanks for your rating")
	assert.Contains(t, dispatcher.subjects(), "New rating")
}

func TestRate_LowStarsWithoutFeedbackAsksForIt(t *testing.T) {
	rate, admin, reserve, _, _ := newRatingFixture(t)
	completeBooking(t, admin, reserve, 1, "10:00 AM")

	result, err := rate.Rate(context.Background(), commands.RateRequest{CustomerID: 1, Stars: 2})

	require.NoError(t, err)
	assert.True(t, result.FeedbackAsked)
}

func TestRate_LowStarsWithFeedbackDoesNotAsk(t *testing.T) {
	rate, admin, reserve, _, _ := newRatingFixture(t)
	completeBooking(t, admin, reserve, 1, "10:00 AM")

	result, err := rate.Rate(context.Background(), commands.RateRequest{
		CustomerID: 1,
		Stars:      2,
		Feedback:   "waited an hour",
	})

	require.NoError(t, err)
	assert.False(t, result.FeedbackAsked)
}

func TestRate_NotCompleted(t *testing.T) {
	rate, admin, reserve, _, _ := newRatingFixture(t)
	mustReserve(t, reserve, 1, "10:00 AM")
	ctx := context.Background()
	require.NoError(t, admin.ApplyEvent(ctx, 1, "confirm"))

	_, err := rate.Rate(ctx, commands.RateRequest{CustomerID: 1, Stars: 5})
	assert.ErrorIs(t, err, errs.ErrBookingNotCompleted)
}

func TestRate_Duplicate(t *testing.T) {
	rate, admin, reserve, _, _ := newRatingFixture(t)
	completeBooking(t, admin, reserve, 1, "10:00 AM")
	ctx := context.Background()

	_, err := rate.Rate(ctx, commands.RateRequest{CustomerID: 1, Stars: 4})
	require.NoError(t, err)

	_, err = rate.Rate(ctx, commands.RateRequest{CustomerID: 1, Stars: 5})
	assert.ErrorIs(t, err, errs.ErrRatingAlreadyExists)
}

func TestRate_UnknownCustomer(t *testing.T) {
	rate, _, _, _, _ := newRatingFixture(t)

	_, err := rate.Rate(context.Background(), commands.RateRequest{CustomerID: 404, Stars: 5})
	assert.ErrorIs(t, err, errs.ErrBookingNotFound)
}

func TestRate_InvalidStars(t *testing.T) {
	rate, admin, reserve, _, _ := newRatingFixture(t)
	completeBooking(t, admin, reserve, 1, "10:00 AM")
	ctx := context.Background()

	for _, stars := range []int{0, 6, -1} {
		_, err := rate.Rate(ctx, commands.RateRequest{CustomerID: 1, Stars: stars})
		assert.ErrorIs(t, err, rating.ErrInvalidStars)
	}
}
