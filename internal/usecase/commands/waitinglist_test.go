//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWaitingListFixture(t *testing.T) (commands.WaitingListCommands, *fakeUoW, *recordingDispatcher, *clock.MockClock) {
	t.Helper()

	uow := newFakeUoW()
	dispatcher := newRecordingDispatcher()
	clk := clock.NewMockClock(testNow)
	uc := commands.NewWaitingListUseCase(uow, dispatcher, clk)
	return uc, uow, dispatcher, clk
}

func joinRequest(customerID int64, phone string) commands.JoinWaitingListRequest {
	return commands.JoinWaitingListRequest{
		CustomerID: customerID,
		Name:       "Omar",
		Phone:      phone,
		Service:    "haircut",
	}
}

// =============================================================================
// Join / Leave Tests
// =============================================================================

func TestWaitingList_JoinAndLeave(t *testing.T) {
	uc, uow, _, _ := newWaitingListFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.Join(ctx, joinRequest(1, "+970590000001")))
	assert.Contains(t, uow.waiting.byCustomer, int64(1))

	removed, err := uc.Leave(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = uc.Leave(ctx, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWaitingList_RejoinMovesToBackOfQueue(t *testing.T) {
	uc, uow, _, clk := newWaitingListFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.Join(ctx, joinRequest(1, "+970590000001")))
	clk.Advance(time.Minute)
	require.NoError(t, uc.Join(ctx, joinRequest(2, "+970590000002")))
	clk.Advance(time.Minute)
	require.NoError(t, uc.Join(ctx, joinRequest(1, "+970590000001")))

	entries, err := uow.waiting.ListOldestFirst(ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].CustomerID())
	assert.Equal(t, int64(1), entries[1].CustomerID())
}

// =============================================================================
// MatchAndNotify Tests
// =============================================================================

func TestMatchAndNotify_OldestFirstAndDropped(t *testing.T) {
	uc, uow, dispatcher, clk := newWaitingListFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.Join(ctx, joinRequest(1, "+970590000001")))
	clk.Advance(time.Minute)
	require.NoError(t, uc.Join(ctx, joinRequest(2, "+970590000002")))

	err := uc.MatchAndNotify(ctx, "Monday", []string{"10:00 AM"})

	require.NoError(t, err)
	require.Len(t, dispatcher.sent, 2)
	assert.Equal(t, "+970590000001", dispatcher.sent[0].Recipient)
	assert.Equal(t, "+970590000002", dispatcher.sent[1].Recipient)
	assert.Contains(t, dispatcher.sent[0].Body, "Monday 10:00 AM")
	assert.Empty(t, uow.waiting.byCustomer)
}

func TestMatchAndNotify_SlotListTruncated(t *testing.T) {
	uc, _, dispatcher, _ := newWaitingListFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.Join(ctx, joinRequest(1, "+970590000001")))

	slots := []string{"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM"}
	require.NoError(t, uc.MatchAndNotify(ctx, "Tuesday", slots))

	require.Len(t, dispatcher.sent, 1)
	body := dispatcher.sent[0].Body
	assert.Contains(t, body, "Tuesday 9:00 AM")
	assert.Contains(t, body, "Tuesday 11:00 AM")
	assert.NotContains(t, body, "12:00 PM")
	assert.NotContains(t, body, "1:00 PM")
}

func TestMatchAndNotify_FailedDeliveryKeepsEntry(t *testing.T) {
	uc, uow, dispatcher, clk := newWaitingListFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.Join(ctx, joinRequest(1, "+970590000001")))
	clk.Advance(time.Minute)
	require.NoError(t, uc.Join(ctx, joinRequest(2, "+970590000002")))
	dispatcher.failFor["+970590000001"] = errs.ErrDeliveryFailure

	err := uc.MatchAndNotify(ctx, "Monday", []string{"10:00 AM"})

	require.NoError(t, err)
	// Customer 1 stays queued for the next sweep; customer 2 was served.
	assert.Contains(t, uow.waiting.byCustomer, int64(1))
	assert.NotContains(t, uow.waiting.byCustomer, int64(2))

	// Retry after the transport recovers drains the queue.
	delete(dispatcher.failFor, "+970590000001")
	require.NoError(t, uc.MatchAndNotify(ctx, "Monday", []string{"10:00 AM"}))
	assert.Empty(t, uow.waiting.byCustomer)
}

func TestMatchAndNotify_NoSlotsIsNoop(t *testing.T) {
	uc, uow, dispatcher, _ := newWaitingListFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.Join(ctx, joinRequest(1, "+970590000001")))
	require.NoError(t, uc.MatchAndNotify(ctx, "Monday", nil))

	assert.Empty(t, dispatcher.sent)
	assert.Contains(t, uow.waiting.byCustomer, int64(1))
}
