//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/scheduler"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upcomingView(customerID int64, status string) *queries.BookingView {
	return &queries.BookingView{
		CustomerID:    customerID,
		CustomerName:  "Sami",
		Phone:         phoneFor(customerID),
		Status:        status,
		AppointmentAt: sweepNow.Add(3 * time.Hour),
	}
}

// =============================================================================
// WeatherSweep Tests
// =============================================================================

func TestWeatherSweep_AlertsConfirmedOptedInCustomers(t *testing.T) {
	provider := &stubProvider{advisory: &weather.Advisory{
		Reason:    "heavy rain expected (rain)",
		Condition: "Rain",
	}}
	store := &stubBookingReadStore{upcoming: []*queries.BookingView{
		upcomingView(1, "confirmed"),
		upcomingView(2, "pending"),
		upcomingView(3, "confirmed"),
	}}
	prefs := &optOutPreferences{optedOut: map[int64]bool{3: true}}
	dispatcher := &captureDispatcher{}
	clk := clock.NewMockClock(sweepNow)

	sweep := scheduler.NewWeatherSweep(provider, store, prefs, dispatcher, clk, 6*time.Hour, 24*time.Hour)
	require.NoError(t, sweep.RunOnce(context.Background()))

	assert.Equal(t, []string{phoneFor(1)}, dispatcher.recipients())
	require.Len(t, dispatcher.sent, 1)
	assert.Equal(t, "Weather advisory for your appointment", dispatcher.sent[0].Subject)
	assert.Contains(t, dispatcher.sent[0].Body, "heavy rain expected")
}

func TestWeatherSweep_NoAdvisoryIsNoop(t *testing.T) {
	provider := &stubProvider{advisory: nil}
	store := &stubBookingReadStore{upcoming: []*queries.BookingView{upcomingView(1, "confirmed")}}
	dispatcher := &captureDispatcher{}
	clk := clock.NewMockClock(sweepNow)

	sweep := scheduler.NewWeatherSweep(provider, store, &optOutPreferences{}, dispatcher, clk, 6*time.Hour, 24*time.Hour)
	require.NoError(t, sweep.RunOnce(context.Background()))

	assert.Empty(t, dispatcher.sent)
}

func TestWeatherSweep_ProviderFailureSurfaces(t *testing.T) {
	providerErr := errors.New("upstream timeout")
	provider := &stubProvider{err: providerErr}
	dispatcher := &captureDispatcher{}
	clk := clock.NewMockClock(sweepNow)

	sweep := scheduler.NewWeatherSweep(provider, &stubBookingReadStore{}, &optOutPreferences{}, dispatcher, clk, 6*time.Hour, 24*time.Hour)

	assert.ErrorIs(t, sweep.RunOnce(context.Background()), providerErr)
	assert.Empty(t, dispatcher.sent)
}
