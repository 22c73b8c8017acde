package scheduler

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/notify"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/weather"
)

// WeatherSweep polls the advisory provider and warns customers whose
// confirmed appointments fall inside the lookahead horizon.
type WeatherSweep struct {
	provider    weather.Provider
	bookings    queries.BookingReadStore
	preferences notify.Preferences
	dispatcher  notify.Dispatcher
	clock       clock.Clock
	interval    time.Duration
	horizon     time.Duration
}

func NewWeatherSweep(
	provider weather.Provider,
	bookings queries.BookingReadStore,
	preferences notify.Preferences,
	dispatcher notify.Dispatcher,
	clk clock.Clock,
	interval, horizon time.Duration,
) *WeatherSweep {
	return &WeatherSweep{
		provider:    provider,
		bookings:    bookings,
		preferences: preferences,
		dispatcher:  dispatcher,
		clock:       clk,
		interval:    interval,
		horizon:     horizon,
	}
}

func (s *WeatherSweep) Name() string            { return "weather" }
func (s *WeatherSweep) Interval() time.Duration { return s.interval }

func (s *WeatherSweep) RunOnce(ctx context.Context) error {
	advisory, err := s.provider.CurrentAdvisory(ctx)
	if err != nil {
		return err
	}
	if advisory == nil {
		return nil
	}

	now := s.clock.Now()
	upcoming, err := s.bookings.ListUpcomingActive(ctx, now, now.Add(s.horizon))
	if err != nil {
		return err
	}

	for _, view := range upcoming {
		if view.Status != string(booking.StatusConfirmed) {
			continue
		}
		if !s.preferences.WeatherAlertsEnabled(ctx, view.CustomerID) {
			continue
		}
		notify.SendQuietly(ctx, s.dispatcher, notify.WeatherAlert(
			view.Phone, view.CustomerName, advisory.Reason, view.AppointmentAt))
	}
	return nil
}
