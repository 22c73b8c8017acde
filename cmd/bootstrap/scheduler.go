package bootstrap

import (
	"context"

	"booking-engine/internal/notify"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/scheduler"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"
	"booking-engine/internal/weather"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(StartScheduler),
)

func NewScheduler(
	u shared.UnitOfWork,
	dispatcher notify.Dispatcher,
	clk clock.Clock,
	cfg config.Config,
	availability queries.AvailabilityQueries,
	waitingList commands.WaitingListCommands,
	bookings queries.BookingReadStore,
	provider weather.Provider,
	preferences notify.Preferences,
) *scheduler.Scheduler {
	return scheduler.New(
		scheduler.NewReminderSweep(u, dispatcher, clk, cfg.Sweep.ReminderInterval, cfg.Sweep.ReminderWindow),
		scheduler.NewWaitingListSweep(availability, waitingList, cfg.Sweep.WaitingListInterval),
		scheduler.NewWeatherSweep(provider, bookings, preferences, dispatcher, clk, cfg.Sweep.WeatherInterval, cfg.Sweep.WeatherHorizon),
	)
}

func StartScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
