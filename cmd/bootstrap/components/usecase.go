package components

import (
	"booking-engine/internal/domain/schedule"
	"booking-engine/internal/notify"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"
	"booking-engine/internal/weather"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSlotTemplate,
	NewDispatcher,
	fx.Annotate(
		func() notify.AllowAll { return notify.AllowAll{} },
		fx.As(new(notify.Preferences)),
	),
	fx.Annotate(
		func(cfg config.Config) *weather.Client { return weather.NewClient(cfg.Weather) },
		fx.As(new(weather.Provider)),
	),
)

func NewSlotTemplate(cfg config.Config) (schedule.Template, error) {
	return schedule.NewTemplate(cfg.Booking.OpenHour, cfg.Booking.CloseHour)
}

func NewDispatcher(cfg config.Config) notify.Dispatcher {
	return notify.WithTimeout(notify.NewSMTPDispatcher(cfg.Notify), cfg.Notify.Timeout)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(u shared.UnitOfWork, tmpl schedule.Template, d notify.Dispatcher, clk clock.Clock, cfg config.Config) commands.ReservationCommands {
			return commands.NewReservationUseCase(u, tmpl, d, clk, cfg.Booking, cfg.Notify.OperatorRecipients)
		},
		commands.NewAdminUseCase,
		func(u shared.UnitOfWork, d notify.Dispatcher, clk clock.Clock, cfg config.Config) commands.RatingCommands {
			return commands.NewRatingUseCase(u, d, clk, cfg.Notify.OperatorRecipients)
		},
		commands.NewWaitingListUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store queries.OccupancyReadStore, tmpl schedule.Template, clk clock.Clock, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(store, tmpl, clk, cfg.Booking.HorizonDays)
		},
		queries.NewBookingQueries,
		queries.NewRatingQueries,
		queries.NewAdminQueries,
	),
)
