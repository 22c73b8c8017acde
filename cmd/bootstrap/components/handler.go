package components

import (
	"booking-engine/internal/handler"
	"booking-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewRatingHandler,
		api.NewWaitingListHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
