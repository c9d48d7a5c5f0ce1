package components

import (
	"iwparking/internal/handler"
	"iwparking/internal/handler/api"
	"iwparking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewVehicleHandler,
		api.NewParkingLotHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
