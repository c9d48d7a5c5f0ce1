package components

import (
	"iwparking/internal/usecase"
	"iwparking/internal/usecase/commands"
	"iwparking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewTokenValidator,

		queries.NewReservationQueries,
		queries.NewParkingLotQueries,
		queries.NewVehicleQueries,
		queries.NewUserQueries,

		commands.NewReservationUseCase,
		commands.NewAuthCommands,
		commands.NewVehicleUseCase,
		commands.NewParkingLotUseCase,
	),
)
