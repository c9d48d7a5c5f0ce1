package components

import (
	"iwparking/internal/infra/db"
	"iwparking/internal/infra/readstore"
	"iwparking/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		func(pool *pgxpool.Pool) db.DBTX { return pool },
		uow.NewPostgresUoW,
		readstore.NewReservationReadStore,
		readstore.NewParkingLotReadStore,
		readstore.NewVehicleReadStore,
		readstore.NewUserReadStore,
	),
)
