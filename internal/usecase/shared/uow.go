package shared

import (
	"context"

	"iwparking/internal/domain/parkinglot"
	"iwparking/internal/domain/reservation"
	"iwparking/internal/domain/user"
	"iwparking/internal/domain/vehicle"
	"iwparking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	ParkingLots() ParkingLotRepository
	Vehicles() VehicleRepository
	Users() UserRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
	// FindByIDForUpdate locks the reservation row for the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ActiveSlotsByLot returns period and vehicle type of every Successful
	// reservation at the lot, excluding the given reservation if non-nil.
	ActiveSlotsByLot(ctx context.Context, lotID uuid.UUID, exclude uuid.UUID) ([]reservation.VehicleSlot, error)
	// ActivePeriodsByVehicle returns the periods of every Successful
	// reservation for the vehicle, excluding the given reservation if non-nil.
	ActivePeriodsByVehicle(ctx context.Context, vehicleID uuid.UUID, exclude uuid.UUID) ([]reservation.Period, error)
}

type ParkingLotRepository interface {
	Create(ctx context.Context, lot *parkinglot.ParkingLot) error
	Update(ctx context.Context, lot *parkinglot.ParkingLot) error
	FindByID(ctx context.Context, id uuid.UUID) (*parkinglot.ParkingLot, error)
	// FindByIDForUpdate locks the lot row so concurrent capacity checks
	// against the same lot serialize on it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*parkinglot.ParkingLot, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, veh *vehicle.Vehicle) error
	Update(ctx context.Context, veh *vehicle.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	FindByPlateAndOwner(ctx context.Context, plate string, ownerID uuid.UUID) (*vehicle.Vehicle, error)
	// ClearPrimaryByOwner unsets the primary flag on every vehicle of the
	// owner except the given one.
	ClearPrimaryByOwner(ctx context.Context, ownerID uuid.UUID, except uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
