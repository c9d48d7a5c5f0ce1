package repository

import (
	"context"
	"time"

	"iwparking/internal/domain/parkinglot"
	"iwparking/internal/infra"
	"iwparking/internal/infra/db"
	"iwparking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ParkingLotRepository struct {
	dbtx db.DBTX
}

func NewParkingLotRepository(dbtx db.DBTX) shared.ParkingLotRepository {
	return &ParkingLotRepository{dbtx: dbtx}
}

func (r *ParkingLotRepository) Create(ctx context.Context, lot *parkinglot.ParkingLot) error {
	_, err := r.dbtx.Exec(ctx, `
		INSERT INTO parking_lots (id, name, address, hours_from, hours_to, capacity, adapted_capacity, hourly_price, deactivated, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		lot.ID(), lot.Name(), lot.Address(),
		lot.Hours().From().String(), lot.Hours().To().String(),
		lot.Capacity(), lot.AdaptedCapacity(), lot.HourlyPriceUnits(),
		lot.Deactivated(), lot.CreatedAt(), lot.ModifiedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to insert parking lot", err)
	}
	return nil
}

func (r *ParkingLotRepository) Update(ctx context.Context, lot *parkinglot.ParkingLot) error {
	tag, err := r.dbtx.Exec(ctx, `
		UPDATE parking_lots
		SET name = $2, address = $3, hours_from = $4, hours_to = $5,
		    capacity = $6, adapted_capacity = $7, hourly_price = $8,
		    deactivated = $9, modified_at = $10
		WHERE id = $1`,
		lot.ID(), lot.Name(), lot.Address(),
		lot.Hours().From().String(), lot.Hours().To().String(),
		lot.Capacity(), lot.AdaptedCapacity(), lot.HourlyPriceUnits(),
		lot.Deactivated(), lot.ModifiedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update parking lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "parking lot not found", nil)
	}
	return nil
}

func (r *ParkingLotRepository) FindByID(ctx context.Context, id uuid.UUID) (*parkinglot.ParkingLot, error) {
	return r.findByID(ctx, id, "")
}

func (r *ParkingLotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*parkinglot.ParkingLot, error) {
	return r.findByID(ctx, id, "FOR UPDATE")
}

func (r *ParkingLotRepository) findByID(ctx context.Context, id uuid.UUID, locking string) (*parkinglot.ParkingLot, error) {
	row := r.dbtx.QueryRow(ctx, `
		SELECT id, name, address, hours_from, hours_to, capacity, adapted_capacity, hourly_price, deactivated, created_at, modified_at
		FROM parking_lots
		WHERE id = $1 `+locking, id)

	var (
		lotID                     uuid.UUID
		name, address             string
		hoursFrom, hoursTo        string
		capacity, adaptedCapacity int
		hourlyPrice               int64
		deactivated               bool
		createdAt, modifiedAt     time.Time
	)
	if err := row.Scan(&lotID, &name, &address, &hoursFrom, &hoursTo, &capacity, &adaptedCapacity, &hourlyPrice, &deactivated, &createdAt, &modifiedAt); err != nil {
		return nil, infra.ClassifyPgErr("failed to find parking lot", err)
	}

	from, err := parkinglot.ParseTimeOfDay(hoursFrom)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored working hours are invalid", err)
	}
	to, err := parkinglot.ParseTimeOfDay(hoursTo)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored working hours are invalid", err)
	}

	return parkinglot.ReconstructParkingLot(
		lotID, name, address,
		parkinglot.NewWorkingHours(from, to),
		capacity, adaptedCapacity, hourlyPrice,
		deactivated, createdAt, modifiedAt,
	), nil
}
