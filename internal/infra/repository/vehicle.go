package repository

import (
	"context"
	"time"

	"iwparking/internal/domain/vehicle"
	"iwparking/internal/infra"
	"iwparking/internal/infra/db"
	"iwparking/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleRepository struct {
	dbtx db.DBTX
}

func NewVehicleRepository(dbtx db.DBTX) shared.VehicleRepository {
	return &VehicleRepository{dbtx: dbtx}
}

func (r *VehicleRepository) Create(ctx context.Context, veh *vehicle.Vehicle) error {
	_, err := r.dbtx.Exec(ctx, `
		INSERT INTO vehicles (id, owner_id, plate, type, is_primary, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		veh.ID(), veh.OwnerID(), veh.Plate().Value(), veh.Type().String(),
		veh.IsPrimary(), veh.CreatedAt(), veh.ModifiedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to insert vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, veh *vehicle.Vehicle) error {
	tag, err := r.dbtx.Exec(ctx, `
		UPDATE vehicles
		SET plate = $2, type = $3, is_primary = $4, modified_at = $5
		WHERE id = $1`,
		veh.ID(), veh.Plate().Value(), veh.Type().String(), veh.IsPrimary(), veh.ModifiedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "vehicle not found", nil)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "vehicle not found", nil)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row := r.dbtx.QueryRow(ctx, `
		SELECT id, owner_id, plate, type, is_primary, created_at, modified_at
		FROM vehicles
		WHERE id = $1`, id)
	return scanVehicle(row)
}

func (r *VehicleRepository) FindByPlateAndOwner(ctx context.Context, plate string, ownerID uuid.UUID) (*vehicle.Vehicle, error) {
	row := r.dbtx.QueryRow(ctx, `
		SELECT id, owner_id, plate, type, is_primary, created_at, modified_at
		FROM vehicles
		WHERE plate = $1 AND owner_id = $2`, plate, ownerID)
	return scanVehicle(row)
}

func (r *VehicleRepository) ClearPrimaryByOwner(ctx context.Context, ownerID uuid.UUID, except uuid.UUID) error {
	_, err := r.dbtx.Exec(ctx, `
		UPDATE vehicles
		SET is_primary = FALSE
		WHERE owner_id = $1 AND id <> $2 AND is_primary`,
		ownerID, except,
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to clear primary vehicle", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*vehicle.Vehicle, error) {
	var (
		id, ownerID           uuid.UUID
		plateStr, typeStr     string
		isPrimary             bool
		createdAt, modifiedAt time.Time
	)
	if err := row.Scan(&id, &ownerID, &plateStr, &typeStr, &isPrimary, &createdAt, &modifiedAt); err != nil {
		return nil, infra.ClassifyPgErr("failed to find vehicle", err)
	}

	plate, err := vehicle.NewPlate(plateStr)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored plate is invalid", err)
	}

	return vehicle.ReconstructVehicle(id, ownerID, plate, vehicle.Type(typeStr), isPrimary, createdAt, modifiedAt), nil
}
