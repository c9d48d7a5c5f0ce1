package readstore

import (
	"context"

	"iwparking/internal/domain/vehicle"
	"iwparking/internal/infra"
	"iwparking/internal/infra/db"
	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleReadStore struct {
	dbtx db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) queries.VehicleViewRepo {
	return &VehicleReadStore{dbtx: dbtx}
}

func (s *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, uuid.UUID, error) {
	row := s.dbtx.QueryRow(ctx, `
		SELECT id, owner_id, plate, type, is_primary, created_at
		FROM vehicles
		WHERE id = $1`, id)

	var (
		view    queries.VehicleView
		ownerID uuid.UUID
	)
	if err := row.Scan(&view.ID, &ownerID, &view.PlateNumber, &view.Type, &view.IsPrimary, &view.CreatedAt); err != nil {
		return nil, uuid.Nil, infra.ClassifyPgErr("failed to find vehicle view", err)
	}
	view.TypeName = vehicle.Type(view.Type).DisplayName()
	return &view, ownerID, nil
}

func (s *VehicleReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.VehicleView, error) {
	rows, err := s.dbtx.Query(ctx, `
		SELECT id, plate, type, is_primary, created_at
		FROM vehicles
		WHERE owner_id = $1
		ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list vehicle views", err)
	}
	defer rows.Close()

	var views []*queries.VehicleView
	for rows.Next() {
		var view queries.VehicleView
		if err := rows.Scan(&view.ID, &view.PlateNumber, &view.Type, &view.IsPrimary, &view.CreatedAt); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan vehicle view", err)
		}
		view.TypeName = vehicle.Type(view.Type).DisplayName()
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read vehicle views", err)
	}
	return views, nil
}
