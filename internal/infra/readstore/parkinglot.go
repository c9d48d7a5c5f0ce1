package readstore

import (
	"context"

	"iwparking/internal/infra"
	"iwparking/internal/infra/db"
	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ParkingLotReadStore struct {
	dbtx db.DBTX
}

func NewParkingLotReadStore(dbtx db.DBTX) queries.ParkingLotViewRepo {
	return &ParkingLotReadStore{dbtx: dbtx}
}

const parkingLotViewQuery = `
	SELECT id, name, address, hours_from, hours_to, capacity, adapted_capacity, hourly_price, deactivated, created_at, modified_at
	FROM parking_lots`

func (s *ParkingLotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ParkingLotView, error) {
	row := s.dbtx.QueryRow(ctx, parkingLotViewQuery+` WHERE id = $1`, id)

	var view queries.ParkingLotView
	err := row.Scan(
		&view.ID, &view.Name, &view.Address, &view.WorkingHoursFrom, &view.WorkingHoursTo,
		&view.Capacity, &view.AdaptedCapacity, &view.HourlyPrice, &view.Deactivated,
		&view.CreatedAt, &view.ModifiedAt,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find parking lot view", err)
	}
	return &view, nil
}

func (s *ParkingLotReadStore) FindAll(ctx context.Context, includeDeactivated bool) ([]*queries.ParkingLotView, error) {
	query := parkingLotViewQuery
	if !includeDeactivated {
		query += ` WHERE NOT deactivated`
	}
	query += ` ORDER BY name`

	rows, err := s.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list parking lot views", err)
	}
	defer rows.Close()

	var views []*queries.ParkingLotView
	for rows.Next() {
		var view queries.ParkingLotView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.Address, &view.WorkingHoursFrom, &view.WorkingHoursTo,
			&view.Capacity, &view.AdaptedCapacity, &view.HourlyPrice, &view.Deactivated,
			&view.CreatedAt, &view.ModifiedAt,
		); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan parking lot view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read parking lot views", err)
	}
	return views, nil
}
