package readstore

import (
	"context"
	"time"

	"iwparking/internal/infra"
	"iwparking/internal/infra/db"
	"iwparking/internal/pkg/clock"
	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	dbtx db.DBTX
	loc  *time.Location
}

func NewReservationReadStore(dbtx db.DBTX, clk clock.Clock) queries.ReservationViewRepo {
	return &ReservationReadStore{dbtx: dbtx, loc: clk.Location()}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.dbtx.QueryRow(ctx, `
		SELECT r.id, r.parking_lot_id, p.name, r.user_id, r.vehicle_id, v.plate, v.type,
		       r.start_time, r.end_time, r.amount, r.paid, r.status, r.created_at, r.modified_at
		FROM reservations r
		JOIN parking_lots p ON p.id = r.parking_lot_id
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.id = $1`, id)

	var view queries.ReservationView
	err := row.Scan(
		&view.ID, &view.ParkingLotID, &view.ParkingLotName, &view.UserID, &view.VehicleID,
		&view.PlateNumber, &view.VehicleType,
		&view.StartTime, &view.EndTime, &view.AmountUnits, &view.Paid, &view.Status,
		&view.CreatedAt, &view.ModifiedAt,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find reservation view", err)
	}

	s.localize(&view)
	return &view, nil
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := s.dbtx.Query(ctx, `
		SELECT r.id, p.name, v.plate, r.start_time, r.end_time, r.amount, r.status, r.created_at
		FROM reservations r
		JOIN parking_lots p ON p.id = r.parking_lot_id
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.user_id = $1
		ORDER BY r.start_time DESC`, userID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list reservation views", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(&item.ID, &item.ParkingLotName, &item.PlateNumber,
			&item.StartTime, &item.EndTime, &item.AmountUnits, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan reservation view", err)
		}
		item.StartTime = item.StartTime.In(s.loc)
		item.EndTime = item.EndTime.In(s.loc)
		item.CreatedAt = item.CreatedAt.In(s.loc)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read reservation views", err)
	}
	return items, nil
}

func (s *ReservationReadStore) localize(view *queries.ReservationView) {
	view.StartTime = view.StartTime.In(s.loc)
	view.EndTime = view.EndTime.In(s.loc)
	view.CreatedAt = view.CreatedAt.In(s.loc)
	view.ModifiedAt = view.ModifiedAt.In(s.loc)
}
