package repository

import (
	"context"
	"time"

	"iwparking/internal/domain/reservation"
	"iwparking/internal/domain/vehicle"
	"iwparking/internal/infra"
	"iwparking/internal/infra/db"
	"iwparking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	dbtx db.DBTX
	loc  *time.Location
}

func NewReservationRepository(dbtx db.DBTX, loc *time.Location) shared.ReservationRepository {
	return &ReservationRepository{dbtx: dbtx, loc: loc}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.dbtx.Exec(ctx, `
		INSERT INTO reservations (id, user_id, vehicle_id, parking_lot_id, start_time, end_time, amount, paid, status, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		res.ID(), res.UserID(), res.VehicleID(), res.ParkingLotID(),
		res.Period().Start(), res.Period().End(), res.AmountUnits(), res.Paid(),
		res.Status().String(), res.CreatedAt(), res.ModifiedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.dbtx.Exec(ctx, `
		UPDATE reservations
		SET end_time = $2, amount = $3, status = $4, modified_at = $5
		WHERE id = $1`,
		res.ID(), res.Period().End(), res.AmountUnits(), res.Status().String(), res.ModifiedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.dbtx.QueryRow(ctx, `
		SELECT id, user_id, vehicle_id, parking_lot_id, start_time, end_time, amount, paid, status, created_at, modified_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`, id)

	var (
		resID, userID, vehicleID, lotID uuid.UUID
		startTime, endTime              time.Time
		amount                          int64
		paid                            bool
		status                          string
		createdAt, modifiedAt           time.Time
	)
	if err := row.Scan(&resID, &userID, &vehicleID, &lotID, &startTime, &endTime, &amount, &paid, &status, &createdAt, &modifiedAt); err != nil {
		return nil, infra.ClassifyPgErr("failed to find reservation", err)
	}

	period, err := reservation.NewPeriod(startTime.In(r.loc), endTime.In(r.loc))
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored reservation period is invalid", err)
	}

	return reservation.ReconstructReservation(
		resID, userID, vehicleID, lotID,
		period, amount, paid, reservation.Status(status),
		createdAt.In(r.loc), modifiedAt.In(r.loc),
	), nil
}

func (r *ReservationRepository) ActiveSlotsByLot(ctx context.Context, lotID uuid.UUID, exclude uuid.UUID) ([]reservation.VehicleSlot, error) {
	rows, err := r.dbtx.Query(ctx, `
		SELECT r.start_time, r.end_time, v.type
		FROM reservations r
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.parking_lot_id = $1
		  AND r.status = 'successful'
		  AND r.id <> $2`,
		lotID, exclude,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list reservations by lot", err)
	}
	defer rows.Close()

	var slots []reservation.VehicleSlot
	for rows.Next() {
		var (
			startTime, endTime time.Time
			vtype              string
		)
		if err := rows.Scan(&startTime, &endTime, &vtype); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan reservation slot", err)
		}
		period, err := reservation.NewPeriod(startTime.In(r.loc), endTime.In(r.loc))
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "stored reservation period is invalid", err)
		}
		slots = append(slots, reservation.VehicleSlot{
			Period:      period,
			VehicleType: vehicle.Type(vtype),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read reservation slots", err)
	}
	return slots, nil
}

func (r *ReservationRepository) ActivePeriodsByVehicle(ctx context.Context, vehicleID uuid.UUID, exclude uuid.UUID) ([]reservation.Period, error) {
	rows, err := r.dbtx.Query(ctx, `
		SELECT start_time, end_time
		FROM reservations
		WHERE vehicle_id = $1
		  AND status = 'successful'
		  AND id <> $2`,
		vehicleID, exclude,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list reservations by vehicle", err)
	}
	defer rows.Close()

	var periods []reservation.Period
	for rows.Next() {
		var startTime, endTime time.Time
		if err := rows.Scan(&startTime, &endTime); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan reservation period", err)
		}
		period, err := reservation.NewPeriod(startTime.In(r.loc), endTime.In(r.loc))
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "stored reservation period is invalid", err)
		}
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read reservation periods", err)
	}
	return periods, nil
}
