package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPeriodNotInFuture = errors.New("reservation must start and end in the future")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrNotSuccessful     = errors.New("reservation is not successful")
	ErrAlreadyFinished   = errors.New("reservation already finished")
	ErrAlreadyStarted    = errors.New("reservation already started")
	ErrAlreadyCancelled  = errors.New("reservation already cancelled")
	ErrEndNotExtended    = errors.New("new end must be after the current start and end")
)

type Reservation struct {
	id           uuid.UUID
	userID       uuid.UUID
	vehicleID    uuid.UUID
	parkingLotID uuid.UUID
	period       Period
	amountUnits  int64
	paid         bool
	status       Status
	createdAt    time.Time
	modifiedAt   time.Time
}

// NewReservation creates a Successful reservation. Payment collection is
// external; the amount is recorded as paid at creation time.
func NewReservation(userID, vehicleID, parkingLotID uuid.UUID, period Period, amountUnits int64, now time.Time) (*Reservation, error) {
	if !period.start.After(now) || !period.end.After(now) {
		return nil, ErrPeriodNotInFuture
	}
	if amountUnits < 0 {
		return nil, ErrNegativeAmount
	}
	return &Reservation{
		id:           uuid.New(),
		userID:       userID,
		vehicleID:    vehicleID,
		parkingLotID: parkingLotID,
		period:       period,
		amountUnits:  amountUnits,
		paid:         true,
		status:       StatusSuccessful,
		createdAt:    now,
		modifiedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, userID, vehicleID, parkingLotID uuid.UUID,
	period Period,
	amountUnits int64,
	paid bool,
	status Status,
	createdAt, modifiedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		userID:       userID,
		vehicleID:    vehicleID,
		parkingLotID: parkingLotID,
		period:       period,
		amountUnits:  amountUnits,
		paid:         paid,
		status:       status,
		createdAt:    createdAt,
		modifiedAt:   modifiedAt,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) VehicleID() uuid.UUID    { return r.vehicleID }
func (r *Reservation) ParkingLotID() uuid.UUID { return r.parkingLotID }
func (r *Reservation) Period() Period          { return r.period }
func (r *Reservation) AmountUnits() int64      { return r.amountUnits }
func (r *Reservation) Paid() bool              { return r.paid }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) ModifiedAt() time.Time   { return r.modifiedAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusSuccessful
}

// Extend pushes the end later and overwrites the amount with the price
// recomputed over the full original-start..new-end interval. The caller
// must re-validate working hours and self-overlap before calling.
func (r *Reservation) Extend(newEnd time.Time, newAmountUnits int64, now time.Time) error {
	if r.status != StatusSuccessful {
		return ErrNotSuccessful
	}
	if r.period.end.Before(now) {
		return ErrAlreadyFinished
	}
	if !newEnd.After(r.period.start) || !newEnd.After(r.period.end) {
		return ErrEndNotExtended
	}
	if newAmountUnits < 0 {
		return ErrNegativeAmount
	}

	r.period.end = newEnd
	r.amountUnits = newAmountUnits
	r.modifiedAt = now
	return nil
}

// Cancel is permitted strictly before the start instant only. Cancelled
// reservations never transition again and stop occupying capacity.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !now.Before(r.period.end) {
		return ErrAlreadyFinished
	}
	if !now.Before(r.period.start) {
		return ErrAlreadyStarted
	}

	r.status = StatusCancelled
	r.modifiedAt = now
	return nil
}
