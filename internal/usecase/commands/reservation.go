package commands

import (
	"context"
	"time"

	"iwparking/internal/domain/parkinglot"
	"iwparking/internal/domain/reservation"
	"iwparking/internal/domain/vehicle"
	"iwparking/internal/infra"
	"iwparking/internal/pkg/clock"
	"iwparking/internal/pkg/config"
	"iwparking/internal/pkg/errs"
	"iwparking/internal/usecase/queries"
	"iwparking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type MakeReservationRequest struct {
	ParkingLotID uuid.UUID
	PlateNumber  string
	StartDate    string
	StartTime    string
	EndDate      string
	EndTime      string
}

type ExtendReservationRequest struct {
	EndDate string
	EndTime string
}

type ReservationCommands interface {
	Make(ctx context.Context, req MakeReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	Extend(ctx context.Context, reservationID uuid.UUID, req ExtendReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID uuid.UUID, userID uuid.UUID) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	policy             reservation.CapacityPolicy
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	cfg config.ReservationConfig,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clk,
		policy:             reservation.CapacityPolicy{CountAdaptedOvernight: cfg.CountAdaptedOvernight},
	}
}

func (uc *reservationUseCaseImpl) Make(ctx context.Context, req MakeReservationRequest, userID uuid.UUID) (*queries.ReservationView, error) {
	period, err := uc.parsePeriod(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if !period.Start().After(now) || !period.End().After(now) {
		return nil, reservation.ErrPeriodNotInFuture
	}

	var reservationID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		veh, derr := uc.findVehicle(ctx, tx, req.PlateNumber, userID)
		if derr != nil {
			return derr
		}

		// Lock the lot row: concurrent bookings against the same lot
		// serialize here, so the count below stays valid until commit.
		lot, derr := uc.lockLot(ctx, tx, req.ParkingLotID)
		if derr != nil {
			return derr
		}

		if derr = reservation.ValidateWithinWorkingHours(lot.Hours(), period); derr != nil {
			return derr
		}

		if derr = uc.checkVehicleFree(ctx, tx, veh.ID(), uuid.Nil, period); derr != nil {
			return derr
		}

		slots, derr := tx.Reservations().ActiveSlotsByLot(ctx, lot.ID(), uuid.Nil)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if !hasFreeSpace(lot, veh.Type(), period, slots, uc.policy) {
			return errs.ErrCapacityExhausted
		}

		amount := reservation.PriceUnits(lot.Hours(), lot.HourlyPriceUnits(), period)
		res, derr := reservation.NewReservation(userID, veh.ID(), lot.ID(), period, amount, now)
		if derr != nil {
			return derr
		}

		if derr = tx.Reservations().Create(ctx, res); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		reservationID = res.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.readBack(ctx, reservationID)
}

func (uc *reservationUseCaseImpl) Extend(ctx context.Context, reservationID uuid.UUID, req ExtendReservationRequest, userID uuid.UUID) (*queries.ReservationView, error) {
	newEnd, err := combineInstant(req.EndDate, req.EndTime, uc.clock.Location())
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := uc.lockOwnedReservation(ctx, tx, reservationID, userID)
		if derr != nil {
			return derr
		}

		if !res.IsActive() {
			return reservation.ErrNotSuccessful
		}
		if res.Period().End().Before(now) {
			return reservation.ErrAlreadyFinished
		}
		if !newEnd.After(res.Period().Start()) || !newEnd.After(res.Period().End()) {
			return reservation.ErrEndNotExtended
		}

		lot, derr := uc.lockLot(ctx, tx, res.ParkingLotID())
		if derr != nil {
			return derr
		}

		// The whole interval from the original start is re-validated and
		// re-priced; capacity is not re-counted for the added tail.
		newPeriod, derr := res.Period().WithEnd(newEnd)
		if derr != nil {
			return reservation.ErrEndNotExtended
		}
		if derr = reservation.ValidateWithinWorkingHours(lot.Hours(), newPeriod); derr != nil {
			return derr
		}

		if derr = uc.checkVehicleFree(ctx, tx, res.VehicleID(), res.ID(), newPeriod); derr != nil {
			return derr
		}

		amount := reservation.PriceUnits(lot.Hours(), lot.HourlyPriceUnits(), newPeriod)
		if derr = res.Extend(newEnd, amount, now); derr != nil {
			return derr
		}

		if derr = tx.Reservations().Update(ctx, res); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.readBack(ctx, reservationID)
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID uuid.UUID, userID uuid.UUID) (*queries.ReservationView, error) {
	now := uc.clock.Now()
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := uc.lockOwnedReservation(ctx, tx, reservationID, userID)
		if derr != nil {
			return derr
		}

		if derr = res.Cancel(now); derr != nil {
			return derr
		}

		if derr = tx.Reservations().Update(ctx, res); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.readBack(ctx, reservationID)
}

func (uc *reservationUseCaseImpl) findVehicle(ctx context.Context, tx shared.Tx, plate string, userID uuid.UUID) (*vehicle.Vehicle, error) {
	normalized, err := vehicle.NewPlate(plate)
	if err != nil {
		return nil, err
	}
	veh, err := tx.Vehicles().FindByPlateAndOwner(ctx, normalized.Value(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return veh, nil
}

func (uc *reservationUseCaseImpl) lockLot(ctx context.Context, tx shared.Tx, lotID uuid.UUID) (*parkinglot.ParkingLot, error) {
	lot, err := tx.ParkingLots().FindByIDForUpdate(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrParkingLotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if lot.Deactivated() {
		return nil, errs.ErrParkingLotNotFound
	}
	return lot, nil
}

func (uc *reservationUseCaseImpl) lockOwnedReservation(ctx context.Context, tx shared.Tx, reservationID, userID uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// A foreign reservation is indistinguishable from a missing one.
	if res.UserID() != userID {
		return nil, errs.ErrReservationNotFound
	}
	return res, nil
}

// checkVehicleFree rejects a period that intersects another Successful
// reservation of the same vehicle, at any lot.
func (uc *reservationUseCaseImpl) checkVehicleFree(ctx context.Context, tx shared.Tx, vehicleID, exclude uuid.UUID, period reservation.Period) error {
	periods, err := tx.Reservations().ActivePeriodsByVehicle(ctx, vehicleID, exclude)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, p := range periods {
		if p.Overlaps(period) {
			return errs.ErrOverlappingSlot
		}
	}
	return nil
}

// hasFreeSpace compares the conflict count against the lot's capacity for
// the requested type. Adapted cars whose dedicated spaces are exhausted
// fall back to the standard pool.
func hasFreeSpace(lot *parkinglot.ParkingLot, vtype vehicle.Type, candidate reservation.Period, existing []reservation.VehicleSlot, policy reservation.CapacityPolicy) bool {
	taken := reservation.CountConflicting(candidate, lot.Hours(), vtype, existing, policy)
	if taken < lot.CapacityFor(vtype) {
		return true
	}
	if vtype == vehicle.TypeAdaptedCar {
		taken = reservation.CountConflicting(candidate, lot.Hours(), vehicle.TypeCar, existing, policy)
		return taken < lot.Capacity()
	}
	return false
}

func (uc *reservationUseCaseImpl) readBack(ctx context.Context, reservationID uuid.UUID) (*queries.ReservationView, error) {
	view, err := uc.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *reservationUseCaseImpl) parsePeriod(startDate, startTime, endDate, endTime string) (reservation.Period, error) {
	start, err := combineInstant(startDate, startTime, uc.clock.Location())
	if err != nil {
		return reservation.Period{}, err
	}
	end, err := combineInstant(endDate, endTime, uc.clock.Location())
	if err != nil {
		return reservation.Period{}, err
	}
	period, err := reservation.NewPeriod(start, end)
	if err != nil {
		return reservation.Period{}, errs.Mark(err, errs.ErrInvalidTimeRange)
	}
	return period, nil
}

func combineInstant(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, dateStr+" "+timeStr, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidTimeRange)
	}
	return t, nil
}
