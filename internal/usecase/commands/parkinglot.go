package commands

import (
	"context"

	"iwparking/internal/domain/parkinglot"
	"iwparking/internal/infra"
	"iwparking/internal/pkg/clock"
	"iwparking/internal/pkg/errs"
	"iwparking/internal/usecase/queries"
	"iwparking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpsertParkingLotRequest struct {
	Name             string
	Address          string
	WorkingHoursFrom string
	WorkingHoursTo   string
	Capacity         int
	AdaptedCapacity  int
	HourlyPrice      int64
}

type ParkingLotCommands interface {
	Create(ctx context.Context, req UpsertParkingLotRequest) (*queries.ParkingLotView, error)
	Update(ctx context.Context, lotID uuid.UUID, req UpsertParkingLotRequest) (*queries.ParkingLotView, error)
	Deactivate(ctx context.Context, lotID uuid.UUID) error
}

type parkingLotUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewParkingLotUseCase(uow shared.UnitOfWork, clk clock.Clock) ParkingLotCommands {
	return &parkingLotUseCaseImpl{uow: uow, clock: clk}
}

func (uc *parkingLotUseCaseImpl) Create(ctx context.Context, req UpsertParkingLotRequest) (*queries.ParkingLotView, error) {
	hours, err := parseWorkingHours(req.WorkingHoursFrom, req.WorkingHoursTo)
	if err != nil {
		return nil, err
	}

	lot, err := parkinglot.NewParkingLot(req.Name, req.Address, hours, req.Capacity, req.AdaptedCapacity, req.HourlyPrice, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.ParkingLots().Create(ctx, lot); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return parkingLotView(lot), nil
}

func (uc *parkingLotUseCaseImpl) Update(ctx context.Context, lotID uuid.UUID, req UpsertParkingLotRequest) (*queries.ParkingLotView, error) {
	hours, err := parseWorkingHours(req.WorkingHoursFrom, req.WorkingHoursTo)
	if err != nil {
		return nil, err
	}

	var view *queries.ParkingLotView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lot, derr := uc.lockLot(ctx, tx, lotID)
		if derr != nil {
			return derr
		}

		if derr := lot.Update(req.Name, req.Address, hours, req.Capacity, req.AdaptedCapacity, req.HourlyPrice, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr := tx.ParkingLots().Update(ctx, lot); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		view = parkingLotView(lot)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *parkingLotUseCaseImpl) Deactivate(ctx context.Context, lotID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lot, derr := uc.lockLot(ctx, tx, lotID)
		if derr != nil {
			return derr
		}

		lot.Deactivate(uc.clock.Now())
		if derr := tx.ParkingLots().Update(ctx, lot); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *parkingLotUseCaseImpl) lockLot(ctx context.Context, tx shared.Tx, lotID uuid.UUID) (*parkinglot.ParkingLot, error) {
	lot, err := tx.ParkingLots().FindByIDForUpdate(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrParkingLotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return lot, nil
}

func parseWorkingHours(fromStr, toStr string) (parkinglot.WorkingHours, error) {
	from, err := parkinglot.ParseTimeOfDay(fromStr)
	if err != nil {
		return parkinglot.WorkingHours{}, err
	}
	to, err := parkinglot.ParseTimeOfDay(toStr)
	if err != nil {
		return parkinglot.WorkingHours{}, err
	}
	return parkinglot.NewWorkingHours(from, to), nil
}

func parkingLotView(lot *parkinglot.ParkingLot) *queries.ParkingLotView {
	return &queries.ParkingLotView{
		ID:               lot.ID(),
		Name:             lot.Name(),
		Address:          lot.Address(),
		WorkingHoursFrom: lot.Hours().From().String(),
		WorkingHoursTo:   lot.Hours().To().String(),
		Capacity:         lot.Capacity(),
		AdaptedCapacity:  lot.AdaptedCapacity(),
		HourlyPrice:      lot.HourlyPriceUnits(),
		Deactivated:      lot.Deactivated(),
		CreatedAt:        lot.CreatedAt(),
		ModifiedAt:       lot.ModifiedAt(),
	}
}
