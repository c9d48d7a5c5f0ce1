package commands

import (
	"context"

	"iwparking/internal/domain/vehicle"
	"iwparking/internal/infra"
	"iwparking/internal/pkg/clock"
	"iwparking/internal/pkg/errs"
	"iwparking/internal/usecase/queries"
	"iwparking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterVehicleRequest struct {
	PlateNumber string
	Type        string
	IsPrimary   bool
}

type VehicleCommands interface {
	Register(ctx context.Context, req RegisterVehicleRequest, ownerID uuid.UUID) (*queries.VehicleView, error)
	MakePrimary(ctx context.Context, vehicleID uuid.UUID, ownerID uuid.UUID) error
	Remove(ctx context.Context, vehicleID uuid.UUID, ownerID uuid.UUID) error
}

type vehicleUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVehicleUseCase(uow shared.UnitOfWork, clk clock.Clock) VehicleCommands {
	return &vehicleUseCaseImpl{uow: uow, clock: clk}
}

func (uc *vehicleUseCaseImpl) Register(ctx context.Context, req RegisterVehicleRequest, ownerID uuid.UUID) (*queries.VehicleView, error) {
	plate, err := vehicle.NewPlate(req.PlateNumber)
	if err != nil {
		return nil, err
	}

	veh, err := vehicle.NewVehicle(ownerID, plate, vehicle.Type(req.Type), req.IsPrimary, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Vehicles().Create(ctx, veh); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.ErrPlateTaken
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if veh.IsPrimary() {
			if derr := tx.Vehicles().ClearPrimaryByOwner(ctx, ownerID, veh.ID()); derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vehicleView(veh), nil
}

func (uc *vehicleUseCaseImpl) MakePrimary(ctx context.Context, vehicleID uuid.UUID, ownerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		veh, derr := uc.findOwned(ctx, tx, vehicleID, ownerID)
		if derr != nil {
			return derr
		}

		if derr := tx.Vehicles().ClearPrimaryByOwner(ctx, ownerID, veh.ID()); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		veh.MakePrimary(uc.clock.Now())
		if derr := tx.Vehicles().Update(ctx, veh); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *vehicleUseCaseImpl) Remove(ctx context.Context, vehicleID uuid.UUID, ownerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		veh, derr := uc.findOwned(ctx, tx, vehicleID, ownerID)
		if derr != nil {
			return derr
		}

		if derr := tx.Vehicles().Delete(ctx, veh.ID()); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.ErrVehicleInUse
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *vehicleUseCaseImpl) findOwned(ctx context.Context, tx shared.Tx, vehicleID, ownerID uuid.UUID) (*vehicle.Vehicle, error) {
	veh, err := tx.Vehicles().FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if veh.OwnerID() != ownerID {
		return nil, errs.ErrVehicleNotFound
	}
	return veh, nil
}

func vehicleView(veh *vehicle.Vehicle) *queries.VehicleView {
	return &queries.VehicleView{
		ID:          veh.ID(),
		PlateNumber: veh.Plate().Value(),
		Type:        veh.Type().String(),
		TypeName:    veh.Type().DisplayName(),
		IsPrimary:   veh.IsPrimary(),
		CreatedAt:   veh.CreatedAt(),
	}
}
