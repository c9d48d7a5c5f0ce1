package queries

import (
	"context"

	"iwparking/internal/infra"
	"iwparking/internal/pkg/errs"

	"github.com/google/uuid"
)

type VehicleQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*VehicleView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
}

type VehicleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, uuid.UUID, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	repo VehicleViewRepo
}

func NewVehicleQueries(repo VehicleViewRepo) VehicleQueries {
	return &vehicleQueriesImpl{repo: repo}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*VehicleView, error) {
	view, ownerID, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, err
	}
	if ownerID != actorID {
		return nil, errs.ErrVehicleNotFound
	}
	return view, nil
}

func (q *vehicleQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error) {
	return q.repo.FindByOwnerID(ctx, ownerID)
}
