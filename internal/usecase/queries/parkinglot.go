package queries

import (
	"context"

	"iwparking/internal/infra"
	"iwparking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ParkingLotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ParkingLotView, error)
	// ListActive returns lots open for new reservations.
	ListActive(ctx context.Context) ([]*ParkingLotView, error)
	// ListAll includes deactivated lots, for the admin surface.
	ListAll(ctx context.Context) ([]*ParkingLotView, error)
}

type ParkingLotViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ParkingLotView, error)
	FindAll(ctx context.Context, includeDeactivated bool) ([]*ParkingLotView, error)
}

type parkingLotQueriesImpl struct {
	repo ParkingLotViewRepo
}

func NewParkingLotQueries(repo ParkingLotViewRepo) ParkingLotQueries {
	return &parkingLotQueriesImpl{repo: repo}
}

func (q *parkingLotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ParkingLotView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrParkingLotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *parkingLotQueriesImpl) ListActive(ctx context.Context) ([]*ParkingLotView, error) {
	return q.repo.FindAll(ctx, false)
}

func (q *parkingLotQueriesImpl) ListAll(ctx context.Context) ([]*ParkingLotView, error) {
	return q.repo.FindAll(ctx, true)
}
