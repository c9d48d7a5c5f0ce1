package vehicle

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	plate      Plate
	vtype      Type
	isPrimary  bool
	createdAt  time.Time
	modifiedAt time.Time
}

func NewVehicle(ownerID uuid.UUID, plate Plate, vtype Type, isPrimary bool, now time.Time) (*Vehicle, error) {
	if !vtype.IsValid() {
		return nil, ErrInvalidType
	}
	return &Vehicle{
		id:         uuid.New(),
		ownerID:    ownerID,
		plate:      plate,
		vtype:      vtype,
		isPrimary:  isPrimary,
		createdAt:  now,
		modifiedAt: now,
	}, nil
}

func ReconstructVehicle(id, ownerID uuid.UUID, plate Plate, vtype Type, isPrimary bool, createdAt, modifiedAt time.Time) *Vehicle {
	return &Vehicle{
		id:         id,
		ownerID:    ownerID,
		plate:      plate,
		vtype:      vtype,
		isPrimary:  isPrimary,
		createdAt:  createdAt,
		modifiedAt: modifiedAt,
	}
}

func (v *Vehicle) MakePrimary(now time.Time) {
	v.isPrimary = true
	v.modifiedAt = now
}

func (v *Vehicle) ID() uuid.UUID         { return v.id }
func (v *Vehicle) OwnerID() uuid.UUID    { return v.ownerID }
func (v *Vehicle) Plate() Plate          { return v.plate }
func (v *Vehicle) Type() Type            { return v.vtype }
func (v *Vehicle) IsPrimary() bool       { return v.isPrimary }
func (v *Vehicle) CreatedAt() time.Time  { return v.createdAt }
func (v *Vehicle) ModifiedAt() time.Time { return v.modifiedAt }
