package parkinglot

import (
	"errors"
	"time"

	"iwparking/internal/domain/vehicle"

	"github.com/google/uuid"
)

var (
	ErrDeactivated = errors.New("parking lot is deactivated")
	ErrEmptyName   = errors.New("parking lot name cannot be empty")
)

type ParkingLot struct {
	id               uuid.UUID
	name             string
	address          string
	hours            WorkingHours
	capacity         int
	adaptedCapacity  int
	hourlyPriceUnits int64
	deactivated      bool
	createdAt        time.Time
	modifiedAt       time.Time
}

func NewParkingLot(name, address string, hours WorkingHours, capacity, adaptedCapacity int, hourlyPriceUnits int64, now time.Time) (*ParkingLot, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity < 0 || adaptedCapacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if hourlyPriceUnits < 0 {
		return nil, ErrInvalidPrice
	}
	return &ParkingLot{
		id:               uuid.New(),
		name:             name,
		address:          address,
		hours:            hours,
		capacity:         capacity,
		adaptedCapacity:  adaptedCapacity,
		hourlyPriceUnits: hourlyPriceUnits,
		createdAt:        now,
		modifiedAt:       now,
	}, nil
}

func ReconstructParkingLot(
	id uuid.UUID,
	name, address string,
	hours WorkingHours,
	capacity, adaptedCapacity int,
	hourlyPriceUnits int64,
	deactivated bool,
	createdAt, modifiedAt time.Time,
) *ParkingLot {
	return &ParkingLot{
		id:               id,
		name:             name,
		address:          address,
		hours:            hours,
		capacity:         capacity,
		adaptedCapacity:  adaptedCapacity,
		hourlyPriceUnits: hourlyPriceUnits,
		deactivated:      deactivated,
		createdAt:        createdAt,
		modifiedAt:       modifiedAt,
	}
}

func (p *ParkingLot) ID() uuid.UUID           { return p.id }
func (p *ParkingLot) Name() string            { return p.name }
func (p *ParkingLot) Address() string         { return p.address }
func (p *ParkingLot) Hours() WorkingHours     { return p.hours }
func (p *ParkingLot) Capacity() int           { return p.capacity }
func (p *ParkingLot) AdaptedCapacity() int    { return p.adaptedCapacity }
func (p *ParkingLot) HourlyPriceUnits() int64 { return p.hourlyPriceUnits }
func (p *ParkingLot) Deactivated() bool       { return p.deactivated }
func (p *ParkingLot) CreatedAt() time.Time    { return p.createdAt }
func (p *ParkingLot) ModifiedAt() time.Time   { return p.modifiedAt }

// CapacityFor returns the number of dedicated spaces for a vehicle type.
func (p *ParkingLot) CapacityFor(t vehicle.Type) int {
	if t == vehicle.TypeAdaptedCar {
		return p.adaptedCapacity
	}
	return p.capacity
}

func (p *ParkingLot) Deactivate(now time.Time) {
	p.deactivated = true
	p.modifiedAt = now
}

func (p *ParkingLot) Update(name, address string, hours WorkingHours, capacity, adaptedCapacity int, hourlyPriceUnits int64, now time.Time) error {
	if name == "" {
		return ErrEmptyName
	}
	if capacity < 0 || adaptedCapacity < 0 {
		return ErrInvalidCapacity
	}
	if hourlyPriceUnits < 0 {
		return ErrInvalidPrice
	}
	p.name = name
	p.address = address
	p.hours = hours
	p.capacity = capacity
	p.adaptedCapacity = adaptedCapacity
	p.hourlyPriceUnits = hourlyPriceUnits
	p.modifiedAt = now
	return nil
}
