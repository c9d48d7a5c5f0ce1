package queries

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID `json:"id"`
	ParkingLotID   uuid.UUID `json:"parking_lot_id"`
	ParkingLotName string    `json:"parking_lot_name"`
	UserID         uuid.UUID `json:"user_id"`
	VehicleID      uuid.UUID `json:"vehicle_id"`
	PlateNumber    string    `json:"plate_number"`
	VehicleType    string    `json:"vehicle_type"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	AmountUnits    int64     `json:"amount"`
	Paid           bool      `json:"paid"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	ModifiedAt     time.Time `json:"modified_at"`
}

type ReservationListItem struct {
	ID             uuid.UUID `json:"id"`
	ParkingLotName string    `json:"parking_lot_name"`
	PlateNumber    string    `json:"plate_number"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	AmountUnits    int64     `json:"amount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ParkingLotView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	WorkingHoursFrom string    `json:"working_hours_from"`
	WorkingHoursTo   string    `json:"working_hours_to"`
	Capacity         int       `json:"capacity"`
	AdaptedCapacity  int       `json:"adapted_capacity"`
	HourlyPrice      int64     `json:"hourly_price"`
	Deactivated      bool      `json:"deactivated"`
	CreatedAt        time.Time `json:"created_at"`
	ModifiedAt       time.Time `json:"modified_at"`
}

type VehicleView struct {
	ID          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plate_number"`
	Type        string    `json:"type"`
	TypeName    string    `json:"type_name"`
	IsPrimary   bool      `json:"is_primary"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}
