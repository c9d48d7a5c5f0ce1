package response

import (
	"time"

	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	ParkingLotID   uuid.UUID `json:"parkingLotId"`
	ParkingLotName string    `json:"parkingLotName"`
	UserID         uuid.UUID `json:"userId"`
	VehicleID      uuid.UUID `json:"vehicleId"`
	PlateNumber    string    `json:"plateNumber"`
	VehicleType    string    `json:"vehicleType"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	AmountUnits    int64     `json:"amount"`
	Paid           bool      `json:"paid"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	ModifiedAt     time.Time `json:"modifiedAt"`
}

type ReservationListResponse struct {
	ID             uuid.UUID `json:"id"`
	ParkingLotName string    `json:"parkingLotName"`
	PlateNumber    string    `json:"plateNumber"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	AmountUnits    int64     `json:"amount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationListItem(item *queries.ReservationListItem) *ReservationListResponse {
	var resp ReservationListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}
