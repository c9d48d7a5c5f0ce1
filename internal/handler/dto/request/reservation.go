package request

import (
	"iwparking/internal/usecase/commands"

	"github.com/google/uuid"
)

type MakeReservationRequest struct {
	ParkingLotID uuid.UUID `json:"parking_lot_id" binding:"required"`
	PlateNumber  string    `json:"plate_number" binding:"required"`
	StartDate    string    `json:"start_date" binding:"required"`
	StartTime    string    `json:"start_time" binding:"required"`
	EndDate      string    `json:"end_date" binding:"required"`
	EndTime      string    `json:"end_time" binding:"required"`
}

func (r MakeReservationRequest) ToCommand() commands.MakeReservationRequest {
	return commands.MakeReservationRequest{
		ParkingLotID: r.ParkingLotID,
		PlateNumber:  r.PlateNumber,
		StartDate:    r.StartDate,
		StartTime:    r.StartTime,
		EndDate:      r.EndDate,
		EndTime:      r.EndTime,
	}
}

type ExtendReservationRequest struct {
	EndDate string `json:"end_date" binding:"required"`
	EndTime string `json:"end_time" binding:"required"`
}

func (r ExtendReservationRequest) ToCommand() commands.ExtendReservationRequest {
	return commands.ExtendReservationRequest{
		EndDate: r.EndDate,
		EndTime: r.EndTime,
	}
}
