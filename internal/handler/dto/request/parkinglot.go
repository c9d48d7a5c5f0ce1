package request

import "iwparking/internal/usecase/commands"

type UpsertParkingLotRequest struct {
	Name             string `json:"name" binding:"required"`
	Address          string `json:"address"`
	WorkingHoursFrom string `json:"working_hours_from" binding:"required"`
	WorkingHoursTo   string `json:"working_hours_to" binding:"required"`
	Capacity         int    `json:"capacity" binding:"min=0"`
	AdaptedCapacity  int    `json:"adapted_capacity" binding:"min=0"`
	HourlyPrice      int64  `json:"hourly_price" binding:"min=0"`
}

func (r UpsertParkingLotRequest) ToCommand() commands.UpsertParkingLotRequest {
	return commands.UpsertParkingLotRequest{
		Name:             r.Name,
		Address:          r.Address,
		WorkingHoursFrom: r.WorkingHoursFrom,
		WorkingHoursTo:   r.WorkingHoursTo,
		Capacity:         r.Capacity,
		AdaptedCapacity:  r.AdaptedCapacity,
		HourlyPrice:      r.HourlyPrice,
	}
}
