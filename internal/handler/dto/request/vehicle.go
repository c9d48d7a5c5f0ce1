package request

import "iwparking/internal/usecase/commands"

type RegisterVehicleRequest struct {
	PlateNumber string `json:"plate_number" binding:"required"`
	Type        string `json:"type" binding:"required"`
	IsPrimary   bool   `json:"is_primary"`
}

func (r RegisterVehicleRequest) ToCommand() commands.RegisterVehicleRequest {
	return commands.RegisterVehicleRequest{
		PlateNumber: r.PlateNumber,
		Type:        r.Type,
		IsPrimary:   r.IsPrimary,
	}
}
