package response

import (
	"time"

	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	Type        string    `json:"type"`
	TypeName    string    `json:"typeName"`
	IsPrimary   bool      `json:"isPrimary"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromVehicleView(view *queries.VehicleView) *VehicleResponse {
	var resp VehicleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
