package response

import (
	"time"

	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ParkingLotResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	WorkingHoursFrom string    `json:"workingHoursFrom"`
	WorkingHoursTo   string    `json:"workingHoursTo"`
	Capacity         int       `json:"capacity"`
	AdaptedCapacity  int       `json:"adaptedCapacity"`
	HourlyPrice      int64     `json:"hourlyPrice"`
	Deactivated      bool      `json:"deactivated"`
	CreatedAt        time.Time `json:"createdAt"`
	ModifiedAt       time.Time `json:"modifiedAt"`
}

func FromParkingLotView(view *queries.ParkingLotView) *ParkingLotResponse {
	var resp ParkingLotResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
