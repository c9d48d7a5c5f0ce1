package api

import (
	"errors"
	"net/http"

	"iwparking/internal/domain/parkinglot"
	"iwparking/internal/domain/reservation"
	"iwparking/internal/domain/user"
	"iwparking/internal/domain/vehicle"
	"iwparking/internal/handler/httperr"
	"iwparking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps domain and usecase sentinels onto HTTP statuses.
// Anything unmapped becomes a fixed 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)

	case errors.Is(err, errs.ErrParkingLotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Parking lot not found", nil)
	case errors.Is(err, errs.ErrVehicleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)

	case errors.Is(err, reservation.ErrNonWorkingHours):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Non working hours", nil)
	case errors.Is(err, reservation.ErrPeriodNotInFuture):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation must be in the future", nil)
	case errors.Is(err, reservation.ErrEndNotExtended):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "New end time must extend the reservation", nil)
	case errors.Is(err, errs.ErrInvalidTimeRange), errors.Is(err, reservation.ErrInvalidPeriod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
	case errors.Is(err, vehicle.ErrInvalidPlate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plate number", nil)
	case errors.Is(err, vehicle.ErrInvalidType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle type", nil)
	case errors.Is(err, parkinglot.ErrInvalidTimeOfDay):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid working hours", nil)
	case errors.Is(err, parkinglot.ErrEmptyName),
		errors.Is(err, parkinglot.ErrInvalidCapacity),
		errors.Is(err, parkinglot.ErrInvalidPrice):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid parking lot attributes", nil)
	case errors.Is(err, user.ErrInvalidEmail):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email format", nil)
	case errors.Is(err, user.ErrPasswordTooWeak):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Password must be at least 8 characters long", nil)

	case errors.Is(err, errs.ErrCapacityExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, "No available parking spaces", nil)
	case errors.Is(err, errs.ErrOverlappingSlot):
		httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle already has a reservation in this period", nil)
	case errors.Is(err, errs.ErrPlateTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Plate number already registered", nil)
	case errors.Is(err, errs.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
	case errors.Is(err, errs.ErrVehicleInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle has reservations", nil)
	case errors.Is(err, reservation.ErrAlreadyStarted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already started", nil)
	case errors.Is(err, reservation.ErrAlreadyFinished):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already finished", nil)
	case errors.Is(err, reservation.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already cancelled", nil)
	case errors.Is(err, reservation.ErrNotSuccessful):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is not active", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func respondInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
