package errs

import "errors"

// Sentinel errors for the usecase layers. Domain packages carry their own
// sentinels (state machine and validation failures); these cover lookups
// and cross-aggregate rules detected during orchestration.
var (
	// Lookup errors
	ErrParkingLotNotFound  = errors.New("parking lot not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")

	// Reservation errors
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrCapacityExhausted = errors.New("no available parking spaces")
	ErrOverlappingSlot   = errors.New("overlapping reservation for this vehicle")

	// Vehicle errors
	ErrPlateTaken   = errors.New("plate number already registered")
	ErrVehicleInUse = errors.New("vehicle has reservations")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
