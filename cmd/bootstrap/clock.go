package bootstrap

import (
	"time"

	"iwparking/internal/pkg/clock"
	"iwparking/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

// NewClock pins the service to its single civil timezone; every working
// hours comparison and every parsed reservation instant goes through it.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := time.LoadLocation(cfg.Reservation.TimeZone)
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}
