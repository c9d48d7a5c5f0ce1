//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"iwparking/internal/domain/parkinglot"
	"iwparking/internal/domain/reservation"

	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T, from, to string) parkinglot.WorkingHours {
	t.Helper()
	f, err := parkinglot.ParseTimeOfDay(from)
	require.NoError(t, err)
	tt, err := parkinglot.ParseTimeOfDay(to)
	require.NoError(t, err)
	return parkinglot.NewWorkingHours(f, tt)
}

func mustPeriod(t *testing.T, start, end time.Time) reservation.Period {
	t.Helper()
	p, err := reservation.NewPeriod(start, end)
	require.NoError(t, err)
	return p
}

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.May, day, hour, minute, 0, 0, time.UTC)
}

func TestValidateWithinWorkingHours(t *testing.T) {
	cases := []struct {
		name  string
		hours parkinglot.WorkingHours
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "inside day window",
			hours: mustHours(t, "08:00", "18:00"),
			start: at(10, 9, 0),
			end:   at(10, 11, 0),
		},
		{
			name:  "start exactly at opening",
			hours: mustHours(t, "08:00", "18:00"),
			start: at(10, 8, 0),
			end:   at(10, 10, 0),
		},
		{
			name:  "end exactly at closing",
			hours: mustHours(t, "08:00", "18:00"),
			start: at(10, 16, 0),
			end:   at(10, 18, 0),
		},
		{
			name:  "start exactly at closing",
			hours: mustHours(t, "08:00", "18:00"),
			start: at(10, 18, 0),
			end:   at(11, 9, 0),
			errIs: reservation.ErrNonWorkingHours,
		},
		{
			name:  "start before opening",
			hours: mustHours(t, "08:00", "18:00"),
			start: at(10, 7, 59),
			end:   at(10, 10, 0),
			errIs: reservation.ErrNonWorkingHours,
		},
		{
			name:  "end exactly at opening",
			hours: mustHours(t, "08:00", "18:00"),
			start: at(10, 9, 0),
			end:   at(11, 8, 0),
			errIs: reservation.ErrNonWorkingHours,
		},
		{
			name:  "end past closing",
			hours: mustHours(t, "08:00", "18:00"),
			start: at(10, 16, 0),
			end:   at(10, 18, 1),
			errIs: reservation.ErrNonWorkingHours,
		},
		{
			name:  "overnight window basic",
			hours: mustHours(t, "22:00", "06:00"),
			start: at(10, 23, 0),
			end:   at(11, 2, 0),
		},
		{
			name:  "overnight start exactly at opening",
			hours: mustHours(t, "22:00", "06:00"),
			start: at(10, 22, 0),
			end:   at(11, 4, 0),
		},
		{
			name:  "overnight end exactly at closing",
			hours: mustHours(t, "22:00", "06:00"),
			start: at(10, 23, 0),
			end:   at(11, 6, 0),
		},
		{
			name:  "overnight start inside closed window",
			hours: mustHours(t, "22:00", "06:00"),
			start: at(10, 21, 0),
			end:   at(10, 23, 0),
			errIs: reservation.ErrNonWorkingHours,
		},
		{
			name:  "overnight start exactly at closing",
			hours: mustHours(t, "22:00", "06:00"),
			start: at(10, 6, 0),
			end:   at(10, 23, 0),
			errIs: reservation.ErrNonWorkingHours,
		},
		{
			name:  "overnight end inside closed window",
			hours: mustHours(t, "22:00", "06:00"),
			start: at(10, 23, 0),
			end:   at(11, 7, 0),
			errIs: reservation.ErrNonWorkingHours,
		},
		{
			name:  "overnight end exactly at next opening",
			hours: mustHours(t, "22:00", "06:00"),
			start: at(10, 23, 0),
			end:   at(11, 22, 0),
			errIs: reservation.ErrNonWorkingHours,
		},
		{
			name:  "always open lot accepts any period",
			hours: mustHours(t, "00:00", "00:00"),
			start: at(10, 3, 0),
			end:   at(10, 15, 0),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := reservation.ValidateWithinWorkingHours(c.hours, mustPeriod(t, c.start, c.end))
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
