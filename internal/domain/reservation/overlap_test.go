//go:build unit

package reservation_test

import (
	"testing"

	"iwparking/internal/domain/reservation"
	"iwparking/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
)

func TestPeriodSpansMidnight(t *testing.T) {
	assert.True(t, mustPeriod(t, at(10, 23, 0), at(11, 2, 0)).SpansMidnight())
	assert.False(t, mustPeriod(t, at(10, 9, 0), at(10, 11, 0)).SpansMidnight())
	// Multi-day period with a later end clock does not wrap.
	assert.False(t, mustPeriod(t, at(10, 9, 0), at(12, 10, 0)).SpansMidnight())
}

func TestPeriodOverlaps(t *testing.T) {
	a := mustPeriod(t, at(10, 9, 0), at(10, 11, 0))

	assert.True(t, a.Overlaps(mustPeriod(t, at(10, 10, 0), at(10, 12, 0))))
	assert.True(t, a.Overlaps(mustPeriod(t, at(10, 8, 0), at(10, 12, 0))))
	// Touching endpoints do not conflict; intervals are half-open.
	assert.False(t, a.Overlaps(mustPeriod(t, at(10, 11, 0), at(10, 13, 0))))
	assert.False(t, a.Overlaps(mustPeriod(t, at(10, 7, 0), at(10, 9, 0))))
	assert.False(t, a.Overlaps(mustPeriod(t, at(11, 9, 0), at(11, 11, 0))))
}

func TestCountConflicting(t *testing.T) {
	dayHours := mustHours(t, "08:00", "18:00")
	nightHours := mustHours(t, "22:00", "06:00")

	carSlot := func(start, end [3]int) reservation.VehicleSlot {
		return reservation.VehicleSlot{
			Period:      mustPeriod(t, at(start[0], start[1], start[2]), at(end[0], end[1], end[2])),
			VehicleType: vehicle.TypeCar,
		}
	}
	adaptedSlot := func(start, end [3]int) reservation.VehicleSlot {
		s := carSlot(start, end)
		s.VehicleType = vehicle.TypeAdaptedCar
		return s
	}

	t.Run("same day lot counts clock overlap on intersecting dates", func(t *testing.T) {
		candidate := mustPeriod(t, at(10, 10, 0), at(10, 12, 0))
		existing := []reservation.VehicleSlot{
			carSlot([3]int{10, 9, 0}, [3]int{10, 11, 0}),
			carSlot([3]int{10, 13, 0}, [3]int{10, 15, 0}),
			carSlot([3]int{11, 10, 0}, [3]int{11, 12, 0}),
			adaptedSlot([3]int{10, 10, 0}, [3]int{10, 12, 0}),
		}

		got := reservation.CountConflicting(candidate, dayHours, vehicle.TypeCar, existing, reservation.CapacityPolicy{})
		assert.Equal(t, 1, got)

		got = reservation.CountConflicting(candidate, dayHours, vehicle.TypeAdaptedCar, existing, reservation.CapacityPolicy{})
		assert.Equal(t, 1, got)
	})

	t.Run("same day lot counts contained candidate window", func(t *testing.T) {
		candidate := mustPeriod(t, at(10, 10, 0), at(10, 11, 0))
		existing := []reservation.VehicleSlot{
			carSlot([3]int{10, 9, 0}, [3]int{10, 12, 0}),
		}

		got := reservation.CountConflicting(candidate, dayHours, vehicle.TypeCar, existing, reservation.CapacityPolicy{})
		assert.Equal(t, 1, got)
	})

	t.Run("midnight wrapping candidate matches by date clauses", func(t *testing.T) {
		candidate := mustPeriod(t, at(10, 23, 0), at(11, 2, 0))
		existing := []reservation.VehicleSlot{
			// Starts on the candidate's end date and runs past its start.
			carSlot([3]int{11, 1, 0}, [3]int{11, 3, 0}),
			// Any reservation ending on the candidate's start date counts,
			// even one that finished in the morning.
			carSlot([3]int{10, 9, 0}, [3]int{10, 11, 0}),
			// Ends the day before the candidate starts.
			carSlot([3]int{9, 9, 0}, [3]int{9, 11, 0}),
		}

		got := reservation.CountConflicting(candidate, nightHours, vehicle.TypeCar, existing, reservation.CapacityPolicy{})
		assert.Equal(t, 2, got)
	})

	t.Run("overnight lot counts standard cars for adapted requests by default", func(t *testing.T) {
		candidate := mustPeriod(t, at(10, 23, 0), at(10, 23, 30))
		existing := []reservation.VehicleSlot{
			adaptedSlot([3]int{10, 23, 0}, [3]int{10, 23, 45}),
			adaptedSlot([3]int{10, 22, 30}, [3]int{10, 23, 15}),
			carSlot([3]int{10, 23, 0}, [3]int{10, 23, 45}),
		}

		got := reservation.CountConflicting(candidate, nightHours, vehicle.TypeAdaptedCar, existing, reservation.CapacityPolicy{})
		assert.Equal(t, 1, got)

		got = reservation.CountConflicting(candidate, nightHours, vehicle.TypeAdaptedCar, existing, reservation.CapacityPolicy{CountAdaptedOvernight: true})
		assert.Equal(t, 2, got)
	})

	t.Run("no conflicts on disjoint dates and windows", func(t *testing.T) {
		candidate := mustPeriod(t, at(10, 10, 0), at(10, 12, 0))
		existing := []reservation.VehicleSlot{
			carSlot([3]int{12, 10, 0}, [3]int{12, 12, 0}),
			carSlot([3]int{10, 14, 0}, [3]int{10, 16, 0}),
		}

		got := reservation.CountConflicting(candidate, dayHours, vehicle.TypeCar, existing, reservation.CapacityPolicy{})
		assert.Equal(t, 0, got)
	})
}
