package reservation

import (
	"iwparking/internal/domain/parkinglot"
	"iwparking/internal/domain/vehicle"
)

// VehicleSlot is the slice of an existing Successful reservation that
// capacity counting needs: its occupied period and the vehicle type it
// binds a space for.
type VehicleSlot struct {
	Period      Period
	VehicleType vehicle.Type
}

// CapacityPolicy controls the overnight-lot counting branch. Historically,
// a same-day request against an overnight lot counted conflicts among
// standard cars only, regardless of the requested type;
// CountAdaptedOvernight switches that branch to count the requested type.
type CapacityPolicy struct {
	CountAdaptedOvernight bool
}

// CountConflicting counts existing Successful reservations at the same lot
// that would occupy a capacity slot of the requested vehicle type during
// the candidate period. Which predicate applies depends on whether the
// candidate wraps past midnight and whether the lot operates overnight;
// the caller compares the count against the lot's per-type capacity.
func CountConflicting(
	candidate Period,
	hours parkinglot.WorkingHours,
	requested vehicle.Type,
	existing []VehicleSlot,
	policy CapacityPolicy,
) int {
	switch {
	case candidate.SpansMidnight():
		return countSlots(existing, requested, func(r Period) bool {
			return overlapsAcrossDays(r, candidate)
		})
	case hours.Overnight():
		counted := vehicle.TypeCar
		if policy.CountAdaptedOvernight {
			counted = requested
		}
		return countSlots(existing, counted, func(r Period) bool {
			return overlapsAcrossDays(r, candidate)
		})
	default:
		return countSlots(existing, requested, func(r Period) bool {
			return overlapsSameDay(r, candidate)
		})
	}
}

func countSlots(slots []VehicleSlot, vtype vehicle.Type, match func(Period) bool) int {
	n := 0
	for _, s := range slots {
		if s.VehicleType == vtype && match(s.Period) {
			n++
		}
	}
	return n
}

// overlapsAcrossDays matches reservations against a midnight-wrapping
// candidate (or any candidate at an overnight lot) by date-or-time
// relation: same start date with overlapping clock windows; starting on
// the candidate's end date while ending after the candidate starts; ending
// on the candidate's start date while starting before the candidate ends;
// or one date range strictly containing the other.
func overlapsAcrossDays(r, c Period) bool {
	return (sameDate(r.start, c.start) && clockWindowsOverlap(r, c)) ||
		(sameDate(r.start, c.end) && r.end.After(c.start)) ||
		(sameDate(r.end, c.start) && r.start.Before(c.end)) ||
		(dateBefore(r.start, c.start) && dateAfter(r.end, c.end)) ||
		(dateAfter(r.start, c.start) && dateBefore(r.end, c.end))
}

// overlapsSameDay matches a non-wrapping candidate at a same-day lot: the
// date ranges must intersect and the clock windows must intersect, where a
// candidate window wholly contained in the reservation's window also
// counts. The containment clause is implied by the linear overlap but is
// kept as a distinct disjunct on purpose.
func overlapsSameDay(r, c Period) bool {
	if dateAfter(r.start, c.end) || dateBefore(r.end, c.start) {
		return false
	}
	rs, re := minuteOfDay(r.start), minuteOfDay(r.end)
	cs, ce := minuteOfDay(c.start), minuteOfDay(c.end)
	return (rs < ce && re > cs) || (cs >= rs && ce <= re)
}

// clockWindowsOverlap intersects two time-of-day windows on the 24h circle.
// A window whose end is not after its start wraps past midnight and is
// split into two linear segments.
func clockWindowsOverlap(a, b Period) bool {
	for _, s1 := range clockSegments(minuteOfDay(a.start), minuteOfDay(a.end)) {
		for _, s2 := range clockSegments(minuteOfDay(b.start), minuteOfDay(b.end)) {
			if s1.lo < s2.hi && s1.hi > s2.lo {
				return true
			}
		}
	}
	return false
}

type clockSegment struct {
	lo, hi int
}

const minutesPerDay = 24 * 60

func clockSegments(start, end int) []clockSegment {
	if end > start {
		return []clockSegment{{start, end}}
	}
	return []clockSegment{{start, minutesPerDay}, {0, end}}
}
