package reservation

import (
	"errors"

	"iwparking/internal/domain/parkinglot"
)

var ErrNonWorkingHours = errors.New("Non working hours")

// ValidateWithinWorkingHours decides whether a candidate period is legal
// for a lot's daily window. Only the time-of-day components are checked;
// working hours repeat every calendar day.
//
// For an overnight lot (to <= from) the closed period is [to, from): the
// start must not land inside it, and the end must not land in (to, from].
// For a same-day lot the start must lie in [from, to) and the end in
// (from, to]. The boundary asymmetry is deliberate and load-bearing.
func ValidateWithinWorkingHours(hours parkinglot.WorkingHours, p Period) error {
	s := minuteOfDay(p.start)
	e := minuteOfDay(p.end)
	from := hours.From().Minutes()
	to := hours.To().Minutes()

	if hours.Overnight() {
		if s >= to && s < from {
			return ErrNonWorkingHours
		}
		if e > to && e <= from {
			return ErrNonWorkingHours
		}
		return nil
	}

	if s < from || s >= to {
		return ErrNonWorkingHours
	}
	if e <= from || e > to {
		return ErrNonWorkingHours
	}
	return nil
}
