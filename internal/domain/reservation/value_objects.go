package reservation

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("end time must be after start time")

// Period is the occupied interval of a reservation, as combined
// date+time-of-day instants in the service's civil timezone.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// SpansMidnight reports whether the period's end clock time is numerically
// earlier than its start clock time, i.e. the interval wraps past 24:00.
func (p Period) SpansMidnight() bool {
	return minuteOfDay(p.end) < minuteOfDay(p.start)
}

// Overlaps is the self-conflict predicate: plain instant intersection of
// two half-open intervals. Capacity counting uses the date/time clause
// predicates in overlap.go, whose boundary semantics differ.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && p.end.After(other.start)
}

func (p Period) WithEnd(end time.Time) (Period, error) {
	return NewPeriod(p.start, end)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func dateBefore(a, b time.Time) bool {
	return dateOnly(a).Before(dateOnly(b))
}

func dateAfter(a, b time.Time) bool {
	return dateOnly(a).After(dateOnly(b))
}
