package parkinglot

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidCapacity  = errors.New("capacity must be non-negative")
	ErrInvalidPrice     = errors.New("hourly price must be non-negative")
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time without a date, as minutes since midnight.
// Working hours repeat every calendar day, so the engine compares these
// directly against the time-of-day of reservation instants.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts "15:04" strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

// TimeOfDayFromInstant drops the date component of an instant.
func TimeOfDayFromInstant(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

func (t TimeOfDay) Minutes() int { return t.minutes }
func (t TimeOfDay) Hour() int    { return t.minutes / 60 }
func (t TimeOfDay) Minute() int  { return t.minutes % 60 }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.minutes > other.minutes }
func (t TimeOfDay) Equal(other TimeOfDay) bool  { return t.minutes == other.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// WorkingHours is a lot's daily open window. A window with To <= From wraps
// past midnight (overnight lot); To == From means the lot never closes.
type WorkingHours struct {
	from TimeOfDay
	to   TimeOfDay
}

func NewWorkingHours(from, to TimeOfDay) WorkingHours {
	return WorkingHours{from: from, to: to}
}

func (w WorkingHours) From() TimeOfDay { return w.from }
func (w WorkingHours) To() TimeOfDay   { return w.to }

func (w WorkingHours) Overnight() bool {
	return w.to.minutes <= w.from.minutes
}

// Closed reports whether the lot is shut at the given time of day. For an
// overnight lot the closed period is [to, from); otherwise it is the
// complement of [from, to].
func (w WorkingHours) Closed(t TimeOfDay) bool {
	if w.Overnight() {
		return t.minutes >= w.to.minutes && t.minutes < w.from.minutes
	}
	return t.minutes < w.from.minutes || t.minutes > w.to.minutes
}

// StrictlyClosed reports whether the time of day is strictly inside the
// closed period, excluding both boundaries. The pricing walk uses this
// form; the admission validator applies its own boundary asymmetry.
func (w WorkingHours) StrictlyClosed(t TimeOfDay) bool {
	if w.Overnight() {
		return t.minutes > w.to.minutes && t.minutes < w.from.minutes
	}
	return t.minutes < w.from.minutes || t.minutes > w.to.minutes
}

func (w WorkingHours) String() string {
	return w.from.String() + "-" + w.to.String()
}
