package reservation

import (
	"time"

	"iwparking/internal/domain/parkinglot"
)

// PriceUnits computes the billable amount in whole currency units for a
// period at a lot, counting only time that falls inside the lot's working
// window. The result is rounded up to the next whole unit, never down.
func PriceUnits(hours parkinglot.WorkingHours, hourlyPrice int64, p Period) int64 {
	if hours.Overnight() {
		return overnightPriceUnits(hours, hourlyPrice, p)
	}
	return dayWalkPriceUnits(hours, hourlyPrice, p)
}

// overnightPriceUnits walks the interval hour mark by hour mark and
// subtracts marks that fall strictly inside the lot's closed window from
// the total (ceiling) hour count.
func overnightPriceUnits(hours parkinglot.WorkingHours, hourlyPrice int64, p Period) int64 {
	totalHours := ceilDiv(int64(p.Duration().Minutes()), 60)

	var nonWorking int64
	for t := p.start; t.Before(p.end); t = t.Add(time.Hour) {
		if hours.StrictlyClosed(parkinglot.TimeOfDayFromInstant(t)) {
			nonWorking++
		}
	}

	billable := totalHours - nonWorking
	if billable < 0 {
		billable = 0
	}
	return billable * hourlyPrice
}

// dayWalkPriceUnits sums, day by day, the minutes of the working window
// clipped by the reservation's own bounds on the first and last day.
func dayWalkPriceUnits(hours parkinglot.WorkingHours, hourlyPrice int64, p Period) int64 {
	from := int64(hours.From().Minutes())
	to := int64(hours.To().Minutes())

	var totalMinutes int64
	lastDay := dateOnly(p.end)
	for d := dateOnly(p.start); !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		lo, hi := from, to
		if sameDate(d, p.start) && int64(minuteOfDay(p.start)) > lo {
			lo = int64(minuteOfDay(p.start))
		}
		if sameDate(d, p.end) && int64(minuteOfDay(p.end)) < hi {
			hi = int64(minuteOfDay(p.end))
		}
		if hi > lo {
			totalMinutes += hi - lo
		}
	}

	return ceilDiv(totalMinutes*hourlyPrice, 60)
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
