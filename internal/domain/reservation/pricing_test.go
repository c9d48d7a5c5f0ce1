//go:build unit

package reservation_test

import (
	"testing"

	"iwparking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestPriceUnits(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		price    int64
		startDay int
		startHM  [2]int
		endDay   int
		endHM    [2]int
		want     int64
	}{
		{
			name: "two working hours at a day lot",
			from: "08:00", to: "18:00", price: 10,
			startDay: 10, startHM: [2]int{9, 0},
			endDay: 10, endHM: [2]int{11, 0},
			want: 20,
		},
		{
			name: "half hour rounds up from minutes",
			from: "08:00", to: "18:00", price: 10,
			startDay: 10, startHM: [2]int{9, 0},
			endDay: 10, endHM: [2]int{9, 30},
			want: 5,
		},
		{
			name: "fractional product rounds up to next unit",
			from: "08:00", to: "18:00", price: 7,
			startDay: 10, startHM: [2]int{9, 0},
			endDay: 10, endHM: [2]int{10, 10},
			want: 9,
		},
		{
			name: "two day span bills each day's clipped window",
			from: "08:00", to: "18:00", price: 10,
			startDay: 10, startHM: [2]int{9, 0},
			endDay: 11, endHM: [2]int{11, 0},
			want: 120,
		},
		{
			name: "time outside the window is free",
			from: "08:00", to: "18:00", price: 10,
			startDay: 10, startHM: [2]int{17, 0},
			endDay: 11, endHM: [2]int{9, 0},
			want: 20,
		},
		{
			name: "overnight lot bills hours across midnight",
			from: "22:00", to: "06:00", price: 5,
			startDay: 10, startHM: [2]int{23, 0},
			endDay: 11, endHM: [2]int{2, 0},
			want: 15,
		},
		{
			name: "overnight lot skips hours strictly inside the closed window",
			from: "22:00", to: "06:00", price: 5,
			startDay: 10, startHM: [2]int{5, 0},
			endDay: 10, endHM: [2]int{23, 0},
			want: 15,
		},
		{
			name: "overnight lot rounds the total up to whole hours",
			from: "22:00", to: "06:00", price: 5,
			startDay: 10, startHM: [2]int{23, 0},
			endDay: 11, endHM: [2]int{1, 30},
			want: 15,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hours := mustHours(t, c.from, c.to)
			p := mustPeriod(t,
				at(c.startDay, c.startHM[0], c.startHM[1]),
				at(c.endDay, c.endHM[0], c.endHM[1]),
			)
			assert.Equal(t, c.want, reservation.PriceUnits(hours, c.price, p))
		})
	}
}
