package booking

import (
	"time"
)

// Day strips the time-of-day component. Reservations are calendar-day scoped,
// so every date entering the engine is normalized to UTC midnight first.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b (negative if b is
// before a). Both arguments are normalized before subtracting.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}

// daysInRange expands the closed interval [from, to] into each calendar day it
// covers, both endpoints included.
func daysInRange(from, to time.Time) []time.Time {
	from, to = Day(from), Day(to)
	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one day. Touching endpoints count: a facility
// must be fully vacated before the next reservation starts, so same-day
// checkout/check-in is a conflict.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !Day(aStart).After(Day(bEnd)) && !Day(bStart).After(Day(aEnd))
}
