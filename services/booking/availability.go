package booking

import (
	"strconv"
	"time"

	"stayhaven/models"
)

// DayFormat is the calendar-date wire format used for check-in/check-out.
const DayFormat = "2006-01-02"

// ExtendBookingsIndex returns a new availability index with every UTC calendar
// day in the inclusive [checkIn, checkOut] range marked booked. The input
// index is never mutated: the top level is copied and any year/month branch
// that gains a day is cloned before the write, so untouched branches stay
// shared with the input. Marks are a union; an already-booked day is left as
// is. When checkOut precedes checkIn no days are marked (the caller validates
// the range).
func ExtendBookingsIndex(index models.BookingsIndex, checkIn, checkOut time.Time) models.BookingsIndex {
	out := make(models.BookingsIndex, len(index)+1)
	for year, months := range index {
		out[year] = months
	}

	clonedYears := make(map[string]bool)
	clonedMonths := make(map[string]bool)

	cursor := midnightUTC(checkIn)
	end := midnightUTC(checkOut)

	for !cursor.After(end) {
		year := strconv.Itoa(cursor.Year())
		month := strconv.Itoa(int(cursor.Month()) - 1) // zero-based, matching the stored index
		day := strconv.Itoa(cursor.Day())

		months, ok := out[year]
		switch {
		case !ok:
			months = make(map[string]map[string]bool)
			out[year] = months
			clonedYears[year] = true
		case !clonedYears[year]:
			clone := make(map[string]map[string]bool, len(months)+1)
			for k, v := range months {
				clone[k] = v
			}
			months = clone
			out[year] = months
			clonedYears[year] = true
		}

		monthKey := year + "/" + month
		days, ok := months[month]
		switch {
		case !ok:
			days = make(map[string]bool)
			months[month] = days
			clonedMonths[monthKey] = true
		case !clonedMonths[monthKey]:
			clone := make(map[string]bool, len(days)+1)
			for k, v := range days {
				clone[k] = v
			}
			days = clone
			months[month] = days
			clonedMonths[monthKey] = true
		}

		if !days[day] {
			days[day] = true
		}

		// Step exactly one day; month and year rollovers fall out of the
		// date arithmetic.
		cursor = cursor.Add(24 * time.Hour)
	}

	return out
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
