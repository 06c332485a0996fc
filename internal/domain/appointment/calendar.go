package appointment

import "time"

// ===============================
// Month Calendar
// ===============================

// BookingHours is the fixed list of selectable times shown on the booking
// screen. The shop does not model per-barber working hours.
var BookingHours = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "16:25",
	"17:00", "17:05", "18:00", "19:00", "20:00",
}

// MonthGrid is a month laid out in rows of up to seven cells, Sunday first.
// A zero cell is a blank aligning day 1 under its weekday column; the last
// week simply ends where the month does, so trailing blanks are implicit.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Weeks [][]int    `json:"weeks"`
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonthGrid produces the calendar cells for (year, month).
// Leading blanks equal the weekday index of day 1 (0 = Sunday).
func BuildMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())
	total := daysInMonth(year, month)

	cells := make([]int, 0, lead+total)
	for i := 0; i < lead; i++ {
		cells = append(cells, 0)
	}
	for day := 1; day <= total; day++ {
		cells = append(cells, day)
	}

	var weeks [][]int
	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		weeks = append(weeks, cells[i:end])
	}

	return MonthGrid{Year: year, Month: month, Weeks: weeks}
}

// DayDisabled reports whether the given day falls strictly before the start
// of today's date. Time of day is ignored on both sides.
func DayDisabled(year int, month time.Month, day int, today time.Time) bool {
	cell := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	floor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return cell.Before(floor)
}

// NextMonth and PrevMonth roll the year at the December/January boundary.
// Callers must drop any previously selected day: it may not exist in the new
// month (the 31st on a 30-day month).

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
