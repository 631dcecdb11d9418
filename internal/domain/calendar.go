package domain

import "time"

// MonthGrid returns the cells of a Sunday-first month view. Zero cells are
// padding; the leading padding aligns day 1 with its weekday column and the
// trailing padding completes the last week. An invalid month yields nil.
func MonthGrid(year int, month time.Month) []int {
	if month < time.January || month > time.December {
		return nil
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := DaysIn(year, month)
	lead := int(first.Weekday())

	total := lead + daysInMonth
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	cells := make([]int, total)
	for day := 1; day <= daysInMonth; day++ {
		cells[lead+day-1] = day
	}
	return cells
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftMonth moves year/month by delta months.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
