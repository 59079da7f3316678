package calendar

import (
	"time"
)

// DayCell is one date of the visible grid. Cells are derived on every
// render and never stored.
type DayCell struct {
	Date           time.Time
	IsToday        bool
	IsCurrentMonth bool

	// Extra is the host supplied content for the day, empty if none.
	Extra string
}

// VisibleDays returns the grid for anchor: 42 days starting at the week
// that holds the first of the anchor's month, or the 7 days of the
// anchor's week. The result depends only on the arguments.
func VisibleDays(anchor time.Time, mode ViewMode, today time.Time, weekStart time.Weekday) []DayCell {
	var first time.Time
	var count int

	switch mode {
	case WeekView:
		first, count = beginningOfWeek(anchor, weekStart), weekCells
	default:
		first, count = beginningOfWeek(beginningOfMonth(anchor), weekStart), monthCells
	}

	cells := make([]DayCell, 0, count)
	for i := 0; i < count; i++ {
		day := first.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Date:           day,
			IsToday:        sameDay(day, today),
			IsCurrentMonth: sameMonth(day, anchor),
		})
	}

	return cells
}

// Weeks splits cells into rows of seven.
func Weeks(cells []DayCell) [][]DayCell {
	rows := make([][]DayCell, 0, len(cells)/daysInWeek)
	for len(cells) >= daysInWeek {
		rows = append(rows, cells[:daysInWeek:daysInWeek])
		cells = cells[daysInWeek:]
	}
	return rows
}
