package calendar

import (
	"time"
)

func beginningOfDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

func beginningOfMonth(ts time.Time) time.Time {
	y, m, _ := ts.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, ts.Location())
}

func beginningOfWeek(ts time.Time, weekStart time.Weekday) time.Time {
	back := (int(ts.Weekday()) - int(weekStart) + daysInWeek) % daysInWeek
	return beginningOfDay(ts).AddDate(0, 0, -back)
}

func daysInMonth(ts time.Time) int {
	return beginningOfMonth(ts).AddDate(0, 1, -1).Day()
}

// addMonths shifts ts by n months and clamps the day of month to the
// length of the target month, so Jan 31 + 1 month is the end of February.
func addMonths(ts time.Time, n int) time.Time {
	target := beginningOfMonth(ts).AddDate(0, n, 0)
	day := min(ts.Day(), daysInMonth(target))
	return target.AddDate(0, 0, day-1)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.In(a.Location()).Date()
	return ay == by && am == bm
}
