package calendar

import "time"

const (
	// DateLayout is the wire form of a day in callbacks, query params and config.
	DateLayout = time.DateOnly

	daysInWeek   = 7
	weeksInMonth = 6

	monthCells = daysInWeek * weeksInMonth
	weekCells  = daysInWeek

	defaultLanguage  = "en"
	defaultWeekStart = time.Monday
)

type ViewMode int

const (
	MonthView ViewMode = iota
	WeekView
)

func (m ViewMode) String() string {
	switch m {
	case MonthView:
		return "month"
	case WeekView:
		return "week"
	default:
		return "unknown"
	}
}

func (m ViewMode) valid() bool {
	return m == MonthView || m == WeekView
}

func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "month":
		return MonthView, nil
	case "week":
		return WeekView, nil
	default:
		return 0, ErrBadViewMode
	}
}

type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

func (d Direction) String() string {
	if d == Previous {
		return "prev"
	}
	return "next"
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "prev":
		return Previous, nil
	case "next":
		return Next, nil
	default:
		return 0, ErrBadDirection
	}
}
