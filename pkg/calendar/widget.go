package calendar

import (
	"time"

	"github.com/nikmy/meowcal/pkg/errors"
)

var (
	ErrBadViewMode  = errors.Error("calendar: unknown view mode")
	ErrBadDirection = errors.Error("calendar: unknown direction")
	ErrBadWeekStart = errors.Error("calendar: week start is not a weekday")
	ErrNoClock      = errors.Error("calendar: clock is not set")
	ErrNotVisible   = errors.Error("calendar: date is not in the visible grid")
)

// Widget holds the view state of one mounted calendar. It is not safe for
// concurrent use; hosts serialise access to an instance.
type Widget struct {
	widgetID string

	anchor    time.Time
	mode      ViewMode
	weekStart time.Weekday

	now      func() time.Time
	location *time.Location
	language string
	locale   *Locale

	onChange    func(time.Time)
	extraRender func(time.Time) string
	redraw      func(View)

	className string
	style     string
}

// View is one rendered frame of the widget.
type View struct {
	ID     string
	Title  string
	Mode   ViewMode
	Anchor time.Time

	Weekdays [daysInWeek]string
	Cells    []DayCell

	PrevLabel  string
	NextLabel  string
	MonthLabel string
	WeekLabel  string

	ClassName string
	Style     string
}

func (v View) Weeks() [][]DayCell {
	return Weeks(v.Cells)
}

func (w *Widget) ID() string {
	return w.widgetID
}

func (w *Widget) Anchor() time.Time {
	return w.anchor
}

func (w *Widget) Mode() ViewMode {
	return w.mode
}

func (w *Widget) Locale() *Locale {
	return w.locale
}

func (w *Widget) Location() *time.Location {
	return w.location
}

func (w *Widget) Today() time.Time {
	return beginningOfDay(w.now().In(w.location))
}

// Days computes the visible grid and fills in the host content of every cell.
func (w *Widget) Days() []DayCell {
	cells := VisibleDays(w.anchor, w.mode, w.Today(), w.weekStart)
	if w.extraRender != nil {
		for i := range cells {
			cells[i].Extra = w.extraRender(cells[i].Date)
		}
	}
	return cells
}

func (w *Widget) View() View {
	prev, next := w.locale.navigationLabels(w.mode)
	return View{
		ID:         w.widgetID,
		Title:      w.locale.FormatTitle(w.anchor),
		Mode:       w.mode,
		Anchor:     w.anchor,
		Weekdays:   w.locale.WeekdayNames(w.weekStart),
		Cells:      w.Days(),
		PrevLabel:  prev,
		NextLabel:  next,
		MonthLabel: w.locale.Labels.MonthView,
		WeekLabel:  w.locale.Labels.WeekView,
		ClassName:  w.className,
		Style:      w.style,
	}
}

// Navigate moves the anchor one period back or forth. Month steps keep the
// day of month when the target month has it and clamp to its last day
// otherwise.
func (w *Widget) Navigate(dir Direction) error {
	if dir != Previous && dir != Next {
		return ErrBadDirection
	}

	switch w.mode {
	case WeekView:
		w.anchor = w.anchor.AddDate(0, 0, int(dir)*daysInWeek)
	default:
		w.anchor = addMonths(w.anchor, int(dir))
	}

	w.changed()
	return nil
}

func (w *Widget) SetViewMode(mode ViewMode) error {
	if !mode.valid() {
		return ErrBadViewMode
	}
	if mode == w.mode {
		return nil
	}

	w.mode = mode
	w.changed()
	return nil
}

// Select reports date to the host. Only days of the visible grid can be
// selected. Like the anchor, date is taken as a calendar day in whatever
// zone it comes in.
func (w *Widget) Select(date time.Time) error {
	y, m, d := date.Date()
	date = time.Date(y, m, d, 0, 0, 0, 0, w.location)

	for _, cell := range VisibleDays(w.anchor, w.mode, w.Today(), w.weekStart) {
		if !sameDay(cell.Date, date) {
			continue
		}
		if w.onChange != nil {
			w.onChange(cell.Date)
		}
		return nil
	}

	return ErrNotVisible
}

// ParseDate reads a DateLayout day in the widget's location.
func (w *Widget) ParseDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, raw, w.location)
	if err != nil {
		return time.Time{}, errors.WrapFailf(err, "parse date %q", raw)
	}
	return date, nil
}

func (w *Widget) changed() {
	if w.redraw != nil {
		w.redraw(w.View())
	}
}
