package calendar

import (
	"time"

	"github.com/nikmy/meowcal/pkg/builder"
)

type Setter func(w *Widget)

func NewWidget(setters ...Setter) (*Widget, error) {
	b := builder.New[Widget]().Use(asDefaults)
	for _, s := range setters {
		b.Use(s)
	}

	return b.
		MaybeUse(checkSettings).
		MaybeUse(resolveLocale).
		MaybeUse(normalizeAnchor).
		Get()
}

func asDefaults(w *Widget) {
	w.mode = MonthView
	w.weekStart = defaultWeekStart
	w.now = time.Now
	w.language = defaultLanguage
}

func AsID(id string) Setter {
	return func(w *Widget) {
		w.widgetID = id
	}
}

// AsAnchor sets the initial anchor. A zero time means today.
func AsAnchor(anchor time.Time) Setter {
	return func(w *Widget) {
		w.anchor = anchor
	}
}

func AsViewMode(mode ViewMode) Setter {
	return func(w *Widget) {
		w.mode = mode
	}
}

func AsClock(now func() time.Time) Setter {
	return func(w *Widget) {
		w.now = now
	}
}

// AsLocation fixes the location days are computed in. By default it is
// the location of the clock.
func AsLocation(loc *time.Location) Setter {
	return func(w *Widget) {
		w.location = loc
	}
}

func AsWeekStart(wd time.Weekday) Setter {
	return func(w *Widget) {
		w.weekStart = wd
	}
}

func AsLanguage(lang string) Setter {
	return func(w *Widget) {
		w.language = lang
	}
}

// AsLocale replaces the built-in tables; it wins over AsLanguage.
func AsLocale(l *Locale) Setter {
	return func(w *Widget) {
		w.locale = l
	}
}

func AsOnChange(onChange func(date time.Time)) Setter {
	return func(w *Widget) {
		w.onChange = onChange
	}
}

// AsExtraRender installs the per-cell content supplier. It is called once
// per visible cell per render.
func AsExtraRender(render func(date time.Time) string) Setter {
	return func(w *Widget) {
		w.extraRender = render
	}
}

// AsRedraw installs the trigger called with a fresh view after every
// state change.
func AsRedraw(redraw func(View)) Setter {
	return func(w *Widget) {
		w.redraw = redraw
	}
}

func AsClassName(className string) Setter {
	return func(w *Widget) {
		w.className = className
	}
}

func AsStyle(style string) Setter {
	return func(w *Widget) {
		w.style = style
	}
}

func checkSettings(w *Widget) error {
	if w.now == nil {
		return ErrNoClock
	}
	if w.weekStart < time.Sunday || w.weekStart > time.Saturday {
		return ErrBadWeekStart
	}
	if !w.mode.valid() {
		return ErrBadViewMode
	}
	return nil
}

func resolveLocale(w *Widget) error {
	if w.locale == nil {
		w.locale = LookupLocale(w.language)
	}
	return nil
}

func normalizeAnchor(w *Widget) error {
	if w.location == nil {
		w.location = w.now().Location()
	}

	if w.anchor.IsZero() {
		w.anchor = w.now().In(w.location)
	}

	// the anchor is a calendar date, keep its day whatever zone it came in
	y, m, d := w.anchor.Date()
	w.anchor = time.Date(y, m, d, 0, 0, 0, 0, w.location)
	return nil
}
