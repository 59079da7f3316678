package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func newTestWidget(t *testing.T, setters ...Setter) *Widget {
	t.Helper()

	base := []Setter{
		AsClock(fixedClock(time.Date(2024, 2, 15, 13, 45, 0, 0, time.UTC))),
		AsLocation(time.UTC),
	}

	w, err := NewWidget(append(base, setters...)...)
	require.NoError(t, err)
	return w
}

func TestNewWidget_defaults(t *testing.T) {
	w := newTestWidget(t)

	require.Equal(t, date(2024, 2, 15), w.Anchor())
	require.Equal(t, MonthView, w.Mode())
	require.Equal(t, "en", w.Locale().Language)
	require.Len(t, w.Days(), monthCells)
}

func TestNewWidget_anchorKeepsCalendarDate(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	w := newTestWidget(t, AsAnchor(time.Date(2024, 3, 1, 23, 30, 0, 0, shanghai)))

	require.Equal(t, date(2024, 3, 1), w.Anchor())
}

func TestNewWidget_rejects(t *testing.T) {
	type testcase struct {
		name    string
		setters []Setter
		wantErr error
	}

	tests := [...]testcase{
		{name: "nil clock", setters: []Setter{AsClock(nil)}, wantErr: ErrNoClock},
		{name: "bad week start", setters: []Setter{AsWeekStart(time.Weekday(9))}, wantErr: ErrBadWeekStart},
		{name: "bad mode", setters: []Setter{AsViewMode(ViewMode(5))}, wantErr: ErrBadViewMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWidget(tt.setters...)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, w)
		})
	}
}

func TestWidget_Navigate(t *testing.T) {
	type testcase struct {
		name   string
		anchor time.Time
		mode   ViewMode
		dirs   []Direction
		want   time.Time
	}

	tests := [...]testcase{
		{name: "next month", anchor: date(2024, 2, 15), mode: MonthView, dirs: []Direction{Next}, want: date(2024, 3, 15)},
		{name: "prev month over year", anchor: date(2024, 1, 15), mode: MonthView, dirs: []Direction{Previous}, want: date(2023, 12, 15)},
		{name: "clamp to february", anchor: date(2024, 1, 31), mode: MonthView, dirs: []Direction{Next}, want: date(2024, 2, 29)},
		{name: "next week", anchor: date(2024, 2, 15), mode: WeekView, dirs: []Direction{Next}, want: date(2024, 2, 22)},
		{name: "prev week over month", anchor: date(2024, 3, 3), mode: WeekView, dirs: []Direction{Previous}, want: date(2024, 2, 25)},
		{name: "week round trip", anchor: date(2024, 2, 15), mode: WeekView, dirs: []Direction{Next, Previous}, want: date(2024, 2, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWidget(t, AsAnchor(tt.anchor), AsViewMode(tt.mode))
			for _, d := range tt.dirs {
				require.NoError(t, w.Navigate(d))
			}
			require.Equal(t, tt.want, w.Anchor())
		})
	}
}

func TestWidget_Navigate_roundTripKeepsGrid(t *testing.T) {
	for _, mode := range []ViewMode{MonthView, WeekView} {
		for day := date(2023, 12, 1); day.Year() < 2025; day = day.AddDate(0, 0, 1) {
			for _, dirs := range [][2]Direction{{Next, Previous}, {Previous, Next}} {
				w := newTestWidget(t, AsAnchor(day), AsViewMode(mode))
				before := w.Days()

				require.NoError(t, w.Navigate(dirs[0]))
				require.NoError(t, w.Navigate(dirs[1]))

				after := w.Days()
				require.Equal(t, before[0].Date, after[0].Date, "%s %s %v", mode, day.Format(DateLayout), dirs)
				require.Equal(t, before[len(before)-1].Date, after[len(after)-1].Date)
			}
		}
	}
}

func TestWidget_Navigate_badDirection(t *testing.T) {
	w := newTestWidget(t)
	require.ErrorIs(t, w.Navigate(Direction(0)), ErrBadDirection)
	require.Equal(t, date(2024, 2, 15), w.Anchor())
}

func TestWidget_SetViewMode(t *testing.T) {
	redraws := 0
	w := newTestWidget(t, AsRedraw(func(View) { redraws++ }))

	require.NoError(t, w.SetViewMode(WeekView))
	require.Equal(t, WeekView, w.Mode())
	require.Equal(t, date(2024, 2, 15), w.Anchor())
	require.Len(t, w.Days(), weekCells)
	require.Equal(t, 1, redraws)

	require.NoError(t, w.SetViewMode(WeekView))
	require.Equal(t, 1, redraws, "same mode must not redraw")

	require.ErrorIs(t, w.SetViewMode(ViewMode(-1)), ErrBadViewMode)
	require.Equal(t, WeekView, w.Mode())
}

func TestWidget_redrawAfterNavigate(t *testing.T) {
	var got []View
	w := newTestWidget(t, AsRedraw(func(v View) { got = append(got, v) }))

	require.NoError(t, w.Navigate(Next))
	require.Len(t, got, 1)
	require.Equal(t, date(2024, 3, 15), got[0].Anchor)
	require.Equal(t, "March 2024", got[0].Title)
	require.Equal(t, date(2024, 2, 26), got[0].Cells[0].Date)
}

func TestWidget_Select(t *testing.T) {
	var selected []time.Time
	w := newTestWidget(t, AsOnChange(func(d time.Time) { selected = append(selected, d) }))

	require.NoError(t, w.Select(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)))
	require.Equal(t, []time.Time{date(2024, 3, 10)}, selected)

	require.ErrorIs(t, w.Select(date(2024, 3, 11)), ErrNotVisible)
	require.Len(t, selected, 1)

	require.NoError(t, w.Select(date(2024, 1, 29)))
	require.Len(t, selected, 2)
	require.Equal(t, date(2024, 2, 15), w.Anchor(), "select must not move the anchor")
}

func TestWidget_Select_keepsCalendarDay(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	type testcase struct {
		name  string
		input time.Time
		want  time.Time
	}

	tests := [...]testcase{
		{
			name:  "utc midnight",
			input: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 2, 15, 0, 0, 0, 0, newYork),
		},
		{
			name:  "late evening east of utc",
			input: time.Date(2024, 2, 20, 23, 30, 0, 0, time.FixedZone("UTC+9", 9*60*60)),
			want:  time.Date(2024, 2, 20, 0, 0, 0, 0, newYork),
		},
		{
			name:  "local day",
			input: time.Date(2024, 2, 1, 8, 0, 0, 0, newYork),
			want:  time.Date(2024, 2, 1, 0, 0, 0, 0, newYork),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var selected []time.Time
			w := newTestWidget(t,
				AsLocation(newYork),
				AsAnchor(time.Date(2024, 2, 15, 0, 0, 0, 0, newYork)),
				AsOnChange(func(d time.Time) { selected = append(selected, d) }),
			)

			require.NoError(t, w.Select(tt.input))
			require.Len(t, selected, 1)
			require.True(t, tt.want.Equal(selected[0]), "got %s", selected[0])
			require.Equal(t, newYork, selected[0].Location())
		})
	}
}

func TestWidget_Select_withoutCallback(t *testing.T) {
	w := newTestWidget(t, AsViewMode(WeekView))
	require.NoError(t, w.Select(date(2024, 2, 12)))
	require.ErrorIs(t, w.Select(date(2024, 2, 19)), ErrNotVisible)
}

func TestWidget_ExtraRender(t *testing.T) {
	calls := 0
	w := newTestWidget(t, AsExtraRender(func(d time.Time) string {
		calls++
		if d.Day() == 14 && d.Month() == time.February {
			return "♥"
		}
		return ""
	}))

	v := w.View()
	require.Equal(t, monthCells, calls)

	var marked []time.Time
	for _, c := range v.Cells {
		if c.Extra != "" {
			marked = append(marked, c.Date)
		}
	}
	require.Equal(t, []time.Time{date(2024, 2, 14)}, marked)
}

func TestWidget_View(t *testing.T) {
	w := newTestWidget(t,
		AsID("w1"),
		AsLanguage("zh-CN"),
		AsClassName("dark:bg-gray-800"),
		AsStyle("min-width: 800px"),
	)

	v := w.View()
	require.Equal(t, "w1", v.ID)
	require.Equal(t, "2024年02月", v.Title)
	require.Equal(t, [7]string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}, v.Weekdays)
	require.Equal(t, "上一月", v.PrevLabel)
	require.Equal(t, "下一月", v.NextLabel)
	require.Equal(t, "dark:bg-gray-800", v.ClassName)
	require.Equal(t, "min-width: 800px", v.Style)
	require.Len(t, v.Weeks(), weeksInMonth)

	require.NoError(t, w.SetViewMode(WeekView))
	v = w.View()
	require.Equal(t, "上一周", v.PrevLabel)
	require.Len(t, v.Weeks(), 1)
}

func TestWidget_todayFollowsClock(t *testing.T) {
	now := time.Date(2024, 2, 15, 23, 59, 0, 0, time.UTC)
	w := newTestWidget(t, AsClock(func() time.Time { return now }))

	countToday := func() (time.Time, int) {
		var at time.Time
		n := 0
		for _, c := range w.Days() {
			if c.IsToday {
				at, n = c.Date, n+1
			}
		}
		return at, n
	}

	at, n := countToday()
	require.Equal(t, 1, n)
	require.Equal(t, date(2024, 2, 15), at)

	now = now.Add(2 * time.Minute)
	at, n = countToday()
	require.Equal(t, 1, n)
	require.Equal(t, date(2024, 2, 16), at)
}

func TestWidget_ParseDate(t *testing.T) {
	w := newTestWidget(t)

	d, err := w.ParseDate("2024-02-29")
	require.NoError(t, err)
	require.Equal(t, date(2024, 2, 29), d)

	_, err = w.ParseDate("2023-02-29")
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	m, err := ParseViewMode("week")
	require.NoError(t, err)
	require.Equal(t, WeekView, m)
	require.Equal(t, "month", MonthView.String())

	_, err = ParseViewMode("year")
	require.ErrorIs(t, err, ErrBadViewMode)

	d, err := ParseDirection("prev")
	require.NoError(t, err)
	require.Equal(t, Previous, d)
	require.Equal(t, "next", Next.String())

	_, err = ParseDirection("up")
	require.ErrorIs(t, err, ErrBadDirection)
}
