package calendar

import (
	"embed"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/meowcal/pkg/errors"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

var builtinLocales = mustLoadBuiltin()

// Labels are the control captions of the widget.
type Labels struct {
	PrevMonth string `yaml:"prevMonth"`
	NextMonth string `yaml:"nextMonth"`
	PrevWeek  string `yaml:"prevWeek"`
	NextWeek  string `yaml:"nextWeek"`
	MonthView string `yaml:"monthView"`
	WeekView  string `yaml:"weekView"`
	Selected  string `yaml:"selected"`
}

// Locale is a table of names used to label the grid. Weekdays are listed
// from Monday regardless of the week start of the widget.
//
// Title is a layout where %Y is the year, %m the zero padded month number
// and %B the month name.
type Locale struct {
	Language string   `yaml:"language"`
	Title    string   `yaml:"title"`
	Months   []string `yaml:"months"`
	Weekdays []string `yaml:"weekdays"`
	Labels   Labels   `yaml:"labels"`
}

func LoadLocale(r io.Reader) (*Locale, error) {
	var l Locale
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, errors.WrapFail(err, "decode locale")
	}

	if len(l.Months) != 12 {
		return nil, errors.Errorf("locale %q: want 12 months, got %d", l.Language, len(l.Months))
	}
	if len(l.Weekdays) != daysInWeek {
		return nil, errors.Errorf("locale %q: want 7 weekdays, got %d", l.Language, len(l.Weekdays))
	}
	if l.Title == "" {
		l.Title = "%B %Y"
	}

	return &l, nil
}

func LoadLocaleFile(path string) (*Locale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "open locale file %s", path)
	}
	defer f.Close()

	return LoadLocale(f)
}

// LookupLocale finds a built-in table by language tag ("en", "ru-RU",
// "zh-cn"). Unknown languages get the English table.
func LookupLocale(lang string) *Locale {
	base, _, _ := strings.Cut(strings.ToLower(lang), "-")
	base, _, _ = strings.Cut(base, "_")

	if l, ok := builtinLocales[base]; ok {
		return l
	}
	return builtinLocales[defaultLanguage]
}

func (l *Locale) MonthName(m time.Month) string {
	return l.Months[m-1]
}

func (l *Locale) WeekdayName(wd time.Weekday) string {
	return l.Weekdays[(int(wd)+6)%daysInWeek]
}

// WeekdayNames returns the seven headings starting from weekStart.
func (l *Locale) WeekdayNames(weekStart time.Weekday) [daysInWeek]string {
	var names [daysInWeek]string
	for i := range names {
		names[i] = l.WeekdayName(time.Weekday((int(weekStart) + i) % daysInWeek))
	}
	return names
}

func (l *Locale) FormatTitle(ts time.Time) string {
	y, m, _ := ts.Date()
	return strings.NewReplacer(
		"%Y", strconv.Itoa(y),
		"%m", twoDigits(int(m)),
		"%B", l.MonthName(m),
	).Replace(l.Title)
}

func (l *Locale) navigationLabels(mode ViewMode) (prev, next string) {
	if mode == WeekView {
		return l.Labels.PrevWeek, l.Labels.NextWeek
	}
	return l.Labels.PrevMonth, l.Labels.NextMonth
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func mustLoadBuiltin() map[string]*Locale {
	paths, err := fs.Glob(localeFiles, "locales/*.yaml")
	if err != nil {
		panic(err)
	}

	locales := make(map[string]*Locale, len(paths))
	for _, path := range paths {
		f, err := localeFiles.Open(path)
		if err != nil {
			panic(err)
		}

		l, err := LoadLocale(f)
		_ = f.Close()
		if err != nil {
			panic(errors.WrapFailf(err, "load built-in locale %s", path))
		}

		locales[l.Language] = l
	}

	return locales
}
