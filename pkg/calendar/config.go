package calendar

import (
	"strings"
	"time"

	"github.com/nikmy/meowcal/pkg/errors"
)

type Config struct {
	Language   string  `yaml:"language"`
	WeekStart  Weekday `yaml:"weekStart"`
	Timezone   string  `yaml:"timezone"`
	LocaleFile string  `yaml:"localeFile"`
	ClassName  string  `yaml:"className"`
	Style      string  `yaml:"style"`
}

// Setters turns the config into widget setters. Host specific setters
// (callbacks, id, anchor) are appended by the caller.
func (c Config) Setters() ([]Setter, error) {
	setters := []Setter{
		AsWeekStart(c.WeekStart.Weekday()),
		AsClassName(c.ClassName),
		AsStyle(c.Style),
	}

	if c.Language != "" {
		setters = append(setters, AsLanguage(c.Language))
	}

	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, errors.WrapFailf(err, "load timezone %q", c.Timezone)
		}
		setters = append(setters, AsLocation(loc))
	}

	if c.LocaleFile != "" {
		l, err := LoadLocaleFile(c.LocaleFile)
		if err != nil {
			return nil, err
		}
		setters = append(setters, AsLocale(l))
	}

	return setters, nil
}

// Weekday is a week start read from config by its English name. The zero
// value means Monday.
type Weekday struct {
	day time.Weekday
	set bool
}

func NewWeekday(wd time.Weekday) Weekday {
	return Weekday{day: wd, set: true}
}

func (w Weekday) Weekday() time.Weekday {
	if !w.set {
		return defaultWeekStart
	}
	return w.day
}

func ParseWeekday(s string) (Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(s, wd.String()) {
			return NewWeekday(wd), nil
		}
	}
	return Weekday{}, ErrBadWeekStart
}

func (w *Weekday) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	parsed, err := ParseWeekday(raw)
	if err != nil {
		return errors.Wrapf(err, "weekStart %q", raw)
	}

	*w = parsed
	return nil
}
