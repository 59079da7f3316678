package markers

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/emersion/go-ical"

	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

const (
	dayKeyLayout = "2006-01-02"
	maxEventDays = 366

	marker = "•"
)

type Config struct {
	ICSPath string `yaml:"icsPath"`
}

// Source answers per-day content for the calendar from a fixed set of
// events. It is immutable after Load and safe for concurrent use.
type Source struct {
	byDay map[string][]string
	loc   *time.Location
}

func Load(r io.Reader, loc *time.Location, log logger.Logger) (*Source, error) {
	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		return nil, errors.WrapFail(err, "decode calendar")
	}

	s := &Source{byDay: make(map[string][]string), loc: loc}

	for _, event := range cal.Events() {
		start, err := event.DateTimeStart(loc)
		if err != nil {
			log.Warn(errors.WrapFail(err, "read event start"))
			continue
		}

		summary, err := event.Props.Text(ical.PropSummary)
		if err != nil {
			log.Debug(errors.WrapFail(err, "read event summary"))
		}

		end, err := event.DateTimeEnd(loc)
		if err != nil {
			end = time.Time{}
		}

		s.add(start.In(loc), end.In(loc), summary)
	}

	return s, nil
}

func LoadFile(path string, loc *time.Location, log logger.Logger) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "open %s", path)
	}
	defer f.Close()

	return Load(f, loc, log)
}

// add marks every day in [start, end). Events without a usable end mark
// their start day only.
func (s *Source) add(start, end time.Time, summary string) {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc)

	if !end.After(start) {
		s.byDay[day.Format(dayKeyLayout)] = append(s.byDay[day.Format(dayKeyLayout)], summary)
		return
	}

	for i := 0; i < maxEventDays && day.Before(end); i++ {
		key := day.Format(dayKeyLayout)
		s.byDay[key] = append(s.byDay[key], summary)
		day = day.AddDate(0, 0, 1)
	}
}

// Summaries lists the events touching date.
func (s *Source) Summaries(date time.Time) []string {
	return s.byDay[date.Format(dayKeyLayout)]
}

// Render is the calendar extension point: • for one event, •N for more.
func (s *Source) Render(date time.Time) string {
	switch n := len(s.Summaries(date)); n {
	case 0:
		return ""
	case 1:
		return marker
	default:
		return marker + strconv.Itoa(n)
	}
}
