package api

import (
	"time"

	"github.com/nikmy/meowcal/internal/session"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/logger"
)

// WidgetFactory mounts widgets built from the shared setters. Selections
// are remembered on the instance so the page can show them.
func WidgetFactory(setters []calendar.Setter, log logger.Logger) session.Factory {
	log = log.With("widgets")

	return func(inst *session.Instance) (*calendar.Widget, error) {
		own := []calendar.Setter{
			calendar.AsID(inst.ID),
			calendar.AsOnChange(func(date time.Time) {
				inst.Selected = date
				log.Infof("widget %s: selected %s", inst.ID, date.Format(calendar.DateLayout))
			}),
		}

		return calendar.NewWidget(append(append([]calendar.Setter{}, setters...), own...)...)
	}
}
