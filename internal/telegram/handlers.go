package telegram

import (
	"time"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
)

const (
	anchorKey = "anchor"
	modeKey   = "mode"

	failedText = "Something went wrong, try /calendar again"
)

// start shows a fresh calendar anchored at today.
func (b *Bot) start(c chatContext, s stateStore) error {
	w, err := b.newWidget(c, calendar.AsViewMode(calendar.MonthView))
	if err != nil {
		b.log.Error(errors.WrapFail(err, "build widget"))
		return c.Send(failedText)
	}

	if err = b.save(s, w); err != nil {
		b.log.Warn(err)
	}

	v := w.View()
	return c.Send(v.Title, &telebot.SendOptions{ReplyMarkup: markup(v)})
}

func (b *Bot) navigate(dir calendar.Direction) chatHandler {
	return func(c chatContext, s stateStore) error {
		return b.update(c, s, func(w *calendar.Widget) error {
			return w.Navigate(dir)
		})
	}
}

func (b *Bot) switchMode(mode calendar.ViewMode) chatHandler {
	return func(c chatContext, s stateStore) error {
		return b.update(c, s, func(w *calendar.Widget) error {
			return w.SetViewMode(mode)
		})
	}
}

func (b *Bot) selectDay(c chatContext, s stateStore) error {
	cb := c.Callback()
	if cb == nil {
		return b.fail(c, errors.Fail("get callback"))
	}

	w, err := b.restore(c, s)
	if err != nil {
		return b.fail(c, errors.WrapFail(err, "restore widget"))
	}

	date, err := w.ParseDate(cb.Data)
	if err != nil {
		return b.fail(c, err)
	}

	if err = w.Select(date); err != nil {
		return b.fail(c, errors.WrapFailf(err, "select %s", cb.Data))
	}

	return c.Respond()
}

func (b *Bot) ignore(c chatContext, _ stateStore) error {
	return c.Respond()
}

// update rebuilds the chat's widget, applies op and stores the new state.
// The message itself is edited by the widget's redraw trigger.
func (b *Bot) update(c chatContext, s stateStore, op func(w *calendar.Widget) error) error {
	w, err := b.restore(c, s, calendar.AsRedraw(func(v calendar.View) {
		if err := c.Edit(v.Title, markup(v)); err != nil {
			b.log.Warn(errors.WrapFail(err, "edit calendar message"))
		}
	}))
	if err != nil {
		return b.fail(c, errors.WrapFail(err, "restore widget"))
	}

	if err = op(w); err != nil {
		return b.fail(c, err)
	}

	if err = b.save(s, w); err != nil {
		b.log.Warn(err)
	}

	return c.Respond()
}

func (b *Bot) restore(c chatContext, s stateStore, extra ...calendar.Setter) (*calendar.Widget, error) {
	var anchorRaw, modeRaw string

	if err := s.Get(anchorKey, &anchorRaw); err != nil {
		b.log.Debug(errors.WrapFail(err, "get stored anchor"))
	}
	if err := s.Get(modeKey, &modeRaw); err != nil {
		b.log.Debug(errors.WrapFail(err, "get stored mode"))
	}

	setters := append([]calendar.Setter{}, extra...)

	if anchorRaw != "" {
		anchor, err := time.Parse(calendar.DateLayout, anchorRaw)
		if err != nil {
			return nil, errors.WrapFailf(err, "parse stored anchor %q", anchorRaw)
		}
		setters = append(setters, calendar.AsAnchor(anchor))
	}

	if modeRaw != "" {
		mode, err := calendar.ParseViewMode(modeRaw)
		if err != nil {
			return nil, errors.WrapFailf(err, "parse stored mode %q", modeRaw)
		}
		setters = append(setters, calendar.AsViewMode(mode))
	}

	return b.newWidget(c, setters...)
}

func (b *Bot) save(s stateStore, w *calendar.Widget) error {
	if err := s.Update(anchorKey, w.Anchor().Format(calendar.DateLayout)); err != nil {
		return errors.WrapFail(err, "store anchor")
	}
	if err := s.Update(modeKey, w.Mode().String()); err != nil {
		return errors.WrapFail(err, "store mode")
	}
	return nil
}

func (b *Bot) newWidget(c chatContext, extra ...calendar.Setter) (*calendar.Widget, error) {
	var w *calendar.Widget

	// the chat language goes first so a configured language overrides it
	setters := make([]calendar.Setter, 0, len(b.setters)+len(extra)+2)
	if sender := c.Sender(); sender != nil && sender.LanguageCode != "" {
		setters = append(setters, calendar.AsLanguage(sender.LanguageCode))
	}
	setters = append(setters, b.setters...)
	setters = append(setters, extra...)
	setters = append(setters, calendar.AsOnChange(func(date time.Time) {
		b.announce(c, w, date)
	}))

	var err error
	w, err = calendar.NewWidget(setters...)
	return w, err
}

func (b *Bot) announce(c chatContext, w *calendar.Widget, date time.Time) {
	msg := w.Locale().Labels.Selected + " " + date.Format(calendar.DateLayout)
	if err := c.Send(msg); err != nil {
		b.log.Warn(errors.WrapFail(err, "send selected date"))
	}
}

func (b *Bot) fail(c chatContext, err error) error {
	b.log.Error(err)
	return c.Respond(&telebot.CallbackResponse{Text: failedText})
}
