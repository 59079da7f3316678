package telegram

import (
	"gopkg.in/telebot.v3"

	"github.com/nikmy/meowcal/internal/render"
	"github.com/nikmy/meowcal/pkg/calendar"
)

const (
	prevUnique  = "calPrev"
	nextUnique  = "calNext"
	monthUnique = "calMonth"
	weekUnique  = "calWeek"
	dayUnique   = "calDay"
	noopUnique  = "calNoop"
)

func callbackEndpoint(unique string) string {
	return "\f" + unique
}

// keyboard lays the view out as: title, navigation and mode switch,
// weekday headings, then one row per visible week.
func keyboard(v calendar.View) [][]telebot.InlineButton {
	rows := make([][]telebot.InlineButton, 0, 3+len(v.Cells)/7)

	rows = append(rows,
		[]telebot.InlineButton{noop(v.Title)},
		[]telebot.InlineButton{
			{Unique: prevUnique, Text: "« " + v.PrevLabel},
			modeButton(v),
			{Unique: nextUnique, Text: v.NextLabel + " »"},
		},
	)

	weekdays := make([]telebot.InlineButton, 0, len(v.Weekdays))
	for _, wd := range v.Weekdays {
		weekdays = append(weekdays, noop(wd))
	}
	rows = append(rows, weekdays)

	for _, week := range v.Weeks() {
		row := make([]telebot.InlineButton, 0, len(week))
		for _, c := range week {
			row = append(row, dayButton(c))
		}
		rows = append(rows, row)
	}

	return rows
}

func markup(v calendar.View) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{InlineKeyboard: keyboard(v)}
}

func modeButton(v calendar.View) telebot.InlineButton {
	if v.Mode == calendar.WeekView {
		return telebot.InlineButton{Unique: monthUnique, Text: v.MonthLabel}
	}
	return telebot.InlineButton{Unique: weekUnique, Text: v.WeekLabel}
}

func dayButton(c calendar.DayCell) telebot.InlineButton {
	text := render.DayLabel(c)
	if c.Extra != "" {
		text += " " + c.Extra
	}

	return telebot.InlineButton{
		Unique: dayUnique,
		Text:   text,
		Data:   c.Date.Format(calendar.DateLayout),
	}
}

func noop(text string) telebot.InlineButton {
	return telebot.InlineButton{Unique: noopUnique, Text: text}
}
