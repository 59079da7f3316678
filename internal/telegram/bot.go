package telegram

import (
	"context"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"github.com/vitaliy-ukiru/fsm-telebot/storages/memory"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

// New connects to Telegram. Every chat gets its own calendar built from
// setters; the chat's language picks the locale unless setters fix one.
func New(log logger.Logger, conf Config, setters []calendar.Setter) (*Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	return &Bot{
		bot:     b,
		log:     log.With("telegram"),
		setters: setters,
	}, nil
}

type Bot struct {
	bot     *telebot.Bot
	log     logger.Logger
	setters []calendar.Setter
}

func (b *Bot) Run(ctx context.Context) error {
	b.setupHandlers()
	go b.bot.Start()
	b.log.Infof("polling as @%s", b.bot.Me.Username)
	return nil
}

func (b *Bot) Stop() {
	b.bot.Stop()
}

func (b *Bot) setupHandlers() {
	manager := fsm.NewManager(
		b.bot,
		nil,
		memory.NewStorage(),
		nil,
	)

	manager.Bind("/start", fsm.AnyState, b.handler(b.start))
	manager.Bind("/calendar", fsm.AnyState, b.handler(b.start))

	manager.Bind(callbackEndpoint(prevUnique), fsm.AnyState, b.handler(b.navigate(calendar.Previous)))
	manager.Bind(callbackEndpoint(nextUnique), fsm.AnyState, b.handler(b.navigate(calendar.Next)))
	manager.Bind(callbackEndpoint(monthUnique), fsm.AnyState, b.handler(b.switchMode(calendar.MonthView)))
	manager.Bind(callbackEndpoint(weekUnique), fsm.AnyState, b.handler(b.switchMode(calendar.WeekView)))
	manager.Bind(callbackEndpoint(dayUnique), fsm.AnyState, b.handler(b.selectDay))
	manager.Bind(callbackEndpoint(noopUnique), fsm.AnyState, b.handler(b.ignore))
}

type chatHandler func(c chatContext, s stateStore) error

func (b *Bot) handler(h chatHandler) func(telebot.Context, fsm.Context) error {
	return func(c telebot.Context, s fsm.Context) error {
		return h(c, s)
	}
}
