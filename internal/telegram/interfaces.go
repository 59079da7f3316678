package telegram

import "gopkg.in/telebot.v3"

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock_test.go -package=telegram

// chatContext is the part of telebot.Context the calendar handlers use.
type chatContext interface {
	Sender() *telebot.User
	Callback() *telebot.Callback
	Send(what any, opts ...any) error
	Edit(what any, opts ...any) error
	Respond(resp ...*telebot.CallbackResponse) error
}

// stateStore is the part of fsm.Context that keeps the per-chat widget state.
type stateStore interface {
	Get(key string, to any) error
	Update(key string, data any) error
}
