package telegram

import (
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"

	"lexibot/bot/quiz"
	"lexibot/core/logger"
	"lexibot/core/telegram/commands"
	"lexibot/core/telegram/helpers"

	tg "lexibot/core/telegram"
	"lexibot/core/telegram/router"
)

// fsmAdapter exposes the quiz engine to the text router.
type fsmAdapter struct {
	handlers *Handlers
	engine   *quiz.Engine
}

func (a *fsmAdapter) InProgress(chatID int64) bool {
	return a.engine.InProgress(chatID)
}

// ManagerHandler advances the chat's dialog with the incoming text.
// The back button aborts any dialog first.
func (a *fsmAdapter) ManagerHandler(c tele.Context) error {
	chatID := c.Chat().ID
	view := newView(c)
	text := strings.TrimSpace(c.Text())

	if matchMenuAction(text) == actionBack {
		return a.engine.Cancel(chatID, view)
	}

	user, err := a.handlers.currentUser(c)
	if err != nil {
		return helpers.SendText(c, MsgRegisterFailed)
	}

	ctx := helpers.BuildContext(c)
	handled, err := a.engine.HandleInput(ctx, chatID, user.ID, text, view)
	if err != nil {
		return err
	}
	if !handled {
		return a.handlers.TextFallback(c)
	}
	return nil
}

// BuildRegistry declares the bot's commands, callbacks, and text fallback.
func BuildRegistry(h *Handlers) *tg.Registry {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Регистрация и главное меню",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     h.Stats,
		Description: "Статистика ответов",
	})
	reg.RegisterCommand("/version", commands.Command{
		Handler:     h.Version,
		Description: "Версия бота",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cbCategory, h.CategoryPicked)
	reg.SetTextFallback(h.TextFallback)

	return reg
}

// OnError logs a failed handler and tells the user to retry later.
func OnError(err error, c tele.Context) {
	if c == nil {
		return
	}
	ctx := helpers.BuildContext(c)
	logger.Error(ctx, "tg", "handler.error",
		slog.String("err", err.Error()),
	)
	_ = helpers.SendText(c, MsgError)
}

// BuildRoutes assembles all bot routes around the registry and engine.
func BuildRoutes(reg *tg.Registry, h *Handlers, engine *quiz.Engine, adminID int64) []tg.Route {
	fsm := &fsmAdapter{handlers: h, engine: engine}

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{AdminID: adminID})
	routes = append(routes, router.TextRoutes(fsm, reg, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	return routes
}
