package telegram

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"lexibot/bot/models"
	"lexibot/bot/quiz"
	"lexibot/bot/service"
	"lexibot/core/buildinfo"
	"lexibot/core/logger"
	"lexibot/core/telegram/callbacks"
	"lexibot/core/telegram/helpers"
	"log/slog"
)

// Handlers binds bot endpoints to the application services.
type Handlers struct {
	users  *service.Users
	vocab  *service.Vocab
	engine *quiz.Engine
}

// NewHandlers creates the handler set.
func NewHandlers(users *service.Users, vocab *service.Vocab, engine *quiz.Engine) *Handlers {
	return &Handlers{users: users, vocab: vocab, engine: engine}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// currentUser registers the sender if needed and returns the stored row.
func (h *Handlers) currentUser(c tele.Context) (models.User, error) {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return models.User{}, fmt.Errorf("update has no sender")
	}
	return h.users.EnsureUser(ctx, sender.ID,
		optString(sender.Username),
		optString(sender.FirstName),
		optString(sender.LastName),
	)
}

// Start registers the user and shows the greeting with the main menu.
func (h *Handlers) Start(c tele.Context) error {
	sender := c.Sender()
	if _, err := h.currentUser(c); err != nil {
		return helpers.SendText(c, MsgRegisterFailed)
	}

	first, last := "", ""
	if sender != nil {
		first, last = sender.FirstName, sender.LastName
	}
	if err := helpers.SendText(c, Greeting(first, last)); err != nil {
		return err
	}
	return newView(c).Menu()
}

// Stats shows the user's answer history aggregates.
func (h *Handlers) Stats(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	user, err := helpers.CurrentUser(ctx, h.users, c.Sender().ID)
	if err != nil {
		// not registered yet
		if user, err = h.currentUser(c); err != nil {
			return helpers.SendText(c, MsgRegisterFailed)
		}
	}
	stats, err := h.users.Stats(ctx, user.ID)
	if err != nil {
		return err
	}
	return helpers.SendText(c, StatsText(stats.Total, stats.Correct))
}

// Version reports build metadata. Registered admin-only.
func (h *Handlers) Version(c tele.Context) error {
	text := fmt.Sprintf("lexibot %s (%s, %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	return helpers.SendText(c, text)
}

// Learn starts a quiz over the whole visible vocabulary.
func (h *Handlers) Learn(c tele.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return helpers.SendText(c, MsgRegisterFailed)
	}
	ctx := helpers.BuildContext(c)
	return h.engine.BeginQuiz(ctx, c.Chat().ID, user.ID, nil, newView(c))
}

// ChooseCategory lists categories as inline buttons.
func (h *Handlers) ChooseCategory(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	categories, err := h.vocab.Categories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return helpers.SendText(c, MsgNoCategories)
	}
	return helpers.SendText(c, MsgChooseCategory, &tele.SendOptions{
		ReplyMarkup: CategoriesKeyboard(categories),
	})
}

// CategoryPicked starts a quiz scoped to the selected category.
func (h *Handlers) CategoryPicked(c tele.Context) error {
	categoryID, err := callbacks.PayloadInt64(c)
	if err != nil {
		ctx := helpers.BuildContext(c)
		logger.Warn(ctx, "tg", "callback.bad_payload",
			slog.String("cb_key", cbCategory),
			slog.String("err", err.Error()),
		)
		return nil
	}
	user, err := h.currentUser(c)
	if err != nil {
		return helpers.SendText(c, MsgRegisterFailed)
	}
	ctx := helpers.BuildContext(c)
	return h.engine.BeginQuiz(ctx, c.Chat().ID, user.ID, &categoryID, newView(c))
}

// AddWord starts the add-word dialog.
func (h *Handlers) AddWord(c tele.Context) error {
	if _, err := h.currentUser(c); err != nil {
		return helpers.SendText(c, MsgRegisterFailed)
	}
	return h.engine.BeginAdd(c.Chat().ID, newView(c))
}

// DeleteWord starts the delete-word dialog.
func (h *Handlers) DeleteWord(c tele.Context) error {
	if _, err := h.currentUser(c); err != nil {
		return helpers.SendText(c, MsgRegisterFailed)
	}
	return h.engine.BeginDelete(c.Chat().ID, newView(c))
}

// TextFallback routes free text to menu actions. Labels match with or
// without the emoji prefix, case-insensitively.
func (h *Handlers) TextFallback(c tele.Context) error {
	switch action := matchMenuAction(c.Text()); action {
	case actionLearn:
		return h.Learn(c)
	case actionCategory:
		return h.ChooseCategory(c)
	case actionAdd:
		return h.AddWord(c)
	case actionDelete:
		return h.DeleteWord(c)
	case actionBack:
		return h.engine.Cancel(c.Chat().ID, newView(c))
	}
	return newView(c).Menu()
}

type menuAction int

const (
	actionNone menuAction = iota
	actionLearn
	actionCategory
	actionAdd
	actionDelete
	actionBack
)

func matchMenuAction(text string) menuAction {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case strings.ToLower(BtnLearn), "учить слова":
		return actionLearn
	case strings.ToLower(BtnCategory), "выбрать категорию":
		return actionCategory
	case strings.ToLower(BtnAdd), "добавить слово":
		return actionAdd
	case strings.ToLower(BtnDelete), "удалить слово":
		return actionDelete
	case strings.ToLower(BtnBack), "назад":
		return actionBack
	}
	return actionNone
}
