package telegram

import (
	tele "gopkg.in/telebot.v4"

	"lexibot/bot/service"
	"lexibot/core/telegram/format"
	"lexibot/core/telegram/helpers"
	"lexibot/core/telegram/keyboard"
)

// teleView renders quiz engine outcomes into the current chat.
type teleView struct {
	c tele.Context
}

func newView(c tele.Context) teleView {
	return teleView{c: c}
}

func (v teleView) Menu() error {
	return helpers.SendText(v.c, MsgChooseAction, &tele.SendOptions{ReplyMarkup: MenuKeyboard()})
}

func (v teleView) Question(q service.Question) error {
	word, err := format.EscapeMarkdown(q.Prompt, format.MarkdownV1)
	if err != nil {
		return err
	}
	return helpers.SendMD(v.c, QuestionText(word), OptionsKeyboard(q.Options))
}

func (v teleView) Correct() error {
	return helpers.SendText(v.c, MsgCorrect)
}

func (v teleView) Retry(attempt, max int) error {
	return helpers.SendText(v.c, RetryText(attempt, max))
}

func (v teleView) Reveal(answer string) error {
	escaped, err := format.EscapeMarkdown(answer, format.MarkdownV1)
	if err != nil {
		return err
	}
	return helpers.SendMD(v.c, RevealText(escaped))
}

func (v teleView) NoWords(inCategory bool) error {
	if inCategory {
		return helpers.SendText(v.c, MsgNoWordsInCategory)
	}
	return helpers.SendText(v.c, MsgNoWords)
}

func (v teleView) PromptOriginal() error {
	return helpers.SendText(v.c, MsgPromptOriginal, &tele.SendOptions{ReplyMarkup: keyboard.RemoveKeyboard()})
}

func (v teleView) PromptTranslation() error {
	return helpers.SendText(v.c, MsgPromptTranslation)
}

func (v teleView) PromptExample() error {
	return helpers.SendText(v.c, MsgPromptExample)
}

func (v teleView) WordAdded() error {
	return helpers.SendText(v.c, MsgWordAdded)
}

func (v teleView) WordAddFailed() error {
	return helpers.SendText(v.c, MsgWordAddFailed)
}

func (v teleView) PromptDelete() error {
	return helpers.SendText(v.c, MsgPromptDelete, &tele.SendOptions{ReplyMarkup: keyboard.RemoveKeyboard()})
}

func (v teleView) WordDeleted() error {
	return helpers.SendText(v.c, MsgWordDeleted)
}

func (v teleView) WordNotFound() error {
	return helpers.SendText(v.c, MsgWordNotFound)
}

func (v teleView) Failure() error {
	return helpers.SendText(v.c, MsgError)
}
