package telegram

import (
	"strconv"

	tele "gopkg.in/telebot.v4"

	"lexibot/bot/models"
	"lexibot/core/telegram/keyboard"
)

// cbCategory is the callback key for category picks.
const cbCategory = "category"

// MenuKeyboard is the main menu, two buttons per row.
func MenuKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{BtnLearn, BtnCategory},
		[]string{BtnAdd, BtnDelete},
	)
}

// OptionsKeyboard lays out answer options two per row with a trailing
// back button.
func OptionsKeyboard(options []string) *tele.ReplyMarkup {
	labels := make([]string, 0, len(options)+1)
	labels = append(labels, options...)
	labels = append(labels, BtnBack)
	return keyboard.ReplyButtonsNPerRow(labels, 2)
}

// CategoriesKeyboard renders one inline button per category.
func CategoriesKeyboard(categories []models.Category) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(categories))
	for _, cat := range categories {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   cat.Name,
			Unique: cbCategory,
			Data:   strconv.FormatInt(cat.ID, 10),
		})
	}
	return keyboard.InlineButtons(buttons)
}
