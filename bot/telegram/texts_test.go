package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibot/bot/models"
)

func TestMatchMenuAction(t *testing.T) {
	cases := []struct {
		text string
		want menuAction
	}{
		{"🧠 Учить слова", actionLearn},
		{"учить слова", actionLearn},
		{"УЧИТЬ СЛОВА", actionLearn},
		{"📑 Выбрать категорию", actionCategory},
		{"выбрать категорию", actionCategory},
		{"📝 Добавить слово", actionAdd},
		{"добавить слово", actionAdd},
		{"🗑 Удалить слово", actionDelete},
		{"удалить слово", actionDelete},
		{"⬅ Назад", actionBack},
		{"назад", actionBack},
		{"привет", actionNone},
		{"", actionNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matchMenuAction(tc.text), "text %q", tc.text)
	}
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Привет, Анна Иванова! Начнём учить английский!", Greeting("Анна", "Иванова"))
	assert.Equal(t, "Привет, Анна! Начнём учить английский!", Greeting("Анна", ""))
}

func TestRetryText(t *testing.T) {
	assert.Equal(t, "❌ Неправильно. Попробуйте снова (1/2):", RetryText(1, 2))
}

func TestOptionsKeyboardLayout(t *testing.T) {
	markup := OptionsKeyboard([]string{"Красный", "Синий", "Зелёный"})

	// two options per row, back button on the last row
	require.Len(t, markup.ReplyKeyboard, 2)
	assert.Len(t, markup.ReplyKeyboard[0], 2)
	require.Len(t, markup.ReplyKeyboard[1], 2)
	assert.Equal(t, BtnBack, markup.ReplyKeyboard[1][1].Text)
	assert.True(t, markup.ResizeKeyboard)
}

func TestMenuKeyboardLayout(t *testing.T) {
	markup := MenuKeyboard()

	require.Len(t, markup.ReplyKeyboard, 2)
	assert.Equal(t, BtnLearn, markup.ReplyKeyboard[0][0].Text)
	assert.Equal(t, BtnDelete, markup.ReplyKeyboard[1][1].Text)
}

func TestCategoriesKeyboard(t *testing.T) {
	markup := CategoriesKeyboard([]models.Category{
		{ID: 1, Name: "Цвета"},
		{ID: 2, Name: "Местоимения"},
	})

	// one category per row
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "Цвета", markup.InlineKeyboard[0][0].Text)
	assert.Contains(t, markup.InlineKeyboard[1][0].Data, "2")
}
