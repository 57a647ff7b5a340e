// Package telegram wires the vocabulary trainer to the bot framework.
package telegram

import "fmt"

// Main menu buttons.
const (
	BtnLearn    = "🧠 Учить слова"
	BtnCategory = "📑 Выбрать категорию"
	BtnAdd      = "📝 Добавить слово"
	BtnDelete   = "🗑 Удалить слово"
	BtnBack     = "⬅ Назад"
)

// User-facing messages.
const (
	MsgChooseAction      = "Выбери действие:"
	MsgChooseCategory    = "Выберите категорию:"
	MsgNoCategories      = "Категории пока не добавлены."
	MsgNoWords           = "Нет доступных слов."
	MsgNoWordsInCategory = "Нет больше слов в этой категории."
	MsgCorrect           = "✅ Правильно!"
	MsgPromptOriginal    = "Введите слово, которое хотите добавить (на английском):"
	MsgPromptTranslation = "Введите перевод на русский:"
	MsgPromptExample     = "Введите пример использования:"
	MsgWordAdded         = "✅ Слово успешно добавлено!"
	MsgWordAddFailed     = "❌ Ошибка при добавлении слова."
	MsgPromptDelete      = "Введите слово, которое хотите удалить:"
	MsgWordDeleted       = "✅ Слово удалено."
	MsgWordNotFound      = "❌ Такого слова нет в вашем списке."
	MsgRegisterFailed    = "❌ Произошла ошибка при регистрации. Попробуйте позже."
	MsgError             = "❌ Произошла ошибка. Попробуйте позже."
)

// Greeting welcomes a freshly registered user by name.
func Greeting(firstName, lastName string) string {
	name := firstName
	if lastName != "" {
		name += " " + lastName
	}
	return fmt.Sprintf("Привет, %s! Начнём учить английский!", name)
}

// QuestionText formats the quiz prompt. The word is already markdown-escaped.
func QuestionText(word string) string {
	return fmt.Sprintf("Переведи слово: *%s*", word)
}

// RetryText asks for another attempt showing used/allowed tries.
func RetryText(attempt, max int) string {
	return fmt.Sprintf("❌ Неправильно. Попробуйте снова (%d/%d):", attempt, max)
}

// RevealText shows the correct answer. The answer is already markdown-escaped.
func RevealText(answer string) string {
	return fmt.Sprintf("❌ Правильный ответ: *%s*", answer)
}

// StatsText summarizes the user's answer history.
func StatsText(total, correct int64) string {
	return fmt.Sprintf("📊 Всего ответов: %d, из них верных: %d", total, correct)
}
