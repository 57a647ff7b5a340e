// Package models declares the database entities of the vocabulary trainer.
package models

import "time"

// User is a registered Telegram user.
type User struct {
	ID         int64      `db:"id"`
	TelegramID int64      `db:"telegram_id"`
	Username   *string    `db:"username"`
	FirstName  *string    `db:"first_name"`
	LastName   *string    `db:"last_name"`
	CreatedAt  *time.Time `db:"created_at"`
}

// Category groups words into topics shown to the user.
type Category struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedAt *time.Time `db:"created_at"`
}

// Word is a vocabulary entry. UserID is nil for shared words and set
// for words owned by a single user.
type Word struct {
	ID           int64      `db:"id"`
	OriginalWord string     `db:"original_word"`
	Example      *string    `db:"example"`
	UserID       *int64     `db:"user_id"`
	CreatedAt    *time.Time `db:"created_at"`
}

// Translation is one accepted translation of a word.
type Translation struct {
	ID          int64      `db:"id"`
	WordID      int64      `db:"word_id"`
	Translation string     `db:"translation"`
	CreatedAt   *time.Time `db:"created_at"`
}

// UserWord links a user to a word added through the add dialog.
type UserWord struct {
	ID      int64      `db:"id"`
	UserID  int64      `db:"user_id"`
	WordID  int64      `db:"word_id"`
	AddedAt *time.Time `db:"added_at"`
}

// UserAnswer records a quiz answer outcome.
type UserAnswer struct {
	ID            int64      `db:"id"`
	UserID        int64      `db:"user_id"`
	WordID        *int64     `db:"word_id"`
	TranslationID *int64     `db:"translation_id"`
	IsCorrect     bool       `db:"is_correct"`
	AnsweredAt    *time.Time `db:"answered_at"`
}

// QuizWord is a word paired with the translation picked for a question.
type QuizWord struct {
	WordID        int64  `db:"word_id"`
	OriginalWord  string `db:"original_word"`
	TranslationID int64  `db:"translation_id"`
	Translation   string `db:"translation"`
}

// AnswerStats aggregates a user's quiz history.
type AnswerStats struct {
	Total   int64 `db:"total"`
	Correct int64 `db:"correct"`
}
