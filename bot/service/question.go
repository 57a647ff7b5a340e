package service

import (
	"context"
	"fmt"
	"math/rand"

	"lexibot/bot/models"
	"lexibot/core/logger"
	"log/slog"
)

// defaultOptionCount is the number of answer options per question:
// one correct translation plus up to three distractors.
const defaultOptionCount = 4

// QuizStore is the storage surface required by the Quiz service.
type QuizStore interface {
	PickWord(ctx context.Context, userID int64, categoryID *int64) (models.QuizWord, error)
	PickDistractors(ctx context.Context, userID, wordID int64, limit uint64) ([]string, error)
	RecordAnswer(ctx context.Context, userID, wordID, translationID int64, isCorrect bool) error
}

// Question is a single multiple-choice translation task.
type Question struct {
	WordID        int64
	TranslationID int64
	Prompt        string
	Answer        string
	Options       []string
}

// Quiz builds questions and records answer outcomes.
type Quiz struct {
	store       QuizStore
	optionCount int
}

// NewQuiz creates the Quiz service. optionCount <= 1 falls back to the default.
func NewQuiz(store QuizStore, optionCount int) *Quiz {
	if optionCount <= 1 {
		optionCount = defaultOptionCount
	}
	return &Quiz{store: store, optionCount: optionCount}
}

// BuildQuestion picks a random visible word and assembles shuffled answer
// options around its translation. A non-nil categoryID narrows the pick.
// storage.ErrNotFound propagates when the scope holds no words.
func (s *Quiz) BuildQuestion(ctx context.Context, userID int64, categoryID *int64) (Question, error) {
	word, err := s.store.PickWord(ctx, userID, categoryID)
	if err != nil {
		return Question{}, fmt.Errorf("pick word: %w", err)
	}

	distractors, err := s.store.PickDistractors(ctx, userID, word.WordID, uint64(s.optionCount-1))
	if err != nil {
		return Question{}, fmt.Errorf("pick distractors: %w", err)
	}

	options := make([]string, 0, len(distractors)+1)
	options = append(options, word.Translation)
	options = append(options, distractors...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q := Question{
		WordID:        word.WordID,
		TranslationID: word.TranslationID,
		Prompt:        word.OriginalWord,
		Answer:        word.Translation,
		Options:       options,
	}

	logger.Debug(ctx, "service.quiz", "question.issued",
		slog.Int64("user_id", userID),
		slog.Int64("word_id", word.WordID),
		slog.Int("options", len(options)),
	)
	return q, nil
}

// CheckAnswer reports whether the text matches the expected translation.
// The comparison is exact, including letter case.
func (s *Quiz) CheckAnswer(q Question, text string) bool {
	return text == q.Answer
}

// RecordAnswer stores the outcome of an answered question.
func (s *Quiz) RecordAnswer(ctx context.Context, userID int64, q Question, isCorrect bool) error {
	if err := s.store.RecordAnswer(ctx, userID, q.WordID, q.TranslationID, isCorrect); err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	return nil
}
