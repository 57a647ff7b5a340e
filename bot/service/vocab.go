package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"lexibot/bot/models"
	"lexibot/core/logger"
	"log/slog"
)

// maxWordLen matches the varchar(100) columns of words and translations.
const maxWordLen = 100

// ErrInvalidWord is returned when user input fails validation before
// reaching storage.
var ErrInvalidWord = errors.New("service: invalid word")

// VocabStore is the storage surface required by the Vocab service.
type VocabStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	AddWord(ctx context.Context, userID int64, original, translation, example string) error
	DeleteWord(ctx context.Context, userID int64, original string) error
}

// Vocab manages the category list and personal words.
type Vocab struct {
	store VocabStore
}

// NewVocab creates the Vocab service.
func NewVocab(store VocabStore) *Vocab {
	return &Vocab{store: store}
}

// Categories returns all quiz categories.
func (s *Vocab) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// AddWord validates and stores a personal word with a single translation.
func (s *Vocab) AddWord(ctx context.Context, userID int64, original, translation, example string) error {
	original = strings.TrimSpace(original)
	translation = strings.TrimSpace(translation)
	example = strings.TrimSpace(example)

	if original == "" || translation == "" {
		return ErrInvalidWord
	}
	if utf8.RuneCountInString(original) > maxWordLen || utf8.RuneCountInString(translation) > maxWordLen {
		return ErrInvalidWord
	}

	if err := s.store.AddWord(ctx, userID, original, translation, example); err != nil {
		logger.Warn(ctx, "service.vocab", "word.add.failed",
			slog.Int64("user_id", userID),
			slog.String("word", logger.SanitizeLimit(original, 64)),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("add word: %w", err)
	}

	logger.Info(ctx, "service.vocab", "word.added",
		slog.Int64("user_id", userID),
		slog.String("word", logger.SanitizeLimit(original, 64)),
	)
	return nil
}

// DeleteWord removes the user's personal word by original spelling.
func (s *Vocab) DeleteWord(ctx context.Context, userID int64, original string) error {
	original = strings.TrimSpace(original)
	if original == "" {
		return ErrInvalidWord
	}

	if err := s.store.DeleteWord(ctx, userID, original); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	logger.Info(ctx, "service.vocab", "word.deleted",
		slog.Int64("user_id", userID),
		slog.String("word", logger.SanitizeLimit(original, 64)),
	)
	return nil
}
