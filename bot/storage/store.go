// Package storage implements Postgres persistence for the vocabulary trainer.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"lexibot/bot/models"
)

// Store wraps the database handle with query builders for all bot tables.
type Store struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
}

// NewStore creates a Store over an open sqlx handle.
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *Store) getContext(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return s.db.GetContext(ctx, dest, query, args...)
}

func (s *Store) selectContext(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return s.db.SelectContext(ctx, dest, query, args...)
}

// EnsureUser registers the Telegram user on first contact and returns the
// stored row. Repeated calls for the same telegram_id are idempotent.
func (s *Store) EnsureUser(ctx context.Context, telegramID int64, username, firstName, lastName *string) (models.User, error) {
	user, err := s.GetUserByTelegramID(ctx, telegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	insert := s.builder.
		Insert("users").
		Columns("telegram_id", "username", "first_name", "last_name").
		Values(telegramID, username, firstName, lastName).
		Suffix("ON CONFLICT (telegram_id) DO NOTHING")
	query, args, err := insert.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("build query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return s.GetUserByTelegramID(ctx, telegramID)
}

// GetUserByTelegramID returns the user registered for a Telegram account.
func (s *Store) GetUserByTelegramID(ctx context.Context, telegramID int64) (models.User, error) {
	var user models.User
	err := s.getContext(ctx, &user, s.builder.
		Select("id", "telegram_id", "username", "first_name", "last_name", "created_at").
		From("users").
		Where(sq.Eq{"telegram_id": telegramID}))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

// ListCategories returns all categories ordered by id.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.selectContext(ctx, &categories, s.builder.
		Select("id", "name", "created_at").
		From("categories").
		OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return categories, nil
}

// pickWordQuery randomizes over words, not word-translation pairs, so a
// word's chance of being asked does not grow with its translation count.
func (s *Store) pickWordQuery(userID int64, categoryID *int64) sq.SelectBuilder {
	q := s.builder.
		Select("words.id AS word_id", "words.original_word").
		From("words").
		Where(visibleTo(userID)).
		OrderBy("random()").
		Limit(1)
	if categoryID != nil {
		q = q.
			Join("word_categories ON word_categories.word_id = words.id").
			Where(sq.Eq{"word_categories.category_id": *categoryID})
	}
	return q
}

func (s *Store) pickTranslationQuery(wordID int64) sq.SelectBuilder {
	return s.builder.
		Select("id AS translation_id", "translation").
		From("translations").
		Where(sq.Eq{"word_id": wordID}).
		OrderBy("random()").
		Limit(1)
}

// PickWord selects a visible word uniformly at random, then one of its
// translations at random. A non-nil categoryID narrows the pick to that
// category. ErrNotFound is returned when the scope holds no words or the
// picked word carries no translations.
func (s *Store) PickWord(ctx context.Context, userID int64, categoryID *int64) (models.QuizWord, error) {
	var word models.QuizWord
	err := s.getContext(ctx, &word, s.pickWordQuery(userID, categoryID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.QuizWord{}, ErrNotFound
	}
	if err != nil {
		return models.QuizWord{}, fmt.Errorf("pick word: %w", err)
	}

	err = s.getContext(ctx, &word, s.pickTranslationQuery(word.WordID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.QuizWord{}, ErrNotFound
	}
	if err != nil {
		return models.QuizWord{}, fmt.Errorf("pick translation: %w", err)
	}
	return word, nil
}

func (s *Store) pickDistractorsQuery(userID, wordID int64, limit uint64) sq.SelectBuilder {
	return s.builder.
		Select("translations.translation").
		From("translations").
		Join("words ON words.id = translations.word_id").
		Where(sq.NotEq{"translations.word_id": wordID}).
		Where(visibleTo(userID)).
		OrderBy("random()").
		Limit(limit)
}

// PickDistractors returns up to limit random translations of other visible
// words, excluding every translation of the given word.
func (s *Store) PickDistractors(ctx context.Context, userID, wordID int64, limit uint64) ([]string, error) {
	var distractors []string
	err := s.selectContext(ctx, &distractors, s.pickDistractorsQuery(userID, wordID, limit))
	if err != nil {
		return nil, fmt.Errorf("pick distractors: %w", err)
	}
	return distractors, nil
}

// findWordQuery matches a spelling in every ownership scope. Rows the user
// may attach to (shared or own) sort first, so a foreign owner surfaces only
// when no usable row exists.
func (s *Store) findWordQuery(userID int64, original string) sq.SelectBuilder {
	return s.builder.
		Select("id", "original_word", "example", "user_id", "created_at").
		From("words").
		Where(sq.Expr("lower(original_word) = lower(?)", original)).
		OrderByClause("(user_id IS NULL OR user_id = ?) DESC", userID).
		Limit(1)
}

// wordUsableBy reports whether the user may attach translations to the word.
func wordUsableBy(word models.Word, userID int64) bool {
	return word.UserID == nil || *word.UserID == userID
}

// AddWord stores a personal word with one translation. Matching against
// existing words is case-insensitive across all scopes. Adding a translation
// to a shared word or to the user's own word is allowed; a spelling held
// only by another user yields ErrForbidden and writes nothing.
func (s *Store) AddWord(ctx context.Context, userID int64, original, translation, example string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := s.findWordQuery(userID, original).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	var word models.Word
	err = tx.GetContext(ctx, &word, query, args...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		query, args, err = s.builder.
			Insert("words").
			Columns("original_word", "example", "user_id").
			Values(original, example, userID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		if err := tx.GetContext(ctx, &word.ID, query, args...); err != nil {
			return fmt.Errorf("insert word: %w", err)
		}
	case err != nil:
		return fmt.Errorf("select word: %w", err)
	default:
		if !wordUsableBy(word, userID) {
			return ErrForbidden
		}
	}

	query, args, err = s.builder.
		Insert("translations").
		Columns("word_id", "translation").
		Values(word.ID, translation).
		Suffix("ON CONFLICT (word_id, translation) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert translation: %w", err)
	}

	query, args, err = s.builder.
		Insert("user_words").
		Columns("user_id", "word_id").
		Values(userID, word.ID).
		Suffix("ON CONFLICT (user_id, word_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("link word: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) deleteWordQuery(userID int64, original string) sq.DeleteBuilder {
	return s.builder.
		Delete("words").
		Where(sq.Expr("lower(original_word) = lower(?)", original)).
		Where(ownedBy(userID))
}

// DeleteWord removes the user's own word by its original spelling.
// Shared words are never deleted; a miss yields ErrNotFound.
func (s *Store) DeleteWord(ctx context.Context, userID int64, original string) error {
	query, args, err := s.deleteWordQuery(userID, original).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordAnswer appends a quiz answer to the user's history.
func (s *Store) RecordAnswer(ctx context.Context, userID, wordID, translationID int64, isCorrect bool) error {
	query, args, err := s.builder.
		Insert("user_answers").
		Columns("user_id", "word_id", "translation_id", "is_correct").
		Values(userID, wordID, translationID, isCorrect).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

// AnswerStats aggregates the user's answer history.
func (s *Store) AnswerStats(ctx context.Context, userID int64) (models.AnswerStats, error) {
	var stats models.AnswerStats
	err := s.getContext(ctx, &stats, s.builder.
		Select(
			"count(*) AS total",
			"count(*) FILTER (WHERE is_correct) AS correct",
		).
		From("user_answers").
		Where(sq.Eq{"user_id": userID}))
	if err != nil {
		return models.AnswerStats{}, fmt.Errorf("select stats: %w", err)
	}
	return stats, nil
}
