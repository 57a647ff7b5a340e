// Package service holds the application logic between the Telegram layer
// and storage.
package service

import (
	"context"
	"fmt"

	"lexibot/bot/models"
	"lexibot/core/logger"
	"log/slog"
)

// UserStore is the storage surface required by the Users service.
type UserStore interface {
	EnsureUser(ctx context.Context, telegramID int64, username, firstName, lastName *string) (models.User, error)
	GetUserByTelegramID(ctx context.Context, telegramID int64) (models.User, error)
	AnswerStats(ctx context.Context, userID int64) (models.AnswerStats, error)
}

// Users manages registration and per-user aggregates.
type Users struct {
	store UserStore
}

// NewUsers creates the Users service.
func NewUsers(store UserStore) *Users {
	return &Users{store: store}
}

// EnsureUser registers the Telegram account on first contact.
// Existing users are returned unchanged.
func (s *Users) EnsureUser(ctx context.Context, telegramID int64, username, firstName, lastName *string) (models.User, error) {
	user, err := s.store.EnsureUser(ctx, telegramID, username, firstName, lastName)
	if err != nil {
		logger.Error(ctx, "service.users", "user.ensure.failed",
			slog.Int64("user_id", telegramID),
			slog.String("err", err.Error()),
		)
		return models.User{}, fmt.Errorf("ensure user: %w", err)
	}
	logger.Debug(ctx, "service.users", "user.ensured",
		slog.Int64("user_id", telegramID),
	)
	return user, nil
}

// GetUserByTelegramID resolves the stored user for a Telegram account.
func (s *Users) GetUserByTelegramID(ctx context.Context, telegramID int64) (models.User, error) {
	return s.store.GetUserByTelegramID(ctx, telegramID)
}

// Stats returns the user's answer history aggregates.
func (s *Users) Stats(ctx context.Context, userID int64) (models.AnswerStats, error) {
	stats, err := s.store.AnswerStats(ctx, userID)
	if err != nil {
		return models.AnswerStats{}, fmt.Errorf("answer stats: %w", err)
	}
	return stats, nil
}
