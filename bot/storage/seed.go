package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"lexibot/core/logger"
	"log/slog"
)

type seedWord struct {
	original     string
	example      string
	translations []string
}

type seedCategory struct {
	name  string
	words []seedWord
}

// Shared starter vocabulary available to every user.
var seedCategories = []seedCategory{
	{
		name: "Цвета",
		words: []seedWord{
			{"Red", "His face turns red when he gets angry.", []string{"being the same colour as blood", "Красный"}},
			{"Blue", "Why is the sky blue?", []string{"being the same colour as the sky when there are no clouds", "Синий"}},
			{"Green", "Green color harmonizes with red one.", []string{"being the same colour as grass", "Зелёный"}},
			{"Yellow", "The leaves turned yellow.", []string{"being the same colour as a lemon or the sun", "Жёлтый"}},
			{"Black", "He had a black suit on.", []string{"being the colour of coal or of the sky on a very dark night", "Чёрный"}},
			{"White", "He had a long, white beard.", []string{"being the colour of snow or milk", "Белый"}},
			{"Pink", "Her dress is pale pink.", []string{"being a pale red colour", "Розовый"}},
			{"Purple", "The King was clothed in a purple gown.", []string{"being a colour that is a mixture of red and blue", "Фиолетовый"}},
			{"Orange", "I think orange goes perfectly with my hair.", []string{"being a colour that is a mixture of red and yellow", "Оранжевый"}},
			{"Brown", "Her hair is dark brown like mine.", []string{"being the same colour as chocolate or soil", "Коричневый"}},
		},
	},
	{
		name: "Местоимения",
		words: []seedWord{
			{"I", "Chris and I have been married for twelve years.", []string{"Я"}},
			{"You", "I love you.", []string{"Вы", "Ты"}},
			{"He", "He was rich.", []string{"Он"}},
			{"She", "I want no angel, only she.", []string{"Она"}},
			{"We", "Shall we stop for a coffee?", []string{"Мы"}},
			{"They", "They all want to come to the wedding.", []string{"Они"}},
			{"It", "Is it still raining?", []string{"Оно"}},
		},
	},
}

// SeedWords loads the starter vocabulary once. It is a no-op when
// the words table already holds data.
func SeedWords(ctx context.Context, db *sqlx.DB) error {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	var count int
	query, args, err := builder.Select("count(*)").From("words").ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err := db.GetContext(ctx, &count, query, args...); err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if count > 0 {
		logger.SEED.Info("seed skipped",
			slog.String("event", "seed.skip"),
			slog.Int("words", count),
		)
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var wordsTotal, translationsTotal int
	for _, cat := range seedCategories {
		var categoryID int64
		query, args, err := builder.
			Insert("categories").
			Columns("name").
			Values(cat.name).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		if err := tx.GetContext(ctx, &categoryID, query, args...); err != nil {
			return fmt.Errorf("insert category %q: %w", cat.name, err)
		}

		for _, w := range cat.words {
			var wordID int64
			query, args, err := builder.
				Insert("words").
				Columns("original_word", "example").
				Values(w.original, w.example).
				Suffix("RETURNING id").
				ToSql()
			if err != nil {
				return fmt.Errorf("build query: %w", err)
			}
			if err := tx.GetContext(ctx, &wordID, query, args...); err != nil {
				return fmt.Errorf("insert word %q: %w", w.original, err)
			}
			wordsTotal++

			query, args, err = builder.
				Insert("word_categories").
				Columns("word_id", "category_id").
				Values(wordID, categoryID).
				ToSql()
			if err != nil {
				return fmt.Errorf("build query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("bind word %q: %w", w.original, err)
			}

			for _, tr := range w.translations {
				query, args, err = builder.
					Insert("translations").
					Columns("word_id", "translation").
					Values(wordID, tr).
					ToSql()
				if err != nil {
					return fmt.Errorf("build query: %w", err)
				}
				if _, err := tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("insert translation %q: %w", tr, err)
				}
				translationsTotal++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	logger.SEED.Info("seed complete",
		slog.String("event", "seed.complete"),
		slog.Int("categories", len(seedCategories)),
		slog.Int("words", wordsTotal),
		slog.Int("translations", translationsTotal),
	)
	return nil
}
