package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibot/bot/models"
	"lexibot/bot/storage"
)

type fakeVocabStore struct {
	categories []models.Category
	deleteErr  error

	added   [][4]string
	deleted []string
}

func (f *fakeVocabStore) ListCategories(_ context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeVocabStore) AddWord(_ context.Context, _ int64, original, translation, example string) error {
	f.added = append(f.added, [4]string{original, translation, example})
	return nil
}

func (f *fakeVocabStore) DeleteWord(_ context.Context, _ int64, original string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, original)
	return nil
}

func TestAddWordTrimsInput(t *testing.T) {
	store := &fakeVocabStore{}
	vocab := NewVocab(store)

	err := vocab.AddWord(context.Background(), 1, "  Cat ", " Кот ", " The cat sat. ")
	require.NoError(t, err)
	require.Len(t, store.added, 1)
	assert.Equal(t, "Cat", store.added[0][0])
	assert.Equal(t, "Кот", store.added[0][1])
	assert.Equal(t, "The cat sat.", store.added[0][2])
}

func TestAddWordValidation(t *testing.T) {
	vocab := NewVocab(&fakeVocabStore{})

	assert.ErrorIs(t, vocab.AddWord(context.Background(), 1, "", "Кот", ""), ErrInvalidWord)
	assert.ErrorIs(t, vocab.AddWord(context.Background(), 1, "Cat", "   ", ""), ErrInvalidWord)

	long := strings.Repeat("x", maxWordLen+1)
	assert.ErrorIs(t, vocab.AddWord(context.Background(), 1, long, "Кот", ""), ErrInvalidWord)
}

func TestDeleteWordNotFound(t *testing.T) {
	store := &fakeVocabStore{deleteErr: storage.ErrNotFound}
	vocab := NewVocab(store)

	err := vocab.DeleteWord(context.Background(), 1, "Ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCategories(t *testing.T) {
	store := &fakeVocabStore{categories: []models.Category{
		{ID: 1, Name: "Цвета"},
		{ID: 2, Name: "Местоимения"},
	}}
	vocab := NewVocab(store)

	categories, err := vocab.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Цвета", categories[0].Name)
}
