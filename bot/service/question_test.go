package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibot/bot/models"
	"lexibot/bot/storage"
)

type fakeQuizStore struct {
	word        models.QuizWord
	wordErr     error
	distractors []string

	pickedCategory *int64
	recorded       []models.UserAnswer
}

func (f *fakeQuizStore) PickWord(_ context.Context, _ int64, categoryID *int64) (models.QuizWord, error) {
	f.pickedCategory = categoryID
	if f.wordErr != nil {
		return models.QuizWord{}, f.wordErr
	}
	return f.word, nil
}

func (f *fakeQuizStore) PickDistractors(_ context.Context, _, _ int64, limit uint64) ([]string, error) {
	if uint64(len(f.distractors)) > limit {
		return f.distractors[:limit], nil
	}
	return f.distractors, nil
}

func (f *fakeQuizStore) RecordAnswer(_ context.Context, userID, wordID, translationID int64, isCorrect bool) error {
	f.recorded = append(f.recorded, models.UserAnswer{
		UserID:        userID,
		WordID:        &wordID,
		TranslationID: &translationID,
		IsCorrect:     isCorrect,
	})
	return nil
}

func TestBuildQuestionOptions(t *testing.T) {
	store := &fakeQuizStore{
		word: models.QuizWord{
			WordID:        10,
			OriginalWord:  "Red",
			TranslationID: 20,
			Translation:   "Красный",
		},
		distractors: []string{"Синий", "Зелёный", "Жёлтый"},
	}
	quiz := NewQuiz(store, 4)

	q, err := quiz.BuildQuestion(context.Background(), 1, nil)
	require.NoError(t, err)

	assert.Equal(t, "Red", q.Prompt)
	assert.Equal(t, "Красный", q.Answer)
	assert.Len(t, q.Options, 4)
	assert.ElementsMatch(t, []string{"Красный", "Синий", "Зелёный", "Жёлтый"}, q.Options)
	assert.Nil(t, store.pickedCategory)
}

func TestBuildQuestionCategoryScope(t *testing.T) {
	store := &fakeQuizStore{
		word: models.QuizWord{WordID: 1, OriginalWord: "I", TranslationID: 2, Translation: "Я"},
	}
	quiz := NewQuiz(store, 4)

	categoryID := int64(5)
	q, err := quiz.BuildQuestion(context.Background(), 1, &categoryID)
	require.NoError(t, err)

	require.NotNil(t, store.pickedCategory)
	assert.Equal(t, int64(5), *store.pickedCategory)
	// correct answer always present even without distractors
	assert.Equal(t, []string{"Я"}, q.Options)
}

func TestBuildQuestionNoWords(t *testing.T) {
	store := &fakeQuizStore{wordErr: storage.ErrNotFound}
	quiz := NewQuiz(store, 4)

	_, err := quiz.BuildQuestion(context.Background(), 1, nil)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCheckAnswerCaseSensitive(t *testing.T) {
	quiz := NewQuiz(&fakeQuizStore{}, 4)
	q := Question{Answer: "Красный"}

	assert.True(t, quiz.CheckAnswer(q, "Красный"))
	assert.False(t, quiz.CheckAnswer(q, "красный"))
	assert.False(t, quiz.CheckAnswer(q, "Красный "))
}

func TestRecordAnswer(t *testing.T) {
	store := &fakeQuizStore{}
	quiz := NewQuiz(store, 4)
	q := Question{WordID: 10, TranslationID: 20}

	require.NoError(t, quiz.RecordAnswer(context.Background(), 1, q, true))
	require.Len(t, store.recorded, 1)
	assert.Equal(t, int64(1), store.recorded[0].UserID)
	assert.True(t, store.recorded[0].IsCorrect)
}
