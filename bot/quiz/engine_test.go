package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibot/bot/models"
	"lexibot/bot/service"
	"lexibot/bot/storage"
)

type fakeStore struct {
	word        models.QuizWord
	wordErr     error
	distractors []string
	recordErr   error
	addErr      error
	deleteErr   error

	pickCalls int
	recorded  []bool
	added     [][3]string
	deleted   []string
}

func (f *fakeStore) PickWord(_ context.Context, _ int64, _ *int64) (models.QuizWord, error) {
	f.pickCalls++
	if f.wordErr != nil {
		return models.QuizWord{}, f.wordErr
	}
	return f.word, nil
}

func (f *fakeStore) PickDistractors(_ context.Context, _, _ int64, limit uint64) ([]string, error) {
	if uint64(len(f.distractors)) > limit {
		return f.distractors[:limit], nil
	}
	return f.distractors, nil
}

func (f *fakeStore) RecordAnswer(_ context.Context, _, _, _ int64, isCorrect bool) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, isCorrect)
	return nil
}

func (f *fakeStore) ListCategories(_ context.Context) ([]models.Category, error) {
	return nil, nil
}

func (f *fakeStore) AddWord(_ context.Context, _ int64, original, translation, example string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, [3]string{original, translation, example})
	return nil
}

func (f *fakeStore) DeleteWord(_ context.Context, _ int64, original string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, original)
	return nil
}

type recordingView struct {
	calls []string
}

func (v *recordingView) record(call string) error {
	v.calls = append(v.calls, call)
	return nil
}

func (v *recordingView) Menu() error                       { return v.record("menu") }
func (v *recordingView) Question(q service.Question) error { return v.record("question:" + q.Prompt) }
func (v *recordingView) Correct() error                    { return v.record("correct") }
func (v *recordingView) Retry(attempt, max int) error {
	return v.record(fmt.Sprintf("retry:%d/%d", attempt, max))
}
func (v *recordingView) Reveal(answer string) error { return v.record("reveal:" + answer) }
func (v *recordingView) NoWords(inCategory bool) error {
	if inCategory {
		return v.record("nowords:category")
	}
	return v.record("nowords")
}
func (v *recordingView) PromptOriginal() error    { return v.record("prompt_original") }
func (v *recordingView) PromptTranslation() error { return v.record("prompt_translation") }
func (v *recordingView) PromptExample() error     { return v.record("prompt_example") }
func (v *recordingView) WordAdded() error         { return v.record("word_added") }
func (v *recordingView) WordAddFailed() error     { return v.record("word_add_failed") }
func (v *recordingView) PromptDelete() error      { return v.record("prompt_delete") }
func (v *recordingView) WordDeleted() error       { return v.record("word_deleted") }
func (v *recordingView) WordNotFound() error      { return v.record("word_not_found") }
func (v *recordingView) Failure() error           { return v.record("failure") }

func newEngine(store *fakeStore) (*Engine, *Sessions) {
	sessions := NewSessions()
	eng := NewEngine(service.NewQuiz(store, 4), service.NewVocab(store), sessions, 2)
	return eng, sessions
}

func redWord() models.QuizWord {
	return models.QuizWord{WordID: 10, OriginalWord: "Red", TranslationID: 20, Translation: "Красный"}
}

func TestBeginQuizIssuesQuestion(t *testing.T) {
	store := &fakeStore{word: redWord(), distractors: []string{"Синий", "Зелёный", "Жёлтый"}}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginQuiz(context.Background(), 100, 1, nil, view))

	assert.Equal(t, []string{"question:Red"}, view.calls)
	sess, ok := sessions.Get(100)
	require.True(t, ok)
	assert.Equal(t, StateAwaitingAnswer, sess.State)
	assert.Equal(t, "Красный", sess.Question.Answer)
	assert.Zero(t, sess.Attempts)
}

func TestBeginQuizNoWords(t *testing.T) {
	store := &fakeStore{wordErr: storage.ErrNotFound}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	categoryID := int64(3)
	require.NoError(t, eng.BeginQuiz(context.Background(), 100, 1, &categoryID, view))

	assert.Equal(t, []string{"nowords:category", "menu"}, view.calls)
	assert.False(t, sessions.InProgress(100))
}

func TestCorrectAnswerAdvances(t *testing.T) {
	store := &fakeStore{word: redWord()}
	eng, _ := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginQuiz(context.Background(), 100, 1, nil, view))
	handled, err := eng.HandleInput(context.Background(), 100, 1, "Красный", view)
	require.NoError(t, err)
	assert.True(t, handled)

	assert.Equal(t, []string{"question:Red", "correct", "question:Red"}, view.calls)
	assert.Equal(t, []bool{true}, store.recorded)
	assert.Equal(t, 2, store.pickCalls)
}

func TestWrongAnswerRetriesThenReveals(t *testing.T) {
	store := &fakeStore{word: redWord()}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginQuiz(context.Background(), 100, 1, nil, view))

	handled, err := eng.HandleInput(context.Background(), 100, 1, "Синий", view)
	require.NoError(t, err)
	assert.True(t, handled)
	sess, _ := sessions.Get(100)
	assert.Equal(t, 1, sess.Attempts)
	assert.Equal(t, "Красный", sess.Question.Answer)

	handled, err = eng.HandleInput(context.Background(), 100, 1, "Жёлтый", view)
	require.NoError(t, err)
	assert.True(t, handled)

	assert.Equal(t, []string{"question:Red", "retry:1/2", "reveal:Красный", "menu"}, view.calls)
	assert.Equal(t, []bool{false}, store.recorded)
	assert.False(t, sessions.InProgress(100))
}

func TestAnswerMatchingIsCaseSensitive(t *testing.T) {
	store := &fakeStore{word: redWord()}
	eng, _ := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginQuiz(context.Background(), 100, 1, nil, view))
	_, err := eng.HandleInput(context.Background(), 100, 1, "красный", view)
	require.NoError(t, err)

	assert.Contains(t, view.calls, "retry:1/2")
	assert.NotContains(t, view.calls, "correct")
}

func TestRecordFailureKeepsSession(t *testing.T) {
	store := &fakeStore{word: redWord()}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginQuiz(context.Background(), 100, 1, nil, view))
	store.recordErr = errors.New("db down")

	_, err := eng.HandleInput(context.Background(), 100, 1, "Красный", view)
	require.Error(t, err)

	sess, ok := sessions.Get(100)
	require.True(t, ok)
	assert.Equal(t, StateAwaitingAnswer, sess.State)
	assert.Equal(t, "Красный", sess.Question.Answer)
}

func TestCancelDropsDialog(t *testing.T) {
	store := &fakeStore{word: redWord()}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginQuiz(context.Background(), 100, 1, nil, view))
	require.NoError(t, eng.Cancel(100, view))

	assert.False(t, sessions.InProgress(100))
	assert.Equal(t, []string{"question:Red", "menu"}, view.calls)
	assert.Empty(t, store.recorded)
}

func TestAddWordDialog(t *testing.T) {
	store := &fakeStore{}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginAdd(100, view))
	for _, input := range []string{"Cat", "Кот", "The cat sat on the mat."} {
		handled, err := eng.HandleInput(context.Background(), 100, 1, input, view)
		require.NoError(t, err)
		assert.True(t, handled)
	}

	require.Len(t, store.added, 1)
	assert.Equal(t, [3]string{"Cat", "Кот", "The cat sat on the mat."}, store.added[0])
	assert.Equal(t, []string{"prompt_original", "prompt_translation", "prompt_example", "word_added", "menu"}, view.calls)
	assert.False(t, sessions.InProgress(100))
}

func TestAddWordFailureEndsDialog(t *testing.T) {
	store := &fakeStore{addErr: errors.New("db down")}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginAdd(100, view))
	for _, input := range []string{"Cat", "Кот", "example"} {
		_, err := eng.HandleInput(context.Background(), 100, 1, input, view)
		require.NoError(t, err)
	}

	assert.Contains(t, view.calls, "word_add_failed")
	assert.False(t, sessions.InProgress(100))
}

func TestDeleteWordDialog(t *testing.T) {
	store := &fakeStore{}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginDelete(100, view))
	handled, err := eng.HandleInput(context.Background(), 100, 1, "Cat", view)
	require.NoError(t, err)
	assert.True(t, handled)

	assert.Equal(t, []string{"Cat"}, store.deleted)
	assert.Equal(t, []string{"prompt_delete", "word_deleted", "menu"}, view.calls)
	assert.False(t, sessions.InProgress(100))
}

func TestDeleteWordMiss(t *testing.T) {
	store := &fakeStore{deleteErr: storage.ErrNotFound}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginDelete(100, view))
	_, err := eng.HandleInput(context.Background(), 100, 1, "Ghost", view)
	require.NoError(t, err)

	assert.Equal(t, []string{"prompt_delete", "word_not_found", "menu"}, view.calls)
	assert.False(t, sessions.InProgress(100))
}

func TestDeleteWordStoreFailure(t *testing.T) {
	store := &fakeStore{deleteErr: errors.New("db down")}
	eng, sessions := newEngine(store)
	view := &recordingView{}

	require.NoError(t, eng.BeginDelete(100, view))
	handled, err := eng.HandleInput(context.Background(), 100, 1, "Cat", view)
	require.NoError(t, err)
	assert.True(t, handled)

	assert.Equal(t, []string{"prompt_delete", "failure", "menu"}, view.calls)
	assert.NotContains(t, view.calls, "word_not_found")
	assert.False(t, sessions.InProgress(100))
}

func TestHandleInputWithoutDialog(t *testing.T) {
	eng, _ := newEngine(&fakeStore{})
	view := &recordingView{}

	handled, err := eng.HandleInput(context.Background(), 100, 1, "hello", view)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Empty(t, view.calls)
}
