package quiz

import (
	"context"
	"errors"
	"strings"

	"lexibot/bot/service"
	"lexibot/bot/storage"
)

// defaultMaxAttempts is how many tries a user gets per question before
// the answer is revealed.
const defaultMaxAttempts = 2

// View renders engine outcomes to the user. The Telegram layer provides
// the production implementation; tests use a recording fake.
type View interface {
	Menu() error
	Question(q service.Question) error
	Correct() error
	Retry(attempt, max int) error
	Reveal(answer string) error
	NoWords(inCategory bool) error
	PromptOriginal() error
	PromptTranslation() error
	PromptExample() error
	WordAdded() error
	WordAddFailed() error
	PromptDelete() error
	WordDeleted() error
	WordNotFound() error
	Failure() error
}

// Engine executes dialog transitions over the session store.
type Engine struct {
	quiz        *service.Quiz
	vocab       *service.Vocab
	sessions    *Sessions
	maxAttempts int
}

// NewEngine wires the engine. maxAttempts <= 0 falls back to the default.
func NewEngine(quiz *service.Quiz, vocab *service.Vocab, sessions *Sessions, maxAttempts int) *Engine {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Engine{
		quiz:        quiz,
		vocab:       vocab,
		sessions:    sessions,
		maxAttempts: maxAttempts,
	}
}

// InProgress reports whether the chat has an active dialog.
func (e *Engine) InProgress(chatID int64) bool {
	return e.sessions.InProgress(chatID)
}

// Cancel aborts the chat's dialog without side effects and shows the menu.
func (e *Engine) Cancel(chatID int64, v View) error {
	e.sessions.Reset(chatID)
	return v.Menu()
}

// BeginQuiz issues the next question for the chat. When the scope holds no
// words the chat returns to idle with the menu shown. Other errors leave
// the session unchanged.
func (e *Engine) BeginQuiz(ctx context.Context, chatID, userID int64, categoryID *int64, v View) error {
	q, err := e.quiz.BuildQuestion(ctx, userID, categoryID)
	if errors.Is(err, storage.ErrNotFound) {
		e.sessions.Reset(chatID)
		if err := v.NoWords(categoryID != nil); err != nil {
			return err
		}
		return v.Menu()
	}
	if err != nil {
		return err
	}

	e.sessions.Put(chatID, Session{
		State:      StateAwaitingAnswer,
		Question:   q,
		CategoryID: categoryID,
	})
	return v.Question(q)
}

// BeginAdd starts the three step add-word dialog.
func (e *Engine) BeginAdd(chatID int64, v View) error {
	e.sessions.Put(chatID, Session{State: StateAddOriginal})
	return v.PromptOriginal()
}

// BeginDelete starts the delete-word dialog.
func (e *Engine) BeginDelete(chatID int64, v View) error {
	e.sessions.Put(chatID, Session{State: StateDelete})
	return v.PromptDelete()
}

// HandleInput advances the chat's dialog with the user's text. It returns
// false when no dialog is active so the caller can fall through to menu
// routing. Storage failures during a quiz leave the session unchanged.
func (e *Engine) HandleInput(ctx context.Context, chatID, userID int64, text string, v View) (bool, error) {
	sess, ok := e.sessions.Get(chatID)
	if !ok || sess.State == StateIdle {
		return false, nil
	}

	text = strings.TrimSpace(text)

	switch sess.State {
	case StateAwaitingAnswer:
		return true, e.handleAnswer(ctx, chatID, userID, sess, text, v)

	case StateAddOriginal:
		sess.Original = text
		sess.State = StateAddTranslation
		e.sessions.Put(chatID, sess)
		return true, v.PromptTranslation()

	case StateAddTranslation:
		sess.Translation = text
		sess.State = StateAddExample
		e.sessions.Put(chatID, sess)
		return true, v.PromptExample()

	case StateAddExample:
		// single AddWord call; the dialog ends regardless of outcome
		err := e.vocab.AddWord(ctx, userID, sess.Original, sess.Translation, text)
		e.sessions.Reset(chatID)
		if err != nil {
			if err := v.WordAddFailed(); err != nil {
				return true, err
			}
		} else {
			if err := v.WordAdded(); err != nil {
				return true, err
			}
		}
		return true, v.Menu()

	case StateDelete:
		err := e.vocab.DeleteWord(ctx, userID, text)
		e.sessions.Reset(chatID)
		switch {
		case err == nil:
			if err := v.WordDeleted(); err != nil {
				return true, err
			}
		case errors.Is(err, storage.ErrNotFound):
			if err := v.WordNotFound(); err != nil {
				return true, err
			}
		default:
			// a store failure is not a miss
			if err := v.Failure(); err != nil {
				return true, err
			}
		}
		return true, v.Menu()
	}

	return false, nil
}

func (e *Engine) handleAnswer(ctx context.Context, chatID, userID int64, sess Session, text string, v View) error {
	if e.quiz.CheckAnswer(sess.Question, text) {
		if err := e.quiz.RecordAnswer(ctx, userID, sess.Question, true); err != nil {
			return err
		}
		if err := v.Correct(); err != nil {
			return err
		}
		return e.BeginQuiz(ctx, chatID, userID, sess.CategoryID, v)
	}

	attempts := sess.Attempts + 1
	if attempts < e.maxAttempts {
		sess.Attempts = attempts
		e.sessions.Put(chatID, sess)
		return v.Retry(attempts, e.maxAttempts)
	}

	if err := e.quiz.RecordAnswer(ctx, userID, sess.Question, false); err != nil {
		return err
	}
	e.sessions.Reset(chatID)
	if err := v.Reveal(sess.Question.Answer); err != nil {
		return err
	}
	return v.Menu()
}
