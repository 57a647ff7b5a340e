// Package quiz drives the dialog state machine of the vocabulary trainer.
package quiz

import (
	"sync"

	"lexibot/bot/service"
)

// State names a dialog phase. A chat is in exactly one state at a time.
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingAnswer State = "awaiting_answer"
	StateAddOriginal    State = "add_original"
	StateAddTranslation State = "add_translation"
	StateAddExample     State = "add_example"
	StateDelete         State = "delete"
)

// Session is the per-chat dialog state. Sessions are keyed by chat so a
// group chat shares a single dialog.
type Session struct {
	State      State
	Question   service.Question
	CategoryID *int64
	Attempts   int

	// add dialog accumulators
	Original    string
	Translation string
}

// Sessions is an in-memory session store. Each Put replaces the chat's
// session as a whole, so a turn is applied atomically.
type Sessions struct {
	mu     sync.RWMutex
	byChat map[int64]Session
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{byChat: make(map[int64]Session)}
}

// Get returns the chat's session if one exists.
func (s *Sessions) Get(chatID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.byChat[chatID]
	return sess, ok
}

// Put replaces the chat's session.
func (s *Sessions) Put(chatID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byChat[chatID] = sess
}

// Reset drops the chat's session, returning the chat to idle.
func (s *Sessions) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byChat, chatID)
}

// InProgress reports whether the chat has an active dialog.
func (s *Sessions) InProgress(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.byChat[chatID]
	return ok && sess.State != StateIdle
}
