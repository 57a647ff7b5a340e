package quiz

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsLifecycle(t *testing.T) {
	sessions := NewSessions()

	assert.False(t, sessions.InProgress(1))

	sessions.Put(1, Session{State: StateDelete})
	assert.True(t, sessions.InProgress(1))
	assert.False(t, sessions.InProgress(2))

	sess, ok := sessions.Get(1)
	require.True(t, ok)
	assert.Equal(t, StateDelete, sess.State)

	sessions.Reset(1)
	assert.False(t, sessions.InProgress(1))
	_, ok = sessions.Get(1)
	assert.False(t, ok)
}

func TestSessionsPutReplacesWhole(t *testing.T) {
	sessions := NewSessions()

	sessions.Put(1, Session{State: StateAddTranslation, Original: "Cat"})
	sessions.Put(1, Session{State: StateDelete})

	sess, _ := sessions.Get(1)
	assert.Equal(t, StateDelete, sess.State)
	assert.Empty(t, sess.Original, "stale dialog fields must not leak between turns")
}

func TestIdleSessionNotInProgress(t *testing.T) {
	sessions := NewSessions()
	sessions.Put(1, Session{State: StateIdle})
	assert.False(t, sessions.InProgress(1))
}

func TestSessionsConcurrentAccess(t *testing.T) {
	sessions := NewSessions()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			sessions.Put(chatID, Session{State: StateAwaitingAnswer})
			sessions.InProgress(chatID)
			sessions.Reset(chatID)
		}(int64(i % 4))
	}
	wg.Wait()
}
