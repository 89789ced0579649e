package chat

import (
	"sync"
	"time"

	"course-compass/internal/model"
)

// Session is one browser conversation. The transcript only grows.
type Session struct {
	ID        string
	CreatedAt time.Time

	turn sync.Mutex // held for a whole user turn

	mu    sync.RWMutex
	turns []model.Turn
}

// NewSession creates an empty session.
func NewSession(id string, createdAt time.Time) *Session {
	return &Session{ID: id, CreatedAt: createdAt}
}

// BeginTurn blocks until no other turn of this session is running. Call the
// returned func to finish the turn.
func (s *Session) BeginTurn() func() {
	s.turn.Lock()
	return s.turn.Unlock
}

// Append adds turns to the end of the transcript.
func (s *Session) Append(turns ...model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turns...)
}

// Snapshot returns a copy of the transcript.
func (s *Session) Snapshot() []model.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}
