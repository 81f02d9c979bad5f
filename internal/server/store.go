package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vhscom/calc/internal/calc"
	"github.com/vhscom/calc/internal/session"
)

// Store keeps one isolated calculator state per session ID.
type Store struct {
	mu       sync.Mutex
	ctrl     session.Controller
	sessions map[string]session.State
}

// NewStore creates an empty store whose sessions are driven by ctrl.
func NewStore(ctrl session.Controller) *Store {
	return &Store{
		ctrl:     ctrl,
		sessions: make(map[string]session.State),
	}
}

// SetEvaluator changes the evaluator used by every later press.
func (s *Store) SetEvaluator(e calc.Evaluator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.Evaluator = e
}

// Create starts a new, empty session.
func (s *Store) Create() (string, session.State) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = session.State{}
	return id, session.State{}
}

// Get returns the state of a session.
func (s *Store) Get(id string) (session.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	return st, ok
}

// Press applies b to a session and stores the result.
func (s *Store) Press(id string, b session.Button) (session.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok {
		return session.State{}, false
	}
	st = s.ctrl.Press(st, b)
	s.sessions[id] = st
	return st, true
}

// Delete ends a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
