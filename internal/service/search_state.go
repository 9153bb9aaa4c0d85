package service

import (
	"sync"

	"core/internal/model"
)

// SearchStateStore holds the last-applied filter parameters per session. Both
// the chat parser and the explicit listing filters write through it; the
// listing page reads it to pre-populate its controls. Writes are last-wins
// shallow merges with no conflict detection.
type SearchStateStore struct {
	mu       sync.RWMutex
	sessions map[string]model.SearchState
}

// NewSearchStateStore creates an empty store
func NewSearchStateStore() *SearchStateStore {
	return &SearchStateStore{
		sessions: make(map[string]model.SearchState),
	}
}

// State returns the session's current state, initializing it to the canonical
// defaults on first access.
func (s *SearchStateStore) State(sessionID string) model.SearchState {
	s.mu.RLock()
	state, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return model.DefaultSearchState()
	}
	return state
}

// Update shallow-merges the patch over the session's state and returns the
// result.
func (s *SearchStateStore) Update(sessionID string, update model.SearchStateUpdate) model.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		state = model.DefaultSearchState()
	}
	state = state.Merge(update)
	s.sessions[sessionID] = state
	return state
}

// Reset restores the session to the canonical default state.
func (s *SearchStateStore) Reset(sessionID string) model.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := model.DefaultSearchState()
	s.sessions[sessionID] = state
	return state
}
