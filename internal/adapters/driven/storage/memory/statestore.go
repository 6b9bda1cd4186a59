package memory

import (
	"sync"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is an in-memory implementation of driven.StateStore.
// State lives for the lifetime of the process.
type StateStore struct {
	mu   sync.RWMutex
	term string
	sort domain.SortState
}

// NewStateStore creates a new in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{}
}

// LastTerm returns the last submitted search term.
func (s *StateStore) LastTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term
}

// SetLastTerm stores the last submitted search term.
func (s *StateStore) SetLastTerm(term string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.term = term
	return nil
}

// LastSort returns the last sort state.
func (s *StateStore) LastSort() domain.SortState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}

// SetLastSort stores the sort state.
func (s *StateStore) SetLastSort(state domain.SortState) error {
	if !state.Key.Valid() {
		return domain.ErrUnknownSortKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = state
	return nil
}

// Path returns a placeholder since nothing is written to disk.
func (s *StateStore) Path() string {
	return "memory"
}
