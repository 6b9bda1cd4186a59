package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
	"github.com/custodia-labs/hitlist/internal/logger"
)

// StateFile is the state file name inside the state directory.
const StateFile = "state.toml"

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// stateDoc is the on-disk layout of state.toml.
type stateDoc struct {
	Search struct {
		LastTerm string `toml:"last_term"`
	} `toml:"search"`
	UI struct {
		LastSort     string `toml:"last_sort,omitempty"`
		LastReversed bool   `toml:"last_sort_reversed,omitempty"`
	} `toml:"ui"`
}

// StateStore is a file-based implementation of driven.StateStore using TOML.
// Every change is written through to disk.
type StateStore struct {
	mu       sync.RWMutex
	filePath string
	doc      stateDoc
}

// NewStateStore creates a new TOML-based state store.
// If dir is empty, defaults to ~/.hitlist/state.toml.
func NewStateStore(dir string) (*StateStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".hitlist")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	s := &StateStore{filePath: filepath.Join(dir, StateFile)}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// LastTerm returns the last submitted search term.
func (s *StateStore) LastTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Search.LastTerm
}

// SetLastTerm stores the last submitted search term and persists immediately.
func (s *StateStore) SetLastTerm(term string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Search.LastTerm = term
	return s.save()
}

// LastSort returns the last sort state. Unreadable keys fall back to
// the zero state.
func (s *StateStore) LastSort() domain.SortState {
	s.mu.RLock()
	name, reversed := s.doc.UI.LastSort, s.doc.UI.LastReversed
	s.mu.RUnlock()

	key, err := domain.ParseSortKey(name)
	if err != nil {
		logger.Debug("state: ignoring last_sort %q: %v", name, err)
		return domain.SortState{}
	}
	return domain.SortState{Key: key, Reversed: reversed && key != domain.SortNone}
}

// SetLastSort stores the sort state and persists immediately.
func (s *StateStore) SetLastSort(state domain.SortState) error {
	if !state.Key.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownSortKey, int(state.Key))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.UI.LastSort = state.Key.String()
	s.doc.UI.LastReversed = state.Reversed && state.Key != domain.SortNone
	return s.save()
}

// Load reads state from the TOML file. A missing file yields empty state.
func (s *StateStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = stateDoc{}
			return nil
		}
		return err
	}

	var loaded stateDoc
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}
	s.doc = loaded
	return nil
}

// save writes state to the TOML file (caller must hold lock).
func (s *StateStore) save() error {
	data, err := toml.Marshal(s.doc)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the state file path.
func (s *StateStore) Path() string {
	return s.filePath
}
