package driven

import "github.com/custodia-labs/hitlist/internal/core/domain"

// StateStore remembers UI state between sessions.
// Implementations handle persistence (e.g., TOML files).
type StateStore interface {
	// LastTerm returns the last submitted search term, or "" if none.
	LastTerm() string

	// SetLastTerm stores the last submitted search term.
	// The value is persisted immediately.
	SetLastTerm(term string) error

	// LastSort returns the last sort state, the zero state if none.
	LastSort() domain.SortState

	// SetLastSort stores the sort key and direction.
	SetLastSort(state domain.SortState) error

	// Path returns the state file path.
	Path() string
}
