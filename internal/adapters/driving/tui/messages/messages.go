// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// FetchCompleted carries a finished request back to the event loop.
// The browser decides whether it is still the latest one.
type FetchCompleted struct {
	Completed domain.FetchCompleted
}

// HistoryLoaded carries recent searches from the history service.
type HistoryLoaded struct {
	Records []domain.SearchRecord
	Err     error
}

// HistoryCleared signals the history was wiped.
type HistoryCleared struct {
	Err error
}

// SearchTerm asks the browse view to search for Term, e.g. when a
// history entry is picked.
type SearchTerm struct {
	Term string
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBrowse is the search input and item table.
	ViewBrowse ViewType = iota
	// ViewHistory lists recent searches.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBrowse:
		return "browse"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
