// Package tui provides an interactive terminal user interface for hitlist.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/hitlist/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Browser owns the list state and runs searches.
	Browser driving.ListBrowser

	// History lists recent searches. Optional.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(browser driving.ListBrowser, history driving.HistoryService) *Ports {
	return &Ports{
		Browser: browser,
		History: history,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Browser == nil {
		return ErrMissingBrowser
	}
	return nil
}
