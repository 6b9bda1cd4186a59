package mcp

import (
	"github.com/custodia-labs/hitlist/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Browser owns the list state and runs searches.
	Browser driving.ListBrowser

	// History lists recent searches. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Browser == nil {
		return ErrMissingBrowser
	}
	return nil
}
