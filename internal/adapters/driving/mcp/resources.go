package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

const (
	uriScheme = "hitlist://"

	// historyLimit is how many searches the history resource lists.
	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "view",
		Name:        "view",
		Description: "The current result list, sorted as displayed",
		MIMEType:    "application/json",
	}, s.handleViewResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent searches, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "items/{objectId}",
		Name:        "item",
		Description: "One item of the current result list",
		MIMEType:    "application/json",
	}, s.handleItemResource)
}

// handleViewResource returns the current snapshot.
func (s *Server) handleViewResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	view := s.ports.Browser.Snapshot()
	s.mu.Unlock()

	return jsonResource(req.Params.URI, toViewOutput(view))
}

// handleHistoryResource returns recent searches. Without a history
// service the list is empty.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type recordInfo struct {
		Term       string    `json:"term"`
		Status     string    `json:"status"`
		Hits       int       `json:"hits"`
		Error      string    `json:"error,omitempty"`
		DurationMS int64     `json:"duration_ms"`
		At         time.Time `json:"at"`
	}

	infos := []recordInfo{}
	if s.ports.History != nil {
		records, err := s.ports.History.Recent(ctx, historyLimit)
		if err != nil {
			return nil, fmt.Errorf("listing history: %w", err)
		}
		for _, r := range records {
			infos = append(infos, recordInfo{
				Term:       r.Term,
				Status:     r.Status.String(),
				Hits:       r.Hits,
				Error:      r.Error,
				DurationMS: r.Duration.Milliseconds(),
				At:         r.At,
			})
		}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleItemResource returns one item of the current list.
func (s *Server) handleItemResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractObjectID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	s.mu.Lock()
	items := s.ports.Browser.Snapshot().Items
	s.mu.Unlock()

	i := domain.IndexOf(items, id)
	if i < 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, toItemOutput(items[i]))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractObjectID extracts the object ID from a URI like hitlist://items/{objectId}.
func extractObjectID(uri string) string {
	const prefix = uriScheme + "items/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
