package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Term string `json:"term" jsonschema:"the term to search Hacker News for"`
}

// SortInput is the input schema for the sort tool.
type SortInput struct {
	Key string `json:"key" jsonschema:"sort key: NONE, TITLE, AUTHOR, COMMENT or POINT. Repeating the active key flips the direction"`
}

// RemoveInput is the input schema for the remove_item tool.
type RemoveInput struct {
	ObjectID string `json:"object_id" jsonschema:"objectID of the item to drop from the list"`
}

// ViewOutput is the list as currently displayed.
type ViewOutput struct {
	Term      string       `json:"term"`
	Status    string       `json:"status"`
	Error     string       `json:"error,omitempty"`
	Sort      string       `json:"sort"`
	Ascending bool         `json:"ascending"`
	Count     int          `json:"count"`
	Items     []ItemOutput `json:"items"`
}

// ItemOutput represents a single list entry.
type ItemOutput struct {
	ObjectID    string `json:"object_id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
	Points      int    `json:"points"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search Hacker News and replace the list with the results",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sort",
		Description: "Sort the current list by a column",
	}, s.handleSort)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_item",
		Description: "Remove an item from the current list",
	}, s.handleRemove)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, ViewOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Browser.Fetch(ctx, input.Term); err != nil {
		return nil, ViewOutput{}, fmt.Errorf("search %q: %w", input.Term, err)
	}
	return nil, toViewOutput(s.ports.Browser.Snapshot()), nil
}

// handleSort handles the sort tool invocation.
func (s *Server) handleSort(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SortInput,
) (*mcp.CallToolResult, ViewOutput, error) {
	key, err := domain.ParseSortKey(input.Key)
	if err != nil {
		return nil, ViewOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ports.Browser.Dispatch(domain.SortBy{Key: key})
	return nil, toViewOutput(s.ports.Browser.Snapshot()), nil
}

// handleRemove handles the remove_item tool invocation. Unknown IDs
// leave the list unchanged.
func (s *Server) handleRemove(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RemoveInput,
) (*mcp.CallToolResult, ViewOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ports.Browser.Dispatch(domain.RemoveItem{ObjectID: input.ObjectID})
	return nil, toViewOutput(s.ports.Browser.Snapshot()), nil
}

func toViewOutput(view domain.ViewState) ViewOutput {
	out := ViewOutput{
		Term:      view.Fetch.Term,
		Status:    view.Fetch.Status.String(),
		Sort:      view.Sort.Key.String(),
		Ascending: view.Sort.Ascending(),
		Count:     view.Count(),
		Items:     make([]ItemOutput, len(view.Items)),
	}
	if view.Fetch.Err != nil {
		out.Error = view.Fetch.Err.Error()
	}
	for i, item := range view.Items {
		out.Items[i] = toItemOutput(item)
	}
	return out
}

func toItemOutput(item domain.Item) ItemOutput {
	return ItemOutput{
		ObjectID:    item.ObjectID,
		Title:       item.Title,
		URL:         item.URL,
		Author:      item.Author,
		NumComments: item.NumComments,
		Points:      item.Points,
	}
}
