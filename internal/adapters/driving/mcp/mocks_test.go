package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/services"
)

// mockItemSource is a mock implementation of driven.ItemSource.
type mockItemSource struct {
	items []domain.Item
	err   error
}

func (m *mockItemSource) Search(_ context.Context, _ string) ([]domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.CloneItems(m.items), nil
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	records []domain.SearchRecord
	err     error
}

func (m *mockHistoryService) Recent(_ context.Context, _ int) ([]domain.SearchRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

func testItems() []domain.Item {
	return []domain.Item{
		{Title: "React", Author: "jordwalke", NumComments: 3, Points: 4, ObjectID: "0", URL: "https://react.dev"},
		{Title: "Redux", Author: "gaearon", NumComments: 2, Points: 5, ObjectID: "1"},
		{Title: "Angular", Author: "misko", NumComments: 9, Points: 1, ObjectID: "2"},
	}
}

func newTestServer(source *mockItemSource, history *mockHistoryService) (*Server, error) {
	browser := services.NewBrowser(services.NewFetchController(source, services.NewListStore()), nil)
	ports := &Ports{Browser: browser}
	if history != nil {
		ports.History = history
	}
	return NewServer(ports)
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}
