package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// mockItemSource implements driven.ItemSource for testing.
type mockItemSource struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.Item, error)

	mu    sync.Mutex
	terms []string
}

func (m *mockItemSource) Search(ctx context.Context, term string) ([]domain.Item, error) {
	m.mu.Lock()
	m.terms = append(m.terms, term)
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term)
	}
	return []domain.Item{}, nil
}

func (m *mockItemSource) Terms() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.terms...)
}

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	records   []domain.SearchRecord
	recordErr error
}

func (m *mockHistoryStore) Record(_ context.Context, rec domain.SearchRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockHistoryStore) Recent(_ context.Context, limit int) ([]domain.SearchRecord, error) {
	out := make([]domain.SearchRecord, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0; i-- {
		out = append(out, m.records[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	m.records = nil
	return nil
}

// mockStateStore implements driven.StateStore for testing.
type mockStateStore struct {
	term    string
	sort    domain.SortState
	saveErr error
}

func (m *mockStateStore) LastTerm() string { return m.term }

func (m *mockStateStore) SetLastTerm(term string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.term = term
	return nil
}

func (m *mockStateStore) LastSort() domain.SortState { return m.sort }

func (m *mockStateStore) SetLastSort(state domain.SortState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sort = state
	return nil
}

func (m *mockStateStore) Path() string { return "mock://state.toml" }

var errNetwork = errors.New("connection refused")

// reactItems mirrors the two-item fixture used throughout the tests.
func reactItems() []domain.Item {
	return []domain.Item{
		{
			Title:       "React",
			URL:         "https://reactjs.org/",
			Author:      "Jordan Walke",
			NumComments: 3,
			Points:      4,
			ObjectID:    "0",
		},
		{
			Title:       "Redux",
			URL:         "https://redux.js.org/",
			Author:      "Dan Abramov, Andrew Clark",
			NumComments: 2,
			Points:      5,
			ObjectID:    "1",
		},
	}
}

func objectIDs(items []domain.Item) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ObjectID
	}
	return ids
}
