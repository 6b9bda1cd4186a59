package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/custodia-labs/hitlist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hitlist/internal/core/domain"
	coreservices "github.com/custodia-labs/hitlist/internal/core/services"
)

// stubSource implements driven.ItemSource for command tests.
type stubSource struct {
	items []domain.Item
	err   error

	mu    sync.Mutex
	terms []string
}

func (s *stubSource) Search(_ context.Context, term string) ([]domain.Item, error) {
	s.mu.Lock()
	s.terms = append(s.terms, term)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return domain.CloneItems(s.items), nil
}

func (s *stubSource) searched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.terms...)
}

func reactItems() []domain.Item {
	return []domain.Item{
		{Title: "React", Author: "jordwalke", NumComments: 3, Points: 4, ObjectID: "0", URL: "https://react.dev"},
		{Title: "Redux", Author: "gaearon", NumComments: 2, Points: 5, ObjectID: "1"},
		{Title: "Angular", Author: "misko", NumComments: 9, Points: 1, ObjectID: "2"},
	}
}

// testEnv holds the services installed for one test.
type testEnv struct {
	source  *stubSource
	browser *coreservices.Browser
	history *memory.HistoryStore
	state   *memory.StateStore
}

// setupTestServices installs services backed by source and in-memory stores.
func setupTestServices(t *testing.T, source *stubSource) *testEnv {
	t.Helper()

	history := memory.NewHistoryStore(0)
	state := memory.NewStateStore()
	browser := coreservices.NewBrowser(coreservices.NewFetchController(source, coreservices.NewListStore()), history)
	browser.SetStateStore(state)

	SetServices(&Services{
		Browser:  browser,
		History:  coreservices.NewHistoryService(history),
		LastTerm: browser.LastTerm,
	})
	t.Cleanup(func() { SetServices(nil) })

	return &testEnv{source: source, browser: browser, history: history, state: state}
}

// execute runs the root command with args against an empty home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	searchSort = ""
	searchReverse = false
	searchHide = nil
	searchJSON = false
	historyLimit = 20
	historyClear = false
	historyJSON = false
	cfgFile = ""
}

func newBrowserFor(source *stubSource) *coreservices.Browser {
	return coreservices.NewBrowser(coreservices.NewFetchController(source, coreservices.NewListStore()), nil)
}
