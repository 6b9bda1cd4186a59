package browse

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/services"
)

// mockItemSource implements driven.ItemSource for testing.
type mockItemSource struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.Item, error)
}

func (m *mockItemSource) Search(ctx context.Context, term string) ([]domain.Item, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term)
	}
	return []domain.Item{}, nil
}

func reactItems() []domain.Item {
	return []domain.Item{
		{Title: "React", URL: "https://reactjs.org/", Author: "Jordan Walke", NumComments: 3, Points: 4, ObjectID: "0"},
		{Title: "Redux", URL: "https://redux.js.org/", Author: "Dan Abramov, Andrew Clark", NumComments: 2, Points: 5, ObjectID: "1"},
	}
}

func newTestView(t *testing.T, search func(ctx context.Context, term string) ([]domain.Item, error)) *View {
	t.Helper()
	source := &mockItemSource{SearchFunc: search}
	browser := services.NewBrowser(services.NewFetchController(source, nil), nil)
	v := NewView(nil, nil, browser)
	v.SetDimensions(120, 30)
	return v
}

func reactSearch(_ context.Context, _ string) ([]domain.Item, error) {
	return reactItems(), nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(keyRunes(string(r)))
	}
	return v
}

// submit types term, presses enter and runs the returned command.
func submit(t *testing.T, v *View, term string) *View {
	t.Helper()
	v = typeText(v, term)
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

func titles(items []domain.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Title
	}
	return out
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.True(t, v.InputFocused())
	assert.Equal(t, "Initialising...", v.View())
	assert.NotNil(t, v.Init())
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil)

	v, _ = v.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.True(t, v.Ready())
	assert.Contains(t, v.View(), "hitlist")
}

func TestView_SearchShowsItems(t *testing.T) {
	v := newTestView(t, reactSearch)

	v = submit(t, v, "react")

	assert.Equal(t, []string{"React", "Redux"}, titles(v.Items()))
	assert.Equal(t, status.StateResolved, v.StatusState())
	assert.False(t, v.InputFocused())
	assert.Contains(t, v.View(), "Redux")
}

func TestView_EnterOnBlankTermIsDisabled(t *testing.T) {
	calls := 0
	v := newTestView(t, func(context.Context, string) ([]domain.Item, error) {
		calls++
		return nil, nil
	})

	v = typeText(v, "  ")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Zero(t, calls)
	assert.True(t, v.InputFocused())
	assert.Equal(t, status.StateIdle, v.StatusState())
}

func TestView_LoadingKeepsRows(t *testing.T) {
	v := newTestView(t, reactSearch)
	v = submit(t, v, "react")

	v, _ = v.Update(keyRunes("/"))
	v = typeText(v, "x")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, status.StateLoading, v.StatusState())
	assert.Len(t, v.Items(), 2)
	assert.Contains(t, v.View(), "Loading ...")
}

func TestView_FailureShowsErrorAndKeepsRows(t *testing.T) {
	fail := false
	v := newTestView(t, func(context.Context, string) ([]domain.Item, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return reactItems(), nil
	})
	v = submit(t, v, "react")

	fail = true
	v, _ = v.Update(keyRunes("/"))
	v = submit(t, v, "!")

	assert.Equal(t, status.StateError, v.StatusState())
	assert.Contains(t, v.View(), "Something went wrong ...")
	assert.Len(t, v.Items(), 2)
}

func TestView_DismissSelected(t *testing.T) {
	v := newTestView(t, reactSearch)
	v = submit(t, v, "react")

	v, _ = v.Update(keyRunes("d"))

	assert.Equal(t, []string{"Redux"}, titles(v.Items()))

	v, _ = v.Update(keyRunes("x"))
	assert.Empty(t, v.Items())

	// Nothing left to dismiss.
	v, _ = v.Update(keyRunes("d"))
	assert.Empty(t, v.Items())
}

func TestView_SortKeys(t *testing.T) {
	v := newTestView(t, reactSearch)
	v = submit(t, v, "react")

	v, _ = v.Update(keyRunes("c"))
	assert.Equal(t, []string{"React", "Redux"}, titles(v.Items()))

	v, _ = v.Update(keyRunes("p"))
	assert.Equal(t, []string{"Redux", "React"}, titles(v.Items()))
	assert.Contains(t, v.View(), "Points ▼")

	// Pressing the active key again flips the direction.
	v, _ = v.Update(keyRunes("p"))
	assert.Equal(t, []string{"React", "Redux"}, titles(v.Items()))
	assert.Contains(t, v.View(), "Points ▲")

	v, _ = v.Update(keyRunes("0"))
	assert.Equal(t, []string{"React", "Redux"}, titles(v.Items()))

	// Arrival order has no direction to flip.
	v, _ = v.Update(keyRunes("0"))
	assert.Equal(t, []string{"React", "Redux"}, titles(v.Items()))
	assert.NotContains(t, v.View(), "sorted by")
}

func TestView_SelectionFollowsItemAcrossSort(t *testing.T) {
	v := newTestView(t, reactSearch)
	v = submit(t, v, "react")
	v, _ = v.Update(keyRunes("j")) // Redux

	v, _ = v.Update(keyRunes("p"))

	require.NotNil(t, v.SelectedItem())
	assert.Equal(t, "Redux", v.SelectedItem().Title)
}

func TestView_ShowURL(t *testing.T) {
	v := newTestView(t, func(context.Context, string) ([]domain.Item, error) {
		return []domain.Item{
			{Title: "React", URL: "https://reactjs.org/", ObjectID: "0"},
			{Title: "Ask HN", ObjectID: "1"},
		}, nil
	})
	v = submit(t, v, "react")

	v, _ = v.Update(keyRunes("o"))
	assert.Equal(t, "https://reactjs.org/", v.StatusMessage())

	v, _ = v.Update(keyRunes("j"))
	v, _ = v.Update(keyRunes("o"))
	assert.Equal(t, "no link", v.StatusMessage())
}

func TestView_LatestSearchWins(t *testing.T) {
	v := newTestView(t, func(_ context.Context, term string) ([]domain.Item, error) {
		return []domain.Item{{Title: term, ObjectID: term}}, nil
	})

	v = typeText(v, "slow")
	v, slowCmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(keyRunes("/"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	v = typeText(v, "fast")
	v, fastCmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, slowCmd)
	require.NotNil(t, fastCmd)

	v, _ = v.Update(fastCmd())
	v, _ = v.Update(slowCmd())

	assert.Equal(t, []string{"fast"}, titles(v.Items()))
	assert.Equal(t, status.StateResolved, v.StatusState())
}

func TestView_SearchTermMessage(t *testing.T) {
	v := newTestView(t, reactSearch)

	v, cmd := v.Update(messages.SearchTerm{Term: "react"})

	require.NotNil(t, cmd)
	assert.Equal(t, "react", v.Query())
	v, _ = v.Update(cmd())
	assert.Len(t, v.Items(), 2)
}

func TestView_EscLeavesInput(t *testing.T) {
	v := newTestView(t, reactSearch)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.InputFocused())

	v, _ = v.Update(keyRunes("/"))
	assert.True(t, v.InputFocused())
}

func TestView_NavigationKeysEmitViewChanges(t *testing.T) {
	v := newTestView(t, reactSearch)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	_, cmd := v.Update(keyRunes("?"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())

	_, cmd = v.Update(keyRunes("h"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHistory}, cmd())

	_, cmd = v.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())
}

func TestView_TypingQDoesNotQuit(t *testing.T) {
	v := newTestView(t, reactSearch)

	v, _ = v.Update(keyRunes("q"))

	assert.Equal(t, "q", v.Query())
}

func TestView_NoBrowser(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(80, 24)

	cmd := v.Search("react")
	require.NotNil(t, cmd)
	msg := cmd()

	errMsg, ok := msg.(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, ErrNoBrowser)

	v, _ = v.Update(msg)
	assert.Equal(t, status.StateError, v.StatusState())
}
