// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back leaves the input or returns to the previous view.
	Back key.Binding

	// Focus moves focus to the search input.
	Focus key.Binding

	// Submit runs the search in the input.
	Submit key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Dismiss removes the selected row.
	Dismiss key.Binding

	// Open shows the selected row's URL.
	Open key.Binding

	// History shows recent searches.
	History key.Binding

	// Clear wipes the search history.
	Clear key.Binding

	// SortNone restores arrival order.
	SortNone key.Binding

	// SortTitle sorts by title.
	SortTitle key.Binding

	// SortAuthor sorts by author.
	SortAuthor key.Binding

	// SortComments sorts by comment count.
	SortComments key.Binding

	// SortPoints sorts by points.
	SortPoints key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "dismiss"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "show url"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear history"),
		),
		SortNone: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "no sort"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "title"),
		),
		SortAuthor: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "author"),
		),
		SortComments: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comments"),
		),
		SortPoints: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "points"),
		),
	}
}

// SortKeyFor returns the sort key bound to keyStr.
func (k *KeyMap) SortKeyFor(keyStr string) (domain.SortKey, bool) {
	bindings := []struct {
		binding key.Binding
		key     domain.SortKey
	}{
		{k.SortNone, domain.SortNone},
		{k.SortTitle, domain.SortTitle},
		{k.SortAuthor, domain.SortAuthor},
		{k.SortComments, domain.SortComment},
		{k.SortPoints, domain.SortPoint},
	}
	for _, b := range bindings {
		if Matches(keyStr, b.binding) {
			return b.key, true
		}
	}
	return domain.SortNone, false
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Help, k.Quit}
}

// ResultsHelp returns keybindings shown while rows are listed.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Dismiss, k.Open, k.Help}
}

// SortHelp returns the sort keybindings.
func (k *KeyMap) SortHelp() []key.Binding {
	return []key.Binding{k.SortTitle, k.SortAuthor, k.SortComments, k.SortPoints, k.SortNone}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Submit, k.Back},
		{k.Up, k.Down, k.Dismiss, k.Open},
		k.SortHelp(),
		{k.History, k.Clear, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
