// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// Indicator texts.
const (
	LoadingText = "Loading ..."
	ErrorText   = "Something went wrong ..."
)

// State represents the fetch indicator shown on the left.
type State string

const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateError    State = "error"
	StateResolved State = "resolved"
)

// StateFor maps a fetch state to the indicator state.
func StateFor(fs domain.FetchState) State {
	switch fs.Status {
	case domain.FetchPending:
		return StateLoading
	case domain.FetchRejected:
		return StateError
	case domain.FetchResolved:
		return StateResolved
	default:
		return StateIdle
	}
}

// Bar displays the fetch indicator, a transient message and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	itemCount int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the indicator and message.
func (s *Bar) renderLeft() string {
	var indicator string
	switch s.state {
	case StateLoading:
		indicator = s.styles.Warning.Render(LoadingText)
	case StateError:
		indicator = s.styles.Error.Render(ErrorText)
	case StateResolved:
		indicator = s.styles.Normal.Render(fmt.Sprintf("%d items", s.itemCount))
	case StateIdle:
		indicator = s.styles.Muted.Render("Ready")
	}

	if s.message == "" {
		return indicator
	}
	return indicator + s.styles.Muted.Render("  "+s.message)
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.itemCount > 0 {
		bindings = s.keymap.ResultsHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetFetchState updates the indicator from a fetch state.
func (s *Bar) SetFetchState(fs domain.FetchState) {
	s.state = StateFor(fs)
}

// SetState sets the indicator state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the indicator state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a transient message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetItemCount sets the number of displayed items.
func (s *Bar) SetItemCount(count int) {
	s.itemCount = count
}

// ItemCount returns the number of displayed items.
func (s *Bar) ItemCount() int {
	return s.itemCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its initial state.
func (s *Bar) Clear() {
	s.state = StateIdle
	s.message = ""
	s.itemCount = 0
}
