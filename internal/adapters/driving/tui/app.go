package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/views/browse"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/views/history"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	browseView  *browse.View
	historyView *history.View

	currentView messages.ViewType

	// initialTerm is searched for when the program starts.
	initialTerm string

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		browseView:  browse.NewView(s, km, ports.Browser),
		historyView: history.NewView(s, km, ports.History),
		currentView: messages.ViewBrowse,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.browseView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// WithInitialTerm searches for term as soon as the program starts.
func (a *App) WithInitialTerm(term string) *App {
	a.initialTerm = strings.TrimSpace(term)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("hitlist"),
		a.browseView.Init(),
	}
	if a.initialTerm != "" {
		term := a.initialTerm
		cmds = append(cmds, func() tea.Msg { return messages.SearchTerm{Term: term} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewBrowse:
			a.browseView, cmd = a.browseView.Update(msg)
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewHelp:
			// Any of esc, ? or q leaves help
			if msg.Type == tea.KeyEsc || keymap.Matches(msg.String(), a.keymap.Help) ||
				keymap.Matches(msg.String(), a.keymap.Quit) {
				a.currentView = messages.ViewBrowse
			}
		}
		return a, cmd

	// Fetch completions always go to the browse view so the browser
	// sees them even while another view is shown.
	case messages.FetchCompleted:
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.SearchTerm:
		a.currentView = messages.ViewBrowse
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded, messages.HistoryCleared:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewHistory {
			return a, a.historyView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the active view.
	if a.currentView == messages.ViewBrowse {
		a.browseView, cmd = a.browseView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.browseView.View()
	}
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")

	sections := []string{"Search", "Rows", "Sort (press again to reverse)", "Other"}
	for i, group := range a.keymap.FullHelp() {
		b.WriteString("\n")
		b.WriteString(a.styles.Subtitle.Render(sections[i]))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// BrowseView returns the browse view.
func (a *App) BrowseView() *browse.View {
	return a.browseView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.browseView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
