// Package browse provides the main view: a search input above the item
// table, with the fetch indicator in the status bar.
package browse

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/components/table"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driving"
)

// View is the browse view. Every state change goes through the browser
// as an intent; the view only renders snapshots.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	table     *table.ItemTable
	statusbar *status.Bar

	browser driving.ListBrowser
	ctx     context.Context

	width      int
	height     int
	ready      bool
	focusInput bool // true = typing a term, false = navigating rows
}

// NewView creates a new browse view.
func NewView(s *styles.Styles, km *keymap.KeyMap, browser driving.ListBrowser) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		table:      table.NewItemTable(s),
		statusbar:  status.NewBar(s, km),
		browser:    browser,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
	v.refresh()
	return v
}

// WithContext sets the context passed to fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FetchCompleted:
		if v.browser != nil {
			v.browser.Dispatch(msg.Completed)
		}
		v.refresh()
		return v, nil

	case messages.SearchTerm:
		v.input.SetValue(msg.Term)
		return v, v.Search(msg.Term)

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		return v.handleInputKey(msg)
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Focus):
		return v, v.focus()

	case keymap.Matches(keyStr, v.keymap.Up):
		v.table.MoveUp()

	case keymap.Matches(keyStr, v.keymap.Down):
		v.table.MoveDown()

	case keymap.Matches(keyStr, v.keymap.Dismiss):
		v.dismissSelected()

	case keymap.Matches(keyStr, v.keymap.Open):
		v.showSelectedURL()

	case keymap.Matches(keyStr, v.keymap.Help):
		return v, changeView(messages.ViewHelp)

	case keymap.Matches(keyStr, v.keymap.History):
		return v, changeView(messages.ViewHistory)

	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	default:
		if key, ok := v.keymap.SortKeyFor(keyStr); ok {
			v.dispatch(domain.SortBy{Key: key})
		}
	}
	return v, nil
}

// handleInputKey processes keys while the input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Submit):
		// Submit is disabled for a blank term.
		if !v.input.Submittable() {
			return v, nil
		}
		return v, v.Search(v.input.Term())

	case keymap.Matches(msg.String(), v.keymap.Back):
		v.blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// Search submits term and returns the command that runs the request.
func (v *View) Search(term string) tea.Cmd {
	if v.browser == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoBrowser} }
	}

	req := v.browser.Dispatch(domain.SubmitSearch{Term: term})
	v.refresh()
	if req == nil {
		return nil
	}
	v.blur()

	browser, ctx, r := v.browser, v.ctx, *req
	return func() tea.Msg {
		return messages.FetchCompleted{Completed: browser.Run(ctx, r)}
	}
}

func (v *View) dismissSelected() {
	item := v.table.SelectedItem()
	if item == nil {
		return
	}
	v.dispatch(domain.RemoveItem{ObjectID: item.ObjectID})
}

func (v *View) showSelectedURL() {
	item := v.table.SelectedItem()
	switch {
	case item == nil:
		return
	case item.URL == "":
		v.statusbar.SetMessage("no link")
	default:
		v.statusbar.SetMessage(item.URL)
	}
}

// dispatch applies a synchronous intent and re-renders.
func (v *View) dispatch(intent domain.Intent) {
	if v.browser == nil {
		return
	}
	v.browser.Dispatch(intent)
	v.refresh()
}

// refresh copies the browser snapshot into the components.
func (v *View) refresh() {
	if v.browser == nil {
		return
	}
	snap := v.browser.Snapshot()
	v.table.SetItems(snap.Items, snap.Sort)
	v.statusbar.SetFetchState(snap.Fetch)
	v.statusbar.SetItemCount(snap.Count())
	if snap.Fetch.Loading() {
		v.statusbar.SetMessage("")
	}
}

func (v *View) focus() tea.Cmd {
	v.focusInput = true
	return v.input.Focus()
}

func (v *View) blur() {
	v.focusInput = false
	v.input.Blur()
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

// View renders the browse view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := v.styles.Title.Render("hitlist")
	if v.browser != nil {
		if s := v.browser.Snapshot().Sort; s.Key != domain.SortNone {
			header += v.styles.Muted.Render("  sorted by " + s.Key.Label())
		}
	}

	sections := []string{
		header, "",
		v.input.View(), "",
		v.table.View(), "",
		v.statusbar.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.table.SetDimensions(width, height-9) // header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input value.
func (v *View) Query() string {
	return v.input.Value()
}

// Items returns the displayed rows.
func (v *View) Items() []domain.Item {
	return v.table.Items()
}

// SelectedItem returns the highlighted row, or nil.
func (v *View) SelectedItem() *domain.Item {
	return v.table.SelectedItem()
}

// StatusState returns the fetch indicator state.
func (v *View) StatusState() status.State {
	return v.statusbar.State()
}

// StatusMessage returns the transient status message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
