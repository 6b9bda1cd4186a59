// Package history provides the recent searches view for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driving"
)

// DefaultLimit is how many records the view loads.
const DefaultLimit = 50

// ErrNoHistory indicates that no history service was provided.
var ErrNoHistory = errors.New("search history is not enabled")

// View lists recent searches. Picking one searches for its term again.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	history driving.HistoryService
	ctx     context.Context

	records      []domain.SearchRecord
	selected     int
	scrollOffset int
	width        int
	height       int
	loading      bool
	err          error
}

// NewView creates a new history view.
func NewView(s *styles.Styles, km *keymap.KeyMap, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keymap:  km,
		history: history,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for history calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the records.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.load()
}

func (v *View) load() tea.Cmd {
	history, ctx := v.history, v.ctx
	return func() tea.Msg {
		if history == nil {
			return messages.HistoryLoaded{Err: ErrNoHistory}
		}
		recs, err := history.Recent(ctx, DefaultLimit)
		return messages.HistoryLoaded{Records: recs, Err: err}
	}
}

func (v *View) clear() tea.Cmd {
	history, ctx := v.history, v.ctx
	return func() tea.Msg {
		if history == nil {
			return messages.HistoryCleared{Err: ErrNoHistory}
		}
		return messages.HistoryCleared{Err: history.Clear(ctx)}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.records = msg.Records
			v.selected = 0
			v.scrollOffset = 0
		}
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.load()
	}
	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.records)-1 {
			v.selected++
			v.adjustScroll()
		}
	case keymap.Matches(keyStr, v.keymap.Submit):
		if rec := v.SelectedRecord(); rec != nil {
			term := rec.Term
			return v, func() tea.Msg { return messages.SearchTerm{Term: term} }
		}
	case keymap.Matches(keyStr, v.keymap.Clear):
		return v, v.clear()
	case keymap.Matches(keyStr, v.keymap.Back), keymap.Matches(keyStr, v.keymap.History):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewBrowse} }
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	}
	return v, nil
}

// adjustScroll keeps the selected record visible.
func (v *View) adjustScroll() {
	visible := v.visibleCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visible {
		v.scrollOffset = v.selected - visible + 1
	}
}

// visibleCount returns the number of records that fit.
func (v *View) visibleCount() int {
	if n := v.height - 6; n > 0 {
		return n
	}
	return 1
}

// View renders the history view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Recent searches (%d)", len(v.records))))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading ..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render("No searches yet"))
	default:
		end := v.scrollOffset + v.visibleCount()
		if end > len(v.records) {
			end = len(v.records)
		}
		lines := make([]string, 0, end-v.scrollOffset)
		for i := v.scrollOffset; i < end; i++ {
			lines = append(lines, v.renderRecord(i))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("enter: search again | C: clear | esc: back"))
	return b.String()
}

func (v *View) renderRecord(i int) string {
	rec := v.records[i]

	outcome := fmt.Sprintf("%d hits", rec.Hits)
	switch {
	case rec.Superseded():
		outcome = "replaced"
	case !rec.Succeeded():
		outcome = "failed"
	}
	line := fmt.Sprintf("%-30s  %-8s  %6s  %s",
		rec.Term, outcome, rec.Duration.Round(time.Millisecond), rec.At.Local().Format("2006-01-02 15:04"))

	if i == v.selected {
		return v.styles.Selected.Render("> " + line)
	}
	if rec.Status == domain.FetchRejected {
		return v.styles.Error.Render("  " + line)
	}
	return v.styles.Normal.Render("  " + line)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Records returns the loaded records.
func (v *View) Records() []domain.SearchRecord {
	return v.records
}

// SelectedRecord returns the highlighted record, or nil.
func (v *View) SelectedRecord() *domain.SearchRecord {
	if v.selected < 0 || v.selected >= len(v.records) {
		return nil
	}
	return &v.records[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
