// Package table renders the item collection as a navigable table with
// sortable column headings.
package table

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// Fixed column widths. Title and Author share what is left.
const (
	commentsWidth = 10
	pointsWidth   = 8
	gutter        = 2
	minTitle      = 10
	minAuthor     = 8
)

// ItemTable displays items with one row per item.
type ItemTable struct {
	items    []domain.Item
	sort     domain.SortState
	selected int
	offset   int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItemTable creates a new item table component.
func NewItemTable(s *styles.Styles) *ItemTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ItemTable{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the table.
func (t *ItemTable) Init() tea.Cmd {
	return nil
}

// Update handles table navigation messages.
func (t *ItemTable) Update(msg tea.Msg) (*ItemTable, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			t.MoveUp()
		case "down", "j":
			t.MoveDown()
		}
	}
	return t, nil
}

// SetItems replaces the rows. The selection follows the previously
// selected object ID when it is still present.
func (t *ItemTable) SetItems(items []domain.Item, sort domain.SortState) {
	var selectedID string
	if item := t.SelectedItem(); item != nil {
		selectedID = item.ObjectID
	}

	t.items = items
	t.sort = sort

	if idx := domain.IndexOf(items, selectedID); selectedID != "" && idx >= 0 {
		t.selected = idx
	}
	t.clamp()
}

// Items returns the current rows.
func (t *ItemTable) Items() []domain.Item {
	return t.items
}

// Selected returns the index of the selected row.
func (t *ItemTable) Selected() int {
	return t.selected
}

// SelectedItem returns the selected item, or nil if there are no rows.
func (t *ItemTable) SelectedItem() *domain.Item {
	if len(t.items) == 0 || t.selected < 0 || t.selected >= len(t.items) {
		return nil
	}
	return &t.items[t.selected]
}

// MoveUp moves selection up.
func (t *ItemTable) MoveUp() {
	if t.selected > 0 {
		t.selected--
	}
	t.clamp()
}

// MoveDown moves selection down.
func (t *ItemTable) MoveDown() {
	if t.selected < len(t.items)-1 {
		t.selected++
	}
	t.clamp()
}

// SetDimensions sets the table size.
func (t *ItemTable) SetDimensions(width, height int) {
	t.width = width
	t.height = height
	t.clamp()
}

// visibleRows is the number of rows that fit under the header.
func (t *ItemTable) visibleRows() int {
	if rows := t.height - 2; rows > 0 {
		return rows
	}
	return 1
}

// clamp keeps selection and scroll offset in range.
func (t *ItemTable) clamp() {
	if t.selected >= len(t.items) {
		t.selected = len(t.items) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}

	rows := t.visibleRows()
	if t.selected < t.offset {
		t.offset = t.selected
	} else if t.selected >= t.offset+rows {
		t.offset = t.selected - rows + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

// columnWidths splits the width between title and author.
func (t *ItemTable) columnWidths() (title, author int) {
	flex := t.width - commentsWidth - pointsWidth - 3*gutter - 2
	title = flex * 2 / 3
	author = flex - title
	if title < minTitle {
		title = minTitle
	}
	if author < minAuthor {
		author = minAuthor
	}
	return title, author
}

// View renders the table.
func (t *ItemTable) View() string {
	if len(t.items) == 0 {
		return t.styles.Muted.Render("No results")
	}

	titleW, authorW := t.columnWidths()
	lines := make([]string, 0, t.visibleRows()+1)
	lines = append(lines, t.renderHeader(titleW, authorW))

	end := t.offset + t.visibleRows()
	if end > len(t.items) {
		end = len(t.items)
	}
	for i := t.offset; i < end; i++ {
		lines = append(lines, t.renderRow(i, titleW, authorW))
	}

	return strings.Join(lines, "\n")
}

func (t *ItemTable) renderHeader(titleW, authorW int) string {
	sep := strings.Repeat(" ", gutter)
	cells := []string{
		t.headerCell(domain.SortTitle, titleW, false),
		t.headerCell(domain.SortAuthor, authorW, false),
		t.headerCell(domain.SortComment, commentsWidth, true),
		t.headerCell(domain.SortPoint, pointsWidth, true),
	}
	return "  " + strings.Join(cells, sep)
}

// headerCell renders a column label with a direction arrow when the
// table is sorted by that column.
func (t *ItemTable) headerCell(key domain.SortKey, width int, alignRight bool) string {
	label := key.Label()
	active := t.sort.Key == key
	if active {
		if t.sort.Ascending() {
			label += " ▲"
		} else {
			label += " ▼"
		}
	}

	text := fit(label, width, alignRight)
	if active {
		return t.styles.ActiveHeader.Render(text)
	}
	return t.styles.Header.Render(text)
}

func (t *ItemTable) renderRow(index, titleW, authorW int) string {
	item := t.items[index]

	title := item.Title
	if title == "" {
		title = "(untitled)"
	}
	sep := strings.Repeat(" ", gutter)
	row := strings.Join([]string{
		fit(title, titleW, false),
		fit(item.Author, authorW, false),
		fit(fmt.Sprintf("%d", item.NumComments), commentsWidth, true),
		fit(fmt.Sprintf("%d", item.Points), pointsWidth, true),
	}, sep)

	if index == t.selected {
		return t.styles.Selected.Render("> " + row)
	}
	return t.styles.Normal.Render("  " + row)
}

// fit truncates or pads s to exactly width terminal cells.
func fit(s string, width int, alignRight bool) string {
	s = runewidth.Truncate(s, width, "…")
	if alignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
