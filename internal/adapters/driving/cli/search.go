package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driving"
)

const titleWidth = 60

var (
	searchSort    string
	searchReverse bool
	searchHide    []string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search Hacker News and print the results",
	Long: `Fetches the results for a term and prints them sorted.

Without a term the last searched term is used.

Sort keys:
  none     - arrival order
  title    - title, A to Z
  author   - author, A to Z
  comment  - comment count, most first
  point    - points, most first

--reverse flips the direction of the chosen key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "", "sort key (none, title, author, comment, point)")
	searchCmd.Flags().BoolVarP(&searchReverse, "reverse", "r", false, "reverse the sort direction")
	searchCmd.Flags().StringSliceVar(&searchHide, "hide", nil, "object IDs to remove from the results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchOutput is the JSON shape of a search.
type searchOutput struct {
	Term     string        `json:"term"`
	Sort     string        `json:"sort"`
	Reversed bool          `json:"reversed"`
	Count    int           `json:"count"`
	Items    []domain.Item `json:"items"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	browser, err := browserService()
	if err != nil {
		return err
	}

	term := lastTerm()
	if len(args) > 0 {
		term = args[0]
	}
	if strings.TrimSpace(term) == "" {
		return ErrNoTerm
	}

	var target *domain.SortState
	if searchSort != "" || searchReverse {
		key := browser.Snapshot().Sort.Key
		if searchSort != "" {
			if key, err = domain.ParseSortKey(searchSort); err != nil {
				return err
			}
		}
		target = &domain.SortState{Key: key, Reversed: searchReverse && key != domain.SortNone}
	}

	if err := browser.Fetch(cmd.Context(), term); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for _, id := range searchHide {
		browser.Dispatch(domain.RemoveItem{ObjectID: id})
	}
	if target != nil {
		applySort(browser, *target)
	}

	view := browser.Snapshot()
	if searchJSON {
		return outputSearchJSON(cmd, view)
	}
	return outputSearchTable(cmd, view)
}

// applySort dispatches SortBy until the browser reaches target.
// Two dispatches reach any state: one to switch key, one to flip.
// SortNone has no reversed state.
func applySort(browser driving.ListBrowser, target domain.SortState) {
	for i := 0; i < 2 && browser.Snapshot().Sort != target; i++ {
		browser.Dispatch(domain.SortBy{Key: target.Key})
	}
}

func outputSearchJSON(cmd *cobra.Command, view domain.ViewState) error {
	out := searchOutput{
		Term:     view.Fetch.Term,
		Sort:     view.Sort.Key.String(),
		Reversed: view.Sort.Reversed,
		Count:    view.Count(),
		Items:    view.Items,
	}
	if out.Items == nil {
		out.Items = []domain.Item{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, view domain.ViewState) error {
	if view.Count() == 0 {
		cmd.Println("No results found.")
		return nil
	}

	rows := make([][]string, 0, view.Count())
	for i, item := range view.Items {
		title := item.Title
		if title == "" {
			title = "(untitled)"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			runewidth.Truncate(title, titleWidth, "…"),
			item.Author,
			strconv.Itoa(item.NumComments),
			strconv.Itoa(item.Points),
			item.ObjectID,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", header(view.Sort, domain.SortTitle), header(view.Sort, domain.SortAuthor),
			header(view.Sort, domain.SortComment), header(view.Sort, domain.SortPoint), "ID").
		Rows(rows...)

	cmd.Printf("Results for %q (%d):\n", view.Fetch.Term, view.Count())
	cmd.Println(t.String())
	return nil
}

// header labels a column, marking the active sort column with its direction.
func header(state domain.SortState, key domain.SortKey) string {
	if state.Key != key {
		return key.Label()
	}
	if state.Ascending() {
		return key.Label() + " ▲"
	}
	return key.Label() + " ▼"
}
