package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

var (
	historyLimit int
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `Lists executed searches, newest first.

Every request is recorded, including ones superseded by a later search.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records (0 for all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all records")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(historyCmd)
}

// historyRecord is the JSON shape of a search record.
type historyRecord struct {
	ID         string    `json:"id"`
	Term       string    `json:"term"`
	Status     string    `json:"status"`
	Hits       int       `json:"hits"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

func runHistory(cmd *cobra.Command, _ []string) error {
	history, err := historyService()
	if err != nil {
		return err
	}

	if historyClear {
		if err := history.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		cmd.Println("Search history cleared.")
		return nil
	}

	records, err := history.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if historyJSON {
		return outputHistoryJSON(cmd, records)
	}
	return outputHistoryTable(cmd, records)
}

func outputHistoryJSON(cmd *cobra.Command, records []domain.SearchRecord) error {
	out := make([]historyRecord, 0, len(records))
	for _, r := range records {
		out = append(out, historyRecord{
			ID:         r.ID,
			Term:       r.Term,
			Status:     r.Status.String(),
			Hits:       r.Hits,
			Error:      r.Error,
			DurationMS: r.Duration.Milliseconds(),
			At:         r.At,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHistoryTable(cmd *cobra.Command, records []domain.SearchRecord) error {
	if len(records) == 0 {
		cmd.Println("No searches recorded.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.At.Local().Format(time.DateTime),
			r.Term,
			r.Status.String(),
			strconv.Itoa(r.Hits),
			r.Duration.Round(time.Millisecond).String(),
			r.Error,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("When", "Term", "Status", "Hits", "Took", "Error").
		Rows(rows...)
	cmd.Println(t.String())
	return nil
}
