package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/hitlist/internal/adapters/driving/tui"
	"github.com/custodia-labs/hitlist/internal/logger"
)

// LogFile is the name of the log file written while the TUI runs.
const LogFile = "hitlist.log"

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [term]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive result browser.

Starts with the given term, or the last searched term.

Controls:
  /         - Focus search
  Enter     - Search
  ↑/k, ↓/j  - Navigate results
  t a c p   - Sort by title, author, comments, points
  0         - Arrival order
  d/x       - Dismiss result
  o         - Show link
  h         - History
  ?         - Toggle help
  q         - Quit

Logs are written to <data dir>/hitlist.log while the UI runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	browser, err := browserService()
	if err != nil {
		return err
	}

	// History is optional; the history view reports it as unavailable.
	history, _ := historyService()

	app, err := tui.NewApp(tui.NewPorts(browser, history))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	initial := lastTerm()
	if len(args) > 0 {
		initial = args[0]
	}
	app.WithContext(cmd.Context()).WithInitialTerm(initial)

	restore, err := redirectLogs(appCfg.Data.Dir)
	if err != nil {
		return err
	}
	defer func() { _ = restore() }()

	watchConfig(viper.GetViper())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs sends log output to dir/hitlist.log so it does not
// draw over the alternate screen.
func redirectLogs(dir string) (func() error, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return logger.ToFile(filepath.Join(dir, LogFile))
}
