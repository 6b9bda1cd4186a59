// Package cli implements the hitlist command tree with cobra.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/custodia-labs/hitlist/internal/config"
	"github.com/custodia-labs/hitlist/internal/logger"
)

var (
	version = "dev"

	cfgFile string
	appCfg  config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hitlist",
	Short: "Browse Hacker News search results from the terminal",
	Long: `hitlist searches Hacker News and lets you sort and prune the results.

Run without a subcommand in a terminal to open the interactive browser.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ~/.hitlist/config.toml)")
	flags.BoolP("verbose", "v", false, "print fetch lifecycle logs")
	flags.String("endpoint", "", "search endpoint URL")

	v := viper.GetViper()
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("source.endpoint", flags.Lookup("endpoint"))
}

// setup loads the configuration and wires services before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()
	logger.SetVerbose(v.GetBool("verbose"))

	cfg, used, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	appCfg = cfg

	// The config file and environment may set verbose too.
	logger.SetVerbose(v.GetBool("verbose"))
	if used != "" {
		logger.Info("using config file: %s", used)
	}

	return wire(cfg)
}

func teardown(_ *cobra.Command, _ []string) error {
	return release()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cmd.Help()
	}
	return runTUI(cmd, args)
}
