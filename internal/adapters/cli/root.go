package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "revpilot",
		Short: "RevPilot - demand forecasting and dynamic pricing for a property",
		Long: `RevPilot converts demand signals into a bounded demand score, a daily
price recommendation, and comparative revenue scenarios, then scores
those recommendations against actual outcomes.

Examples:
  revpilot forecast --days 30
  revpilot forecast --days 14 --persist
  revpilot backtest
  revpilot accuracy
  revpilot simulate --date 2026-09-20 --price 140`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewForecastCommand())
	rootCmd.AddCommand(NewBacktestCommand())
	rootCmd.AddCommand(NewAccuracyCommand())
	rootCmd.AddCommand(NewSimulateCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
