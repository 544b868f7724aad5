package main

import (
	"fmt"
	"os"

	"exempla/internal/demo"
	"exempla/internal/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "exempla",
	Short: "exempla - runnable beginner coding examples",
	Long: `exempla is a small command-line collection of self-contained
demonstration routines: bounded-choice dispatch, visitor iteration,
variadic reporting, name splitting, grid indexing, optional-field
presence checks, and keyed lookups.

Each subcommand runs one routine and prints its output; 'all' runs
every routine in order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// allCmd runs every demo in registry order
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every demonstration in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.RunAll(cmd.OutOrStdout(), logger)
	},
}

// listCmd prints the registered demos
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demonstrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range demo.Registry() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", d.Name, d.Summary)
		}
		return nil
	},
}

// versionCmd prints build metadata
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "exempla %s (commit %s", version.Version, version.Commit)
		if version.Date != "" {
			fmt.Fprintf(cmd.OutOrStdout(), ", built %s", version.Date)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ")")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, d := range demo.Registry() {
		d := d
		rootCmd.AddCommand(&cobra.Command{
			Use:   d.Name,
			Short: "Run the " + d.Name + " demonstration",
			Long:  "Runs the " + d.Name + " demonstration: " + d.Summary + ".",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return demo.Run(cmd.OutOrStdout(), logger, d.Name)
			},
		})
	}

	rootCmd.AddCommand(allCmd, listCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
