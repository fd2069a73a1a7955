package main

import (
	"context"
	"fmt"

	"github.com/aoc-go/aoc/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	quiet   bool
	envFile string

	// settings holds AOC_* configuration; flags win when set explicitly.
	settings config.Config

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "aoc - Advent of Code solutions and sparse range tools",
	Long: `aoc solves Advent of Code puzzles against their embedded samples or your
own inputs, keeps a history of answers in a SQLite datastore, and runs
integer ranges through almanac-style mapping tables.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to .env file (skipped if missing)")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	settings, err = config.Load(envFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level, err := settings.Level()
	if err != nil {
		return err
	}
	switch {
	case verbose:
		level = zapcore.DebugLevel
	case quiet:
		level = zapcore.ErrorLevel
	}

	logger, err = newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute (as in tests calling runX directly).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// stringSetting returns the flag value when the flag was given or no
// configured value exists, otherwise the configured value.
func stringSetting(cmd *cobra.Command, flag, flagValue, configured string) string {
	if cmd.Flags().Changed(flag) || configured == "" {
		return flagValue
	}
	return configured
}

// intSetting is stringSetting for integer flags; zero means unconfigured.
func intSetting(cmd *cobra.Command, flag string, flagValue, configured int) int {
	if cmd.Flags().Changed(flag) || configured == 0 {
		return flagValue
	}
	return configured
}
