package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aoc-go/aoc/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// resetGlobals restores the package state touched by setup.
func resetGlobals(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		settings = config.Config{}
		logger = zap.NewNop()
		verbose, quiet = false, false
		envFile = ".env"
	})
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"solve", "days", "translate", "history", "merge", "serve", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestSetup_LoadsEnvFile(t *testing.T) {
	resetGlobals(t)
	for _, v := range []string{"AOC_INPUT_DIR", "AOC_DATASTORE", "AOC_LOG_LEVEL", "AOC_WORKERS", "AOC_COLOR"} {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}

	envFile = filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("AOC_WORKERS=6\nAOC_LOG_LEVEL=warn\n"), 0o644))

	require.NoError(t, setup(&cobra.Command{}, nil))
	assert.Equal(t, 6, settings.Workers)
	assert.Equal(t, config.DefaultInputDir, settings.InputDir)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestSetup_VerboseAndQuiet(t *testing.T) {
	resetGlobals(t)
	envFile = filepath.Join(t.TempDir(), "missing.env")

	verbose = true
	require.NoError(t, setup(&cobra.Command{}, nil))
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	verbose, quiet = false, true
	require.NoError(t, setup(&cobra.Command{}, nil))
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestSetup_InvalidConfig(t *testing.T) {
	resetGlobals(t)
	envFile = filepath.Join(t.TempDir(), "missing.env")
	t.Setenv("AOC_WORKERS", "0")

	err := setup(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}

func TestSettingsPrecedence(t *testing.T) {
	var dir string
	var workers int
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&dir, "input-dir", "inputs", "")
	cmd.Flags().IntVar(&workers, "workers", 1, "")

	// Configured values win over flag defaults.
	assert.Equal(t, "/cfg", stringSetting(cmd, "input-dir", dir, "/cfg"))
	assert.Equal(t, 8, intSetting(cmd, "workers", workers, 8))

	// Unconfigured values fall back to the flag.
	assert.Equal(t, "inputs", stringSetting(cmd, "input-dir", dir, ""))
	assert.Equal(t, 1, intSetting(cmd, "workers", workers, 0))

	// Explicit flags win over configuration.
	require.NoError(t, cmd.Flags().Set("input-dir", "/flag"))
	require.NoError(t, cmd.Flags().Set("workers", "3"))
	assert.Equal(t, "/flag", stringSetting(cmd, "input-dir", dir, "/cfg"))
	assert.Equal(t, 3, intSetting(cmd, "workers", workers, 8))
}
