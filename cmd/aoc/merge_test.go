package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/aoc-go/aoc/pkg/store"
	"github.com/aoc-go/aoc/pkg/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMergeCmd creates a fresh merge command for testing
func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "merge <source1.db> <source2.db> [source3.db...]",
		Args: cobra.MinimumNArgs(2),
		RunE: runMerge,
	}
	cmd.Flags().StringVarP(&mergeOutput, "output", "o", "merged.db", "Output datastore path")
	return cmd
}

func TestMergeCmd_RequiresMinimumArgs(t *testing.T) {
	cmd := newMergeCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg")

	cmd = newMergeCmd()
	cmd.SetArgs([]string{"source1.db"})
	err = cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg")
}

func TestMergeCmd_MergesTwoDatabases(t *testing.T) {
	tmpDir := t.TempDir()

	source1Path := filepath.Join(tmpDir, "source1.db")
	source1, err := store.NewSQLite(source1Path)
	require.NoError(t, err)
	require.NoError(t, source1.AddAnswer(types.NewAnswer(4, types.PartOne, 13, true, nil, time.Millisecond)))
	require.NoError(t, source1.AddAnswer(types.NewAnswer(4, types.PartTwo, 30, true, nil, time.Millisecond)))
	require.NoError(t, source1.Close())

	source2Path := filepath.Join(tmpDir, "source2.db")
	source2, err := store.NewSQLite(source2Path)
	require.NoError(t, err)
	require.NoError(t, source2.AddAnswer(types.NewAnswer(4, types.PartTwo, 30, true, nil, time.Millisecond)))
	require.NoError(t, source2.AddAnswer(types.NewAnswer(6, types.PartOne, 288, true, nil, time.Millisecond)))
	require.NoError(t, source2.Close())

	outputPath := filepath.Join(tmpDir, "merged.db")
	var stdout bytes.Buffer
	cmd := newMergeCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{source1Path, source2Path, "-o", outputPath})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "Merge complete")
	assert.Contains(t, output, "Sources processed: 2")
	assert.Contains(t, output, "Answers merged: 3")
	assert.Contains(t, output, "Output: "+outputPath)

	merged, err := store.NewSQLite(outputPath)
	require.NoError(t, err)
	defer merged.Close()

	answers, err := merged.GetAllAnswers()
	require.NoError(t, err)
	assert.Len(t, answers, 3)
}
