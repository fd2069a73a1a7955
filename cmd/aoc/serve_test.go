package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aoc-go/aoc/pkg/serve"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand_Exists(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"serve"})
	assert.NoError(t, err)
	assert.NotNil(t, cmd)
	assert.Equal(t, "serve", cmd.Name())
}

func TestServeCommand_Integration(t *testing.T) {
	pr, pw := io.Pipe()
	out := &bytes.Buffer{}

	testCmd := &cobra.Command{
		Use:  "serve",
		RunE: runServe,
	}
	testCmd.Flags().BoolVar(&serveSample, "sample", false, "")
	testCmd.Flags().StringVar(&serveInputDir, "input-dir", "inputs", "")
	testCmd.Flags().IntVarP(&serveWorkers, "workers", "w", 1, "")
	testCmd.SetIn(pr)
	testCmd.SetOut(out)
	testCmd.SetErr(out)
	testCmd.SetArgs([]string{"--sample"})

	done := make(chan error, 1)
	go func() {
		done <- testCmd.Execute()
	}()

	_, err := pw.Write([]byte(`{"type":"solve","payload":{"day":5,"part":2}}` + "\n"))
	require.NoError(t, err)
	_, err = pw.Write([]byte(`{"type":"close","payload":{}}` + "\n"))
	require.NoError(t, err)
	pw.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(20 * time.Second):
		t.Fatal("command did not exit in time")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"type":"ready"`)

	var resp serve.Response
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &resp))
	require.True(t, resp.Success, resp.Error)

	var result serve.SolveResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.Len(t, result.Answers, 1)
	assert.Equal(t, int64(46), result.Answers[0].Value)
	assert.Equal(t, "passed", string(result.Answers[0].Check))
}
