package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/aoc-go/aoc/pkg/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDays(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	daysFormat = "table"

	err := runDays(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Day")
	assert.Contains(t, output, "Title")
	assert.Contains(t, output, "If You Give A Seed A Fertilizer")
	assert.Regexp(t, `5\s+If You Give A Seed A Fertilizer\s+1,2\s+1,2`, output)
}

func TestRunDaysJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	daysFormat = "json"

	err := runDays(cmd, []string{})
	require.NoError(t, err)

	var infos []dayInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 6)
	assert.Equal(t, 1, infos[0].Day)
	assert.Equal(t, []types.Part{types.PartOne, types.PartTwo}, infos[0].Samples)
}

func TestRunDays_UnknownFormat(t *testing.T) {
	cmd := &cobra.Command{}
	daysFormat = "xml"

	err := runDays(cmd, []string{})
	assert.Error(t, err)
}

func TestPartList(t *testing.T) {
	assert.Equal(t, "-", partList(nil))
	assert.Equal(t, "1,2", partList(types.Parts))
}
