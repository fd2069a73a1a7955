package days

import (
	"context"
	"fmt"
	"testing"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredDays(t *testing.T) {
	var numbers []int
	for _, d := range puzzle.Days() {
		numbers = append(numbers, d.Number)
		assert.NotEmpty(t, d.Title, "day %d", d.Number)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, numbers)
}

func TestSamples(t *testing.T) {
	for _, d := range puzzle.Days() {
		for _, part := range d.Parts() {
			s, ok := d.Sample(part)
			require.True(t, ok, "day %d %s has no sample", d.Number, part)

			t.Run(fmt.Sprintf("day%02d/part%d", d.Number, part), func(t *testing.T) {
				got, err := d.Solve(context.Background(), part, puzzle.NewInput(s.Input))
				require.NoError(t, err)
				assert.Equal(t, s.Want, got)
			})
		}
	}
}

func TestDay05_Workers(t *testing.T) {
	d, err := puzzle.Lookup(5)
	require.NoError(t, err)
	s, _ := d.Sample(types.PartTwo)

	in := puzzle.NewInput(s.Input)
	in.Workers = 4
	got, err := d.Solve(context.Background(), types.PartTwo, in)
	require.NoError(t, err)
	assert.Equal(t, int64(46), got)
}

func TestSample_Missing(t *testing.T) {
	assert.Panics(t, func() { sample("day99.txt", 0) })
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, lines("  a \r\n\n b\n"))
	assert.Nil(t, lines("\n\n"))
}

func TestNumbers(t *testing.T) {
	got, err := numbers(" 83 86  6 31 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{83, 86, 6, 31}, got)

	_, err = numbers("1 x")
	assert.EqualError(t, err, `invalid number "x"`)
}
