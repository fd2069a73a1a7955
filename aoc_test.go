package aoc

import (
	"context"
	"os"
	"testing"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// writeSampleInput stores the sample of day as its real input in dir.
func writeSampleInput(t *testing.T, dir string, day int) {
	t.Helper()
	d, err := puzzle.Lookup(day)
	require.NoError(t, err)
	s, ok := d.Sample(PartOne)
	require.True(t, ok)
	require.NoError(t, os.WriteFile(puzzle.InputPath(dir, day), []byte(s.Input), 0o644))
}

func TestDays(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, Days())
}

func TestSolve_Sample(t *testing.T) {
	solver := NewSolver(WithSample())

	answers, err := solver.Solve(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, answers, 2)

	assert.Equal(t, PartOne, answers[0].Part)
	assert.Equal(t, int64(35), answers[0].Value)
	assert.Equal(t, CheckPassed, answers[0].Check)
	assert.True(t, answers[0].Sample)

	assert.Equal(t, PartTwo, answers[1].Part)
	assert.Equal(t, int64(46), answers[1].Value)
	assert.Equal(t, CheckPassed, answers[1].Check)
}

func TestSolve_EverySample(t *testing.T) {
	solver := NewSolver(WithSample(), WithWorkers(4))

	for _, day := range Days() {
		answers, err := solver.Solve(context.Background(), day)
		require.NoError(t, err, "day %d", day)
		for _, a := range answers {
			assert.Equal(t, CheckPassed, a.Check, "day %d %s", day, a.Part)
		}
	}
}

func TestSolve_InputDir(t *testing.T) {
	dir := t.TempDir()
	writeSampleInput(t, dir, 6)

	solver := NewSolver(WithInputDir(dir))

	answers, err := solver.Solve(context.Background(), 6, PartOne)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, int64(288), answers[0].Value)
	assert.False(t, answers[0].Sample)
	assert.Nil(t, answers[0].Want)
	assert.Equal(t, CheckUnchecked, answers[0].Check)
}

func TestSolve_MissingInput(t *testing.T) {
	solver := NewSolver(WithInputDir(t.TempDir()))

	_, err := solver.Solve(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestSolve_UnknownDay(t *testing.T) {
	solver := NewSolver(WithSample())

	_, err := solver.Solve(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSolver(WithSample()).Solve(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_RecordsAnswers(t *testing.T) {
	s := store.NewMemory()
	solver := NewSolver(WithSample(), WithStore(s))

	_, err := solver.Solve(context.Background(), 4)
	require.NoError(t, err)

	// Solving again records nothing new.
	_, err = solver.Solve(context.Background(), 4)
	require.NoError(t, err)

	recorded, err := s.GetAnswers(4)
	require.NoError(t, err)
	require.Len(t, recorded, 2)
	assert.Equal(t, int64(13), recorded[0].Value)
	assert.Equal(t, int64(30), recorded[1].Value)
}

func TestSolve_Logs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	solver := NewSolver(WithSample(), WithLogger(zap.New(core)))

	_, err := solver.Solve(context.Background(), 2, PartTwo)
	require.NoError(t, err)

	entries := logs.FilterMessage("solved").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["day"])
	assert.Equal(t, int64(2286), fields["value"])
	assert.Equal(t, "passed", fields["check"])
}

func TestNewSolver_Defaults(t *testing.T) {
	s := NewSolver(WithLogger(nil), WithWorkers(-3))
	assert.Equal(t, DefaultInputDir, s.config.inputDir)
	assert.NotNil(t, s.config.logger)
	assert.Equal(t, 1, s.config.workers)
	assert.False(t, s.config.sample)
	assert.Nil(t, s.config.store)
}
