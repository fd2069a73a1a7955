// Package aoc solves Advent of Code puzzles registered in pkg/days.
//
// # Basic Usage
//
// Solve both parts of a day against its embedded sample:
//
//	solver := aoc.NewSolver(aoc.WithSample())
//	answers, err := solver.Solve(ctx, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, a := range answers {
//	    fmt.Printf("%s: %d (%s)\n", a.Part, a.Value, a.Check)
//	}
//
// # Real Inputs
//
// Without WithSample the solver reads <dir>/day_NN.txt:
//
//	solver := aoc.NewSolver(aoc.WithInputDir("inputs"), aoc.WithWorkers(4))
//	answers, err := solver.Solve(ctx, 5, aoc.PartTwo)
//
// # Recording History
//
// Answers are written to a store when one is configured:
//
//	s, err := store.New(store.Config{Path: "aoc.db"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	solver := aoc.NewSolver(aoc.WithStore(s))
package aoc

import (
	"context"
	"errors"
	"fmt"
	"time"

	_ "github.com/aoc-go/aoc/pkg/days"
	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/sparse"
	"github.com/aoc-go/aoc/pkg/store"
	"github.com/aoc-go/aoc/pkg/types"
	"go.uber.org/zap"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/aoc-go/aoc" without subpackages.
type (
	// Answer is the result of solving one part of one day.
	Answer = types.Answer

	// Part selects the first or second half of a puzzle.
	Part = types.Part

	// CheckStatus records how a sample answer compared with the expected one.
	CheckStatus = types.CheckStatus

	// Range is a half-open interval of integers.
	Range = sparse.Range
)

// Re-export part and check constants.
const (
	PartOne = types.PartOne
	PartTwo = types.PartTwo

	CheckPassed    = types.CheckPassed
	CheckFailed    = types.CheckFailed
	CheckUnchecked = types.CheckUnchecked
)

var (
	// ErrUnknownDay is returned for a day with no registered solution.
	ErrUnknownDay = puzzle.ErrUnknownDay

	// ErrInputNotFound is returned when the day's input file is missing.
	ErrInputNotFound = puzzle.ErrInputNotFound

	// ErrNoSample is returned in sample mode for a part without a sample.
	ErrNoSample = errors.New("no sample")
)

// DefaultInputDir is where inputs are read from unless WithInputDir is given.
const DefaultInputDir = "inputs"

// Solver runs registered puzzle solutions.
type Solver struct {
	config *solverConfig
}

// solverConfig holds solver configuration.
type solverConfig struct {
	inputDir string
	sample   bool
	logger   *zap.Logger
	store    store.Store
	workers  int
}

// Option configures a Solver.
type Option func(*solverConfig)

// WithInputDir sets the directory holding day_NN.txt inputs.
func WithInputDir(dir string) Option {
	return func(c *solverConfig) {
		c.inputDir = dir
	}
}

// WithSample solves the embedded sample of each part and checks the
// result against its expected answer instead of reading an input file.
func WithSample() Option {
	return func(c *solverConfig) {
		c.sample = true
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *solverConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStore records every answer in s.
func WithStore(s store.Store) Option {
	return func(c *solverConfig) {
		c.store = s
	}
}

// WithWorkers sets how many goroutines a solver may use. Default is 1.
func WithWorkers(n int) Option {
	return func(c *solverConfig) {
		c.workers = max(n, 1)
	}
}

// NewSolver creates a Solver with the given options.
//
// By default, the solver:
//   - Reads inputs from "inputs"
//   - Logs nothing
//   - Records nothing
//   - Uses a single worker
func NewSolver(opts ...Option) *Solver {
	config := &solverConfig{
		inputDir: DefaultInputDir,
		logger:   zap.NewNop(),
		workers:  1,
	}

	for _, opt := range opts {
		opt(config)
	}

	return &Solver{config: config}
}

// Solve runs the requested parts of day, or every solved part when none
// are given, and returns one answer per part.
func (s *Solver) Solve(ctx context.Context, day int, parts ...Part) ([]*Answer, error) {
	d, err := puzzle.Lookup(day)
	if err != nil {
		return nil, err
	}

	if len(parts) == 0 {
		parts = d.Parts()
	}

	var text string
	if !s.config.sample {
		text, err = puzzle.ReadInput(s.config.inputDir, day)
		if err != nil {
			return nil, err
		}
	}

	answers := make([]*Answer, 0, len(parts))
	for _, part := range parts {
		in := puzzle.Input{Text: text, Logger: s.config.logger, Workers: s.config.workers}

		var want *int64
		if s.config.sample {
			sample, ok := d.Sample(part)
			if !ok {
				return answers, fmt.Errorf("day %d %s: %w", day, part, ErrNoSample)
			}
			in.Text = sample.Input
			want = &sample.Want
		}

		a, err := s.solvePart(ctx, d, part, in, want)
		if err != nil {
			return answers, err
		}
		answers = append(answers, a)
	}

	return answers, nil
}

func (s *Solver) solvePart(ctx context.Context, d puzzle.Day, part Part, in puzzle.Input, want *int64) (*Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	value, err := d.Solve(ctx, part, in)
	if err != nil {
		return nil, fmt.Errorf("solving day %d %s: %w", d.Number, part, err)
	}

	a := types.NewAnswer(d.Number, part, value, s.config.sample, want, time.Since(start))

	s.config.logger.Info("solved",
		zap.Int("day", a.Day),
		zap.Int("part", int(a.Part)),
		zap.Int64("value", a.Value),
		zap.Bool("sample", a.Sample),
		zap.String("check", string(a.Check)),
		zap.Duration("elapsed", a.Elapsed))

	if s.config.store != nil {
		if err := s.config.store.AddAnswer(a); err != nil {
			return nil, fmt.Errorf("recording answer: %w", err)
		}
	}

	return a, nil
}

// Days returns the numbers of every registered day in order.
func Days() []int {
	days := puzzle.Days()
	numbers := make([]int, len(days))
	for i, d := range days {
		numbers[i] = d.Number
	}
	return numbers
}
