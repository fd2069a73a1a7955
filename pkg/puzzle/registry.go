// Package puzzle registers daily puzzle solutions and locates their inputs.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aoc-go/aoc/pkg/types"
	"go.uber.org/zap"
)

var (
	// ErrUnknownDay is returned when no solution is registered for a day.
	ErrUnknownDay = errors.New("unknown day")

	// ErrNotSolved is returned when a day has no solver for the requested part.
	ErrNotSolved = errors.New("part not solved")
)

// Input is what a solver receives: the raw puzzle text plus the run's
// logger and worker budget.
type Input struct {
	Text    string
	Logger  *zap.Logger
	Workers int
}

// NewInput wraps text with a nop logger and a single worker.
func NewInput(text string) Input {
	return Input{Text: text, Logger: zap.NewNop(), Workers: 1}
}

// SolveFunc computes the answer of one part.
type SolveFunc func(ctx context.Context, in Input) (int64, error)

// Sample is the example input given with a puzzle and its expected answer.
type Sample struct {
	Input string
	Want  int64
}

// Day is a registered puzzle.
type Day struct {
	Number  int
	Title   string
	Solvers map[types.Part]SolveFunc
	Samples map[types.Part]Sample
}

// Solve runs the solver of part on in.
func (d Day) Solve(ctx context.Context, part types.Part, in Input) (int64, error) {
	solve, ok := d.Solvers[part]
	if !ok {
		return 0, fmt.Errorf("day %d %s: %w", d.Number, part, ErrNotSolved)
	}
	if in.Logger == nil {
		in.Logger = zap.NewNop()
	}
	return solve(ctx, in)
}

// Sample returns the sample of part, if the day has one.
func (d Day) Sample(part types.Part) (Sample, bool) {
	s, ok := d.Samples[part]
	return s, ok
}

// Parts returns the parts that have a solver, in order.
func (d Day) Parts() []types.Part {
	var parts []types.Part
	for _, p := range types.Parts {
		if _, ok := d.Solvers[p]; ok {
			parts = append(parts, p)
		}
	}
	return parts
}

// Registry holds days by number.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Day
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Day)}
}

// Register adds a day. It panics if the number is outside 1..25 or
// already registered, since both are programming errors caught at init.
func (r *Registry) Register(d Day) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.Number < 1 || d.Number > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", d.Number))
	}
	if _, dup := r.days[d.Number]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.Number))
	}
	r.days[d.Number] = d
}

// Lookup returns the day registered under n.
func (r *Registry) Lookup(n int) (Day, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}
	return d, nil
}

// Days returns every registered day sorted by number.
func (r *Registry) Days() []Day {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Number < days[j].Number })
	return days
}

var defaultRegistry = NewRegistry()

// Register adds a day to the default registry.
func Register(d Day) {
	defaultRegistry.Register(d)
}

// Lookup finds a day in the default registry.
func Lookup(n int) (Day, error) {
	return defaultRegistry.Lookup(n)
}

// Days lists the default registry.
func Days() []Day {
	return defaultRegistry.Days()
}
