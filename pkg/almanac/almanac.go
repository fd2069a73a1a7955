// Package almanac models the seed almanac: a list of seeds and a chain of
// stages (seed-to-soil, soil-to-fertilizer, ...) that each remap numbers.
//
// Single seeds are followed through the chain with point lookups. Seed
// ranges are followed with sparse.Translate so the work depends on the
// number of mapping rows, not on the size of the ranges.
package almanac

import (
	"context"
	"errors"
	"fmt"

	"github.com/aoc-go/aoc/pkg/sparse"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownCategory is returned when a category is not on the almanac's path.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNoSeeds is returned when a lowest value is requested without seeds.
	ErrNoSeeds = errors.New("almanac has no seeds")

	// ErrOddSeeds is returned when seeds cannot be read as (start, length) pairs.
	ErrOddSeeds = errors.New("seed ranges need an even number of values")

	// ErrBrokenChain is returned when a stage does not start where the previous one ended.
	ErrBrokenChain = errors.New("stages do not form a chain")
)

// Row is one line of a stage: Length values starting at Src map to the
// values starting at Dest.
type Row struct {
	Dest   int64
	Src    int64
	Length int64
}

// SrcEnd returns the exclusive end of the row's source values.
func (r Row) SrcEnd() int64 {
	return r.Src + r.Length
}

// Offset returns the amount added to a source value.
func (r Row) Offset() int64 {
	return r.Dest - r.Src
}

// Mapping converts the row for use with sparse.Translate.
func (r Row) Mapping() (sparse.Mapping, error) {
	return sparse.NewMapping(r.Dest, r.Src, r.Length)
}

func (r Row) String() string {
	return fmt.Sprintf("[%d,%d)=>%+d", r.Src, r.SrcEnd(), r.Offset())
}

// Stage maps the numbers of one category to the next.
type Stage struct {
	From  string
	To    string
	Rows  []Row
	Table sparse.Table
}

// Name returns the stage name as written in the almanac, e.g. "seed-to-soil".
func (s Stage) Name() string {
	return s.From + "-to-" + s.To
}

func newStage(from, to string, rows []Row) (Stage, error) {
	table := make(sparse.Table, 0, len(rows))
	for _, row := range rows {
		m, err := row.Mapping()
		if err != nil {
			return Stage{}, fmt.Errorf("%s-to-%s row %s: %w", from, to, row, err)
		}
		table = append(table, m)
	}
	return Stage{From: from, To: to, Rows: rows, Table: table}, nil
}

// Almanac holds the seeds and the ordered stages.
type Almanac struct {
	Seeds  []int64
	Stages []Stage
}

// New builds an almanac and checks that the stages form a chain.
func New(seeds []int64, stages []Stage) (*Almanac, error) {
	for i := 1; i < len(stages); i++ {
		if stages[i].From != stages[i-1].To {
			return nil, fmt.Errorf("%w: %s follows %s", ErrBrokenChain, stages[i].Name(), stages[i-1].Name())
		}
	}
	return &Almanac{Seeds: seeds, Stages: stages}, nil
}

// Path returns the categories in the order the stages visit them.
func (a *Almanac) Path() []string {
	if len(a.Stages) == 0 {
		return []string{"seed"}
	}
	path := make([]string, 0, len(a.Stages)+1)
	path = append(path, a.Stages[0].From)
	for _, s := range a.Stages {
		path = append(path, s.To)
	}
	return path
}

func (a *Almanac) index(category string) (int, error) {
	for i, c := range a.Path() {
		if c == category {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

// Trail returns the number of seed at every category of the path.
func (a *Almanac) Trail(seed int64) []int64 {
	trail := make([]int64, 0, len(a.Stages)+1)
	trail = append(trail, seed)
	val := seed
	for _, s := range a.Stages {
		val = s.Table.Lookup(val)
		trail = append(trail, val)
	}
	return trail
}

// Lowest returns the smallest number any single seed reaches at category.
func (a *Almanac) Lowest(category string) (int64, error) {
	i, err := a.index(category)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}

	lowest := a.Trail(a.Seeds[0])[i]
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Trail(seed)[i])
	}
	return lowest, nil
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]sparse.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeeds, len(a.Seeds))
	}
	ranges := make([]sparse.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := sparse.New(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("seed range %d: %w", i/2, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Option configures ranged translation.
type Option func(*config)

type config struct {
	logger  *zap.Logger
	workers int
}

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithWorkers sets how many seed ranges are translated concurrently.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = max(n, 1)
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		logger:  zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// RangedTrails follows every seed range through the stages and returns the
// ranges found at each category. Seed ranges are independent, so they are
// spread over the configured number of workers.
func (a *Almanac) RangedTrails(ctx context.Context, opts ...Option) (map[string][]sparse.Range, error) {
	cfg := newConfig(opts)

	seeds, err := a.SeedRanges()
	if err != nil {
		return nil, err
	}

	// trails[i][j] holds the ranges of seed range i at path position j.
	trails := make([][][]sparse.Range, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, seed := range seeds {
		g.Go(func() error {
			trail := make([][]sparse.Range, 0, len(a.Stages)+1)
			trail = append(trail, []sparse.Range{seed})
			current := trail[0]
			for _, s := range a.Stages {
				if err := ctx.Err(); err != nil {
					return err
				}
				current = sparse.TranslateAll(current, s.Table)
				trail = append(trail, current)
				cfg.logger.Debug("translated stage",
					zap.String("stage", s.Name()),
					zap.Stringer("seeds", seed),
					zap.Int("ranges", len(current)))
			}
			trails[i] = trail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("translating seed ranges: %w", err)
	}

	path := a.Path()
	result := make(map[string][]sparse.Range, len(path))
	for j, category := range path {
		var ranges []sparse.Range
		for _, trail := range trails {
			ranges = append(ranges, trail[j]...)
		}
		result[category] = ranges
	}
	return result, nil
}

// LowestRanged returns the smallest number any seed range reaches at category.
func (a *Almanac) LowestRanged(ctx context.Context, category string, opts ...Option) (int64, error) {
	if _, err := a.index(category); err != nil {
		return 0, err
	}
	trails, err := a.RangedTrails(ctx, opts...)
	if err != nil {
		return 0, err
	}
	lowest, ok := sparse.Min(trails[category])
	if !ok {
		return 0, ErrNoSeeds
	}
	return lowest, nil
}
