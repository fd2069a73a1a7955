package almanac

import (
	"context"
	"math"
	"testing"

	"github.com/aoc-go/aoc/pkg/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func parseSample(t *testing.T) *Almanac {
	t.Helper()
	a, err := Parse(sample)
	require.NoError(t, err)
	return a
}

func TestRow(t *testing.T) {
	r := Row{Dest: 52, Src: 50, Length: 48}
	assert.Equal(t, int64(98), r.SrcEnd())
	assert.Equal(t, int64(2), r.Offset())
	assert.Equal(t, "[50,98)=>+2", r.String())

	m, err := r.Mapping()
	require.NoError(t, err)
	assert.Equal(t, sparse.MustNew(50, 48), m.Source)

	_, err = Row{Dest: 0, Src: 0, Length: -1}.Mapping()
	assert.ErrorIs(t, err, sparse.ErrInvalidRange)
}

func TestPath(t *testing.T) {
	a := parseSample(t)
	assert.Equal(t, []string{"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location"}, a.Path())
	assert.Equal(t, "seed-to-soil", a.Stages[0].Name())
}

func TestTrail(t *testing.T) {
	a := parseSample(t)

	tests := []struct {
		seed int64
		want []int64
	}{
		{79, []int64{79, 81, 81, 81, 74, 78, 78, 82}},
		{14, []int64{14, 14, 53, 49, 42, 42, 43, 43}},
		{55, []int64{55, 57, 57, 53, 46, 82, 82, 86}},
		{13, []int64{13, 13, 52, 41, 34, 34, 35, 35}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Trail(tt.seed), "seed %d", tt.seed)
	}
}

func TestLowest(t *testing.T) {
	a := parseSample(t)

	lowest, err := a.Lowest("location")
	require.NoError(t, err)
	assert.Equal(t, int64(35), lowest)

	lowest, err = a.Lowest("seed")
	require.NoError(t, err)
	assert.Equal(t, int64(13), lowest)

	_, err = a.Lowest("banana")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLowest_NoSeeds(t *testing.T) {
	a, err := New(nil, nil)
	require.NoError(t, err)

	_, err = a.Lowest("seed")
	assert.ErrorIs(t, err, ErrNoSeeds)
}

func TestSeedRanges(t *testing.T) {
	a := parseSample(t)

	ranges, err := a.SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, []sparse.Range{sparse.MustNew(79, 14), sparse.MustNew(55, 13)}, ranges)

	a.Seeds = a.Seeds[:3]
	_, err = a.SeedRanges()
	assert.ErrorIs(t, err, ErrOddSeeds)
}

func TestSeedRanges_NegativeLength(t *testing.T) {
	a, err := New([]int64{5, -1}, nil)
	require.NoError(t, err)

	_, err = a.SeedRanges()
	assert.ErrorIs(t, err, sparse.ErrInvalidRange)
}

func TestSeedRanges_Overflow(t *testing.T) {
	a, err := New([]int64{math.MaxInt64 - 1, 10}, nil)
	require.NoError(t, err)

	_, err = a.SeedRanges()
	assert.ErrorIs(t, err, sparse.ErrInvalidRange)
}

func TestRangedTrails(t *testing.T) {
	a := parseSample(t)

	trails, err := a.RangedTrails(context.Background())
	require.NoError(t, err)

	r := sparse.MustNew
	assert.Equal(t, []sparse.Range{r(79, 14), r(55, 13)}, trails["seed"])
	assert.Equal(t, []sparse.Range{r(81, 14), r(57, 13)}, trails["soil"])
	assert.Equal(t, []sparse.Range{r(81, 14), r(57, 13)}, trails["fertilizer"])
	assert.Equal(t, []sparse.Range{r(81, 14), r(53, 4), r(61, 9)}, trails["water"])
	assert.Equal(t, []sparse.Range{r(74, 14), r(46, 4), r(54, 9)}, trails["light"])
	assert.Equal(t, []sparse.Range{r(78, 3), r(45, 11), r(82, 4), r(90, 9)}, trails["temperature"])
	assert.Equal(t, []sparse.Range{r(78, 3), r(46, 11), r(82, 4), r(90, 9)}, trails["humidity"])
	assert.Equal(t, []sparse.Range{r(82, 3), r(46, 10), r(60, 1), r(86, 4), r(94, 3), r(56, 4), r(97, 2)}, trails["location"])
}

func TestLowestRanged(t *testing.T) {
	a := parseSample(t)

	lowest, err := a.LowestRanged(context.Background(), "location")
	require.NoError(t, err)
	assert.Equal(t, int64(46), lowest)

	_, err = a.LowestRanged(context.Background(), "banana")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLowestRanged_Workers(t *testing.T) {
	a := parseSample(t)

	// Many overlapping seed ranges so several workers run at once.
	for i := int64(0); i < 50; i++ {
		a.Seeds = append(a.Seeds, i*2, 3)
	}

	serial, err := a.LowestRanged(context.Background(), "location", WithWorkers(1))
	require.NoError(t, err)

	parallel, err := a.LowestRanged(context.Background(), "location", WithWorkers(8), WithLogger(zap.NewNop()))
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)

	// Brute force over every seed value must agree.
	ranges, err := a.SeedRanges()
	require.NoError(t, err)
	want := int64(-1)
	for _, sr := range ranges {
		for x := sr.Start(); x < sr.End(); x++ {
			loc := a.Trail(x)[len(a.Stages)]
			if want < 0 || loc < want {
				want = loc
			}
		}
	}
	assert.Equal(t, want, parallel)
}

func TestRangedTrails_Cancelled(t *testing.T) {
	a := parseSample(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.RangedTrails(ctx, WithWorkers(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithWorkers_Floor(t *testing.T) {
	cfg := newConfig([]Option{WithWorkers(0)})
	assert.Equal(t, 1, cfg.workers)

	cfg = newConfig([]Option{WithLogger(nil)})
	assert.NotNil(t, cfg.logger)
}

func TestNew_BrokenChain(t *testing.T) {
	soil, err := newStage("seed", "soil", nil)
	require.NoError(t, err)
	water, err := newStage("fertilizer", "water", nil)
	require.NoError(t, err)

	_, err = New(nil, []Stage{soil, water})
	assert.ErrorIs(t, err, ErrBrokenChain)
	assert.Contains(t, err.Error(), "fertilizer-to-water follows seed-to-soil")
}
