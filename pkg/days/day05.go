package days

import (
	"context"

	"github.com/aoc-go/aoc/pkg/almanac"
	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/types"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 5,
		Title:  "If You Give A Seed A Fertilizer",
		Solvers: map[types.Part]puzzle.SolveFunc{
			types.PartOne: lowestLocation,
			types.PartTwo: lowestRangedLocation,
		},
		Samples: map[types.Part]puzzle.Sample{
			types.PartOne: sample("day05.txt", 35),
			types.PartTwo: sample("day05.txt", 46),
		},
	})
}

func lowestLocation(_ context.Context, in puzzle.Input) (int64, error) {
	a, err := almanac.Parse(in.Text)
	if err != nil {
		return 0, err
	}
	return a.Lowest("location")
}

func lowestRangedLocation(ctx context.Context, in puzzle.Input) (int64, error) {
	a, err := almanac.Parse(in.Text)
	if err != nil {
		return 0, err
	}
	return a.LowestRanged(ctx, "location",
		almanac.WithLogger(in.Logger),
		almanac.WithWorkers(in.Workers))
}
