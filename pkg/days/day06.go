package days

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/types"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 6,
		Title:  "Wait For It",
		Solvers: map[types.Part]puzzle.SolveFunc{
			types.PartOne: func(ctx context.Context, in puzzle.Input) (int64, error) {
				races, err := parseRaces(in.Text)
				if err != nil {
					return 0, err
				}
				return marginOfError(races), nil
			},
			types.PartTwo: func(ctx context.Context, in puzzle.Input) (int64, error) {
				r, err := parseKerningRace(in.Text)
				if err != nil {
					return 0, err
				}
				return marginOfError([]race{r}), nil
			},
		},
		Samples: map[types.Part]puzzle.Sample{
			types.PartOne: sample("day06.txt", 288),
			types.PartTwo: sample("day06.txt", 71503),
		},
	})
}

// race is one record: the race lasts time ms and the record is distance mm.
type race struct {
	time     int64
	distance int64
}

// travelled is how far the boat goes when the button is held for heldFor
// of a race lasting duration.
func travelled(heldFor, duration int64) int64 {
	return (duration - heldFor) * heldFor
}

// winningHolds counts the hold times that beat the record. Distance is
// symmetric around duration/2, so finding the shortest winning hold is
// enough.
func winningHolds(r race) int64 {
	for held := int64(0); held <= r.time/2; held++ {
		if travelled(held, r.time) > r.distance {
			return r.time - 2*held + 1
		}
	}
	return 0
}

// marginOfError multiplies the winning hold counts of races.
func marginOfError(races []race) int64 {
	product := int64(1)
	for _, r := range races {
		product *= winningHolds(r)
	}
	return product
}

func raceRows(input string) (times, distances string, err error) {
	for _, line := range lines(input) {
		if v, ok := strings.CutPrefix(line, "Time:"); ok {
			times = v
		} else if v, ok := strings.CutPrefix(line, "Distance:"); ok {
			distances = v
		}
	}
	if times == "" || distances == "" {
		return "", "", fmt.Errorf("expected Time and Distance lines")
	}
	return times, distances, nil
}

func parseRaces(input string) ([]race, error) {
	timeRow, distanceRow, err := raceRows(input)
	if err != nil {
		return nil, err
	}
	times, err := numbers(timeRow)
	if err != nil {
		return nil, fmt.Errorf("times: %w", err)
	}
	distances, err := numbers(distanceRow)
	if err != nil {
		return nil, fmt.Errorf("distances: %w", err)
	}
	if len(times) != len(distances) {
		return nil, fmt.Errorf("%d times but %d distances", len(times), len(distances))
	}

	races := make([]race, len(times))
	for i := range times {
		races[i] = race{time: times[i], distance: distances[i]}
	}
	return races, nil
}

// parseKerningRace reads the rows as a single race by ignoring the spaces
// between numbers.
func parseKerningRace(input string) (race, error) {
	timeRow, distanceRow, err := raceRows(input)
	if err != nil {
		return race{}, err
	}
	t, err := strconv.ParseInt(strings.Join(strings.Fields(timeRow), ""), 10, 64)
	if err != nil {
		return race{}, fmt.Errorf("time: %w", err)
	}
	d, err := strconv.ParseInt(strings.Join(strings.Fields(distanceRow), ""), 10, 64)
	if err != nil {
		return race{}, fmt.Errorf("distance: %w", err)
	}
	return race{time: t, distance: d}, nil
}
