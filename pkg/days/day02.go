package days

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/types"
)

var (
	gameLine  = regexp.MustCompile(`^Game (\d+): (.*)$`)
	cubeCount = regexp.MustCompile(`(\d+) (red|green|blue)`)
)

// bagLimit is the part one bag content.
var bagLimit = cubeSet{"red": 12, "green": 13, "blue": 14}

// cubeSet counts cubes by color.
type cubeSet map[string]int64

func init() {
	puzzle.Register(puzzle.Day{
		Number: 2,
		Title:  "Cube Conundrum",
		Solvers: map[types.Part]puzzle.SolveFunc{
			types.PartOne: func(ctx context.Context, in puzzle.Input) (int64, error) {
				return possibleGames(in.Text, bagLimit)
			},
			types.PartTwo: func(ctx context.Context, in puzzle.Input) (int64, error) {
				return sumOfPowers(in.Text)
			},
		},
		Samples: map[types.Part]puzzle.Sample{
			types.PartOne: sample("day02.txt", 8),
			types.PartTwo: sample("day02.txt", 2286),
		},
	})
}

// maxPerGame returns, for every game ID, the most cubes of each color
// shown at once.
func maxPerGame(input string) (map[int64]cubeSet, error) {
	games := make(map[int64]cubeSet)
	for _, line := range lines(input) {
		m := gameLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("malformed game %q", line)
		}
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("game id %q: %w", m[1], err)
		}

		maxes := cubeSet{"red": 0, "green": 0, "blue": 0}
		for _, c := range cubeCount.FindAllStringSubmatch(m[2], -1) {
			n, err := strconv.ParseInt(c[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("game %d: %w", id, err)
			}
			maxes[c[2]] = max(maxes[c[2]], n)
		}
		games[id] = maxes
	}
	return games, nil
}

// possibleGames sums the IDs of games that fit within limit.
func possibleGames(input string, limit cubeSet) (int64, error) {
	games, err := maxPerGame(input)
	if err != nil {
		return 0, err
	}

	var sum int64
	for id, maxes := range games {
		if maxes["red"] <= limit["red"] && maxes["green"] <= limit["green"] && maxes["blue"] <= limit["blue"] {
			sum += id
		}
	}
	return sum, nil
}

// sumOfPowers sums red*green*blue of every game's minimum cube set.
func sumOfPowers(input string) (int64, error) {
	games, err := maxPerGame(input)
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, maxes := range games {
		sum += maxes["red"] * maxes["green"] * maxes["blue"]
	}
	return sum, nil
}
