package days

import (
	"context"
	"regexp"
	"strconv"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/types"
)

var partNumber = regexp.MustCompile(`[0-9]+`)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 3,
		Title:  "Gear Ratios",
		Solvers: map[types.Part]puzzle.SolveFunc{
			types.PartOne: func(ctx context.Context, in puzzle.Input) (int64, error) {
				return sumPartNumbers(parseSchematic(in.Text))
			},
			types.PartTwo: func(ctx context.Context, in puzzle.Input) (int64, error) {
				return sumGearRatios(parseSchematic(in.Text))
			},
		},
		Samples: map[types.Part]puzzle.Sample{
			types.PartOne: sample("day03.txt", 4361),
			types.PartTwo: sample("day03.txt", 467835),
		},
	})
}

// cell is a grid position as (row, column).
type cell [2]int

// number is a run of digits on one row, columns [from, to).
type number struct {
	value    int64
	row      int
	from, to int
}

// neighbours yields every cell touching the number, diagonals included.
func (n number) neighbours(yield func(cell) bool) {
	for r := n.row - 1; r <= n.row+1; r++ {
		for c := n.from - 1; c <= n.to; c++ {
			if r == n.row && c >= n.from && c < n.to {
				continue
			}
			if !yield(cell{r, c}) {
				return
			}
		}
	}
}

type schematic struct {
	numbers []number
	symbols map[cell]byte
}

func parseSchematic(input string) (schematic, error) {
	s := schematic{symbols: make(map[cell]byte)}
	for row, line := range lines(input) {
		for _, loc := range partNumber.FindAllStringIndex(line, -1) {
			v, err := strconv.ParseInt(line[loc[0]:loc[1]], 10, 64)
			if err != nil {
				return schematic{}, err
			}
			s.numbers = append(s.numbers, number{value: v, row: row, from: loc[0], to: loc[1]})
		}
		for col := 0; col < len(line); col++ {
			if ch := line[col]; ch != '.' && (ch < '0' || ch > '9') {
				s.symbols[cell{row, col}] = ch
			}
		}
	}
	return s, nil
}

// sumPartNumbers adds every number touching at least one symbol.
func sumPartNumbers(s schematic, err error) (int64, error) {
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, n := range s.numbers {
		for c := range n.neighbours {
			if _, ok := s.symbols[c]; ok {
				sum += n.value
				break
			}
		}
	}
	return sum, nil
}

// sumGearRatios adds the product of the two numbers around each '*' that
// touches exactly two numbers.
func sumGearRatios(s schematic, err error) (int64, error) {
	if err != nil {
		return 0, err
	}

	adjacent := make(map[cell][]int64)
	for _, n := range s.numbers {
		for c := range n.neighbours {
			if s.symbols[c] == '*' {
				adjacent[c] = append(adjacent[c], n.value)
			}
		}
	}

	var sum int64
	for _, values := range adjacent {
		if len(values) == 2 {
			sum += values[0] * values[1]
		}
	}
	return sum, nil
}
