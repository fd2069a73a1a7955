package days

import (
	"context"
	"fmt"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/types"
	"github.com/dlclark/regexp2"
)

// Lookahead keeps matches zero-width so overlapping words like "oneight"
// yield both digits.
var (
	digitPattern   = regexp2.MustCompile(`(?=([0-9]))`, regexp2.None)
	spelledPattern = regexp2.MustCompile(`(?=([0-9]|one|two|three|four|five|six|seven|eight|nine))`, regexp2.None)
)

var spelledDigits = map[string]int64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

func init() {
	puzzle.Register(puzzle.Day{
		Number: 1,
		Title:  "Trebuchet?!",
		Solvers: map[types.Part]puzzle.SolveFunc{
			types.PartOne: func(ctx context.Context, in puzzle.Input) (int64, error) {
				return documentCalibration(in.Text, digitPattern)
			},
			types.PartTwo: func(ctx context.Context, in puzzle.Input) (int64, error) {
				return documentCalibration(in.Text, spelledPattern)
			},
		},
		Samples: map[types.Part]puzzle.Sample{
			types.PartOne: sample("day01.txt", 142),
			types.PartTwo: sample("day01_2.txt", 281),
		},
	})
}

// documentCalibration sums the calibration value of every line.
func documentCalibration(input string, pattern *regexp2.Regexp) (int64, error) {
	var sum int64
	for i, line := range lines(input) {
		v, err := lineCalibration(line, pattern)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

// lineCalibration combines the first and last digit of line into a
// two-digit number. A line with one digit uses it twice.
func lineCalibration(line string, pattern *regexp2.Regexp) (int64, error) {
	var first, last string

	m, err := pattern.FindStringMatch(line)
	for m != nil && err == nil {
		token := m.GroupByNumber(1).String()
		if first == "" {
			first = token
		}
		last = token
		m, err = pattern.FindNextMatch(m)
	}
	if err != nil {
		return 0, fmt.Errorf("matching %q: %w", line, err)
	}
	if first == "" {
		return 0, fmt.Errorf("no digit in %q", line)
	}

	return digitValue(first)*10 + digitValue(last), nil
}

func digitValue(token string) int64 {
	if v, ok := spelledDigits[token]; ok {
		return v
	}
	return int64(token[0] - '0')
}
