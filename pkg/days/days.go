// Package days holds the daily puzzle solutions. Each file registers its
// day with the puzzle registry on init, together with the sample input and
// expected answer of each part.
package days

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc-go/aoc/pkg/puzzle"
)

// samplesFS embeds the example inputs given with each puzzle.
//
//go:embed samples/*.txt
var samplesFS embed.FS

// sample loads an embedded example input. A missing file is a build
// mistake, so it panics during init.
func sample(name string, want int64) puzzle.Sample {
	data, err := samplesFS.ReadFile("samples/" + name)
	if err != nil {
		panic(fmt.Sprintf("days: missing sample %s: %v", name, err))
	}
	return puzzle.Sample{Input: string(data), Want: want}
}

// lines splits input into non-empty trimmed lines.
func lines(input string) []string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// numbers parses whitespace-separated integers.
func numbers(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
