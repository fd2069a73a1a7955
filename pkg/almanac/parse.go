package almanac

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	seedsLine = regexp.MustCompile(`^seeds:\s*(.*)$`)
	mapHeader = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)
)

// Parse reads an almanac in puzzle format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each map block is a stage; each row is "dest src length".
func Parse(input string) (*Almanac, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	// No line can be longer than the whole input.
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), max(len(input)+1, bufio.MaxScanTokenSize))

	var (
		seeds     []int64
		stages    []Stage
		seenSeeds bool
		from, to  string
		rows      []Row
		inStage   bool
		lineNo    int
	)

	flush := func() error {
		if !inStage {
			return nil
		}
		stage, err := newStage(from, to, rows)
		if err != nil {
			return err
		}
		stages = append(stages, stage)
		inStage, rows = false, nil
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}

		case seedsLine.MatchString(line):
			if seenSeeds {
				return nil, fmt.Errorf("line %d: seeds listed twice", lineNo)
			}
			nums, err := parseNumbers(seedsLine.FindStringSubmatch(line)[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: seeds: %w", lineNo, err)
			}
			seeds, seenSeeds = nums, true

		case mapHeader.MatchString(line):
			if err := flush(); err != nil {
				return nil, err
			}
			m := mapHeader.FindStringSubmatch(line)
			from, to, inStage = m[1], m[2], true

		case inStage:
			nums, err := parseNumbers(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("line %d: expected 3 numbers in %s-to-%s row, got %d", lineNo, from, to, len(nums))
			}
			rows = append(rows, Row{Dest: nums[0], Src: nums[1], Length: nums[2]})

		default:
			return nil, fmt.Errorf("line %d: unexpected %q", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading almanac: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if !seenSeeds {
		return nil, fmt.Errorf("missing seeds line")
	}

	return New(seeds, stages)
}

func parseNumbers(s string) ([]int64, error) {
	fields := strings.Fields(s)
	nums := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
