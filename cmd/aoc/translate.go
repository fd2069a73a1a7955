package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/aoc-go/aoc/pkg/almanac"
	"github.com/aoc-go/aoc/pkg/sparse"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	translateTable   string
	translateStage   string
	translateMerge   bool
	translateDump    bool
	translateWorkers int
)

var translateCmd = &cobra.Command{
	Use:   "translate --table <stages.yml|almanac.txt> [START:LEN...]",
	Short: "Run integer ranges through a chain of mapping tables",
	Long: `Translate START:LEN ranges through the stages of a mapping table and print
the ranges reached at every category, followed by the lowest start.

The table is YAML (see testdata/stages.yml) or a raw day 5 almanac.
Without range arguments the table's own seeds are used as pairs.
--dump prints the table as YAML instead, converting an almanac input:

  aoc translate --table inputs/day_05.txt --dump > stages.yml
  aoc translate --table stages.yml --stage humidity 79:14 55:13`,
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVarP(&translateTable, "table", "t", "", "Stage table: YAML file or day 5 almanac")
	translateCmd.Flags().StringVar(&translateStage, "stage", "", "Stop at this category (default: the last)")
	translateCmd.Flags().BoolVar(&translateMerge, "merge", false, "Merge overlapping ranges before printing each category")
	translateCmd.Flags().BoolVar(&translateDump, "dump", false, "Print the table as YAML and exit")
	translateCmd.Flags().IntVarP(&translateWorkers, "workers", "w", 1, "Ranges translated concurrently")
	_ = translateCmd.MarkFlagRequired("table")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	a, err := loadTable(translateTable)
	if err != nil {
		return err
	}

	if translateDump {
		data, err := yaml.Marshal(a)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if len(args) > 0 {
		a.Seeds, err = parseRangeArgs(args)
		if err != nil {
			return err
		}
	}

	path := a.Path()
	if translateStage != "" {
		i := slices.Index(path, translateStage)
		if i < 0 {
			return fmt.Errorf("unknown stage %q: choose one of %s", translateStage, strings.Join(path, ", "))
		}
		path = path[:i+1]
	}

	trails, err := a.RangedTrails(commandContext(cmd),
		almanac.WithLogger(logger),
		almanac.WithWorkers(intSetting(cmd, "workers", translateWorkers, settings.Workers)))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := 0
	for _, category := range path {
		width = max(width, len(category))
	}

	for _, category := range path {
		ranges := trails[category]
		if translateMerge {
			ranges = sparse.Merge(ranges...)
		}
		fmt.Fprintf(out, "%-*s  %s\n", width, category, formatRanges(ranges))
	}

	last := path[len(path)-1]
	lowest, ok := sparse.Min(trails[last])
	if !ok {
		return fmt.Errorf("no ranges reach %s", last)
	}
	fmt.Fprintf(out, "lowest %s: %d\n", last, lowest)
	return nil
}

// loadTable reads a YAML stage file, or parses an almanac for any other
// extension.
func loadTable(path string) (*almanac.Almanac, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return almanac.LoadYAMLFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return almanac.Parse(string(data))
}

// parseRangeArgs turns START:LEN arguments into flat seed pairs.
func parseRangeArgs(args []string) ([]int64, error) {
	seeds := make([]int64, 0, 2*len(args))
	for _, arg := range args {
		startText, lengthText, found := strings.Cut(arg, ":")
		if !found {
			return nil, fmt.Errorf("invalid range %q: expected START:LEN", arg)
		}
		start, err := strconv.ParseInt(startText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: bad start", arg)
		}
		length, err := strconv.ParseInt(lengthText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: bad length", arg)
		}
		if _, err := sparse.New(start, length); err != nil {
			return nil, err
		}
		seeds = append(seeds, start, length)
	}
	return seeds, nil
}

func formatRanges(ranges []sparse.Range) string {
	if len(ranges) == 0 {
		return "-"
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
