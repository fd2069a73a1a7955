package main

import (
	"fmt"
	"strconv"

	"github.com/aoc-go/aoc"
	"github.com/aoc-go/aoc/pkg/config"
	"github.com/aoc-go/aoc/pkg/store"
	"github.com/aoc-go/aoc/pkg/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	solvePart      int
	solveSample    bool
	solveInputDir  string
	solveRecord    bool
	solveDatastore string
	solveWorkers   int
	solveFormat    string
	solveColor     string
)

var solveCmd = &cobra.Command{
	Use:   "solve <day|all>...",
	Short: "Solve one or more days",
	Long: `Solve the given days against inputs/day_NN.txt, or against each puzzle's
embedded sample with --sample. Sample answers are checked against the
expected values and a failed check makes the command exit non-zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&solvePart, "part", "p", 0, "Only solve this part (1 or 2)")
	solveCmd.Flags().BoolVar(&solveSample, "sample", false, "Solve the embedded sample instead of the input file")
	solveCmd.Flags().StringVar(&solveInputDir, "input-dir", config.DefaultInputDir, "Directory containing day_NN.txt inputs")
	solveCmd.Flags().BoolVar(&solveRecord, "record", false, "Record answers in the datastore")
	solveCmd.Flags().StringVar(&solveDatastore, "datastore", config.DefaultDatastore, "Path to answer datastore")
	solveCmd.Flags().IntVarP(&solveWorkers, "workers", "w", config.DefaultWorkers, "Goroutines per solver")
	solveCmd.Flags().StringVar(&solveFormat, "format", "human", "Output format: human, json")
	solveCmd.Flags().StringVar(&solveColor, "color", config.DefaultColor, "Color output: auto, always, never")
}

func runSolve(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	var parts []types.Part
	if solvePart != 0 {
		part, err := types.ParsePart(solvePart)
		if err != nil {
			return err
		}
		parts = append(parts, part)
	}

	if solveFormat != "human" && solveFormat != "json" {
		return fmt.Errorf("unknown output format: %s", solveFormat)
	}

	opts := []aoc.Option{
		aoc.WithInputDir(stringSetting(cmd, "input-dir", solveInputDir, settings.InputDir)),
		aoc.WithWorkers(intSetting(cmd, "workers", solveWorkers, settings.Workers)),
		aoc.WithLogger(logger),
	}
	if solveSample {
		opts = append(opts, aoc.WithSample())
	}

	if solveRecord {
		path := stringSetting(cmd, "datastore", solveDatastore, settings.Datastore)
		s, err := store.New(store.Config{Path: path})
		if err != nil {
			return fmt.Errorf("opening datastore: %w", err)
		}
		defer s.Close()
		opts = append(opts, aoc.WithStore(s))
		logger.Debug("recording answers", zap.String("datastore", path))
	}

	solver := aoc.NewSolver(opts...)
	ctx := commandContext(cmd)

	var answers []*types.Answer
	for _, day := range days {
		dayAnswers, err := solver.Solve(ctx, day, parts...)
		answers = append(answers, dayAnswers...)
		if err != nil {
			return err
		}
	}

	switch solveFormat {
	case "json":
		if err := writeJSON(cmd.OutOrStdout(), answers); err != nil {
			return err
		}
	default:
		enabled, err := useColor(stringSetting(cmd, "color", solveColor, settings.Color))
		if err != nil {
			return err
		}
		s := newStyles(enabled)
		for _, a := range answers {
			writeAnswer(cmd.OutOrStdout(), s, a)
		}
	}

	failed := 0
	for _, a := range answers {
		if a.Check == types.CheckFailed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d sample answer(s) did not match", failed)
	}
	return nil
}

// parseDays turns day arguments into numbers; "all" expands to every
// registered day.
func parseDays(args []string) ([]int, error) {
	var days []int
	for _, arg := range args {
		if arg == "all" {
			days = append(days, aoc.Days()...)
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		days = append(days, n)
	}
	return days, nil
}
