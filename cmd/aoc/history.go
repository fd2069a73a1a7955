package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/aoc-go/aoc/pkg/config"
	"github.com/aoc-go/aoc/pkg/store"
	"github.com/aoc-go/aoc/pkg/types"
	"github.com/spf13/cobra"
)

var (
	historyDatastore string
	historyDay       int
	historyFormat    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded answers",
	Long:  "Read answers recorded with 'aoc solve --record' from a datastore",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDatastore, "datastore", config.DefaultDatastore, "Path to answer datastore")
	historyCmd.Flags().IntVarP(&historyDay, "day", "d", 0, "Only show this day")
	historyCmd.Flags().StringVar(&historyFormat, "format", "human", "Output format: human, json")
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := stringSetting(cmd, "datastore", historyDatastore, settings.Datastore)

	if path == store.MemoryPath {
		return fmt.Errorf("cannot read history from in-memory store")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("datastore not found: %s", path)
	}

	s, err := store.New(store.Config{Path: path})
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}
	defer s.Close()

	var answers []*types.Answer
	if historyDay != 0 {
		answers, err = s.GetAnswers(historyDay)
	} else {
		answers, err = s.GetAllAnswers()
	}
	if err != nil {
		return fmt.Errorf("retrieving answers: %w", err)
	}

	switch historyFormat {
	case "json":
		return writeJSON(cmd.OutOrStdout(), answers)
	case "human":
		return outputHistoryTable(cmd, path, answers)
	default:
		return fmt.Errorf("unknown output format: %s", historyFormat)
	}
}

func outputHistoryTable(cmd *cobra.Command, path string, answers []*types.Answer) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Datastore: %s\n", path)
	fmt.Fprintf(out, "Total answers: %d\n\n", len(answers))

	if len(answers) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Day\tPart\tSource\tValue\tCheck\tElapsed\tSolved\n")
	fmt.Fprintf(w, "---\t----\t------\t-----\t-----\t-------\t------\n")

	for _, a := range answers {
		source := "input"
		if a.Sample {
			source = "sample"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\t%s\t%s\n",
			a.Day, int(a.Part), source, a.Value, a.Check,
			formatElapsed(a.Elapsed), a.SolvedAt.Local().Format(time.DateTime))
	}

	return nil
}
