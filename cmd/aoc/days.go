package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/types"
	"github.com/spf13/cobra"
)

var daysFormat string

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List solved days",
	Long:  "Display every registered day with its title, solved parts and samples",
	RunE:  runDays,
}

func init() {
	daysCmd.Flags().StringVar(&daysFormat, "format", "table", "Output format: table, json")
}

// dayInfo is the JSON shape of a registered day.
type dayInfo struct {
	Day     int          `json:"day"`
	Title   string       `json:"title"`
	Parts   []types.Part `json:"parts"`
	Samples []types.Part `json:"samples"`
}

func runDays(cmd *cobra.Command, args []string) error {
	var infos []dayInfo
	for _, d := range puzzle.Days() {
		info := dayInfo{Day: d.Number, Title: d.Title, Parts: d.Parts()}
		for _, p := range types.Parts {
			if _, ok := d.Sample(p); ok {
				info.Samples = append(info.Samples, p)
			}
		}
		infos = append(infos, info)
	}

	switch daysFormat {
	case "json":
		return writeJSON(cmd.OutOrStdout(), infos)
	case "table":
		return outputDaysTable(cmd, infos)
	default:
		return fmt.Errorf("unknown output format: %s", daysFormat)
	}
}

func outputDaysTable(cmd *cobra.Command, infos []dayInfo) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Day\tTitle\tParts\tSamples\n")
	fmt.Fprintf(w, "---\t-----\t-----\t-------\n")

	for _, info := range infos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", info.Day, info.Title, partList(info.Parts), partList(info.Samples))
	}

	return nil
}

func partList(parts []types.Part) string {
	if len(parts) == 0 {
		return "-"
	}
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(int(p))
	}
	return strings.Join(s, ",")
}
