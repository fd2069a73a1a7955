package main

import (
	"github.com/aoc-go/aoc"
	"github.com/aoc-go/aoc/pkg/config"
	"github.com/aoc-go/aoc/pkg/serve"
	"github.com/spf13/cobra"
)

var (
	serveSample   bool
	serveInputDir string
	serveWorkers  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming NDJSON server",
	Long: `Run aoc as a long-lived server that reads requests from stdin and writes
responses to stdout, one JSON object per line.

Requests:
  {"type":"solve","payload":{"day":5,"part":2}}
  {"type":"translate","payload":{"ranges":[[79,14]],"table":[{"dest":50,"src":98,"length":2}],"merge":true}}
  {"type":"close"}

The server exits when stdin closes, on "close", or on SIGINT/SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveSample, "sample", false, "Solve embedded samples instead of input files")
	serveCmd.Flags().StringVar(&serveInputDir, "input-dir", config.DefaultInputDir, "Directory containing day_NN.txt inputs")
	serveCmd.Flags().IntVarP(&serveWorkers, "workers", "w", config.DefaultWorkers, "Goroutines per solver")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts := []aoc.Option{
		aoc.WithInputDir(stringSetting(cmd, "input-dir", serveInputDir, settings.InputDir)),
		aoc.WithWorkers(intSetting(cmd, "workers", serveWorkers, settings.Workers)),
		aoc.WithLogger(logger),
	}
	if serveSample {
		opts = append(opts, aoc.WithSample())
	}

	srv := serve.NewServer(aoc.NewSolver(opts...), cmd.InOrStdin(), cmd.OutOrStdout())
	srv.SetLogger(logger)
	return srv.Run(commandContext(cmd))
}
