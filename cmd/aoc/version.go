package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/aoc-go/aoc"
	"github.com/aoc-go/aoc/pkg/serve"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the aoc build, the serve protocol version and the registered days",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "human", "Output format: human, json")
}

// buildInfo is the JSON shape of `aoc version`.
type buildInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
	Protocol string `json:"protocol"`
	Days     []int  `json:"days"`
}

func currentBuild() buildInfo {
	b := buildInfo{
		Version:  version,
		Commit:   commit,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Protocol: serve.Version,
		Days:     aoc.Days(),
	}
	// `go install module@version` stamps the module version without ldflags.
	if info, ok := debug.ReadBuildInfo(); ok && b.Version == "dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			b.Version = v
		}
	}
	return b
}

func runVersion(cmd *cobra.Command, args []string) error {
	b := currentBuild()
	out := cmd.OutOrStdout()

	switch versionFormat {
	case "json":
		return writeJSON(out, b)
	case "human":
		fmt.Fprintf(out, "aoc %s (%s)\n", b.Version, b.Commit)
		fmt.Fprintf(out, "%s %s, serve protocol %s\n", b.Go, b.Platform, b.Protocol)
		fmt.Fprintf(out, "Days: %v\n", b.Days)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", versionFormat)
	}
}
