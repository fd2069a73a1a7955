package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aoc-go/aoc/pkg/types"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles holds color formatters for answer output.
type styles struct {
	heading *color.Color
	value   *color.Color
	passed  *color.Color
	failed  *color.Color
	muted   *color.Color
}

// newStyles creates color formatters. The choice is forced on each
// formatter so it does not depend on color.NoColor.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		value:   color.New(color.Bold, color.FgHiWhite),
		passed:  color.New(color.FgHiGreen),
		failed:  color.New(color.Bold, color.FgHiRed),
		muted:   color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{s.heading, s.value, s.passed, s.failed, s.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// useColor resolves an auto/always/never mode.
func useColor(mode string) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		// Check if stdout is a TTY and NO_COLOR is not set
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("invalid color mode %q: must be auto, always or never", mode)
	}
}

// check renders a CheckStatus in its style.
func (s *styles) check(c types.CheckStatus) string {
	switch c {
	case types.CheckPassed:
		return s.passed.Sprint(string(c))
	case types.CheckFailed:
		return s.failed.Sprint(string(c))
	default:
		return s.muted.Sprint(string(c))
	}
}

// writeAnswer prints one answer line, e.g.
//
//	Day 5 Part 2: 46 (sample passed, 1.2ms)
func writeAnswer(w io.Writer, s *styles, a *types.Answer) {
	source := "input"
	if a.Sample {
		source = "sample"
	}

	detail := fmt.Sprintf("%s %s", source, s.check(a.Check))
	if a.Check == types.CheckFailed && a.Want != nil {
		detail += fmt.Sprintf(", want %d", *a.Want)
	}
	detail += ", " + formatElapsed(a.Elapsed)

	fmt.Fprintf(w, "%s %s (%s)\n",
		s.heading.Sprintf("Day %d %s:", a.Day, a.Part),
		s.value.Sprint(a.Value),
		detail)
}

// formatElapsed rounds a duration for display.
func formatElapsed(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
