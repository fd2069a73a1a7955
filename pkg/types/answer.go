package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"
)

// Part selects the first or second half of a day's puzzle.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{PartOne, PartTwo}

// ParsePart converts 1 or 2 into a Part.
func ParsePart(n int) (Part, error) {
	switch Part(n) {
	case PartOne, PartTwo:
		return Part(n), nil
	default:
		return 0, fmt.Errorf("invalid part %d: must be 1 or 2", n)
	}
}

func (p Part) String() string {
	return fmt.Sprintf("Part %d", int(p))
}

// CheckStatus records how an answer compared with a known expected value.
type CheckStatus string

const (
	CheckPassed    CheckStatus = "passed"
	CheckFailed    CheckStatus = "failed"
	CheckUnchecked CheckStatus = "unchecked"
)

// Answer is the result of solving one part of one day.
type Answer struct {
	ID       string        `json:"id"` // SHA-1(day + '\0' + part + '\0' + sample + '\0' + value)
	Day      int           `json:"day"`
	Part     Part          `json:"part"`
	Value    int64         `json:"value"`
	Sample   bool          `json:"sample"`
	Want     *int64        `json:"want,omitempty"`
	Check    CheckStatus   `json:"check"`
	Elapsed  time.Duration `json:"elapsed"`
	SolvedAt time.Time     `json:"solved_at"`
}

// NewAnswer creates an answer stamped with the current time.
// When want is non-nil the answer is checked against it.
func NewAnswer(day int, part Part, value int64, sample bool, want *int64, elapsed time.Duration) *Answer {
	a := &Answer{
		ID:       ComputeAnswerID(day, part, sample, value),
		Day:      day,
		Part:     part,
		Value:    value,
		Sample:   sample,
		Want:     want,
		Check:    CheckUnchecked,
		Elapsed:  elapsed,
		SolvedAt: time.Now().UTC(),
	}
	if want != nil {
		if *want == value {
			a.Check = CheckPassed
		} else {
			a.Check = CheckFailed
		}
	}
	return a
}

// ComputeAnswerID computes a content-based answer ID so the same result
// recorded twice is stored once.
// Format: SHA-1(day + '\0' + part + '\0' + sample + '\0' + value)
func ComputeAnswerID(day int, part Part, sample bool, value int64) string {
	h := sha1.New()
	fmt.Fprintf(h, "%d", day)
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d", int(part))
	h.Write([]byte{0})
	fmt.Fprintf(h, "%t", sample)
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d", value)
	return hex.EncodeToString(h.Sum(nil))
}
