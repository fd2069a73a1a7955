package serve

import (
	"encoding/json"

	"github.com/aoc-go/aoc/pkg/types"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "solve" | "translate" | "close"
	Payload json.RawMessage `json:"payload"`
}

// SolvePayload is the payload for "solve" requests.
// Part 0 solves every part of the day.
type SolvePayload struct {
	Day  int `json:"day"`
	Part int `json:"part,omitempty"`
}

// SolveResult is the data field for "solve" responses
type SolveResult struct {
	Answers []*types.Answer `json:"answers"`
}

// Row is one "dest src length" mapping line.
type Row struct {
	Dest   int64 `json:"dest"`
	Src    int64 `json:"src"`
	Length int64 `json:"length"`
}

// Span is a range on the wire: [start, length]. Requests with any other
// number of elements are rejected.
type Span []int64

// TranslatePayload is the payload for "translate" requests
type TranslatePayload struct {
	Ranges []Span `json:"ranges"`
	Table  []Row  `json:"table"`
	Merge  bool   `json:"merge,omitempty"`
}

// TranslateResult is the data field for "translate" responses.
// Lowest is omitted when no range is left.
type TranslateResult struct {
	Ranges []Span `json:"ranges"`
	Lowest *int64 `json:"lowest,omitempty"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" | "solve" | "translate" | "decode" | "unknown"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
	Days    []int  `json:"days"`
}
