package store

import (
	"fmt"

	"github.com/aoc-go/aoc/pkg/types"
)

// MemoryPath selects the in-memory store instead of a SQLite file.
const MemoryPath = ":memory:"

// Store provides persistence for solved answers.
// This interface abstracts the underlying storage implementation,
// allowing the CLI to record history in SQLite and tests to run in memory.
type Store interface {
	// AddAnswer stores an answer (deduplicated by ID).
	AddAnswer(a *types.Answer) error

	// GetAnswers retrieves the answers recorded for one day.
	GetAnswers(day int) ([]*types.Answer, error)

	// GetAllAnswers retrieves every recorded answer.
	GetAllAnswers() ([]*types.Answer, error)

	// AnswerExists checks if an answer with this ID has been recorded.
	AnswerExists(id string) (bool, error)

	// Close closes the database connection.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for a process-local store (useful for testing).
	Path string
}

// New creates a new Store.
// ":memory:" returns a MemoryStore, any other path a SQLite file.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if cfg.Path == MemoryPath {
		return NewMemory(), nil
	}

	return NewSQLite(cfg.Path)
}

// lessAnswer orders answers by day, part, sample-first, then solve time.
func lessAnswer(a, b *types.Answer) bool {
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	if a.Part != b.Part {
		return a.Part < b.Part
	}
	if a.Sample != b.Sample {
		return a.Sample
	}
	return a.SolvedAt.Before(b.SolvedAt)
}
