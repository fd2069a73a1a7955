package store

import (
	"sort"
	"sync"

	"github.com/aoc-go/aoc/pkg/types"
)

// MemoryStore implements Store using in-memory data structures.
// Used for ":memory:" datastores and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	answers map[string]*types.Answer // keyed by Answer.ID
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		answers: make(map[string]*types.Answer),
	}
}

// AddAnswer stores an answer (deduplicated by ID).
func (m *MemoryStore) AddAnswer(a *types.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.answers[a.ID]; exists {
		return nil
	}

	// Store a copy so later edits by the caller are not visible.
	m.answers[a.ID] = cloneAnswer(a)
	return nil
}

// GetAnswers retrieves the answers recorded for one day.
func (m *MemoryStore) GetAnswers(day int) ([]*types.Answer, error) {
	return m.collect(func(a *types.Answer) bool { return a.Day == day }), nil
}

// GetAllAnswers retrieves every recorded answer.
func (m *MemoryStore) GetAllAnswers() ([]*types.Answer, error) {
	return m.collect(func(*types.Answer) bool { return true }), nil
}

// AnswerExists checks if an answer with this ID has been recorded.
func (m *MemoryStore) AnswerExists(id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.answers[id]
	return exists, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) collect(keep func(*types.Answer) bool) []*types.Answer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*types.Answer, 0, len(m.answers))
	for _, a := range m.answers {
		if keep(a) {
			result = append(result, cloneAnswer(a))
		}
	}

	sort.Slice(result, func(i, j int) bool { return lessAnswer(result[i], result[j]) })
	return result
}

// cloneAnswer copies a, including the value Want points at.
func cloneAnswer(a *types.Answer) *types.Answer {
	c := *a
	if a.Want != nil {
		want := *a.Want
		c.Want = &want
	}
	return &c
}
