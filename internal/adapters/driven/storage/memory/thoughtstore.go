// Package memory provides in-memory implementations of the driven
// storage and ledger ports, used in tests and as a fallback when no
// durable store is available.
package memory

import (
	"context"
	"sync"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driven"
)

// Ensure ThoughtStore implements the interface.
var _ driven.ThoughtStore = (*ThoughtStore)(nil)

// ThoughtStore is an in-memory implementation of driven.ThoughtStore.
type ThoughtStore struct {
	mu       sync.RWMutex
	thoughts []domain.Thought

	// SaveErr, when set, is returned by Save. Used to exercise
	// persistence failure paths in tests.
	SaveErr error

	// LoadErr, when set, is returned by Load.
	LoadErr error
}

// NewThoughtStore creates a new in-memory thought store.
func NewThoughtStore() *ThoughtStore {
	return &ThoughtStore{}
}

// Load returns a copy of the stored thought list.
func (s *ThoughtStore) Load(_ context.Context) ([]domain.Thought, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]domain.Thought, len(s.thoughts))
	copy(out, s.thoughts)
	return out, nil
}

// Save replaces the stored list.
func (s *ThoughtStore) Save(_ context.Context, thoughts []domain.Thought) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.thoughts = make([]domain.Thought, len(thoughts))
	copy(s.thoughts, thoughts)
	return nil
}

// Len returns the number of stored thoughts.
func (s *ThoughtStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.thoughts)
}
