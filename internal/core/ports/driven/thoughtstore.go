package driven

import (
	"context"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

// ThoughtStore durably holds the ordered thought list across process
// restarts. The core reads the full list once at startup and writes
// the full list back after every mutation; there is no per-record
// update operation.
type ThoughtStore interface {
	// Load reads the complete thought list. A store that has never
	// been written returns an empty list, not an error.
	Load(ctx context.Context) ([]domain.Thought, error)

	// Save replaces the stored list with the given one, preserving
	// order.
	Save(ctx context.Context, thoughts []domain.Thought) error
}
