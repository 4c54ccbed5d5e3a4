package driving

import (
	"context"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

// NewThought carries the user input for creating a thought record.
type NewThought struct {
	// Title is the label and hash key. Required.
	Title string

	// Content is the optional text body.
	Content string

	// Media is the optional binary attachment.
	Media *domain.MediaAttachment

	// Private selects the disclosure policy: a private thought
	// discloses only its commitment digest to the ledger.
	Private bool
}

// ThoughtService manages the local thought list and its anchoring on
// the ledger. The list is loaded from the store once and written
// back whole after every mutation.
type ThoughtService interface {
	// Load reads the persisted thought list into the session.
	Load(ctx context.Context) error

	// List returns the session's thoughts, newest first.
	List() []domain.Thought

	// Get returns the thought with the given ID.
	Get(id string) (*domain.Thought, error)

	// Create computes the commitment for the input, assigns an ID
	// and timestamp, prepends the record to the session list and
	// persists it. No network call is made.
	Create(ctx context.Context, input NewThought) (*domain.Thought, error)

	// Publish submits the thought's disclosure payload to the
	// ledger. On success the record's TxID and OnLedger are set
	// (exactly once) and persisted. On failure the record is left
	// intact locally with OnLedger false; only the on-chain proof
	// is pending.
	Publish(ctx context.Context, id string) (string, error)
}
