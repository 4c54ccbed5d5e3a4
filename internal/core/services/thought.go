package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driven"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driving"
	"github.com/Fletch-Industries/immutify/internal/logger"
)

// Ensure ThoughtService implements the interface.
var _ driving.ThoughtService = (*ThoughtService)(nil)

// ThoughtService manages the session's thought list: creation with
// commitment computation, durable persistence, and anchoring on the
// ledger. The digest is always computed before submission is
// attempted; a failed submission leaves the record intact locally.
//
// A service instance belongs to a single caller session and is not
// safe for concurrent use.
type ThoughtService struct {
	store  driven.ThoughtStore
	ledger driven.Ledger
	commit driving.CommitmentService

	thoughts []domain.Thought

	// Injected for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewThoughtService creates a new thought service.
func NewThoughtService(store driven.ThoughtStore, ledger driven.Ledger, commit driving.CommitmentService) *ThoughtService {
	return &ThoughtService{
		store:  store,
		ledger: ledger,
		commit: commit,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Load reads the persisted thought list into the session.
func (s *ThoughtService) Load(ctx context.Context) error {
	thoughts, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading thoughts: %w", err)
	}
	s.thoughts = thoughts
	logger.Debug("loaded %d thoughts from store", len(thoughts))
	return nil
}

// List returns the session's thoughts, newest first.
func (s *ThoughtService) List() []domain.Thought {
	out := make([]domain.Thought, len(s.thoughts))
	copy(out, s.thoughts)
	return out
}

// Get returns the thought with the given ID.
func (s *ThoughtService) Get(id string) (*domain.Thought, error) {
	for i := range s.thoughts {
		if s.thoughts[i].ID == id {
			t := s.thoughts[i]
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create computes the commitment for the input, records the thought
// at the head of the session list and persists the whole list.
func (s *ThoughtService) Create(ctx context.Context, input driving.NewThought) (*domain.Thought, error) {
	var media []byte
	if input.Media != nil {
		media = input.Media.Data
	}

	digest, err := s.commit.Commit(input.Title, input.Content, media)
	if err != nil {
		return nil, err
	}

	thought := domain.Thought{
		ID:         s.newID(),
		Title:      input.Title,
		Content:    input.Content,
		Media:      input.Media,
		Private:    input.Private,
		Commitment: digest,
		CreatedAt:  s.now().UTC(),
	}

	s.thoughts = append([]domain.Thought{thought}, s.thoughts...)
	if err := s.store.Save(ctx, s.thoughts); err != nil {
		return nil, fmt.Errorf("saving thoughts: %w", err)
	}

	logger.Debug("created thought %s (%s)", thought.ID, thought.Title)
	return &thought, nil
}

// Publish submits the thought's disclosure payload to the ledger and
// records the transaction ID on success. The record is mutated
// exactly once: TxID is set if and only if OnLedger becomes true.
// In the public text-only disclosure branch the stored commitment is
// replaced by the disclosed plaintext so the local proof matches the
// ledger entry.
func (s *ThoughtService) Publish(ctx context.Context, id string) (string, error) {
	idx := -1
	for i := range s.thoughts {
		if s.thoughts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", domain.ErrNotFound
	}

	t := &s.thoughts[idx]
	if t.OnLedger {
		return "", domain.ErrAlreadyPublished
	}

	payload := selectPayload(*t)
	logger.Debug("submitting payload for thought %s (%d bytes)", t.ID, len(payload))

	txid, err := s.ledger.Submit(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("submitting to ledger: %w", err)
	}

	t.OnLedger = true
	t.TxID = txid
	if disclosesPlaintextOnly(*t) {
		t.Commitment = payload
	}

	if err := s.store.Save(ctx, s.thoughts); err != nil {
		// The submission itself succeeded; surface the txid so the
		// caller does not lose the on-chain reference.
		return txid, fmt.Errorf("saving thoughts after publish: %w", err)
	}

	logger.Info("thought %s anchored in transaction %s", t.ID, txid)
	return txid, nil
}
