package driving

import "github.com/Fletch-Industries/immutify/internal/core/domain"

// CommitmentService computes and verifies keyed-hash commitments.
// Both operations are pure and reentrant: no clock, no randomness,
// no shared state. Identical inputs always yield identical digests
// across processes and time.
type CommitmentService interface {
	// Commit derives the lowercase hex digest for the given title,
	// content and media bytes. The title is the hash key and must be
	// non-empty (domain.ErrEmptyTitle otherwise).
	Commit(title, content string, media []byte) (string, error)

	// Verify recomputes the digest for the supplied material and
	// compares it to the expected digest with exact, case-sensitive
	// equality. Callers trim surrounding whitespace from
	// user-entered digests before calling. Title must be non-empty
	// and at least one of content/media must be present
	// (domain.ErrMissingInput otherwise, before any hashing).
	Verify(title, content string, media []byte, expected string) (domain.Verification, error)
}
