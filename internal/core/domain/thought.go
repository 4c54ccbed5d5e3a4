package domain

import "time"

// MediaAttachment is a binary payload attached to a thought.
// Only its bytes enter the commitment; the bytes themselves are
// never disclosed to the ledger.
type MediaAttachment struct {
	// Name is the original file name, kept for display.
	Name string

	// Size is the payload length in bytes.
	Size int64

	// Data is the raw file content.
	Data []byte
}

// Thought is a published or pending proof of existence.
//
// A thought is mutated exactly once after creation: when ledger
// submission succeeds, OnLedger flips to true and TxID is set.
// TxID is set if and only if OnLedger is true.
type Thought struct {
	// ID is the unique identifier, assigned at creation, never reused.
	ID string

	// Title is the human-readable label and the commitment hash key.
	// Always non-empty.
	Title string

	// Content is the text body. May be empty when a media
	// attachment carries the thought.
	Content string

	// Media is the optional binary attachment.
	Media *MediaAttachment

	// Private controls the disclosure policy. Fixed at creation.
	Private bool

	// Commitment is the hex-encoded keyed-hash digest. For a public
	// text-only thought it instead holds the disclosed plaintext
	// payload, so the displayed proof matches the ledger entry.
	Commitment string

	// CreatedAt is set at creation and immutable.
	CreatedAt time.Time

	// OnLedger reports whether submission succeeded.
	OnLedger bool

	// TxID is the ledger transaction identifier, set exactly once.
	TxID string
}

// HasContent reports whether the thought carries a text body.
func (t *Thought) HasContent() bool {
	return t.Content != ""
}

// HasMedia reports whether the thought carries an attachment.
func (t *Thought) HasMedia() bool {
	return t.Media != nil && len(t.Media.Data) > 0
}

// Verification is the outcome of recomputing a commitment against
// caller-supplied material. Computed is always returned so callers
// can display a diff against the expected digest.
type Verification struct {
	// Matched is true when the recomputed digest equals the
	// expected digest exactly.
	Matched bool

	// Computed is the lowercase hex digest derived from the
	// supplied title/content/media.
	Computed string
}
