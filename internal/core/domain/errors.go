package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested thought does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyTitle indicates a commitment was requested without a
	// title. The title is the hash key; it must be non-empty.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrMissingInput indicates verification was requested with
	// neither content nor media. No hashing is attempted.
	ErrMissingInput = errors.New("content or media required")

	// ErrAlreadyPublished indicates the thought is already anchored
	// on the ledger. A submitted commitment cannot be retracted or
	// resubmitted.
	ErrAlreadyPublished = errors.New("thought already on ledger")

	// ErrLedgerRejected indicates the ledger reported a structured
	// error for a submission or query.
	ErrLedgerRejected = errors.New("ledger rejected request")

	// ErrLedgerProtocol indicates the ledger returned a response of
	// an unexpected shape (non-2xx status, malformed body, missing
	// transaction id).
	ErrLedgerProtocol = errors.New("unexpected ledger response")

	// ErrNoWallet indicates the wallet substrate is unreachable.
	// Callers should prompt the user to install or start the wallet
	// client rather than treat this as a generic ledger failure.
	ErrNoWallet = errors.New("no wallet available")

	// ErrFileRead indicates an attachment's bytes could not be
	// obtained from the filesystem.
	ErrFileRead = errors.New("failed to read file")
)

// RejectedError carries the ledger's stated reason for rejecting a
// submission or query. It matches ErrLedgerRejected via errors.Is.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("ledger rejected request: %s", e.Reason)
}

// Is makes RejectedError match ErrLedgerRejected.
func (e *RejectedError) Is(target error) bool {
	return target == ErrLedgerRejected
}

// FileReadError reports a failed attachment read with the path that
// failed. It matches ErrFileRead via errors.Is.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *FileReadError) Unwrap() error {
	return e.Err
}

// Is makes FileReadError match ErrFileRead.
func (e *FileReadError) Is(target error) bool {
	return target == ErrFileRead
}

// IsNoWallet reports whether the error indicates the wallet
// substrate is unreachable.
func IsNoWallet(err error) bool {
	return errors.Is(err, ErrNoWallet)
}

// IsRejected reports whether the ledger explicitly rejected the
// request.
func IsRejected(err error) bool {
	return errors.Is(err, ErrLedgerRejected)
}
