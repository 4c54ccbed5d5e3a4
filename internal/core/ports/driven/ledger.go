package driven

import (
	"context"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

// Ledger is the external append-only store that anchors submitted
// payloads and serves them back as tokens. Both operations are
// network-bound remote calls against the local wallet capability;
// the transport is an adapter concern.
//
// Error contract: implementations return domain.ErrNoWallet when the
// wallet substrate is unreachable, a domain.RejectedError when the
// ledger reports a structured error, and domain.ErrLedgerProtocol
// for any response of unexpected shape. A submission that has been
// sent cannot be cancelled mid-flight; ctx only bounds the wait.
type Ledger interface {
	// Submit anchors an opaque UTF-8 payload on the ledger and
	// returns the transaction identifier.
	Submit(ctx context.Context, payload string) (string, error)

	// ListTokens returns ledger entries matching the query, in the
	// requested order. Each call is a fresh snapshot of ledger
	// state; results are never mutated.
	ListTokens(ctx context.Context, query domain.TokenQuery) ([]domain.LedgerToken, error)
}
