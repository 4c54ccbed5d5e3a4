package metanet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

// classifyTransport maps a transport-level failure to the domain
// taxonomy. A wallet that cannot be dialled means no wallet client
// is installed or running, which callers surface differently from a
// generic ledger failure (they prompt installation instead).
func classifyTransport(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if isWalletUnreachable(err) {
		return fmt.Errorf("%w: %v", domain.ErrNoWallet, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrLedgerProtocol, err)
}

// isWalletUnreachable reports whether the failure indicates the
// wallet substrate itself is absent rather than misbehaving.
func isWalletUnreachable(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host")
}
