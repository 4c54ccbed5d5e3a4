package driving

import (
	"context"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

// TokenBrowser retrieves previously submitted ledger entries page by
// page. A browser holds private per-session pagination state; a
// consuming UI must serialise its own page-advance calls and must
// not share one browser across concurrent callers.
type TokenBrowser interface {
	// Page fetches the 1-based page with the session's limit and
	// order. It over-fetches one entry to report hasMore without a
	// separate count call. reset (or page 1) clears the accumulated
	// token set; later pages append to it.
	Page(ctx context.Context, page int, reset bool) ([]domain.LedgerToken, bool, error)

	// SetOrder changes the sort order and resets accumulated state.
	SetOrder(order domain.SortOrder)

	// Tokens returns the accumulated token set for the session.
	Tokens() []domain.LedgerToken
}
