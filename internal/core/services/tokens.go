package services

import (
	"context"
	"fmt"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driven"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driving"
	"github.com/Fletch-Industries/immutify/internal/logger"
)

// DefaultPageSize is the token page size used when none is configured.
const DefaultPageSize = 20

// Ensure TokenBrowser implements the interface.
var _ driving.TokenBrowser = (*TokenBrowser)(nil)

// TokenBrowser pages through ledger tokens for a single caller
// session. Each page request over-fetches one entry so that next-page
// availability is known without a separate count query. Pagination
// state is private to the session; callers serialise their own
// page-advance calls.
type TokenBrowser struct {
	ledger driven.Ledger
	limit  int
	order  domain.SortOrder
	tokens []domain.LedgerToken
}

// NewTokenBrowser creates a browser with the given page size,
// ordered newest first.
func NewTokenBrowser(ledger driven.Ledger, limit int) *TokenBrowser {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return &TokenBrowser{
		ledger: ledger,
		limit:  limit,
		order:  domain.SortDescending,
	}
}

// SetOrder changes the sort order. Changing it discards the
// accumulated token set, since offsets under the old order no longer
// line up.
func (b *TokenBrowser) SetOrder(order domain.SortOrder) {
	if !order.Valid() || order == b.order {
		return
	}
	b.order = order
	b.tokens = nil
}

// Page fetches the 1-based page. Page 1 (or reset) replaces the
// accumulated token set; later pages append to it. The returned
// hasMore is true when the ledger holds entries beyond this page.
func (b *TokenBrowser) Page(ctx context.Context, page int, reset bool) ([]domain.LedgerToken, bool, error) {
	if page < 1 {
		return nil, false, fmt.Errorf("page must be 1-based, got %d", page)
	}

	query := domain.TokenQuery{
		// Over-fetch by one to detect a following page.
		Limit: b.limit + 1,
		Skip:  (page - 1) * b.limit,
		Order: b.order,
	}

	fetched, err := b.ledger.ListTokens(ctx, query)
	if err != nil {
		return nil, false, fmt.Errorf("querying tokens: %w", err)
	}

	hasMore := len(fetched) > b.limit
	if hasMore {
		fetched = fetched[:b.limit]
	}
	logger.Debug("token page %d: %d entries, hasMore=%v", page, len(fetched), hasMore)

	if page == 1 || reset {
		b.tokens = append([]domain.LedgerToken(nil), fetched...)
	} else {
		b.tokens = append(b.tokens, fetched...)
	}

	return fetched, hasMore, nil
}

// Tokens returns the accumulated token set for the session.
func (b *TokenBrowser) Tokens() []domain.LedgerToken {
	out := make([]domain.LedgerToken, len(b.tokens))
	copy(out, b.tokens)
	return out
}
