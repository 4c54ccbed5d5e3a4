package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driven"
)

// Ensure Ledger implements the interface.
var _ driven.Ledger = (*Ledger)(nil)

// Ledger is an in-memory simulation of the external append-only
// ledger. Submissions append a token; queries page over the
// accumulated entries in insertion (ascending) or reverse
// (descending) order.
type Ledger struct {
	mu     sync.Mutex
	tokens []domain.LedgerToken
	nextTx int

	// SubmitErr, when set, is returned by Submit.
	SubmitErr error

	// ListErr, when set, is returned by ListTokens.
	ListErr error
}

// NewLedger creates an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Seed appends pre-existing tokens to the ledger.
func (l *Ledger) Seed(tokens ...domain.LedgerToken) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens = append(l.tokens, tokens...)
}

// Submit appends a token carrying the payload and returns a
// generated transaction ID.
func (l *Ledger) Submit(_ context.Context, payload string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.SubmitErr != nil {
		return "", l.SubmitErr
	}
	l.nextTx++
	txid := fmt.Sprintf("txid-%04d", l.nextTx)
	l.tokens = append(l.tokens, domain.LedgerToken{
		Message:  payload,
		TxID:     txid,
		Satoshis: 1,
	})
	return txid, nil
}

// ListTokens returns a paged snapshot of the ledger.
func (l *Ledger) ListTokens(_ context.Context, query domain.TokenQuery) ([]domain.LedgerToken, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ListErr != nil {
		return nil, l.ListErr
	}

	ordered := make([]domain.LedgerToken, len(l.tokens))
	copy(ordered, l.tokens)
	if query.Order == domain.SortDescending {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	if query.MessageFilter != "" {
		filtered := ordered[:0]
		for _, tok := range ordered {
			if tok.Message == query.MessageFilter {
				filtered = append(filtered, tok)
			}
		}
		ordered = filtered
	}

	if query.Skip >= len(ordered) {
		return nil, nil
	}
	ordered = ordered[query.Skip:]

	if query.Limit > 0 && len(ordered) > query.Limit {
		ordered = ordered[:query.Limit]
	}
	return ordered, nil
}

// Len returns the number of entries on the ledger.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tokens)
}
