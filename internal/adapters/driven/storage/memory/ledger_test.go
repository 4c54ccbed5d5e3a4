package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

func TestLedger_SubmitGeneratesSequentialTxIDs(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	tx1, err := ledger.Submit(ctx, "payload one")
	require.NoError(t, err)
	tx2, err := ledger.Submit(ctx, "payload two")
	require.NoError(t, err)

	assert.Equal(t, "txid-0001", tx1)
	assert.Equal(t, "txid-0002", tx2)
	assert.Equal(t, 2, ledger.Len())
}

func TestLedger_ListAscendingIsInsertionOrder(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()
	ledger.Seed(
		domain.LedgerToken{Message: "first"},
		domain.LedgerToken{Message: "second"},
		domain.LedgerToken{Message: "third"},
	)

	tokens, err := ledger.ListTokens(ctx, domain.TokenQuery{Order: domain.SortAscending})

	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "first", tokens[0].Message)
	assert.Equal(t, "third", tokens[2].Message)
}

func TestLedger_ListDescendingReverses(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()
	ledger.Seed(
		domain.LedgerToken{Message: "first"},
		domain.LedgerToken{Message: "second"},
	)

	tokens, err := ledger.ListTokens(ctx, domain.TokenQuery{Order: domain.SortDescending})

	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "second", tokens[0].Message)
}

func TestLedger_SkipAndLimit(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		ledger.Seed(domain.LedgerToken{Message: m})
	}

	tokens, err := ledger.ListTokens(ctx, domain.TokenQuery{
		Order: domain.SortAscending,
		Skip:  2,
		Limit: 2,
	})

	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "c", tokens[0].Message)
	assert.Equal(t, "d", tokens[1].Message)
}

func TestLedger_SkipPastEnd(t *testing.T) {
	ledger := NewLedger()
	ledger.Seed(domain.LedgerToken{Message: "only"})

	tokens, err := ledger.ListTokens(context.Background(), domain.TokenQuery{Skip: 5})

	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestLedger_MessageFilter(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()
	ledger.Seed(
		domain.LedgerToken{Message: "keep"},
		domain.LedgerToken{Message: "drop"},
		domain.LedgerToken{Message: "keep"},
	)

	tokens, err := ledger.ListTokens(ctx, domain.TokenQuery{MessageFilter: "keep"})

	require.NoError(t, err)
	require.Len(t, tokens, 2)
	for _, tok := range tokens {
		assert.Equal(t, "keep", tok.Message)
	}
}

func TestLedger_InjectedErrors(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	ledger.SubmitErr = domain.ErrNoWallet
	_, err := ledger.Submit(ctx, "payload")
	assert.ErrorIs(t, err, domain.ErrNoWallet)

	ledger.ListErr = domain.ErrLedgerProtocol
	_, err = ledger.ListTokens(ctx, domain.TokenQuery{})
	assert.ErrorIs(t, err, domain.ErrLedgerProtocol)
}
