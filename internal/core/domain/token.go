package domain

// SortOrder selects the ledger-native ordering for token queries.
type SortOrder string

const (
	// SortAscending returns oldest entries first.
	SortAscending SortOrder = "asc"

	// SortDescending returns newest entries first.
	SortDescending SortOrder = "desc"
)

// Valid reports whether the order is one of the two known values.
func (o SortOrder) Valid() bool {
	return o == SortAscending || o == SortDescending
}

// LedgerToken is a read-only projection of a ledger entry returned
// by queries. Instances are never mutated; each query produces a
// fresh snapshot of ledger state at query time.
type LedgerToken struct {
	// Message is the disclosed payload: a commitment hex string, a
	// commitment+content composite, or raw public content.
	Message string

	// TxID identifies the transaction carrying the entry.
	TxID string

	// OutputIndex is the entry's position within the transaction.
	OutputIndex int

	// LockingScript is opaque ledger-specific redemption data,
	// passed through unexamined.
	LockingScript string

	// Satoshis is the value attached to the entry in the
	// ledger-native unit.
	Satoshis int64
}

// TokenQuery describes a single paged token request.
type TokenQuery struct {
	// Limit is the maximum number of tokens to return.
	Limit int

	// Skip is the number of tokens to skip from the start of the
	// chosen ordering.
	Skip int

	// Order is the ledger-native ordering, typically recency.
	Order SortOrder

	// MessageFilter, when non-empty, restricts results to entries
	// whose message equals the filter.
	MessageFilter string
}
