// Package domain defines the core business entities for Immutify.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Thought: A committed record of a title/content/media triple
//   - MediaAttachment: Binary payload folded into a commitment
//   - LedgerToken: A read-only projection of a ledger entry
//   - Verification: Outcome of recomputing a commitment
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
