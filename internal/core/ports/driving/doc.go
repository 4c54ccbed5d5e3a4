// Package driving defines the interfaces that callers use to drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI adapter consumes them.
//
//   - CommitmentService: Pure commitment computation and verification
//   - ThoughtService: Thought lifecycle (create, list, publish)
//   - TokenBrowser: Paged ledger token retrieval
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
