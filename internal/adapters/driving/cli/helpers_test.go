package cli

import (
	"bytes"
	"testing"

	"github.com/Fletch-Industries/immutify/internal/adapters/driven/storage/memory"
	"github.com/Fletch-Industries/immutify/internal/core/services"
)

// setupTestServices wires real core services over in-memory fakes
// into the package-level service variables consumed by commands.
func setupTestServices(t *testing.T) (*memory.ThoughtStore, *memory.Ledger) {
	t.Helper()

	store := memory.NewThoughtStore()
	ledger := memory.NewLedger()

	prevThought, prevBrowser := thoughtService, tokenBrowser
	thoughtService = services.NewThoughtService(store, ledger, services.NewCommitmentService())
	tokenBrowser = services.NewTokenBrowser(ledger, 20)

	t.Cleanup(func() {
		thoughtService = prevThought
		tokenBrowser = prevBrowser
	})
	return store, ledger
}

// executeCommand runs the root command with the given args and
// captures combined output. Flag state is restored afterwards so
// tests stay independent.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		createContent, createFile = "", ""
		createPublic, createLocal = false, false
		verifyContent, verifyFile = "", ""
		tokensPage, tokensLimit = 1, 0
		tokensOrder = "desc"
		tokensAll, tokensJSON = false, false
		thoughtsJSON = false
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
