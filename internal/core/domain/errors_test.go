package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectedError_MatchesSentinel(t *testing.T) {
	err := &RejectedError{Reason: "insufficient funds"}

	assert.True(t, errors.Is(err, ErrLedgerRejected))
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestRejectedError_MatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("submitting payload: %w", &RejectedError{Reason: "bad script"})

	assert.True(t, IsRejected(err))

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "bad script", rejected.Reason)
}

func TestFileReadError_MatchesSentinel(t *testing.T) {
	err := &FileReadError{Path: "/tmp/missing.png", Err: os.ErrNotExist}

	assert.True(t, errors.Is(err, ErrFileRead))
	assert.True(t, errors.Is(err, os.ErrNotExist), "should unwrap to the underlying error")
	assert.Contains(t, err.Error(), "/tmp/missing.png")
}

func TestIsNoWallet(t *testing.T) {
	wrapped := fmt.Errorf("querying tokens: %w", ErrNoWallet)

	assert.True(t, IsNoWallet(wrapped))
	assert.False(t, IsNoWallet(ErrLedgerProtocol))
	assert.False(t, IsNoWallet(nil))
}
