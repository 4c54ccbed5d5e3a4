package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

const helloWorldDigest = "3ec2ee3b02fa7faf610b0fefd744811809eecfe692cb751a3de793829d69422c"

func TestVerifyCmd_Use(t *testing.T) {
	assert.Equal(t, "verify [title] [digest]", verifyCmd.Use)
}

func TestVerifyCmd_Match(t *testing.T) {
	out, err := executeCommand(t, "verify", "proof1", helloWorldDigest, "--content", "hello world")

	require.NoError(t, err)
	assert.Contains(t, out, "Verified: the digest matches your input.")
	assert.Contains(t, out, "Computed: "+helloWorldDigest)
}

func TestVerifyCmd_Mismatch(t *testing.T) {
	out, err := executeCommand(t, "verify", "proof1", helloWorldDigest, "--content", "tampered")

	require.NoError(t, err)
	assert.Contains(t, out, "Mismatch: the digest does not match your input.")
}

func TestVerifyCmd_TrimsDigestWhitespace(t *testing.T) {
	out, err := executeCommand(t, "verify", "proof1", "  "+helloWorldDigest+"\n", "-c", "hello world")

	require.NoError(t, err)
	assert.Contains(t, out, "Verified")
}

func TestVerifyCmd_WithMediaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("media-bytes"), 0600))

	digest, err := commitmentService.Commit("snapshot", "", []byte("media-bytes"))
	require.NoError(t, err)

	out, err := executeCommand(t, "verify", "snapshot", digest, "--file", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Verified")
}

func TestVerifyCmd_MissingInput(t *testing.T) {
	_, err := executeCommand(t, "verify", "proof1", helloWorldDigest)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestVerifyCmd_RequiresBothArgs(t *testing.T) {
	_, err := executeCommand(t, "verify", "proof1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
