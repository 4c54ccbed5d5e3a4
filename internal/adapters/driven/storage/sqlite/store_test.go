package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testThoughts() []domain.Thought {
	return []domain.Thought{
		{
			ID:         "t-2",
			Title:      "second",
			Content:    "public note",
			Commitment: "second: public note",
			CreatedAt:  time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
			OnLedger:   true,
			TxID:       "tx-2",
		},
		{
			ID:         "t-1",
			Title:      "first",
			Private:    true,
			Media:      &domain.MediaAttachment{Name: "sketch.png", Size: 4, Data: []byte{1, 2, 3, 4}},
			Commitment: "deadbeef",
			CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	store := setupTestStore(t)

	thoughts, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, thoughts, "a never-written store holds an empty list")
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testThoughts()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Order is preserved.
	assert.Equal(t, "t-2", loaded[0].ID)
	assert.Equal(t, "t-1", loaded[1].ID)

	assert.Equal(t, "public note", loaded[0].Content)
	assert.True(t, loaded[0].OnLedger)
	assert.Equal(t, "tx-2", loaded[0].TxID)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), loaded[0].CreatedAt)

	require.NotNil(t, loaded[1].Media)
	assert.Equal(t, "sketch.png", loaded[1].Media.Name)
	assert.Equal(t, []byte{1, 2, 3, 4}, loaded[1].Media.Data)
	assert.True(t, loaded[1].Private)
	assert.False(t, loaded[1].OnLedger)
	assert.Empty(t, loaded[1].TxID)
}

func TestStore_SaveReplacesWholeList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testThoughts()))
	require.NoError(t, store.Save(ctx, testThoughts()[:1]))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1, "save writes the full list, not a delta")
}

func TestStore_SaveEmptyList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testThoughts()))
	require.NoError(t, store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_TimestampsAreISO8601(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testThoughts()))

	var payload string
	row := store.db.QueryRow("SELECT payload FROM thought_lists WHERE namespace = ?", namespace)
	require.NoError(t, row.Scan(&payload))

	var raw []map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	createdAt, ok := raw[0]["createdAt"].(string)
	require.True(t, ok, "createdAt is serialized as a string")

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
}

func TestStore_ReopenSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, testThoughts()))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs the migration scan again without error.
	again, err := NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, again.Close())
}
