package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

func TestThoughtStore_LoadEmpty(t *testing.T) {
	store := NewThoughtStore()

	thoughts, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, thoughts)
}

func TestThoughtStore_SaveAndLoad(t *testing.T) {
	store := NewThoughtStore()
	ctx := context.Background()

	in := []domain.Thought{
		{ID: "a", Title: "first", CreatedAt: time.Now()},
		{ID: "b", Title: "second", Private: true},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "second", out[1].Title)
}

func TestThoughtStore_LoadReturnsCopy(t *testing.T) {
	store := NewThoughtStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []domain.Thought{{ID: "a", Title: "original"}}))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	out[0].Title = "mutated"

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Title, "callers must not alias store state")
}

func TestThoughtStore_SaveReplaces(t *testing.T) {
	store := NewThoughtStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []domain.Thought{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Save(ctx, []domain.Thought{{ID: "c"}}))

	assert.Equal(t, 1, store.Len())
}

func TestThoughtStore_InjectedErrors(t *testing.T) {
	store := NewThoughtStore()
	ctx := context.Background()
	boom := errors.New("boom")

	store.SaveErr = boom
	assert.ErrorIs(t, store.Save(ctx, nil), boom)

	store.LoadErr = boom
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, boom)
}
