package tokenstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kalado/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) repository.TokenStore {
	t.Helper()

	store := NewMemoryStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() {
		if closer, ok := store.(interface{ Close() }); ok {
			closer.Close()
		}
	})

	return store
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tok-1", 42, time.Hour))

	subjectID, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), subjectID)
}

func TestMemoryStore_GetUnknownToken(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestMemoryStore_ExpiredTokenCountsAsAbsent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tok-1", 42, -time.Second))

	_, err := store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tok-1", 42, time.Hour))
	require.NoError(t, store.Delete(ctx, "tok-1"))
	require.NoError(t, store.Delete(ctx, "tok-1"))
	require.NoError(t, store.Delete(ctx, "never-existed"))

	_, err := store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestMemoryStore_DeleteAllForSubject(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tok-1", 42, time.Hour))
	require.NoError(t, store.Put(ctx, "tok-2", 42, time.Hour))
	require.NoError(t, store.Put(ctx, "tok-3", 7, time.Hour))

	removed, err := store.DeleteAllForSubject(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	_, err = store.Get(ctx, "tok-2")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	// Other subjects are untouched.
	subjectID, err := store.Get(ctx, "tok-3")
	require.NoError(t, err)
	assert.Equal(t, int64(7), subjectID)

	removed, err = store.DeleteAllForSubject(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
