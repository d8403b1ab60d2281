package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carscope/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "client.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestNew_RunsMigrations(t *testing.T) {
	s := newTestStorage(t)

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)
}

func TestNew_InMemory(t *testing.T) {
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s.Close())
	}()

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "token", []byte("abc")))

	got, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestStorage_SetGetOverwrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storage.KeyUser, []byte(`{"id":1}`)))
	require.NoError(t, s.Set(ctx, storage.KeyUser, []byte(`{"id":2}`)))

	got, err := s.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2}`, string(got))

	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestStorage_UpdatedAt(t *testing.T) {
	s := newTestStorage(t)
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))

	var updatedAt int64
	require.NoError(t, s.DB().QueryRow(`SELECT updated_at FROM kv WHERE key = 'k'`).Scan(&updatedAt))
	assert.Equal(t, fixed.UnixMilli(), updatedAt)
}

func TestStorage_GetMissing(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorage_Remove(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storage.HistoryKey(3), []byte(`[]`)))
	require.NoError(t, s.Remove(ctx, storage.HistoryKey(3)))

	_, err := s.Get(ctx, storage.HistoryKey(3))
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	assert.NoError(t, s.Remove(ctx, storage.HistoryKey(3)))
}

func TestStorage_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.sqlite")
	ctx := context.Background()

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, storage.KeyPendingAction, []byte(`{"type":"navigation"}`)))
	require.NoError(t, s.Close())

	// Повторный запуск миграций не должен ломать существующую схему
	reopened, err := New(ctx, path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.Get(ctx, storage.KeyPendingAction)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"navigation"}`, string(got))
}
