package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carscope/internal/client/storage"
	"github.com/iudanet/carscope/internal/client/storage/memory"
	"github.com/iudanet/carscope/internal/models"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, sub string, exp *time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: sub}
	if exp != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*exp)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newTestStore() (*Store, *memory.Storage) {
	kv := memory.New()
	return NewStore(kv, WithClock(func() time.Time { return testNow })), kv
}

func TestStore_SaveAndCurrent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	exp := testNow.Add(time.Hour)
	token := signToken(t, "7", &exp)
	user := models.User{ID: 7, Email: "ana@example.com", FullName: "Ana"}

	require.NoError(t, store.Save(ctx, token, user))

	sess, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, user, sess.User)
	assert.True(t, sess.ExpiresAt.Equal(exp.Truncate(time.Second)))
	assert.True(t, store.IsAuthenticated(ctx))
}

func TestStore_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	expired := testNow.Add(-time.Minute)

	tests := []struct {
		setup func(t *testing.T, kv storage.KVStore)
		name  string
	}{
		{
			name:  "empty storage",
			setup: func(t *testing.T, kv storage.KVStore) {},
		},
		{
			name: "token without user",
			setup: func(t *testing.T, kv storage.KVStore) {
				require.NoError(t, kv.Set(ctx, storage.KeyToken, []byte(signToken(t, "1", nil))))
			},
		},
		{
			name: "user without token",
			setup: func(t *testing.T, kv storage.KVStore) {
				require.NoError(t, kv.Set(ctx, storage.KeyUser, []byte(`{"id":1,"email":"a@b.c"}`)))
			},
		},
		{
			name: "corrupt user json",
			setup: func(t *testing.T, kv storage.KVStore) {
				require.NoError(t, kv.Set(ctx, storage.KeyToken, []byte(signToken(t, "1", nil))))
				require.NoError(t, kv.Set(ctx, storage.KeyUser, []byte(`{"id":`)))
			},
		},
		{
			name: "user without id",
			setup: func(t *testing.T, kv storage.KVStore) {
				require.NoError(t, kv.Set(ctx, storage.KeyToken, []byte(signToken(t, "1", nil))))
				require.NoError(t, kv.Set(ctx, storage.KeyUser, []byte(`{"email":"a@b.c"}`)))
			},
		},
		{
			name: "expired token",
			setup: func(t *testing.T, kv storage.KVStore) {
				require.NoError(t, kv.Set(ctx, storage.KeyToken, []byte(signToken(t, "1", &expired))))
				require.NoError(t, kv.Set(ctx, storage.KeyUser, []byte(`{"id":1}`)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, kv := newTestStore()
			tt.setup(t, kv)

			_, err := store.Current(ctx)
			assert.ErrorIs(t, err, ErrNoSession)
			assert.False(t, store.IsAuthenticated(ctx))
		})
	}
}

func TestStore_OpaqueTokenIsAccepted(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.Save(ctx, "not-a-jwt", models.User{ID: 3}))

	sess, err := store.Current(ctx)
	require.NoError(t, err)
	assert.True(t, sess.ExpiresAt.IsZero())
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore()

	require.NoError(t, store.Save(ctx, "tok", models.User{ID: 3}))
	require.NoError(t, kv.Set(ctx, storage.KeyPendingAction, []byte(`{}`)))

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Token(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = store.User(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// остальные ключи не трогаем
	_, err = kv.Get(ctx, storage.KeyPendingAction)
	assert.NoError(t, err)
}

func TestStore_SaveEmptyToken(t *testing.T) {
	store, _ := newTestStore()
	assert.Error(t, store.Save(context.Background(), "", models.User{ID: 1}))
}

func TestStore_StorageError(t *testing.T) {
	boom := errors.New("disk failure")
	kv := &storage.KVStoreMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, boom
		},
	}
	store := NewStore(kv)

	_, err := store.Token(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoSession)
}

func TestUserFromToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantID  int64
		wantErr bool
	}{
		{name: "numeric subject", token: signToken(t, "42", nil), wantID: 42},
		{name: "email subject", token: signToken(t, "user@example.com", nil), wantErr: true},
		{name: "zero subject", token: signToken(t, "0", nil), wantErr: true},
		{name: "garbage", token: "abc.def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := UserFromToken(tt.token, "user@example.com", "User")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			assert.Equal(t, "user@example.com", user.Email)
			assert.Equal(t, "User", user.FullName)
		})
	}
}

func TestExpiresAt(t *testing.T) {
	exp := testNow.Add(30 * time.Minute)

	got, ok := ExpiresAt(signToken(t, "1", &exp))
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())

	_, ok = ExpiresAt(signToken(t, "1", nil))
	assert.False(t, ok)

	_, ok = ExpiresAt("opaque")
	assert.False(t, ok)
}
