package router

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carscope/internal/client/storage"
	"github.com/iudanet/carscope/internal/client/storage/memory"
)

func TestRouter_NavigateAndCurrent(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	r := New(memory.New(), &out, nil)

	assert.Equal(t, Home, r.Current(ctx))

	require.NoError(t, r.Navigate(ctx, "/listings?brand=BMW"))
	assert.Equal(t, "/listings?brand=BMW", r.Current(ctx))

	require.NoError(t, r.Navigate(ctx, "favorites"))
	assert.Equal(t, "/favorites", r.Current(ctx))

	assert.Equal(t, "→ /listings?brand=BMW\n→ /favorites\n", out.String())
}

func TestRouter_LocationSurvivesNewRouter(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	require.NoError(t, New(kv, nil, nil).Navigate(ctx, "/dashboard"))
	assert.Equal(t, "/dashboard", New(kv, nil, nil).Current(ctx))
}

func TestRouter_StorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	kv := &storage.KVStoreMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) { return nil, boom },
		SetFunc: func(ctx context.Context, key string, value []byte) error { return boom },
	}
	r := New(kv, nil, nil)

	assert.ErrorIs(t, r.Navigate(ctx, "/x"), boom)
	assert.Equal(t, Home, r.Current(ctx))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "/"},
		{in: "  ", want: "/"},
		{in: "/listings", want: "/listings"},
		{in: "listings/5", want: "/listings/5"},
		{in: " /get-estimation ", want: "/get-estimation"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestIsLogin(t *testing.T) {
	assert.True(t, IsLogin("/login"))
	assert.True(t, IsLogin("/login/"))
	assert.True(t, IsLogin("/login?next=/favorites"))
	assert.False(t, IsLogin("/listings"))
	assert.False(t, IsLogin("/login-help"))
	assert.False(t, IsLogin(""))
}
