package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carscope/internal/client/pending"
	"github.com/iudanet/carscope/internal/client/router"
	"github.com/iudanet/carscope/internal/client/session"
	"github.com/iudanet/carscope/internal/client/storage/memory"
	"github.com/iudanet/carscope/internal/models"
)

type fixture struct {
	api      *pending.APIMock
	sessions *pending.SessionsMock
	intents  *IntentsMock
	nav      *router.Router
	svc      *Service
}

func newFixture(t *testing.T, loggedIn bool) *fixture {
	t.Helper()
	f := &fixture{
		api: &pending.APIMock{},
		intents: &IntentsMock{
			SaveFavoriteIntentFunc:   func(ctx context.Context, carID int64, dir pending.Direction, returnURL string) {},
			SaveSearchIntentFunc:     func(ctx context.Context, query, returnURL string) {},
			SaveNavigationIntentFunc: func(ctx context.Context, targetPath string) {},
		},
		nav: router.New(memory.New(), nil, nil),
	}
	f.sessions = &pending.SessionsMock{
		CurrentFunc: func(ctx context.Context) (*session.Session, error) {
			if !loggedIn {
				return nil, session.ErrNoSession
			}
			return &session.Session{Token: "tok", User: models.User{ID: 5}}, nil
		},
	}
	f.svc = NewService(f.api, f.sessions, f.intents, f.nav, nil)
	require.NoError(t, f.nav.Navigate(context.Background(), "/listings?brand=Audi"))
	return f
}

func TestToggleFavorite_AnonymousDefers(t *testing.T) {
	tests := []struct {
		name       string
		isFavorite bool
		wantDir    pending.Direction
	}{
		{name: "add", isFavorite: false, wantDir: pending.DirectionAdd},
		{name: "remove", isFavorite: true, wantDir: pending.DirectionRemove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, false)

			res, err := f.svc.ToggleFavorite(ctx, 42, tt.isFavorite)
			require.NoError(t, err)
			assert.Equal(t, LoginRequired, res)

			require.Len(t, f.intents.SaveFavoriteIntentCalls(), 1)
			call := f.intents.SaveFavoriteIntentCalls()[0]
			assert.Equal(t, int64(42), call.CarID)
			assert.Equal(t, tt.wantDir, call.Dir)
			assert.Equal(t, "/listings?brand=Audi", call.ReturnURL)
			assert.Equal(t, "/login", f.nav.Current(ctx))
		})
	}
}

func TestToggleFavorite_Authenticated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.api.AddFavoriteFunc = func(ctx context.Context, token string, userID, carID int64) error { return nil }
	f.api.RemoveFavoriteFunc = func(ctx context.Context, token string, carID int64) error {
		return errors.New("server error (404): Favorite not found")
	}

	res, err := f.svc.ToggleFavorite(ctx, 42, false)
	require.NoError(t, err)
	assert.Equal(t, Done, res)
	require.Len(t, f.api.AddFavoriteCalls(), 1)
	assert.Equal(t, int64(5), f.api.AddFavoriteCalls()[0].UserID)

	_, err = f.svc.ToggleFavorite(ctx, 42, true)
	assert.ErrorContains(t, err, "Favorite not found")

	assert.Empty(t, f.intents.SaveFavoriteIntentCalls())
	assert.Equal(t, "/listings?brand=Audi", f.nav.Current(ctx))
}

func TestSaveSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t, false)

		res, err := f.svc.SaveSearch(ctx, " brand=Audi&max_price=15000 ")
		require.NoError(t, err)
		assert.Equal(t, LoginRequired, res)
		require.Len(t, f.intents.SaveSearchIntentCalls(), 1)
		assert.Equal(t, "brand=Audi&max_price=15000", f.intents.SaveSearchIntentCalls()[0].Query)
		assert.Equal(t, "/login", f.nav.Current(ctx))
	})

	t.Run("authenticated", func(t *testing.T) {
		f := newFixture(t, true)
		f.api.SaveSearchFunc = func(ctx context.Context, token string, userID int64, query string) error { return nil }

		res, err := f.svc.SaveSearch(ctx, "brand=Audi")
		require.NoError(t, err)
		assert.Equal(t, Done, res)
		assert.Len(t, f.api.SaveSearchCalls(), 1)
	})

	t.Run("empty query", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.SaveSearch(ctx, "  ")
		assert.ErrorIs(t, err, ErrEmptyQuery)
		assert.Empty(t, f.intents.SaveSearchIntentCalls())
	})
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantPath  string
		loggedIn  bool
		wantRes   Result
		wantSaved bool
	}{
		{name: "public page", path: "/listings/7", wantPath: "/listings/7", wantRes: Done},
		{name: "gated anonymous", path: "/favorites", wantPath: "/login", wantRes: LoginRequired, wantSaved: true},
		{name: "gated nested anonymous", path: "dashboard/settings", wantPath: "/login", wantRes: LoginRequired, wantSaved: true},
		{name: "gated authenticated", path: "/get-estimation", wantPath: "/get-estimation", loggedIn: true, wantRes: Done},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, tt.loggedIn)

			res, err := f.svc.Open(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRes, res)
			assert.Equal(t, tt.wantPath, f.nav.Current(ctx))
			assert.Equal(t, tt.wantSaved, len(f.intents.SaveNavigationIntentCalls()) == 1)
		})
	}
}

func TestIsGated(t *testing.T) {
	assert.True(t, IsGated("/favorites"))
	assert.True(t, IsGated("/favorites/"))
	assert.True(t, IsGated("/dashboard?tab=searches"))
	assert.True(t, IsGated("/get-estimation/history"))
	assert.False(t, IsGated("/favorites-public"))
	assert.False(t, IsGated("/"))
	assert.False(t, IsGated("/listings"))
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "login_required", LoginRequired.String())
}
