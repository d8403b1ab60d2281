package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goflags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carscope/internal/client/iocli"
	"github.com/iudanet/carscope/internal/client/storage"
	"github.com/iudanet/carscope/internal/client/storage/memory"
	"github.com/iudanet/carscope/internal/models"
	"github.com/iudanet/carscope/pkg/api"
)

// backend минимальный fake сервер
type backend struct {
	t         *testing.T
	token     string
	calls     []string
	favorites []api.FavoriteRequest
	searches  []api.SavedSearchRequest
	mu        sync.Mutex
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "5", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	b := &backend{t: t, token: token}
	server := httptest.NewServer(b)
	t.Cleanup(server.Close)
	return b, server
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	call := r.Method + " " + r.URL.Path
	b.calls = append(b.calls, call)
	w.Header().Set("Content-Type", "application/json")

	switch call {
	case "POST /auth/login", "POST /auth/register":
		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: b.token, TokenType: "bearer"})
	case "POST /favorites":
		var req api.FavoriteRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.favorites = append(b.favorites, req)
		_, _ = w.Write([]byte(`{}`))
	case "POST /saved-searches":
		var req api.SavedSearchRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.searches = append(b.searches, req)
		_, _ = w.Write([]byte(`{}`))
	case "GET /favorites/5":
		list := make([]api.Favorite, 0, len(b.favorites))
		for i, f := range b.favorites {
			list = append(list, api.Favorite{ID: int64(i + 1), UserID: f.UserID,
				Car: api.CarListing{ID: f.CarID, Title: "BMW 320d", Brand: "BMW", Model: "320d", Price: 15500}})
		}
		_ = json.NewEncoder(w).Encode(list)
	case "GET /saved-searches":
		assert.Equal(b.t, "5", r.URL.Query().Get("user_id"))
		list := make([]api.SavedSearch, 0, len(b.searches))
		for i, ss := range b.searches {
			list = append(list, api.SavedSearch{ID: int64(i + 1), UserID: ss.UserID, Query: ss.Query})
		}
		_ = json.NewEncoder(w).Encode(list)
	case "DELETE /saved-searches/1":
		if len(b.searches) == 0 {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Saved search not found"}`))
			return
		}
		b.searches = b.searches[1:]
		_, _ = w.Write([]byte(`{"detail":"Saved search deleted"}`))
	case "POST /estimation/estimate-price":
		_ = json.NewEncoder(w).Encode(models.EstimationResult{
			EstimatedPrice:   21500,
			ConfidenceLevel:  "Medium",
			MarketPosition:   "Average",
			SimilarCarsCount: 7,
			PriceRange:       models.PriceRange{Min: 18000, Max: 26000, Avg: 21900},
			PriceDistribution: []models.PriceBucket{
				{Range: "€15,000 - €20,000", Count: 2, Percentage: 28.6},
				{Range: "€20,000 - €30,000", Count: 5, Percentage: 71.4},
			},
			SimilarCarsSample: []models.SimilarCar{
				{ID: 1, Price: 18000}, {ID: 2, Price: 21500}, {ID: 3, Price: 26000},
			},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
	}
}

func (b *backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func run(t *testing.T, kv storage.KVStore, serverURL string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(iocli.NewStreams(strings.NewReader(""), &out), BuildInfo{Version: "test"},
		WithStorage(kv), WithStderr(io.Discard))

	global := []string{"--server", serverURL, "--storage", "memory", "--return-delay", "0s"}
	err := c.Run(context.Background(), append(global, args...))
	return out.String(), err
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	c := New(iocli.NewStreams(strings.NewReader(""), &out), BuildInfo{Version: "1.2.3", BuildDate: "2024-05-01", GitCommit: "abc123"})

	require.NoError(t, c.Run(context.Background(), []string{"--version"}))

	assert.Contains(t, out.String(), "Version:    1.2.3")
	assert.Contains(t, out.String(), "Git Commit: abc123")
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	c := New(iocli.NewStreams(strings.NewReader(""), &out), BuildInfo{})

	require.NoError(t, c.Run(context.Background(), []string{"--help"}))
	assert.Contains(t, out.String(), "carscope")
	assert.Contains(t, out.String(), "save-search")
}

func TestCommandsRecognized(t *testing.T) {
	tests := [][]string{
		{"login", "--email", "a@b.co", "--password", "pw"},
		{"register", "--email", "a@b.co", "--name", "Ana"},
		{"logout"},
		{"status"},
		{"visit", "/listings?brand=BMW"},
		{"open", "/favorites"},
		{"favorite", "42", "--remove"},
		{"save-search", "brand=BMW", "year=2019"},
		{"pending", "--clear"},
		{"resume"},
		{"estimate", "--brand", "BMW", "--model", "X5", "--year", "2019", "--rhd", "--use-specs"},
		{"history", "list", "--local"},
		{"history", "delete", "7"},
		{"history", "notes", "7", "good", "deal"},
		{"history", "clear"},
		{"favorites"},
		{"searches", "list"},
		{"searches", "delete", "3"},
		{"version"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			c := New(iocli.NewStreams(strings.NewReader(""), io.Discard), BuildInfo{})
			parser := c.buildParser()
			var executed bool
			parser.CommandHandler = func(cmd goflags.Commander, _ []string) error {
				executed = cmd != nil
				return nil
			}

			_, err := parser.ParseArgs(args)
			require.NoError(t, err)
			assert.True(t, executed)
		})
	}
}

func TestRun_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"teleport"}},
		{name: "history without subcommand", args: []string{"history"}},
		{name: "favorite without id", args: []string{"favorite"}},
		{name: "estimate without brand", args: []string{"estimate", "--model", "X5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, memory.New(), "http://localhost:1", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	var out bytes.Buffer
	c := New(iocli.NewStreams(strings.NewReader(""), &out), BuildInfo{}, WithStderr(io.Discard))

	err := c.Run(context.Background(), []string{"--storage", "redis", "status"})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestStatus_Anonymous(t *testing.T) {
	out, err := run(t, memory.New(), "http://localhost:1", "status")
	require.NoError(t, err)

	assert.Contains(t, out, "Status: Not authenticated")
	assert.Contains(t, out, "Location: /")
	assert.NotContains(t, out, "Pending action")
}

// Анонимный пользователь добавляет автомобиль в избранное, входит,
// действие выполняется и пользователь возвращается на страницу.
func TestDeferredFavorite(t *testing.T) {
	b, server := newBackend(t)
	kv := memory.New()

	_, err := run(t, kv, server.URL, "visit", "/listings")
	require.NoError(t, err)

	out, err := run(t, kv, server.URL, "favorite", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Login required")
	assert.Contains(t, out, "→ /login")

	out, err = run(t, kv, server.URL, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending action: add car 42 to favorites")
	assert.Contains(t, out, "Return to: /listings")
	assert.Contains(t, out, "Location: /login")
	assert.Empty(t, b.favorites)

	out, err = run(t, kv, server.URL, "login", "--email", "driver@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Login successful!")
	assert.Contains(t, out, "User: driver@example.com (id 5)")
	assert.Contains(t, out, "Pending action: completed")
	assert.Contains(t, out, "→ /listings")

	assert.Equal(t, []api.FavoriteRequest{{UserID: 5, CarID: 42}}, b.favorites)

	out, err = run(t, kv, server.URL, "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "No pending action.")
}

func TestLogin_PromptsForCredentials(t *testing.T) {
	_, server := newBackend(t)
	kv := memory.New()

	var out bytes.Buffer
	c := New(iocli.NewStreams(strings.NewReader("driver@example.com\nsecret\n"), &out), BuildInfo{},
		WithStorage(kv), WithStderr(io.Discard))

	err := c.Run(context.Background(), []string{"--server", server.URL, "--storage", "memory", "login"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Email: ")
	assert.Contains(t, out.String(), "Password: ")
	// без отложенного действия - на главную
	assert.Contains(t, out.String(), "→ /\n")
}

func TestSaveSearch_Authenticated(t *testing.T) {
	b, server := newBackend(t)
	kv := memory.New()

	_, err := run(t, kv, server.URL, "login", "--email", "driver@example.com", "--password", "pw")
	require.NoError(t, err)

	out, err := run(t, kv, server.URL, "save-search", "brand=BMW&year_min=2018")
	require.NoError(t, err)

	assert.Contains(t, out, `✓ Search "brand=BMW&year_min=2018" saved`)
	require.Len(t, b.searches, 1)
	assert.Equal(t, "brand=BMW&year_min=2018", b.searches[0].Query)
}

func TestOpen_GatedPage(t *testing.T) {
	_, server := newBackend(t)
	kv := memory.New()

	out, err := run(t, kv, server.URL, "open", "/dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Login required")

	out, err = run(t, kv, server.URL, "login", "--email", "driver@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending action: page opened")
	assert.Contains(t, out, "→ /dashboard")
}

func TestPending_Clear(t *testing.T) {
	kv := memory.New()

	_, err := run(t, kv, "http://localhost:1", "favorite", "7", "--remove")
	require.NoError(t, err)

	out, err := run(t, kv, "http://localhost:1", "pending", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Discarded: remove car 7 from favorites")

	out, err = run(t, kv, "http://localhost:1", "resume")
	require.NoError(t, err)
	assert.Contains(t, out, "No pending action.")
}

func TestResume_RequiresLogin(t *testing.T) {
	kv := memory.New()

	_, err := run(t, kv, "http://localhost:1", "save-search", "brand=Audi")
	require.NoError(t, err)

	out, err := run(t, kv, "http://localhost:1", "resume")
	assert.ErrorContains(t, err, "not authenticated")
	assert.Contains(t, out, "waiting for login")

	// действие сохраняется до входа
	out, err = run(t, kv, "http://localhost:1", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, `save search "brand=Audi"`)
}

func TestEstimate_AnonymousSavesLocalHistory(t *testing.T) {
	b, server := newBackend(t)
	kv := memory.New()

	out, err := run(t, kv, server.URL, "estimate",
		"--brand", "BMW", "--model", "X5", "--year", "2019", "--mileage", "60000",
		"--fuel", "diesel", "--transmission", "automatic", "--engine", "2993",
		"--notes", "first look")
	require.NoError(t, err)

	assert.Contains(t, out, "Estimated price: €21,500")
	assert.Contains(t, out, "Confidence:      Medium")
	assert.Contains(t, out, "Next year value: €18,705")
	assert.Equal(t, []string{"POST /estimation/estimate-price"}, b.Calls())

	out, err = run(t, kv, server.URL, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimation History (local)")
	assert.Contains(t, out, "BMW X5 2019, 60000 km  €21,500")
	assert.Contains(t, out, "Notes: first look")
	assert.Contains(t, out, "Total: 1")

	// анонимная история не запрашивается у сервера
	assert.Len(t, b.Calls(), 1)
}

func TestEstimate_InvalidInput(t *testing.T) {
	b, server := newBackend(t)

	_, err := run(t, memory.New(), server.URL, "estimate", "--brand", "BMW", "--model", "X5", "--year", "1900")
	assert.ErrorContains(t, err, "invalid car data")
	assert.Empty(t, b.Calls())

	_, err = run(t, memory.New(), server.URL, "estimate", "--brand", "BMW", "--model", "X5", "--rhd", "--lhd")
	assert.ErrorContains(t, err, "mutually exclusive")
}

// После входа история запрашивается у сервера. Когда сервер недоступен,
// удаление выполняется в локальной копии.
func TestHistory_FallsBackToLocal(t *testing.T) {
	_, server := newBackend(t)
	kv := memory.New()

	_, err := run(t, kv, server.URL, "login", "--email", "driver@example.com", "--password", "pw")
	require.NoError(t, err)

	local := []models.StoredHistoryEntry{
		{ID: "1700000000000", Car: models.CarData{Brand: "Audi", Model: "A4", Year: 2017}, Timestamp: "2023-11-14T22:13:20.000Z"},
		{ID: "1690000000000", Car: models.CarData{Brand: "VW", Model: "Golf", Year: 2015}, Timestamp: "2023-07-22T04:26:40.000Z"},
	}
	require.NoError(t, storage.SetJSON(context.Background(), kv, storage.HistoryKey(5), local))

	// fake сервер отвечает 404 на /estimation-history/
	out, err := run(t, kv, server.URL, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimation History (local)")
	assert.Contains(t, out, "Total: 2")

	out, err = run(t, kv, server.URL, "history", "delete", "1700000000000")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Estimation 1700000000000 deleted")

	out, err = run(t, kv, server.URL, "history", "list", "--local")
	require.NoError(t, err)
	assert.NotContains(t, out, "Audi")
	assert.Contains(t, out, "VW Golf")
}

func TestLogout_KeepsHistory(t *testing.T) {
	_, server := newBackend(t)
	kv := memory.New()

	_, err := run(t, kv, server.URL, "login", "--email", "driver@example.com", "--password", "pw")
	require.NoError(t, err)

	out, err := run(t, kv, server.URL, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Logged out")

	out, err = run(t, kv, server.URL, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: Not authenticated")
}

func TestBoltStorage_PersistsBetweenRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "carscope.db")
	args := func(extra ...string) []string {
		return append([]string{"--server", "http://localhost:1", "--storage", "bolt", "--db", dbPath}, extra...)
	}

	var out bytes.Buffer
	newCli := func() *Cli {
		out.Reset()
		return New(iocli.NewStreams(strings.NewReader(""), &out), BuildInfo{}, WithStderr(io.Discard))
	}

	require.NoError(t, newCli().Run(context.Background(), args("visit", "/cars/42")))
	require.NoError(t, newCli().Run(context.Background(), args("favorite", "42")))
	require.NoError(t, newCli().Run(context.Background(), args("status")))

	assert.Contains(t, out.String(), "Pending action: add car 42 to favorites")
	assert.Contains(t, out.String(), "Return to: /cars/42")
}

func TestHistoryClear_AsksForConfirmation(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	local := []models.StoredHistoryEntry{{ID: "1", Car: models.CarData{Brand: "Kia", Model: "Ceed", Year: 2020}}}
	require.NoError(t, storage.SetJSON(ctx, kv, storage.KeyHistory, local))

	out, err := run(t, kv, "http://localhost:1", "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete all saved estimations? [y/N]: ")
	assert.Contains(t, out, "Aborted.")
	_, err = kv.Get(ctx, storage.KeyHistory)
	require.NoError(t, err)

	out, err = run(t, kv, "http://localhost:1", "history", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ History cleared")
	_, err = kv.Get(ctx, storage.KeyHistory)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestFavorites_DeferredUntilLogin(t *testing.T) {
	b, server := newBackend(t)
	kv := memory.New()

	out, err := run(t, kv, server.URL, "favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "Login required")
	assert.NotContains(t, b.Calls(), "GET /favorites/5")

	out, err = run(t, kv, server.URL, "login", "--email", "driver@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending action: page opened")
	assert.Contains(t, out, "→ /favorites")

	out, err = run(t, kv, server.URL, "favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "No favorite cars.")

	_, err = run(t, kv, server.URL, "favorite", "42")
	require.NoError(t, err)

	out, err = run(t, kv, server.URL, "favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Favorites ===")
	assert.Contains(t, out, "#42  BMW 320d  €15,500")
	assert.Contains(t, out, "Total: 1")
}

func TestSearches_ListAndDelete(t *testing.T) {
	b, server := newBackend(t)
	kv := memory.New()

	_, err := run(t, kv, server.URL, "searches", "list")
	require.ErrorContains(t, err, "not authenticated")
	_, err = run(t, kv, server.URL, "searches", "delete", "1")
	require.ErrorContains(t, err, "not authenticated")
	assert.Empty(t, b.Calls())

	_, err = run(t, kv, server.URL, "login", "--email", "driver@example.com", "--password", "pw")
	require.NoError(t, err)
	_, err = run(t, kv, server.URL, "save-search", "brand=BMW")
	require.NoError(t, err)

	out, err := run(t, kv, server.URL, "searches", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Saved Searches ===")
	assert.Contains(t, out, "#1  brand=BMW")

	out, err = run(t, kv, server.URL, "searches", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Saved search 1 deleted")

	out, err = run(t, kv, server.URL, "searches", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved searches.")

	_, err = run(t, kv, server.URL, "searches", "delete", "1")
	require.ErrorContains(t, err, "Saved search not found")
}
