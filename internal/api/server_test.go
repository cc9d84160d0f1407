package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenascope/arenascope/internal/api/handler"
	"github.com/arenascope/arenascope/internal/arena"
	"github.com/arenascope/arenascope/internal/config"
	"github.com/arenascope/arenascope/internal/ddragon"
	"github.com/arenascope/arenascope/internal/predictor"
	"github.com/arenascope/arenascope/internal/riot"
)

type stubAccounts struct{}

func (stubAccounts) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error) {
	return &riot.Account{PUUID: "abc123", GameName: gameName, TagLine: tagLine}, nil
}

type stubMatches struct{}

func (stubMatches) ArenaMatches(ctx context.Context, puuid string, count int) ([]arena.Match, error) {
	return []arena.Match{}, nil
}

func (stubMatches) RecentMatches(ctx context.Context, puuid string, count int) ([]arena.Match, error) {
	return []arena.Match{}, nil
}

type stubPredictor struct{}

func (stubPredictor) PredictWin(ctx context.Context, features predictor.Features) (*predictor.Prediction, error) {
	return &predictor.Prediction{Placement: 1, Confidence: 1}, nil
}

func (stubPredictor) PredictPlacements(ctx context.Context, features []predictor.Features) ([]predictor.Prediction, error) {
	return []predictor.Prediction{}, nil
}

func newRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	// Never loaded: the routes under test don't reach the static-data mirror.
	refs := ddragon.NewReferenceCache(ddragon.NewClient(), cfg.FallbackVersion, nil)
	h := handler.New(stubAccounts{}, stubMatches{}, refs, stubPredictor{}, cfg)
	return NewRouter(h, cfg)
}

func testConfig() *config.Config {
	return &config.Config{
		RiotAPIKey:      "RGAPI-test-key",
		RiotRegion:      "americas",
		Environment:     "test",
		FallbackVersion: "15.1.1",
	}
}

func TestRouter_HealthAndTimingHeader(t *testing.T) {
	r := newRouter(t, testConfig())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Process-Time"), "every response carries the timing header")
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	r := newRouter(t, testConfig())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MatchRoutesAreWired(t *testing.T) {
	r := newRouter(t, testConfig())

	for _, target := range []string{
		"/api/player/Faker/T1",
		"/api/matches/abc123abc123abc123abc123",
		"/api/arena/matches/abc123abc123abc123abc123",
		"/api/arena/matches/abc123abc123abc123abc123/csv",
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestRouter_RateLimitRejectsBurst(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2 // burst of 1
	cfg.RateLimitWindow = time.Minute
	r := newRouter(t, cfg)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
}

func TestRateLimit_PerIPIsolation(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	r := newRouter(t, cfg)

	drain := httptest.NewRequest(http.MethodGet, "/health", nil)
	drain.RemoteAddr = "10.0.0.1:1234"
	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), drain)
	}

	other := httptest.NewRequest(http.MethodGet, "/health", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, other)

	assert.Equal(t, http.StatusOK, rec.Code, "a second client keeps its own budget")
}

func TestRouter_CORSExposesDownloadHeaders(t *testing.T) {
	r := newRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}
