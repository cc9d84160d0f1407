// Package handler provides HTTP handlers for all API endpoints.
// Handlers call the Riot proxy services directly — no extra service layer.
package handler

import (
	"context"
	"net/http"
	"regexp"

	"github.com/arenascope/arenascope/internal/api/respond"
	"github.com/arenascope/arenascope/internal/arena"
	"github.com/arenascope/arenascope/internal/config"
	"github.com/arenascope/arenascope/internal/ddragon"
	"github.com/arenascope/arenascope/internal/predictor"
	"github.com/arenascope/arenascope/internal/riot"
)

// AccountResolver resolves Riot IDs to accounts.
type AccountResolver interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error)
}

// MatchFetcher fetches joined match batches.
type MatchFetcher interface {
	ArenaMatches(ctx context.Context, puuid string, count int) ([]arena.Match, error)
	RecentMatches(ctx context.Context, puuid string, count int) ([]arena.Match, error)
}

// Predictor bridges to the external prediction process.
type Predictor interface {
	PredictWin(ctx context.Context, features predictor.Features) (*predictor.Prediction, error)
	PredictPlacements(ctx context.Context, features []predictor.Features) ([]predictor.Prediction, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	accounts AccountResolver
	matches  MatchFetcher
	refs     *ddragon.ReferenceCache
	bridge   Predictor
	cfg      *config.Config
}

// New creates a Handler with shared dependencies.
func New(accounts AccountResolver, matches MatchFetcher, refs *ddragon.ReferenceCache, bridge Predictor, cfg *config.Config) *Handler {
	return &Handler{
		accounts: accounts,
		matches:  matches,
		refs:     refs,
		bridge:   bridge,
		cfg:      cfg,
	}
}

// puuidPattern matches provider-issued player IDs (base64url alphabet).
var puuidPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{20,120}$`)

// validPUUID reports whether raw looks like a provider player ID. Malformed
// IDs are rejected before any upstream call is attempted.
func validPUUID(raw string) bool {
	return puuidPattern.MatchString(raw)
}

// upstreamError maps a provider failure onto our response. Terminal 4xx codes
// pass through 1:1; everything else (exhausted retries, transport failures)
// becomes a generic 502.
func upstreamError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch status := riot.StatusOf(err); status {
	case http.StatusNotFound:
		respond.Error(w, http.StatusNotFound, notFoundMsg)
	case http.StatusUnauthorized, http.StatusForbidden:
		respond.Error(w, http.StatusForbidden, "Riot API key rejected by upstream")
	case http.StatusBadRequest:
		respond.Error(w, http.StatusBadRequest, "Upstream rejected the request")
	case 0:
		respond.Error(w, http.StatusBadGateway, "Upstream request failed")
	default:
		respond.Error(w, status, "Upstream request failed")
	}
}
