package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arenascope/arenascope/internal/api/respond"
)

// GetPlayer resolves a Riot ID to an account.
// @Summary Resolve a Riot ID
// @Description Resolves gameName#tagLine to the provider-assigned PUUID.
// @Tags player
// @Produce json
// @Param gameName path string true "Game name"
// @Param tagLine path string true "Tag line"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/player/{gameName}/{tagLine} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	gameName := chi.URLParam(r, "gameName")
	tagLine := chi.URLParam(r, "tagLine")
	if gameName == "" || tagLine == "" {
		respond.Error(w, http.StatusBadRequest, "gameName and tagLine are required")
		return
	}

	account, err := h.accounts.AccountByRiotID(r.Context(), gameName, tagLine)
	if err != nil {
		upstreamError(w, err, "Player not found")
		return
	}

	respond.Success(w, respond.Envelope{
		"player": map[string]string{
			"gameName": account.GameName,
			"tagLine":  account.TagLine,
			"puuid":    account.PUUID,
		},
	})
}

// countParam parses the count query parameter, defaulting when absent or
// unparsable; clamping happens in the fetcher.
func countParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
