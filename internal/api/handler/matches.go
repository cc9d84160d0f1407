package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenascope/arenascope/internal/api/respond"
	"github.com/arenascope/arenascope/internal/arena"
)

const defaultMatchCount = 10

// GetMatches returns recent matches of any queue for a player.
// @Summary Recent match history
// @Description Fetches up to 20 recent matches of any queue for a PUUID.
// @Tags matches
// @Produce json
// @Param puuid path string true "Player PUUID"
// @Param count query int false "Number of matches (max 20)"
// @Success 200 {object} map[string]interface{}
// @Router /api/matches/{puuid} [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	puuid := chi.URLParam(r, "puuid")
	if !validPUUID(puuid) {
		respond.Error(w, http.StatusBadRequest, "Invalid PUUID format")
		return
	}

	matches, err := h.matches.RecentMatches(r.Context(), puuid, countParam(r, defaultMatchCount))
	if err != nil {
		upstreamError(w, err, "No match history for this player")
		return
	}

	respond.Success(w, respond.Envelope{
		"matches": matches,
		"count":   len(matches),
	})
}

// GetArenaMatches returns Arena (queue 1700) matches for a player.
// @Summary Arena match history
// @Description Fetches up to 50 Arena matches for a PUUID, joined with item and augment names.
// @Tags matches
// @Produce json
// @Param puuid path string true "Player PUUID"
// @Param count query int false "Number of matches (max 50)"
// @Success 200 {object} map[string]interface{}
// @Router /api/arena/matches/{puuid} [get]
func (h *Handler) GetArenaMatches(w http.ResponseWriter, r *http.Request) {
	puuid := chi.URLParam(r, "puuid")
	if !validPUUID(puuid) {
		respond.Error(w, http.StatusBadRequest, "Invalid PUUID format")
		return
	}

	matches, err := h.matches.ArenaMatches(r.Context(), puuid, countParam(r, defaultMatchCount))
	if err != nil {
		upstreamError(w, err, "No match history for this player")
		return
	}

	respond.Success(w, respond.Envelope{
		"matches": matches,
		"count":   len(matches),
	})
}

// GetArenaMatchesCSV streams Arena matches as a CSV attachment.
// @Summary Arena match history as CSV
// @Description Streams up to 50 Arena matches as a CSV download.
// @Tags matches
// @Produce text/csv
// @Param puuid path string true "Player PUUID"
// @Param count query int false "Number of matches (max 50)"
// @Param filename query string false "Download filename (sanitized)"
// @Success 200 {string} string "CSV document"
// @Router /api/arena/matches/{puuid}/csv [get]
func (h *Handler) GetArenaMatchesCSV(w http.ResponseWriter, r *http.Request) {
	puuid := chi.URLParam(r, "puuid")
	if !validPUUID(puuid) {
		respond.Error(w, http.StatusBadRequest, "Invalid PUUID format")
		return
	}

	matches, err := h.matches.ArenaMatches(r.Context(), puuid, countParam(r, arena.MaxArenaCount))
	if err != nil {
		upstreamError(w, err, "No match history for this player")
		return
	}

	filename := arena.SanitizeFilename(r.URL.Query().Get("filename"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := arena.WriteCSV(w, matches); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}
