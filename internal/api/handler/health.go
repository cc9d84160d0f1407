package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/arenascope/arenascope/internal/api/respond"
	"github.com/arenascope/arenascope/internal/config"
)

// HealthCheck returns liveness plus config sanity.
// @Summary Health check
// @Description Returns service status, key-configuration sanity, and reference cache statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":             "healthy",
		"api_key_configured": strings.HasPrefix(h.cfg.RiotAPIKey, config.APIKeyPrefix),
		"region":             h.cfg.RiotRegion,
		"environment":        h.cfg.Environment,
		"cache":              h.refs.Stats(),
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	})
}
