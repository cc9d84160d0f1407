package handler

import (
	"net/http"

	"github.com/arenascope/arenascope/internal/api/respond"
)

// GetAugments dumps the full augment reference table.
// @Summary Augment reference table
// @Description Returns every known Arena augment (ID, API name, display name, rarity).
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/augments [get]
func (h *Handler) GetAugments(w http.ResponseWriter, r *http.Request) {
	augments := h.refs.Augments()
	respond.Success(w, respond.Envelope{
		"augments": augments,
		"count":    len(augments),
		"version":  h.refs.Version(r.Context()),
	})
}
