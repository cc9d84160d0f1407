package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arenascope/arenascope/internal/api/respond"
	"github.com/arenascope/arenascope/internal/ddragon"
)

// GetChampionImage returns the CDN URL for a champion asset.
// @Summary Champion image URL
// @Tags images
// @Produce json
// @Param name path string true "Champion name"
// @Param size query string false "square | loading | splash" default(square)
// @Success 200 {object} map[string]interface{}
// @Router /api/images/champion/{name} [get]
func (h *Handler) GetChampionImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		respond.Error(w, http.StatusBadRequest, "Champion name is required")
		return
	}

	size, ok := ddragon.ParseChampionImageSize(r.URL.Query().Get("size"))
	if !ok {
		respond.Error(w, http.StatusBadRequest, "size must be one of: square, loading, splash")
		return
	}

	respond.Success(w, respond.Envelope{
		"imageUrl": h.refs.ChampionImageURL(r.Context(), name, size),
	})
}

// GetItemImage returns the CDN URL for an item icon.
// @Summary Item image URL
// @Tags images
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/images/item/{id} [get]
func (h *Handler) GetItemImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusBadRequest, "Item ID must be a positive integer")
		return
	}

	respond.Success(w, respond.Envelope{
		"imageUrl": h.refs.ItemImageURL(r.Context(), id),
		"name":     h.refs.ItemName(id),
	})
}

// GetAugmentImage returns the Community Dragon URL for an augment icon.
// @Summary Augment image URL
// @Tags images
// @Produce json
// @Param id path string true "Augment ID or API name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/images/augment/{id} [get]
func (h *Handler) GetAugmentImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")
	if key == "" {
		respond.Error(w, http.StatusBadRequest, "Augment ID is required")
		return
	}

	url := h.refs.AugmentImageURL(key)
	if url == "" {
		respond.Error(w, http.StatusNotFound, "Augment not found")
		return
	}

	respond.Success(w, respond.Envelope{
		"imageUrl": url,
		"name":     h.refs.AugmentName(key),
	})
}

// championBatchRequest is the POST /api/images/champions body.
type championBatchRequest struct {
	ChampionNames []string `json:"championNames"`
}

// GetChampionImages returns square icon URLs for a batch of champions.
// @Summary Batch champion image URLs
// @Tags images
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/images/champions [post]
func (h *Handler) GetChampionImages(w http.ResponseWriter, r *http.Request) {
	var req championBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChampionNames == nil {
		respond.Error(w, http.StatusBadRequest, "Body must be {\"championNames\": [...]}")
		return
	}

	images := make(map[string]string, len(req.ChampionNames))
	for _, name := range req.ChampionNames {
		if name == "" {
			continue
		}
		images[name] = h.refs.ChampionImageURL(r.Context(), name, ddragon.SizeSquare)
	}

	respond.Success(w, respond.Envelope{"images": images})
}

// itemBatchRequest is the POST /api/images/items body.
type itemBatchRequest struct {
	ItemIDs []int `json:"itemIds"`
}

// GetItemImages returns icon URLs for a batch of item IDs.
// @Summary Batch item image URLs
// @Tags images
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/images/items [post]
func (h *Handler) GetItemImages(w http.ResponseWriter, r *http.Request) {
	var req itemBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemIDs == nil {
		respond.Error(w, http.StatusBadRequest, "Body must be {\"itemIds\": [...]}")
		return
	}

	images := make(map[string]string, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		if id <= 0 {
			continue // empty slot
		}
		images[strconv.Itoa(id)] = h.refs.ItemImageURL(r.Context(), id)
	}

	respond.Success(w, respond.Envelope{"images": images})
}
