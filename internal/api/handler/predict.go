package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arenascope/arenascope/internal/api/respond"
	"github.com/arenascope/arenascope/internal/predictor"
)

// PredictArenaWin runs a single-match prediction.
// @Summary Predict Arena outcome for one match
// @Description Bridges the feature vector to the external model process.
// @Tags predict
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/predict-arena-win [post]
func (h *Handler) PredictArenaWin(w http.ResponseWriter, r *http.Request) {
	var features predictor.Features
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		respond.Error(w, http.StatusBadRequest, "Body must be a feature object")
		return
	}

	pred, err := h.bridge.PredictWin(r.Context(), features)
	if err != nil {
		predictorError(w, err)
		return
	}

	respond.Success(w, respond.Envelope{
		"placement":  pred.Placement,
		"confidence": pred.Confidence,
	})
}

// PredictArenaPlacements runs a batch prediction over multiple matches.
// @Summary Predict Arena placements for a batch of matches
// @Tags predict
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/predict-arena-placements [post]
func (h *Handler) PredictArenaPlacements(w http.ResponseWriter, r *http.Request) {
	var features []predictor.Features
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil || features == nil {
		respond.Error(w, http.StatusBadRequest, "Body must be an array of feature objects")
		return
	}

	results, err := h.bridge.PredictPlacements(r.Context(), features)
	if err != nil {
		predictorError(w, err)
		return
	}

	respond.Success(w, respond.Envelope{
		"results": results,
		"count":   len(results),
	})
}

// predictorError reports the bridge's failure sub-reason. Everything is a 500:
// the external process is our dependency, not the client's fault.
func predictorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, predictor.ErrStart):
		respond.Error(w, http.StatusInternalServerError, "Prediction service failed to start")
	case errors.Is(err, predictor.ErrBadOutput):
		respond.Error(w, http.StatusInternalServerError, "Prediction service returned an invalid response")
	default:
		respond.Error(w, http.StatusInternalServerError, "Prediction service failed")
	}
}
