package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// TipsReader defines the interface that the service must implement.
type TipsReader interface {
	GetTips(ctx context.Context) (map[string][]models.TipDB, error)
}

// TipsResponse represents sustainability tips grouped by category
// swagger:model TipsResponse
type TipsResponse struct {
	// Tips keyed by category
	Tips map[string][]models.TipDB `json:"tips"`
}

// TipsErrorResponse represents an error response for tips
// swagger:model TipsErrorResponse
type TipsErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewTipsHandler returns an HTTP handler for sustainability tips.
// @Summary Sustainability tips
// @Description Returns tips grouped into transportation, energy, waste and lifestyle categories.
// @Tags education
// @Produce json
// @Success 200 {object} handlers.TipsResponse "Tips by category"
// @Failure 401 {object} handlers.TipsErrorResponse "Unauthorized"
// @Router /education/tips [get]
// @Security BearerAuth
func NewTipsHandler(svc TipsReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, err := userIDFromRequest(ctx, r, tokener); err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TipsErrorResponse{Error: "Unauthorized"})
			return
		}

		tips, err := svc.GetTips(ctx)
		if err != nil {
			logger.Log.Errorw("failed to get tips", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TipsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TipsResponse{Tips: tips})
	}
}
