package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/logger"
)

// RecommendationsReader defines the interface that the service must implement.
type RecommendationsReader interface {
	GetRecommendations(ctx context.Context, userID int64) (map[string][]string, error)
}

// RecommendationsResponse represents a recommendations response
// swagger:model RecommendationsResponse
type RecommendationsResponse struct {
	// Advice lists keyed by category; empty when the user is below all thresholds
	Recommendations map[string][]string `json:"recommendations"`
}

// RecommendationsErrorResponse represents an error response for recommendations
// swagger:model RecommendationsErrorResponse
type RecommendationsErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewRecommendationsHandler returns an HTTP handler for usage recommendations.
// @Summary Footprint recommendations
// @Description Returns category advice derived from the user's average consumption. Categories below their thresholds are omitted.
// @Tags footprint
// @Produce json
// @Success 200 {object} handlers.RecommendationsResponse "Advice per category"
// @Failure 401 {object} handlers.RecommendationsErrorResponse "Unauthorized"
// @Router /footprint/recommendations [get]
// @Security BearerAuth
func NewRecommendationsHandler(svc RecommendationsReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RecommendationsErrorResponse{Error: "Unauthorized"})
			return
		}

		recommendations, err := svc.GetRecommendations(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get recommendations", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RecommendationsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RecommendationsResponse{Recommendations: recommendations})
	}
}
