package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// SummaryReader defines the interface that the service must implement.
type SummaryReader interface {
	GetSummary(ctx context.Context, userID int64) (*models.FootprintSummary, error)
}

// SummaryResponse represents a footprint summary response
// swagger:model SummaryResponse
type SummaryResponse struct {
	// Aggregate statistics; averages and extrema are null when the user has no records
	Summary *models.FootprintSummary `json:"summary"`
}

// SummaryErrorResponse represents an error response for summary
// swagger:model SummaryErrorResponse
type SummaryErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewSummaryHandler returns an HTTP handler for aggregate footprint statistics.
// @Summary Footprint summary
// @Description Returns entry count, averages and extrema over all of the user's footprint records.
// @Tags footprint
// @Produce json
// @Success 200 {object} handlers.SummaryResponse "Aggregate statistics"
// @Failure 401 {object} handlers.SummaryErrorResponse "Unauthorized"
// @Router /footprint/summary [get]
// @Security BearerAuth
func NewSummaryHandler(svc SummaryReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SummaryErrorResponse{Error: "Unauthorized"})
			return
		}

		summary, err := svc.GetSummary(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get footprint summary", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SummaryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SummaryResponse{Summary: summary})
	}
}
