package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// TrendsReader defines the interface that the service must implement.
type TrendsReader interface {
	GetMonthlyTrends(ctx context.Context, userID int64, months int) ([]models.MonthlyTrend, error)
}

// TrendsResponse represents a monthly trends response
// swagger:model TrendsResponse
type TrendsResponse struct {
	// Calendar-month buckets, oldest first
	Trends []models.MonthlyTrend `json:"trends"`
}

// TrendsErrorResponse represents an error response for trends
// swagger:model TrendsErrorResponse
type TrendsErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewTrendsHandler returns an HTTP handler for monthly footprint trends.
// @Summary Monthly footprint trends
// @Description Returns per-month averages and totals for the last N months (default 6).
// @Tags footprint
// @Produce json
// @Param months query int false "Number of months to look back" default(6)
// @Success 200 {object} handlers.TrendsResponse "Monthly buckets"
// @Failure 401 {object} handlers.TrendsErrorResponse "Unauthorized"
// @Router /footprint/trends [get]
// @Security BearerAuth
func NewTrendsHandler(svc TrendsReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TrendsErrorResponse{Error: "Unauthorized"})
			return
		}

		months := 0
		if s := r.URL.Query().Get("months"); s != "" {
			months, _ = strconv.Atoi(s)
		}

		trends, err := svc.GetMonthlyTrends(ctx, userID, months)
		if err != nil {
			logger.Log.Errorw("failed to get monthly trends", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrendsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TrendsResponse{Trends: trends})
	}
}
