package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// HistoryReader defines the interface that the service must implement.
type HistoryReader interface {
	GetHistory(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.FootprintRecordDB, error)
}

// HistoryResponse represents a footprint history response
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Records ordered by date descending
	Records []models.FootprintRecordDB `json:"records"`
}

// HistoryErrorResponse represents an error response for history
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewHistoryHandler returns an HTTP handler for reading footprint history.
// @Summary Footprint history
// @Description Returns the user's footprint records, newest first. Optional inclusive date bounds via start_date and end_date (YYYY-MM-DD).
// @Tags footprint
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} handlers.HistoryResponse "Footprint records"
// @Failure 400 {object} handlers.HistoryErrorResponse "Invalid date format"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Router /footprint/history [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		var startDate, endDate *time.Time
		if s := r.URL.Query().Get("start_date"); s != "" {
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid start_date"})
				return
			}
			startDate = &t
		}
		if s := r.URL.Query().Get("end_date"); s != "" {
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid end_date"})
				return
			}
			endDate = &t
		}

		records, err := svc.GetHistory(ctx, userID, startDate, endDate)
		if err != nil {
			logger.Log.Errorw("failed to get footprint history", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryResponse{Records: records})
	}
}
