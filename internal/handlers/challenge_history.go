package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// ChallengeHistoryReader defines the interface that the service must implement.
type ChallengeHistoryReader interface {
	GetUserHistory(ctx context.Context, userID int64) ([]models.ChallengeHistoryEntry, error)
}

// ChallengeHistoryResponse represents a challenge history response
// swagger:model ChallengeHistoryResponse
type ChallengeHistoryResponse struct {
	// Challenges the user joined, completions first
	Challenges []models.ChallengeHistoryEntry `json:"challenges"`
}

// ChallengeHistoryErrorResponse represents an error response for challenge history
// swagger:model ChallengeHistoryErrorResponse
type ChallengeHistoryErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewChallengeHistoryHandler returns an HTTP handler for the user's challenge history.
// @Summary Challenge history
// @Description Returns every challenge the user joined with status and progress, ordered by completion then join time.
// @Tags challenges
// @Produce json
// @Success 200 {object} handlers.ChallengeHistoryResponse "Challenge history"
// @Failure 401 {object} handlers.ChallengeHistoryErrorResponse "Unauthorized"
// @Router /challenges/history [get]
// @Security BearerAuth
func NewChallengeHistoryHandler(svc ChallengeHistoryReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ChallengeHistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		history, err := svc.GetUserHistory(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get challenge history", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChallengeHistoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChallengeHistoryResponse{Challenges: history})
	}
}
