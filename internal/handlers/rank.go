package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/logger"
)

// RankGetter defines the interface that the service must implement.
type RankGetter interface {
	GetUserRank(ctx context.Context, userID int64) (*int64, error)
}

// RankResponse represents the caller's leaderboard position
// swagger:model RankResponse
type RankResponse struct {
	// One-based position on the leaderboard, null when the user has no points
	// example: 3
	Rank *int64 `json:"rank"`
}

// RankErrorResponse represents an error response for the rank lookup
// swagger:model RankErrorResponse
type RankErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewRankHandler returns an HTTP handler for the caller's leaderboard position.
// @Summary My leaderboard rank
// @Description Returns the authenticated user's position on the points leaderboard.
// @Tags community
// @Produce json
// @Success 200 {object} handlers.RankResponse "Leaderboard position"
// @Failure 401 {object} handlers.RankErrorResponse "Unauthorized"
// @Router /community/leaderboard/rank [get]
// @Security BearerAuth
func NewRankHandler(svc RankGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RankErrorResponse{Error: "Unauthorized"})
			return
		}

		rank, err := svc.GetUserRank(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get user rank", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RankErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RankResponse{Rank: rank})
	}
}
