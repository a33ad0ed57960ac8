package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// LeaderboardGetter defines the interface that the service must implement.
type LeaderboardGetter interface {
	GetLeaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
}

// LeaderboardResponse represents the community leaderboard
// swagger:model LeaderboardResponse
type LeaderboardResponse struct {
	// Users ranked by challenge points
	Leaderboard []models.LeaderboardEntry `json:"leaderboard"`
}

// LeaderboardErrorResponse represents an error response for the leaderboard
// swagger:model LeaderboardErrorResponse
type LeaderboardErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewLeaderboardHandler returns an HTTP handler for the points leaderboard.
// @Summary Community leaderboard
// @Description Returns users ranked by points earned from completed challenges.
// @Tags community
// @Produce json
// @Param limit query int false "Number of entries, defaults to 10"
// @Success 200 {object} handlers.LeaderboardResponse "Ranked users"
// @Failure 401 {object} handlers.LeaderboardErrorResponse "Unauthorized"
// @Router /community/leaderboard [get]
// @Security BearerAuth
func NewLeaderboardHandler(svc LeaderboardGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, err := userIDFromRequest(ctx, r, tokener); err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{Error: "Unauthorized"})
			return
		}

		var limit int64
		if v := r.URL.Query().Get("limit"); v != "" {
			limit, _ = strconv.ParseInt(v, 10, 64)
		}

		entries, err := svc.GetLeaderboard(ctx, limit)
		if err != nil {
			logger.Log.Errorw("failed to get leaderboard", "limit", limit, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LeaderboardResponse{Leaderboard: entries})
	}
}
