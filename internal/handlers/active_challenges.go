package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// ActiveChallengesReader defines the interface that the service must implement.
type ActiveChallengesReader interface {
	GetActive(ctx context.Context, userID *int64) ([]models.ActiveChallenge, error)
}

// ActiveChallengesResponse represents an active challenge list response
// swagger:model ActiveChallengesResponse
type ActiveChallengesResponse struct {
	// Active challenges, soonest deadline first, with the caller's participation state
	Challenges []models.ActiveChallenge `json:"challenges"`
}

// ActiveChallengesErrorResponse represents an error response for the challenge list
// swagger:model ActiveChallengesErrorResponse
type ActiveChallengesErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewActiveChallengesHandler returns an HTTP handler listing active challenges.
// @Summary List active challenges
// @Description Returns active challenges with participant counts and the caller's participation status and progress.
// @Tags challenges
// @Produce json
// @Success 200 {object} handlers.ActiveChallengesResponse "Active challenges"
// @Failure 401 {object} handlers.ActiveChallengesErrorResponse "Unauthorized"
// @Router /challenges [get]
// @Security BearerAuth
func NewActiveChallengesHandler(svc ActiveChallengesReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ActiveChallengesErrorResponse{Error: "Unauthorized"})
			return
		}

		challenges, err := svc.GetActive(ctx, &userID)
		if err != nil {
			logger.Log.Errorw("failed to get active challenges", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ActiveChallengesErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ActiveChallengesResponse{Challenges: challenges})
	}
}
