package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/services"
	"github.com/go-chi/chi/v5"
)

// ChallengeJoiner defines the interface that the service must implement.
type ChallengeJoiner interface {
	Join(ctx context.Context, challengeID, userID int64) error
}

// JoinChallengeResponse represents a successful join response
// swagger:model JoinChallengeResponse
type JoinChallengeResponse struct {
	// Success message
	// example: Challenge joined successfully
	Message string `json:"message"`
}

// JoinChallengeErrorResponse represents an error response for joining
// swagger:model JoinChallengeErrorResponse
type JoinChallengeErrorResponse struct {
	// Error message
	// example: Challenge already joined
	Error string `json:"error"`
}

// NewJoinChallengeHandler returns an HTTP handler for joining a challenge.
// @Summary Join a challenge
// @Description Opts the authenticated user into a challenge. Joining twice is rejected.
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} handlers.JoinChallengeResponse "Joined"
// @Failure 400 {object} handlers.JoinChallengeErrorResponse "Invalid challenge id"
// @Failure 401 {object} handlers.JoinChallengeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.JoinChallengeErrorResponse "Challenge not found"
// @Failure 409 {object} handlers.JoinChallengeErrorResponse "Already joined"
// @Router /challenges/{id}/join [post]
// @Security BearerAuth
func NewJoinChallengeHandler(svc ChallengeJoiner, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(JoinChallengeErrorResponse{Error: "Unauthorized"})
			return
		}

		challengeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(JoinChallengeErrorResponse{Error: "Invalid challenge id"})
			return
		}

		if err := svc.Join(ctx, challengeID, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyJoined):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(JoinChallengeErrorResponse{Error: "Challenge already joined"})
			case errors.Is(err, services.ErrChallengeNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(JoinChallengeErrorResponse{Error: "Challenge not found"})
			default:
				logger.Log.Errorw("failed to join challenge", "challengeID", challengeID, "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(JoinChallengeErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(JoinChallengeResponse{Message: "Challenge joined successfully"})
	}
}
