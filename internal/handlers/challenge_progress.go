package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/ecotrack-team/ecotrack/internal/services"
	"github.com/go-chi/chi/v5"
)

// ProgressUpdater defines the interface that the service must implement.
type ProgressUpdater interface {
	UpdateProgress(ctx context.Context, challengeID, userID, progress int64) (*models.ProgressUpdate, error)
}

// ProgressRequest represents the JSON body for a progress update
// swagger:model ProgressRequest
type ProgressRequest struct {
	// Progress percentage, 0 to 100
	// required: true
	// example: 100
	Progress int64 `json:"progress"`
}

// ProgressResponse represents a successful progress update response
// swagger:model ProgressResponse
type ProgressResponse struct {
	// Success message
	// example: Progress updated successfully
	Message string `json:"message"`

	// Resulting participation state and any points awarded
	Update *models.ProgressUpdate `json:"update"`
}

// ProgressErrorResponse represents an error response for a progress update
// swagger:model ProgressErrorResponse
type ProgressErrorResponse struct {
	// Error message
	// example: Progress must be between 0 and 100
	Error string `json:"error"`
}

// NewChallengeProgressHandler returns an HTTP handler for updating challenge progress.
// @Summary Update challenge progress
// @Description Records the user's progress in a challenge. Reaching 100 completes the participation and awards the challenge's points exactly once.
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param request body handlers.ProgressRequest true "Progress update"
// @Success 200 {object} handlers.ProgressResponse "Progress updated"
// @Failure 400 {object} handlers.ProgressErrorResponse "Invalid progress value"
// @Failure 401 {object} handlers.ProgressErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProgressErrorResponse "Challenge not joined"
// @Failure 409 {object} handlers.ProgressErrorResponse "Challenge already completed"
// @Router /challenges/{id}/progress [put]
// @Security BearerAuth
func NewChallengeProgressHandler(svc ProgressUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProgressErrorResponse{Error: "Unauthorized"})
			return
		}

		challengeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProgressErrorResponse{Error: "Invalid challenge id"})
			return
		}

		var req ProgressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode progress request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProgressErrorResponse{Error: "Invalid request body"})
			return
		}

		update, err := svc.UpdateProgress(ctx, challengeID, userID, req.Progress)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidProgress):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ProgressErrorResponse{Error: "Progress must be between 0 and 100"})
			case errors.Is(err, services.ErrNotJoined):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProgressErrorResponse{Error: "Challenge not joined"})
			case errors.Is(err, services.ErrAlreadyCompleted):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ProgressErrorResponse{Error: "Challenge already completed"})
			default:
				logger.Log.Errorw("failed to update progress", "challengeID", challengeID, "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProgressErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProgressResponse{
			Message: "Progress updated successfully",
			Update:  update,
		})
	}
}
