package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/services"
)

// ChallengeCreator defines the interface that the service must implement.
type ChallengeCreator interface {
	Create(ctx context.Context, in services.NewChallenge) (int64, error)
}

// CreateChallengeRequest represents the JSON body for creating a challenge
// swagger:model CreateChallengeRequest
type CreateChallengeRequest struct {
	// Challenge title
	// required: true
	// example: Car-free week
	Title string `json:"title"`

	// Challenge description
	// example: Commute without a car for seven days
	Description string `json:"description"`

	// Point reward on completion
	// example: 50
	Points int64 `json:"points"`

	// First day of the challenge (YYYY-MM-DD)
	// required: true
	// example: 2025-06-01
	StartDate string `json:"start_date"`

	// Last day of the challenge (YYYY-MM-DD)
	// required: true
	// example: 2025-06-07
	EndDate string `json:"end_date"`
}

// CreateChallengeResponse represents a successful challenge creation response
// swagger:model CreateChallengeResponse
type CreateChallengeResponse struct {
	// Success message
	// example: Challenge created successfully
	Message string `json:"message"`

	// Identifier of the new challenge
	// example: 1
	ChallengeID int64 `json:"challenge_id"`
}

// CreateChallengeErrorResponse represents an error response for challenge creation
// swagger:model CreateChallengeErrorResponse
type CreateChallengeErrorResponse struct {
	// Error message
	// example: Challenge title is required
	Error string `json:"error"`
}

// NewCreateChallengeHandler returns an HTTP handler for creating a challenge.
// @Summary Create a challenge
// @Description Creates a new challenge with status "active".
// @Tags challenges
// @Accept json
// @Produce json
// @Param request body handlers.CreateChallengeRequest true "Challenge to create"
// @Success 201 {object} handlers.CreateChallengeResponse "Challenge created"
// @Failure 400 {object} handlers.CreateChallengeErrorResponse "Invalid request"
// @Failure 401 {object} handlers.CreateChallengeErrorResponse "Unauthorized"
// @Router /challenges [post]
// @Security BearerAuth
func NewCreateChallengeHandler(svc ChallengeCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, err := userIDFromRequest(ctx, r, tokener); err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateChallengeErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateChallengeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create challenge request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateChallengeErrorResponse{Error: "Invalid request body"})
			return
		}

		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateChallengeErrorResponse{Error: "Invalid start_date"})
			return
		}
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateChallengeErrorResponse{Error: "Invalid end_date"})
			return
		}

		id, err := svc.Create(ctx, services.NewChallenge{
			Title:       req.Title,
			Description: req.Description,
			Points:      req.Points,
			StartDate:   startDate,
			EndDate:     endDate,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidChallenge) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateChallengeErrorResponse{Error: "Challenge title is required"})
				return
			}

			logger.Log.Errorw("failed to create challenge", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateChallengeErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateChallengeResponse{
			Message:     "Challenge created successfully",
			ChallengeID: id,
		})
	}
}
