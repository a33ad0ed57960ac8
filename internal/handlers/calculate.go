package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/services"
)

// FootprintCalculator defines the interface that the service must implement.
type FootprintCalculator interface {
	Calculate(ctx context.Context, userID int64, transportation, energy, waste float64, description *string) (*services.CalculationResult, error)
}

// CalculateRequest represents the JSON body for a footprint calculation
// swagger:model CalculateRequest
type CalculateRequest struct {
	// Daily transportation in km
	// required: true
	// example: 10.0
	Transportation float64 `json:"transportation"`

	// Monthly energy usage in kWh
	// required: true
	// example: 150.0
	Energy float64 `json:"energy"`

	// Weekly waste in kg
	// required: true
	// example: 5.0
	Waste float64 `json:"waste"`

	// Optional description
	// example: commute week
	Description *string `json:"description"`
}

// CalculateResponse represents a successful calculation response
// swagger:model CalculateResponse
type CalculateResponse struct {
	// Success message
	// example: Footprint recorded successfully
	Message string `json:"message"`

	// Calculation result with per-category breakdown
	Result *services.CalculationResult `json:"result"`
}

// CalculateErrorResponse represents an error response for calculation
// swagger:model CalculateErrorResponse
type CalculateErrorResponse struct {
	// Error message
	// example: Consumption values must not be negative
	Error string `json:"error"`
}

// NewCalculateHandler returns an HTTP handler for recording a footprint calculation.
// @Summary Calculate and record a carbon footprint
// @Description Computes the weighted footprint score from transportation, energy and waste inputs and stores an immutable record stamped with today's date.
// @Tags footprint
// @Accept json
// @Produce json
// @Param request body handlers.CalculateRequest true "Calculation request"
// @Success 201 {object} handlers.CalculateResponse "Footprint recorded"
// @Failure 400 {object} handlers.CalculateErrorResponse "Invalid input"
// @Failure 401 {object} handlers.CalculateErrorResponse "Unauthorized"
// @Router /footprint/calculate [post]
// @Security BearerAuth
func NewCalculateHandler(svc FootprintCalculator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CalculateErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode calculate request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CalculateErrorResponse{Error: "Invalid request body"})
			return
		}

		result, err := svc.Calculate(ctx, userID, req.Transportation, req.Energy, req.Waste, req.Description)
		if err != nil {
			if errors.Is(err, services.ErrNegativeInput) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CalculateErrorResponse{Error: "Consumption values must not be negative"})
				return
			}

			logger.Log.Errorw("failed to calculate footprint", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CalculateErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CalculateResponse{
			Message: "Footprint recorded successfully",
			Result:  result,
		})
	}
}
