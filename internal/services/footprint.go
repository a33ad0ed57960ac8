package services

import (
	"context"
	"errors"
	"time"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/ecotrack-team/ecotrack/internal/scoring"
	"github.com/google/uuid"
)

var (
	// ErrNegativeInput is returned when any consumption input is below zero.
	ErrNegativeInput = errors.New("consumption values must not be negative")
)

// Recommendation thresholds over the user's average consumption.
const (
	transportationThreshold = 20  // km/day
	energyThreshold         = 300 // kWh/month
	wasteThreshold          = 10  // kg/week
)

// FootprintWriter persists footprint records.
type FootprintWriter interface {
	Save(ctx context.Context, userID int64, transportation, energy, waste, total float64, description *string) (int64, error)
}

// FootprintReader reads footprint history and aggregates.
type FootprintReader interface {
	GetHistory(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.FootprintRecordDB, error)
	GetSummary(ctx context.Context, userID int64) (*models.FootprintSummary, error)
	GetMonthlyTrends(ctx context.Context, userID int64, months int) ([]models.MonthlyTrend, error)
}

// CalculationResult is the outcome of a footprint calculation.
type CalculationResult struct {
	ID        int64             `json:"id"`
	Total     float64           `json:"total"`
	Breakdown scoring.Breakdown `json:"breakdown"`
}

// FootprintService computes and persists carbon footprint records.
type FootprintService struct {
	writer      FootprintWriter
	reader      FootprintReader
	kafkaWriter KafkaWriter
}

// NewFootprintService creates a new FootprintService.
func NewFootprintService(writer FootprintWriter, reader FootprintReader, kafkaWriter KafkaWriter) *FootprintService {
	return &FootprintService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Calculate scores the three inputs, persists a record stamped with today's
// date and returns the generated id with the computed breakdown. Negative
// inputs are rejected.
func (s *FootprintService) Calculate(ctx context.Context, userID int64, transportation, energy, waste float64, description *string) (*CalculationResult, error) {
	if transportation < 0 || energy < 0 || waste < 0 {
		logger.Log.Warnw("negative consumption input rejected",
			"userID", userID, "transportation", transportation, "energy", energy, "waste", waste)
		return nil, ErrNegativeInput
	}

	res := scoring.Calculate(transportation, energy, waste)

	id, err := s.writer.Save(ctx, userID, transportation, energy, waste, res.Total, description)
	if err != nil {
		logger.Log.Errorw("failed to save footprint record", "userID", userID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventFootprintRecorded,
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		RecordID:  id,
		Total:     res.Total,
	})

	return &CalculationResult{
		ID:        id,
		Total:     res.Total,
		Breakdown: res.Breakdown,
	}, nil
}

// GetHistory returns the user's records, newest first. Date bounds are
// inclusive and optional.
func (s *FootprintService) GetHistory(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.FootprintRecordDB, error) {
	records, err := s.reader.GetHistory(ctx, userID, startDate, endDate)
	if err != nil {
		logger.Log.Errorw("failed to get footprint history", "userID", userID, "error", err)
		return nil, err
	}
	return records, nil
}

// GetSummary returns aggregate statistics over all of the user's records.
// When the user has no records, TotalEntries is zero and all other fields
// are nil.
func (s *FootprintService) GetSummary(ctx context.Context, userID int64) (*models.FootprintSummary, error) {
	summary, err := s.reader.GetSummary(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get footprint summary", "userID", userID, "error", err)
		return nil, err
	}
	return summary, nil
}

// GetMonthlyTrends returns calendar-month buckets for the last N months,
// oldest first. Non-positive months defaults to 6.
func (s *FootprintService) GetMonthlyTrends(ctx context.Context, userID int64, months int) ([]models.MonthlyTrend, error) {
	if months <= 0 {
		months = 6
	}

	trends, err := s.reader.GetMonthlyTrends(ctx, userID, months)
	if err != nil {
		logger.Log.Errorw("failed to get monthly trends", "userID", userID, "months", months, "error", err)
		return nil, err
	}
	return trends, nil
}

// GetRecommendations derives advice from the user's averages. Each category
// whose average exceeds its threshold contributes a fixed advice list; a
// user below all thresholds, or with no records, gets an empty map.
func (s *FootprintService) GetRecommendations(ctx context.Context, userID int64) (map[string][]string, error) {
	summary, err := s.reader.GetSummary(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get summary for recommendations", "userID", userID, "error", err)
		return nil, err
	}

	recommendations := map[string][]string{}
	if summary.TotalEntries == 0 {
		return recommendations, nil
	}

	if summary.AvgTransportation != nil && *summary.AvgTransportation > transportationThreshold {
		recommendations["transportation"] = []string{
			"Use public transportation when possible",
			"Consider carpooling",
			"Combine multiple errands into one trip",
		}
	}

	if summary.AvgEnergy != nil && *summary.AvgEnergy > energyThreshold {
		recommendations["energy"] = []string{
			"Switch to LED bulbs",
			"Use energy-efficient appliances",
			"Optimize heating/cooling settings",
		}
	}

	if summary.AvgWaste != nil && *summary.AvgWaste > wasteThreshold {
		recommendations["waste"] = []string{
			"Start composting organic waste",
			"Reduce single-use plastics",
			"Implement recycling system",
		}
	}

	return recommendations, nil
}
