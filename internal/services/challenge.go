package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrAlreadyJoined is returned when a user joins the same challenge twice.
	ErrAlreadyJoined = errors.New("challenge already joined")
	// ErrChallengeNotFound is returned when the referenced challenge does not exist.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrNotJoined is returned when progress is reported for a challenge the user never joined.
	ErrNotJoined = errors.New("challenge not joined")
	// ErrInvalidProgress is returned when progress is outside the 0-100 range.
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	// ErrAlreadyCompleted is returned when progress is reported for a participation that is already completed.
	ErrAlreadyCompleted = errors.New("challenge already completed")
	// ErrInvalidChallenge is returned when challenge data fails validation.
	ErrInvalidChallenge = errors.New("challenge title is required")
)

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// NewChallenge carries the fields of a challenge to create.
type NewChallenge struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Points      int64     `json:"points"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// ChallengeWriter defines write operations for challenges and participations.
type ChallengeWriter interface {
	Create(ctx context.Context, title, description string, points int64, startDate, endDate time.Time) (int64, error)
	Join(ctx context.Context, challengeID, userID int64) error
	UpdateProgress(ctx context.Context, challengeID, userID, progress int64) (string, int64, error)
}

// ChallengeReader defines read operations for challenges.
type ChallengeReader interface {
	GetActive(ctx context.Context, userID *int64) ([]models.ActiveChallenge, error)
	GetUserHistory(ctx context.Context, userID int64) ([]models.ChallengeHistoryEntry, error)
}

// PointsWriter awards points to a user.
type PointsWriter interface {
	AddPoints(ctx context.Context, userID, points int64) error
}

// ChallengeService manages challenges and per-user participation.
type ChallengeService struct {
	writer      ChallengeWriter
	reader      ChallengeReader
	points      PointsWriter
	kafkaWriter KafkaWriter
}

// NewChallengeService creates a new ChallengeService.
func NewChallengeService(writer ChallengeWriter, reader ChallengeReader, points PointsWriter, kafkaWriter KafkaWriter) *ChallengeService {
	return &ChallengeService{
		writer:      writer,
		reader:      reader,
		points:      points,
		kafkaWriter: kafkaWriter,
	}
}

// Create inserts a new challenge with status "active".
func (s *ChallengeService) Create(ctx context.Context, in NewChallenge) (int64, error) {
	if in.Title == "" {
		return 0, ErrInvalidChallenge
	}

	id, err := s.writer.Create(ctx, in.Title, in.Description, in.Points, in.StartDate, in.EndDate)
	if err != nil {
		logger.Log.Errorw("failed to create challenge", "title", in.Title, "error", err)
		return 0, err
	}

	return id, nil
}

// GetActive lists active challenges with participant counts and, when userID
// is given, that user's participation status and progress.
func (s *ChallengeService) GetActive(ctx context.Context, userID *int64) ([]models.ActiveChallenge, error) {
	challenges, err := s.reader.GetActive(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get active challenges", "error", err)
		return nil, err
	}
	return challenges, nil
}

// Join opts a user into a challenge. A duplicate join surfaces as
// ErrAlreadyJoined, a missing challenge as ErrChallengeNotFound.
func (s *ChallengeService) Join(ctx context.Context, challengeID, userID int64) error {
	if err := s.writer.Join(ctx, challengeID, userID); err != nil {
		logger.Log.Errorw("failed to join challenge", "challengeID", challengeID, "userID", userID, "error", err)

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return ErrAlreadyJoined
			case pgForeignKeyViolation:
				return ErrChallengeNotFound
			}
		}
		return err
	}
	return nil
}

// UpdateProgress records a progress value between 0 and 100. Reaching 100
// completes the participation and awards the challenge's points to the user;
// status update and award run in the same request transaction, so neither
// lands without the other. A completed participation is final: further
// updates are rejected with ErrAlreadyCompleted, which keeps the award a
// once-only event.
func (s *ChallengeService) UpdateProgress(ctx context.Context, challengeID, userID, progress int64) (*models.ProgressUpdate, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrInvalidProgress
	}

	prevStatus, points, err := s.writer.UpdateProgress(ctx, challengeID, userID, progress)
	if err != nil {
		logger.Log.Errorw("failed to update progress", "challengeID", challengeID, "userID", userID, "error", err)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotJoined
		}
		return nil, err
	}

	if prevStatus == models.ParticipationCompleted {
		return nil, ErrAlreadyCompleted
	}

	update := &models.ProgressUpdate{
		Status:   models.ParticipationInProgress,
		Progress: progress,
	}
	if progress >= 100 {
		update.Status = models.ParticipationCompleted
	}

	if update.Status == models.ParticipationCompleted {
		if err := s.points.AddPoints(ctx, userID, points); err != nil {
			logger.Log.Errorw("failed to award points", "challengeID", challengeID, "userID", userID, "points", points, "error", err)
			return nil, err
		}
		update.AwardedPoints = points

		publishEvent(ctx, s.kafkaWriter, models.Event{
			EventID:     uuid.NewString(),
			Type:        models.EventChallengeCompleted,
			Timestamp:   time.Now().Unix(),
			UserID:      userID,
			ChallengeID: challengeID,
			Points:      points,
		})
	}

	return update, nil
}

// GetUserHistory lists the user's challenges with participation state,
// completions first.
func (s *ChallengeService) GetUserHistory(ctx context.Context, userID int64) ([]models.ChallengeHistoryEntry, error) {
	history, err := s.reader.GetUserHistory(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get challenge history", "userID", userID, "error", err)
		return nil, err
	}
	return history, nil
}
