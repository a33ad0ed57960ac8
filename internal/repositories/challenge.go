package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/jmoiron/sqlx"
)

// ChallengeWriteRepository handles challenge and participation writes.
type ChallengeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewChallengeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ChallengeWriteRepository {
	return &ChallengeWriteRepository{db: db, txGetter: txGetter}
}

func (r *ChallengeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a challenge with status "active" and returns the generated id.
func (r *ChallengeWriteRepository) Create(ctx context.Context, title, description string, points int64, startDate, endDate time.Time) (int64, error) {
	const query = `
		INSERT INTO challenges (title, description, points, start_date, end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'active', NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, title, description, points, startDate, endDate)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, points, startDate, endDate},
		"result", id,
		"error", err,
	)

	return id, err
}

// Join creates the participation row for the (user, challenge) pair. The
// composite unique constraint rejects duplicate joins.
func (r *ChallengeWriteRepository) Join(ctx context.Context, challengeID, userID int64) error {
	const query = `
		INSERT INTO user_challenges (user_id, challenge_id, status, progress, joined_at)
		VALUES ($1, $2, 'joined', 0, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, challengeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, challengeID},
		"error", err,
	)

	return err
}

// UpdateProgress stores the new progress value and derives the participation
// status from it: completed at 100, in_progress below. Completed
// participations are final: the update skips them, so their progress, status
// and completed_at never change again. Returns the status the pair had before
// the update together with the challenge's point reward; sql.ErrNoRows when
// the user never joined.
func (r *ChallengeWriteRepository) UpdateProgress(ctx context.Context, challengeID, userID, progress int64) (string, int64, error) {
	const query = `
		WITH prev AS (
			SELECT status
			FROM user_challenges
			WHERE challenge_id = $1 AND user_id = $2
		), updated AS (
			UPDATE user_challenges uc
			SET progress = $3,
			    status = CASE WHEN $3 >= 100 THEN 'completed' ELSE 'in_progress' END,
			    completed_at = CASE WHEN $3 >= 100 THEN NOW() ELSE uc.completed_at END
			WHERE uc.challenge_id = $1 AND uc.user_id = $2 AND uc.status <> 'completed'
		)
		SELECT prev.status, c.points
		FROM prev
		JOIN challenges c ON c.id = $1
	`

	var row struct {
		Status string `db:"status"`
		Points int64  `db:"points"`
	}
	err := sqlx.GetContext(ctx, r.executor(ctx), &row, query, challengeID, userID, progress)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{challengeID, userID, progress},
		"result", row.Status,
		"error", err,
	)

	return row.Status, row.Points, err
}

// CloseExpired flips active challenges past their end date to closed and
// returns the number of challenges closed.
func (r *ChallengeWriteRepository) CloseExpired(ctx context.Context) (int64, error) {
	const query = `
		UPDATE challenges
		SET status = 'closed'
		WHERE status = 'active' AND end_date < CURRENT_DATE
	`

	res, err := r.executor(ctx).ExecContext(ctx, query)
	var closed int64
	if res != nil {
		closed, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", closed,
		"error", err,
	)

	return closed, err
}

// ChallengeReadRepository handles challenge reads.
type ChallengeReadRepository struct {
	db *sqlx.DB
}

func NewChallengeReadRepository(db *sqlx.DB) *ChallengeReadRepository {
	return &ChallengeReadRepository{db: db}
}

// GetActive lists active challenges with their participant counts, soonest
// deadline first. When userID is non-nil each row also carries that user's
// participation status and progress; challenges the user has not joined stay
// in the result with both fields nil.
func (r *ChallengeReadRepository) GetActive(ctx context.Context, userID *int64) ([]models.ActiveChallenge, error) {
	const query = `
		SELECT c.id, c.title, c.description, c.points, c.start_date, c.end_date, c.status,
		       COUNT(DISTINCT uc.user_id) AS participants,
		       uc2.status AS user_status,
		       uc2.progress AS user_progress
		FROM challenges c
		LEFT JOIN user_challenges uc ON c.id = uc.challenge_id
		LEFT JOIN user_challenges uc2 ON c.id = uc2.challenge_id AND uc2.user_id = $1
		WHERE c.status = 'active'
		GROUP BY c.id, uc2.status, uc2.progress
		ORDER BY c.end_date ASC
	`

	var challenges []models.ActiveChallenge
	err := r.db.SelectContext(ctx, &challenges, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(challenges),
		"error", err,
	)

	return challenges, err
}

// GetUserHistory lists every challenge the user joined with their
// participation state, most recently completed first, then most recently
// joined.
func (r *ChallengeReadRepository) GetUserHistory(ctx context.Context, userID int64) ([]models.ChallengeHistoryEntry, error) {
	const query = `
		SELECT c.id, c.title, c.description, c.points,
		       uc.status, uc.progress, uc.joined_at, uc.completed_at
		FROM challenges c
		JOIN user_challenges uc ON c.id = uc.challenge_id
		WHERE uc.user_id = $1
		ORDER BY uc.completed_at DESC NULLS LAST, uc.joined_at DESC
	`

	var history []models.ChallengeHistoryEntry
	err := r.db.SelectContext(ctx, &history, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(history),
		"error", err,
	)

	return history, err
}
