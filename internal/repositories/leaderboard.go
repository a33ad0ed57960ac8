package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/jmoiron/sqlx"
)

// LeaderboardReadRepository aggregates user standings from completed
// challenge participations.
type LeaderboardReadRepository struct {
	db *sqlx.DB
}

func NewLeaderboardReadRepository(db *sqlx.DB) *LeaderboardReadRepository {
	return &LeaderboardReadRepository{db: db}
}

// GetLeaderboard returns the top users ordered by points earned from
// completed challenges, then by number of completions. The outer joins keep
// users with no completions in the result with zero points.
func (r *LeaderboardReadRepository) GetLeaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT u.id AS user_id, u.username,
		       COUNT(DISTINCT uc.challenge_id) AS challenges_completed,
		       SUM(COALESCE(c.points, 0)) AS total_points
		FROM users u
		LEFT JOIN user_challenges uc ON u.id = uc.user_id AND uc.status = 'completed'
		LEFT JOIN challenges c ON uc.challenge_id = c.id
		GROUP BY u.id, u.username
		ORDER BY total_points DESC, challenges_completed DESC, u.id ASC
		LIMIT $1
	`

	var entries []models.LeaderboardEntry
	err := r.db.SelectContext(ctx, &entries, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}

// GetUserRank computes the user's rank over all users by total points from
// completed challenges, using a ranking window function. Returns nil when
// the user is absent from the ranked set.
func (r *LeaderboardReadRepository) GetUserRank(ctx context.Context, userID int64) (*int64, error) {
	const query = `
		SELECT rank
		FROM (
			SELECT id, RANK() OVER (ORDER BY total_points DESC) AS rank
			FROM (
				SELECT u.id, SUM(COALESCE(c.points, 0)) AS total_points
				FROM users u
				LEFT JOIN user_challenges uc ON u.id = uc.user_id AND uc.status = 'completed'
				LEFT JOIN challenges c ON uc.challenge_id = c.id
				GROUP BY u.id
			) ranked_users
		) user_ranks
		WHERE id = $1
	`

	var rank int64
	err := r.db.GetContext(ctx, &rank, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rank,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rank, nil
}
