package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/jmoiron/sqlx"
)

// FootprintWriteRepository persists footprint records.
type FootprintWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFootprintWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FootprintWriteRepository {
	return &FootprintWriteRepository{db: db, txGetter: txGetter}
}

func (r *FootprintWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a footprint record stamped with today's calendar date and
// returns the generated id. The record is never updated afterwards.
func (r *FootprintWriteRepository) Save(ctx context.Context, userID int64, transportation, energy, waste, total float64, description *string) (int64, error) {
	const query = `
		INSERT INTO carbon_footprints (user_id, transportation, energy, waste, total, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_DATE, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, userID, transportation, energy, waste, total, description)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, transportation, energy, waste, total},
		"result", id,
		"error", err,
	)

	return id, err
}

// FootprintReadRepository reads footprint history and aggregates.
type FootprintReadRepository struct {
	db *sqlx.DB
}

func NewFootprintReadRepository(db *sqlx.DB) *FootprintReadRepository {
	return &FootprintReadRepository{db: db}
}

// GetHistory returns the user's records ordered by date descending. Both
// bounds are optional and inclusive when supplied.
func (r *FootprintReadRepository) GetHistory(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.FootprintRecordDB, error) {
	const query = `
		SELECT id, user_id, transportation, energy, waste, total, description, date, created_at
		FROM carbon_footprints
		WHERE user_id = $1
		  AND ($2::DATE IS NULL OR date >= $2)
		  AND ($3::DATE IS NULL OR date <= $3)
		ORDER BY date DESC, id DESC
	`

	var records []models.FootprintRecordDB
	err := r.db.SelectContext(ctx, &records, query, userID, startDate, endDate)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, startDate, endDate},
		"result", len(records),
		"error", err,
	)

	return records, err
}

// GetSummary returns aggregate statistics over all of the user's records.
// The averages and extrema are NULL (nil) when the user has no records.
func (r *FootprintReadRepository) GetSummary(ctx context.Context, userID int64) (*models.FootprintSummary, error) {
	const query = `
		SELECT
			COUNT(*) AS total_entries,
			AVG(transportation) AS avg_transportation,
			AVG(energy) AS avg_energy,
			AVG(waste) AS avg_waste,
			AVG(total) AS avg_total,
			MIN(total) AS min_total,
			MAX(total) AS max_total
		FROM carbon_footprints
		WHERE user_id = $1
	`

	var summary models.FootprintSummary
	err := r.db.GetContext(ctx, &summary, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", summary,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// GetMonthlyTrends returns per-calendar-month averages and totals for the
// last N months, oldest month first.
func (r *FootprintReadRepository) GetMonthlyTrends(ctx context.Context, userID int64, months int) ([]models.MonthlyTrend, error) {
	const query = `
		SELECT
			TO_CHAR(date, 'YYYY-MM') AS month,
			AVG(total) AS average,
			SUM(total) AS total
		FROM carbon_footprints
		WHERE user_id = $1
		  AND date >= CURRENT_DATE - MAKE_INTERVAL(months => $2)
		GROUP BY TO_CHAR(date, 'YYYY-MM')
		ORDER BY month ASC
	`

	var trends []models.MonthlyTrend
	err := r.db.SelectContext(ctx, &trends, query, userID, months)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, months},
		"result", len(trends),
		"error", err,
	)

	return trends, err
}
