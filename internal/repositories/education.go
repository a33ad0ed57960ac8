package repositories

import (
	"context"
	"strings"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/jmoiron/sqlx"
)

// EducationReadRepository reads educational articles and tips.
type EducationReadRepository struct {
	db *sqlx.DB
}

func NewEducationReadRepository(db *sqlx.DB) *EducationReadRepository {
	return &EducationReadRepository{db: db}
}

// CountArticles returns the number of published articles, optionally
// restricted to one category.
func (r *EducationReadRepository) CountArticles(ctx context.Context, category *string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM educational_content
		WHERE status = 'published'
		  AND ($1::VARCHAR IS NULL OR category = $1)
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, category)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{category},
		"result", total,
		"error", err,
	)

	return total, err
}

// GetArticles returns one page of published articles with author usernames,
// newest first.
func (r *EducationReadRepository) GetArticles(ctx context.Context, category *string, limit, offset int64) ([]models.ArticleDB, error) {
	const query = `
		SELECT ec.id, ec.author_id, u.username, ec.title, ec.content, ec.category, ec.status, ec.created_at
		FROM educational_content ec
		JOIN users u ON ec.author_id = u.id
		WHERE ec.status = 'published'
		  AND ($1::VARCHAR IS NULL OR ec.category = $1)
		ORDER BY ec.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var articles []models.ArticleDB
	err := r.db.SelectContext(ctx, &articles, query, category, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{category, limit, offset},
		"result", len(articles),
		"error", err,
	)

	return articles, err
}

// GetCategories returns the distinct article categories for filtering.
func (r *EducationReadRepository) GetCategories(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT category
		FROM educational_content
		WHERE category IS NOT NULL
		ORDER BY category
	`

	var categories []string
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", categories,
		"error", err,
	)

	return categories, err
}

// GetTipsByCategory returns the active tips of one category, newest first.
func (r *EducationReadRepository) GetTipsByCategory(ctx context.Context, category string) ([]models.TipDB, error) {
	const query = `
		SELECT id, title, content, category, status, created_at
		FROM tips
		WHERE category = $1 AND status = 'active'
		ORDER BY created_at DESC
	`

	var tips []models.TipDB
	err := r.db.SelectContext(ctx, &tips, query, category)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{category},
		"result", len(tips),
		"error", err,
	)

	return tips, err
}
