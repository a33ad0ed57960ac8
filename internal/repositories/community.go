package repositories

import (
	"context"
	"strings"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/jmoiron/sqlx"
)

// CommunityWriteRepository handles post and comment creation.
type CommunityWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCommunityWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CommunityWriteRepository {
	return &CommunityWriteRepository{db: db, txGetter: txGetter}
}

func (r *CommunityWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SavePost inserts a post with active status and returns the generated id.
func (r *CommunityWriteRepository) SavePost(ctx context.Context, userID int64, title, content string) (int64, error) {
	const query = `
		INSERT INTO community_posts (user_id, title, content, status, created_at)
		VALUES ($1, $2, $3, 'active', NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, userID, title, content)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title},
		"result", id,
		"error", err,
	)

	return id, err
}

// SaveComment inserts a comment and returns the generated id.
func (r *CommunityWriteRepository) SaveComment(ctx context.Context, postID, userID int64, content string) (int64, error) {
	const query = `
		INSERT INTO comments (post_id, user_id, content, status, created_at)
		VALUES ($1, $2, $3, 'active', NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, postID, userID, content)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, userID},
		"result", id,
		"error", err,
	)

	return id, err
}

// CommunityReadRepository handles post listing.
type CommunityReadRepository struct {
	db *sqlx.DB
}

func NewCommunityReadRepository(db *sqlx.DB) *CommunityReadRepository {
	return &CommunityReadRepository{db: db}
}

// CountPosts returns the number of active posts.
func (r *CommunityReadRepository) CountPosts(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM community_posts WHERE status = 'active'`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", query,
		"result", total,
		"error", err,
	)

	return total, err
}

// GetPosts returns one page of active posts, newest first, each enriched
// with author username and comment count.
func (r *CommunityReadRepository) GetPosts(ctx context.Context, limit, offset int64) ([]models.PostDB, error) {
	const query = `
		SELECT p.id, p.user_id, u.username, p.title, p.content, p.status, p.created_at,
		       (SELECT COUNT(*) FROM comments
		        WHERE post_id = p.id AND status = 'active') AS comment_count
		FROM community_posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.status = 'active'
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var posts []models.PostDB
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"result", len(posts),
		"error", err,
	)

	return posts, err
}
