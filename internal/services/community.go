package services

import (
	"context"
	"errors"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrEmptyPost is returned when a post is missing its title or content.
	ErrEmptyPost = errors.New("post title and content are required")
	// ErrEmptyComment is returned when a comment has no content.
	ErrEmptyComment = errors.New("comment content is required")
	// ErrPostNotFound is returned when a comment references a missing post.
	ErrPostNotFound = errors.New("post not found")
)

// CommunityWriter defines write operations for posts and comments.
type CommunityWriter interface {
	SavePost(ctx context.Context, userID int64, title, content string) (int64, error)
	SaveComment(ctx context.Context, postID, userID int64, content string) (int64, error)
}

// CommunityReader defines read operations for posts.
type CommunityReader interface {
	CountPosts(ctx context.Context) (int64, error)
	GetPosts(ctx context.Context, limit, offset int64) ([]models.PostDB, error)
}

// LeaderboardReader aggregates user standings.
type LeaderboardReader interface {
	GetLeaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
	GetUserRank(ctx context.Context, userID int64) (*int64, error)
}

// LeaderboardCache caches leaderboard pages.
type LeaderboardCache interface {
	GetLeaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
	SetLeaderboard(ctx context.Context, limit int64, entries []models.LeaderboardEntry) error
}

// CommunityService handles the forum, leaderboard and user ranks.
type CommunityService struct {
	writer CommunityWriter
	reader CommunityReader
	board  LeaderboardReader
	cache  LeaderboardCache
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(writer CommunityWriter, reader CommunityReader, board LeaderboardReader, cache LeaderboardCache) *CommunityService {
	return &CommunityService{
		writer: writer,
		reader: reader,
		board:  board,
		cache:  cache,
	}
}

// CreatePost creates a forum post and returns its id.
func (s *CommunityService) CreatePost(ctx context.Context, userID int64, title, content string) (int64, error) {
	if title == "" || content == "" {
		return 0, ErrEmptyPost
	}

	id, err := s.writer.SavePost(ctx, userID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to create post", "userID", userID, "error", err)
		return 0, err
	}

	return id, nil
}

// AddComment adds a comment to a post and returns the comment id. Comments
// on missing posts surface as ErrPostNotFound.
func (s *CommunityService) AddComment(ctx context.Context, postID, userID int64, content string) (int64, error) {
	if content == "" {
		return 0, ErrEmptyComment
	}

	id, err := s.writer.SaveComment(ctx, postID, userID, content)
	if err != nil {
		logger.Log.Errorw("failed to add comment", "postID", postID, "userID", userID, "error", err)

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return 0, ErrPostNotFound
		}
		return 0, err
	}

	return id, nil
}

// GetPosts returns one page of posts with pagination metadata. Page and
// limit fall back to 1 and 10 when non-positive.
func (s *CommunityService) GetPosts(ctx context.Context, page, limit int64) (*models.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := s.reader.CountPosts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count posts", "error", err)
		return nil, err
	}

	offset := (page - 1) * limit
	posts, err := s.reader.GetPosts(ctx, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to get posts", "page", page, "limit", limit, "error", err)
		return nil, err
	}

	return &models.PostPage{
		Posts:       posts,
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// GetLeaderboard returns the top users by points from completed challenges.
// Reads go through the cache; on a miss the aggregate is computed and cached
// (cache write failures are logged only).
func (s *CommunityService) GetLeaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	if limit < 1 {
		limit = 10
	}

	if s.cache != nil {
		if entries, err := s.cache.GetLeaderboard(ctx, limit); err == nil {
			return entries, nil
		}
	}

	entries, err := s.board.GetLeaderboard(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to get leaderboard", "limit", limit, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetLeaderboard(ctx, limit, entries); err != nil {
			logger.Log.Errorw("failed to cache leaderboard", "limit", limit, "error", err)
		}
	}

	return entries, nil
}

// GetUserRank returns the user's rank by the leaderboard ordering, or nil
// when the user is absent from the ranked set.
func (s *CommunityService) GetUserRank(ctx context.Context, userID int64) (*int64, error) {
	rank, err := s.board.GetUserRank(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user rank", "userID", userID, "error", err)
		return nil, err
	}
	return rank, nil
}
