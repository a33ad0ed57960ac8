package models

import "time"

// PostDB represents a forum post joined with its author and comment count.
type PostDB struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	Status       string    `json:"status" db:"status"`
	CommentCount int64     `json:"comment_count" db:"comment_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PostPage is one page of posts plus offset-pagination metadata.
type PostPage struct {
	Posts       []PostDB `json:"posts"`
	Total       int64    `json:"total"`
	Pages       int64    `json:"pages"`
	CurrentPage int64    `json:"current_page"`
}

// CommentDB represents a comment on a post.
type CommentDB struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LeaderboardEntry is one user's aggregate standing. Users with no completed
// challenges are present with zero points.
type LeaderboardEntry struct {
	UserID              int64  `json:"user_id" db:"user_id"`
	Username            string `json:"username" db:"username"`
	ChallengesCompleted int64  `json:"challenges_completed" db:"challenges_completed"`
	TotalPoints         int64  `json:"total_points" db:"total_points"`
}
