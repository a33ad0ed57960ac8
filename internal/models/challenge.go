package models

import "time"

// Challenge statuses
const (
	ChallengeStatusActive = "active"
	ChallengeStatusClosed = "closed"
)

// Participation statuses for a (user, challenge) pair
const (
	ParticipationJoined     = "joined"
	ParticipationInProgress = "in_progress"
	ParticipationCompleted  = "completed"
)

// ChallengeDB represents a challenge row in the database
type ChallengeDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	Title       string    `json:"title" db:"title"`             // Challenge title
	Description string    `json:"description" db:"description"` // Challenge description
	Points      int64     `json:"points" db:"points"`           // Point reward on completion
	StartDate   time.Time `json:"start_date" db:"start_date"`   // First day of the challenge
	EndDate     time.Time `json:"end_date" db:"end_date"`       // Last day of the challenge
	Status      string    `json:"status" db:"status"`           // active or closed
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// ActiveChallenge is a challenge enriched with its participant count and,
// when listed for a specific user, that user's participation state.
type ActiveChallenge struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Points       int64     `json:"points" db:"points"`
	StartDate    time.Time `json:"start_date" db:"start_date"`
	EndDate      time.Time `json:"end_date" db:"end_date"`
	Status       string    `json:"status" db:"status"`
	Participants int64     `json:"participants" db:"participants"`
	UserStatus   *string   `json:"user_status" db:"user_status"`     // nil when the user has not joined
	UserProgress *int64    `json:"user_progress" db:"user_progress"` // nil when the user has not joined
}

// ChallengeHistoryEntry is one row of a user's challenge history.
type ChallengeHistoryEntry struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Points      int64      `json:"points" db:"points"`
	Status      string     `json:"status" db:"status"`     // participation status
	Progress    int64      `json:"progress" db:"progress"` // 0..100
	JoinedAt    time.Time  `json:"joined_at" db:"joined_at"`
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"` // nil unless completed
}

// ProgressUpdate is the outcome of an UpdateProgress call.
type ProgressUpdate struct {
	Status        string `json:"status"`         // participation status after the update
	Progress      int64  `json:"progress"`       // stored progress
	AwardedPoints int64  `json:"awarded_points"` // points granted by this update, zero unless newly completed
}
