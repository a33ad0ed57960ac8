package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key
	Username  string     `json:"username" db:"username"`     // Unique username
	Email     string     `json:"email" db:"email"`           // Unique email
	Password  string     `json:"-" db:"password"`            // Hashed password
	Points    int64      `json:"points" db:"points"`         // Points earned from completed challenges
	CreatedAt time.Time  `json:"created_at" db:"created_at"` // Registration timestamp
	LastLogin *time.Time `json:"last_login" db:"last_login"` // Last successful login, nil until first login
}
