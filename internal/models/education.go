package models

import "time"

// Tip categories shown on the tips page.
var TipCategories = []string{"transportation", "energy", "waste", "lifestyle"}

// ArticleDB represents an educational article joined with its author.
type ArticleDB struct {
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	Username  string    `json:"username" db:"username"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Category  *string   `json:"category" db:"category"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ArticlePage is one page of articles plus pagination metadata and the
// distinct category list used for filtering.
type ArticlePage struct {
	Articles    []ArticleDB `json:"articles"`
	Categories  []string    `json:"categories"`
	Total       int64       `json:"total"`
	Pages       int64       `json:"pages"`
	CurrentPage int64       `json:"current_page"`
}

// TipDB represents a sustainability tip.
type TipDB struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
