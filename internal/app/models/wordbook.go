package models

import "time"

// WordBook represents a named collection of vocabulary entries. Word books are
// shared read assets: any teacher may edit any word book, there is no owner field.
type WordBook struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Source      string    `json:"source" db:"source"` // Source URL when built by the acquisition pipeline
	WordCount   int       `json:"wordCount" db:"word_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
