package models

import "time"

// Word represents a single vocabulary entry. Its lifecycle is bound to the word
// book that holds it.
type Word struct {
	ID            int64     `json:"id" db:"id"`
	WordBookID    int64     `json:"wordBookId" db:"word_book_id"`
	Word          string    `json:"word" db:"word"`
	Phonetic      string    `json:"phonetic" db:"phonetic"`
	Pronunciation string    `json:"pronunciation" db:"pronunciation"` // URL to pronunciation audio
	Definition    string    `json:"definition" db:"definition"`
	Example       string    `json:"example" db:"example"`
	Image         string    `json:"image" db:"image"` // URL to an illustration
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
