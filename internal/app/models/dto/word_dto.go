package dto

// CreateWordRequest represents a single word creation request
type CreateWordRequest struct {
	Word          string `json:"word" binding:"required" example:"abandon"`
	Phonetic      string `json:"phonetic" example:"/əˈbændən/"`
	Pronunciation string `json:"pronunciation" example:"https://audio.example.com/abandon.mp3"`
	Definition    string `json:"definition" binding:"required" example:"to leave behind"`
	Example       string `json:"example" example:"He abandoned the project."`
	Image         string `json:"image" example:"https://img.example.com/abandon.png"`
}

// UpdateWordRequest represents a word update; empty fields are left unchanged
type UpdateWordRequest struct {
	Word          *string `json:"word,omitempty"`
	Phonetic      *string `json:"phonetic,omitempty"`
	Pronunciation *string `json:"pronunciation,omitempty"`
	Definition    *string `json:"definition,omitempty"`
	Example       *string `json:"example,omitempty"`
	Image         *string `json:"image,omitempty"`
}

// ImportWordsRequest represents a bulk import of words into a word book
type ImportWordsRequest struct {
	Words []CreateWordRequest `json:"words" binding:"required,dive"`
}
