package dto

// CreateWordBookRequest represents a manual word book creation request
type CreateWordBookRequest struct {
	Title       string `json:"title" binding:"required" example:"CET-4 Core Vocabulary"`
	Description string `json:"description" example:"High frequency words for the CET-4 exam"`
	Source      string `json:"source" example:"https://vocab.example.com/cet4"`
}

// UpdateWordBookRequest represents a word book update; empty fields are left unchanged
type UpdateWordBookRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Source      *string `json:"source,omitempty"`
}

// SelectorConfigRequest describes which page elements map to which vocabulary
// fields during a crawl. Unset fields fall back to documented defaults.
type SelectorConfigRequest struct {
	Container  string `json:"container,omitempty" example:".word-entry"`
	Word       string `json:"word,omitempty" example:".word"`
	Phonetic   string `json:"phonetic,omitempty" example:".phonetic"`
	Definition string `json:"definition,omitempty" example:".definition"`
}

// CrawlWordBookRequest represents an acquisition request
type CrawlWordBookRequest struct {
	URL      string                 `json:"url" binding:"required,url" example:"https://vocab.example.com/cet4"`
	Selector *SelectorConfigRequest `json:"selector,omitempty"`
}
