package crawler

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UnknownWordBookTitle is used when a page carries no heading to name the book.
const UnknownWordBookTitle = "Unknown Word Book"

// CandidateWord is one vocabulary record extracted from a page, before
// normalization and persistence.
type CandidateWord struct {
	Word       string
	Phonetic   string
	Definition string
}

// Extraction is the complete result of running the extractor over rendered
// page content.
type Extraction struct {
	Title       string
	Description string
	Words       []CandidateWord
}

// Extract pulls candidate words and page metadata out of rendered HTML using
// the given selector configuration. Extraction is deterministic: the same
// content and config always yield the same ordered result. Containers whose
// word sub-selector yields no text are dropped silently; loose selectors
// routinely match decorative elements and that is not an error.
func Extract(content string, cfg SelectorConfig) (*Extraction, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page content: %w", err)
	}

	extraction := &Extraction{
		Title:       pageTitle(doc),
		Description: pageDescription(doc),
	}

	doc.Find(cfg.Container).Each(func(_ int, sel *goquery.Selection) {
		word := fieldText(sel, cfg.Word)
		if word == "" {
			return
		}
		extraction.Words = append(extraction.Words, CandidateWord{
			Word:       word,
			Phonetic:   fieldText(sel, cfg.Phonetic),
			Definition: fieldText(sel, cfg.Definition),
		})
	})

	return extraction, nil
}

func fieldText(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}

func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		return UnknownWordBookTitle
	}
	return title
}

func pageDescription(doc *goquery.Document) string {
	description, _ := doc.Find(`meta[name="description"]`).Attr("content")
	return strings.TrimSpace(description)
}
