package crawler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/okutan/lexbook/internal/pkg/apperrors"
)

const samplePage = `
<html>
<head>
	<meta name="description" content="High frequency words.">
</head>
<body>
	<h1>  CET-4 Core Vocabulary </h1>
	<div class="word-entry">
		<span class="word">abandon</span>
		<span class="phonetic">/əˈbændən/</span>
		<span class="definition">to leave behind</span>
	</div>
	<div class="word-entry">
		<span class="word"></span>
		<span class="definition">decorative entry without a word</span>
	</div>
	<div class="word-entry">
		<span class="word">benefit</span>
		<span class="definition">an advantage</span>
	</div>
	<div class="word-entry">
		<span class="word">candidate</span>
		<span class="phonetic">/ˈkændɪdət/</span>
		<span class="definition">a person applying</span>
	</div>
</body>
</html>`

func TestExtractSamplePage(t *testing.T) {
	extraction, err := Extract(samplePage, SelectorConfig{})
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}

	if extraction.Title != "CET-4 Core Vocabulary" {
		t.Fatalf("unexpected title: %q", extraction.Title)
	}
	if extraction.Description != "High frequency words." {
		t.Fatalf("unexpected description: %q", extraction.Description)
	}

	// The empty-word container is dropped, order is preserved.
	want := []CandidateWord{
		{Word: "abandon", Phonetic: "/əˈbændən/", Definition: "to leave behind"},
		{Word: "benefit", Definition: "an advantage"},
		{Word: "candidate", Phonetic: "/ˈkændɪdət/", Definition: "a person applying"},
	}
	if !reflect.DeepEqual(extraction.Words, want) {
		t.Fatalf("unexpected words:\n got %+v\nwant %+v", extraction.Words, want)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	first, err := Extract(samplePage, SelectorConfig{})
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := Extract(samplePage, SelectorConfig{})
		if err != nil {
			t.Fatalf("extract error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("re-extraction from identical content differed")
		}
	}
}

func TestExtractMetadataFallbacks(t *testing.T) {
	extraction, err := Extract(`<html><body><p>nothing here</p></body></html>`, SelectorConfig{})
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}

	if extraction.Title != UnknownWordBookTitle {
		t.Fatalf("expected fallback title, got %q", extraction.Title)
	}
	if extraction.Description != "" {
		t.Fatalf("expected empty description, got %q", extraction.Description)
	}
	if len(extraction.Words) != 0 {
		t.Fatalf("expected no words, got %d", len(extraction.Words))
	}
}

func TestExtractCustomSelectors(t *testing.T) {
	page := `
	<ul>
		<li class="entry"><b class="hw">ephemeral</b><i class="gloss">short-lived</i></li>
		<li class="entry"><b class="hw">luminous</b><i class="gloss">giving off light</i></li>
	</ul>`

	extraction, err := Extract(page, SelectorConfig{
		Container:  ".entry",
		Word:       ".hw",
		Definition: ".gloss",
	})
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}

	if len(extraction.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(extraction.Words))
	}
	if extraction.Words[0].Word != "ephemeral" || extraction.Words[0].Definition != "short-lived" {
		t.Fatalf("unexpected first word: %+v", extraction.Words[0])
	}
}

func TestExtractRejectsInvalidSelector(t *testing.T) {
	_, err := Extract(samplePage, SelectorConfig{Container: "[unclosed"})
	if !errors.Is(err, apperrors.ErrInvalidSelector) {
		t.Fatalf("expected ErrInvalidSelector, got %v", err)
	}
}
