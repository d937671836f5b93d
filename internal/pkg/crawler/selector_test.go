package crawler

import (
	"errors"
	"testing"

	"github.com/okutan/lexbook/internal/pkg/apperrors"
)

func TestWithDefaults(t *testing.T) {
	cfg := SelectorConfig{}.WithDefaults()

	if cfg.Container != DefaultContainerSelector {
		t.Fatalf("unexpected container selector: %q", cfg.Container)
	}
	if cfg.Word != DefaultWordSelector || cfg.Phonetic != DefaultPhoneticSelector || cfg.Definition != DefaultDefinitionSelector {
		t.Fatalf("defaults not applied: %+v", cfg)
	}

	// Set fields are preserved.
	custom := SelectorConfig{Container: "ul.words > li"}.WithDefaults()
	if custom.Container != "ul.words > li" {
		t.Fatalf("override lost: %q", custom.Container)
	}
	if custom.Word != DefaultWordSelector {
		t.Fatalf("unset field not defaulted: %q", custom.Word)
	}
}

func TestValidate(t *testing.T) {
	if err := (SelectorConfig{}.WithDefaults()).Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	bad := SelectorConfig{Word: ":::nonsense"}
	if err := bad.Validate(); !errors.Is(err, apperrors.ErrInvalidSelector) {
		t.Fatalf("expected ErrInvalidSelector, got %v", err)
	}
}
