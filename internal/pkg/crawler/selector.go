package crawler

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
)

// Default selectors, matching the shape of common vocabulary listing pages.
const (
	DefaultContainerSelector  = ".word-entry"
	DefaultWordSelector       = ".word"
	DefaultPhoneticSelector   = ".phonetic"
	DefaultDefinitionSelector = ".definition"
)

// SelectorConfig describes which structural elements of a rendered page map to
// which vocabulary fields. The zero value means "use all defaults".
type SelectorConfig struct {
	Container  string
	Word       string
	Phonetic   string
	Definition string
}

// WithDefaults returns a copy with every unset selector replaced by its default.
func (c SelectorConfig) WithDefaults() SelectorConfig {
	if c.Container == "" {
		c.Container = DefaultContainerSelector
	}
	if c.Word == "" {
		c.Word = DefaultWordSelector
	}
	if c.Phonetic == "" {
		c.Phonetic = DefaultPhoneticSelector
	}
	if c.Definition == "" {
		c.Definition = DefaultDefinitionSelector
	}
	return c
}

// Validate compiles every selector and rejects the config if any is malformed.
// Validation happens before any page is fetched, so a bad selector never costs
// a browser launch.
func (c SelectorConfig) Validate() error {
	fields := []struct {
		name     string
		selector string
	}{
		{"container", c.Container},
		{"word", c.Word},
		{"phonetic", c.Phonetic},
		{"definition", c.Definition},
	}

	for _, f := range fields {
		if f.selector == "" {
			continue
		}
		if _, err := cascadia.Parse(f.selector); err != nil {
			return apperrors.NewCustomError(apperrors.ErrInvalidSelector,
				fmt.Sprintf("invalid %s selector %q", f.name, f.selector))
		}
	}

	return nil
}
