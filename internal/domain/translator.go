package domain

import (
	"fmt"
	"log/slog"
	"maps"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// Catalog is an immutable snapshot of one locale's translations keyed by
// entry id.
type Catalog struct {
	locale string
	base   bool
	texts  map[string]string
}

// NewCatalog copies texts into a new catalog. A base catalog always
// resolves to the canonical text.
func NewCatalog(locale string, base bool, texts map[string]string) *Catalog {
	return &Catalog{locale: locale, base: base, texts: maps.Clone(texts)}
}

// Locale returns the catalog's locale identifier.
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}

	return c.locale
}

// IsBase reports whether the catalog is the base locale.
func (c *Catalog) IsBase() bool {
	return c == nil || c.base
}

// Len returns the number of translations.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.texts)
}

// Lookup returns the translation stored for id.
func (c *Catalog) Lookup(id string) (string, bool) {
	if c == nil {
		return "", false
	}

	text, ok := c.texts[id]

	return text, ok
}

// Translator resolves text against a catalog and substitutes positional
// arguments.
type Translator struct {
	sink WarningSink
}

// NewTranslator returns a Translator reporting placeholder problems to
// sink, which may be nil.
func NewTranslator(sink WarningSink) *Translator {
	return &Translator{sink: sink}
}

// Translate looks up text and context in cat and formats the result with
// args. The catalog's text is used unless it is missing or cat is the base
// locale. Placeholders are validated against the text actually used; a
// failure returns a *LookupError matching ErrArgumentCount or
// ErrPlaceholderIndex.
func (t *Translator) Translate(cat *Catalog, text, context string, args ...any) (string, error) {
	id := m.EntryID(text, context)
	used := text

	if !cat.IsBase() {
		if translated, ok := cat.Lookup(id); ok {
			used = translated
		}
	}

	fail := func(detail string, err error) (string, error) {
		return "", &LookupError{EntryID: id, Locale: cat.Locale(), Text: used, Detail: detail, Err: err}
	}

	if used != text {
		if err := ValidatePlaceholders(text, used); err != nil {
			if t != nil && t.sink != nil {
				t.sink.ReportPlaceholderMismatch(id, cat.Locale(), err.Error())
			}

			slog.Warn("Translation references undefined placeholders", "entry", id, "locale", cat.Locale(), "error", err)

			return fail("translation for "+cat.Locale(), err)
		}
	}

	if want := len(PlaceholderIndices(text)); want != len(args) {
		return fail(fmt.Sprintf("want %d argument(s), got %d", want, len(args)), ErrArgumentCount)
	}

	out, err := substitute(used, args)
	if err != nil {
		return fail("substitution", err)
	}

	return out, nil
}
