// Package tokenizers provides lexical tokenizers for each supported source
// language. Tokenizers are purely lexical: they respect each language's
// comment, string and operator syntax but never parse expressions.
package tokenizers

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// Tokenizer turns the text of one source file into a flat token sequence.
type Tokenizer interface {
	// Language returns the language this tokenizer handles.
	Language() m.Language

	// Extensions lists the lower-case file extensions, with leading dot,
	// mapped to this tokenizer.
	Extensions() []string

	// ConcatOperator is the operator that joins two string literals into one.
	ConcatOperator() string

	// Tokenize produces the tokens of src in source order.
	Tokenize(src []byte) ([]m.Token, error)
}

// SyntaxError reports a lexical error such as an unterminated literal.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Registry maps file extensions to tokenizers.
type Registry struct {
	byExt      map[string]Tokenizer
	byLanguage map[m.Language]Tokenizer
}

// NewRegistry returns a registry with every built-in language.
func NewRegistry() *Registry {
	return newRegistry(
		NewPHPTokenizer(),
		NewJavaScriptTokenizer(),
		NewPythonTokenizer(),
		NewGoTokenizer(),
		NewLuaTokenizer(),
	)
}

func newRegistry(variants ...Tokenizer) *Registry {
	r := &Registry{
		byExt:      make(map[string]Tokenizer),
		byLanguage: make(map[m.Language]Tokenizer),
	}

	for _, t := range variants {
		r.byLanguage[t.Language()] = t
		for _, ext := range t.Extensions() {
			r.byExt[ext] = t
		}
	}

	return r
}

// ForPath returns the tokenizer registered for the extension of path.
func (r *Registry) ForPath(path string) (Tokenizer, bool) {
	t, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return t, ok
}

// ForLanguage returns the tokenizer registered for lang.
func (r *Registry) ForLanguage(lang m.Language) (Tokenizer, bool) {
	t, ok := r.byLanguage[lang]
	return t, ok
}

// Languages returns the registered languages in sorted order.
func (r *Registry) Languages() []m.Language {
	langs := make([]m.Language, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}

	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })

	return langs
}

// Extensions returns every registered extension in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}
