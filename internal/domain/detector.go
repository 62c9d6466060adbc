package domain

import (
	"sort"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// LookaheadHorizon is the number of tokens after a call's opening
// parenthesis searched for the text literal.
const LookaheadHorizon = 20

// SentinelText marks internal self-referential calls. Call sites whose text
// equals it never become entries.
const SentinelText = "@@glotscan:self@@"

// DefaultFunctions are the translation function names recognized per
// language when the configuration names none.
var DefaultFunctions = map[m.Language][]string{
	m.LanguagePHP:        {"t", "__", "_e", "_x", "translate"},
	m.LanguageJavaScript: {"t", "__", "i18n"},
	m.LanguagePython:     {"_", "gettext", "t"},
	m.LanguageGo:         {"T", "Tr", "Translate"},
	m.LanguageLua:        {"T", "L", "_"},
}

// An identifier right after one of these names a declaration, not a call.
var declarationKeywords = map[string]bool{
	"function": true,
	"def":      true,
	"func":     true,
	"fn":       true,
	"local":    true,
}

// Unresolved call reasons.
const (
	ReasonNoLiteral    = "no literal argument"
	ReasonNestedCall   = "argument is a nested translation call"
	ReasonHorizon      = "no literal within lookahead horizon"
	ReasonUnterminated = "call is not closed"
)

// DetectInput is one tokenized file handed to the detector.
type DetectInput struct {
	File     m.Path
	Language m.Language
	// Concat is the language's string concatenation operator.
	Concat string
	Tokens   []m.Token
}

// Detector finds translation function calls in a token sequence.
type Detector interface {
	Detect(in DetectInput) m.Extraction
	Functions(lang m.Language) []string
}

type detector struct {
	functions map[m.Language]map[string]bool
}

// NewDetector creates a Detector. Languages missing from functions use
// DefaultFunctions.
func NewDetector(functions map[m.Language][]string) Detector {
	d := &detector{functions: make(map[m.Language]map[string]bool)}

	for lang, names := range DefaultFunctions {
		if override, ok := functions[lang]; ok && len(override) > 0 {
			names = override
		}

		d.functions[lang] = toSet(names)
	}

	for lang, names := range functions {
		if _, ok := d.functions[lang]; !ok && len(names) > 0 {
			d.functions[lang] = toSet(names)
		}
	}

	return d
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}

	return set
}

func (d *detector) Functions(lang m.Language) []string {
	names := make([]string, 0, len(d.functions[lang]))
	for name := range d.functions[lang] {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Detect scans every token, so calls nested in another call's arguments
// are found on their own regardless of how the outer call resolves.
func (d *detector) Detect(in DetectInput) m.Extraction {
	names := d.functions[in.Language]
	w := window{tokens: in.Tokens, names: names, concat: in.Concat}

	var out m.Extraction

	for i, tok := range in.Tokens {
		if !w.isCall(i) {
			continue
		}

		if w.isDeclaration(i) {
			continue
		}

		text, context, reason := w.resolve(i + 2)
		if reason == ReasonNoLiteral && w.hasBody(i+1) {
			continue
		}

		if reason != "" {
			out.Unresolved = append(out.Unresolved, m.UnresolvedCall{
				Function: tok.Raw,
				File:     in.File,
				Line:     tok.Line,
				Reason:   reason,
			})

			continue
		}

		if text == SentinelText {
			continue
		}

		out.CallSites = append(out.CallSites, m.CallSite{
			Function: tok.Raw,
			Text:     text,
			Context:  context,
			File:     in.File,
			Line:     tok.Line,
		})
	}

	return out
}

// window is a read-only view over a token sequence.
type window struct {
	tokens []m.Token
	names  map[string]bool
	concat string
}

// isCall reports whether tokens[i] is a recognized name followed by "(".
func (w window) isCall(i int) bool {
	if i+1 >= len(w.tokens) {
		return false
	}

	tok := w.tokens[i]

	return tok.Kind == m.TokenIdentifier && w.names[tok.Raw] && w.tokens[i+1].Is(m.TokenOperator, "(")
}

// isDeclaration reports whether the name at i is being declared: it follows
// a declaration keyword or a method receiver such as "func (r R)".
func (w window) isDeclaration(i int) bool {
	if i == 0 {
		return false
	}

	prev := w.tokens[i-1]
	if prev.Kind == m.TokenIdentifier && declarationKeywords[prev.Raw] {
		return true
	}

	if !prev.Is(m.TokenOperator, ")") {
		return false
	}

	open := w.matching(i-1, -1)

	return open > 0 && w.tokens[open-1].Kind == m.TokenIdentifier && w.tokens[open-1].Raw == "func"
}

// hasBody reports whether the parenthesis at open is closed and directly
// followed by a block, as in a class method "t(text) {".
func (w window) hasBody(open int) bool {
	closing := w.matching(open, 1)

	return closing >= 0 && closing+1 < len(w.tokens) && w.tokens[closing+1].Is(m.TokenOperator, "{")
}

// matching returns the index of the parenthesis balancing the one at i,
// walking in direction dir, or -1.
func (w window) matching(i, dir int) int {
	depth := 0

	for j := i; j >= 0 && j < len(w.tokens); j += dir {
		switch {
		case w.tokens[j].Is(m.TokenOperator, "("):
			depth += dir
		case w.tokens[j].Is(m.TokenOperator, ")"):
			depth -= dir
		}

		if depth == 0 {
			return j
		}
	}

	return -1
}

// resolve searches at most LookaheadHorizon tokens from start for the text
// literal. A non-empty reason means the call could not be resolved.
func (w window) resolve(start int) (text, context, reason string) {
	end := min(start+LookaheadHorizon, len(w.tokens))
	depth := 0

	for j := start; j < end; j++ {
		tok := w.tokens[j]

		switch {
		case tok.Kind == m.TokenString:
			merged, next := w.merge(j)

			if next+1 < len(w.tokens) && w.tokens[next].Is(m.TokenOperator, ",") &&
				w.tokens[next+1].Kind == m.TokenString {
				context, _ = w.merge(next + 1)
			}

			return merged, context, ""

		case w.isCall(j):
			return "", "", ReasonNestedCall

		case tok.Kind == m.TokenOperator:
			switch tok.Raw {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth == 0 {
					return "", "", ReasonNoLiteral
				}

				depth--
			}
		}
	}

	if end == len(w.tokens) && end-start < LookaheadHorizon {
		return "", "", ReasonUnterminated
	}

	return "", "", ReasonHorizon
}

// merge joins the literal at i with the literals that follow it through the
// concatenation operator or direct adjacency. It returns the merged text
// and the index of the first token after it.
func (w window) merge(i int) (string, int) {
	text := w.tokens[i].Value
	j := i + 1

	for j < len(w.tokens) {
		switch {
		case w.tokens[j].Kind == m.TokenString:
			text += w.tokens[j].Value
			j++
		case w.tokens[j].Is(m.TokenOperator, w.concat) && j+1 < len(w.tokens) &&
			w.tokens[j+1].Kind == m.TokenString:
			text += w.tokens[j+1].Value
			j += 2
		default:
			return text, j
		}
	}

	return text, j
}
