package tokenizers

import (
	m "glotscan.dev/pkg/glotscan/internal/model"
)

var jsOperators = newOperatorSet(
	">>>=", "...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
)

var jsEscapes = escapeRules{
	simple:   withEscapes("ntrvfb0\\'\"`"),
	hexMin:   2,
	hexMax:   2,
	braced:   true,
	u4:       true,
	lineJoin: true,
}

// Keywords after which a slash starts a regular expression.
var jsRegexKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "of": true, "new": true, "delete": true, "void": true,
	"throw": true, "instanceof": true, "yield": true, "await": true,
}

// JavaScriptTokenizer lexes JavaScript and TypeScript, JSX included.
type JavaScriptTokenizer struct{}

// NewJavaScriptTokenizer returns the JavaScript tokenizer.
func NewJavaScriptTokenizer() *JavaScriptTokenizer {
	return &JavaScriptTokenizer{}
}

func (t *JavaScriptTokenizer) Language() m.Language { return m.LanguageJavaScript }
func (t *JavaScriptTokenizer) Extensions() []string {
	return []string{".cjs", ".js", ".jsx", ".mjs", ".ts", ".tsx"}
}
func (t *JavaScriptTokenizer) ConcatOperator() string { return "+" }

// Tokenize implements Tokenizer.
func (t *JavaScriptTokenizer) Tokenize(src []byte) ([]m.Token, error) {
	c := newCursor(src)

	if c.hasPrefix("#!") {
		c.skipLine()
	}

	for !c.eof() {
		ch := c.peek(0)

		switch {
		case isSpace(ch):
			c.advance(1)

		case c.hasPrefix("//"):
			c.skipLine()

		case c.hasPrefix("/*"):
			line := c.line
			if !c.skipPast("*/") {
				return nil, &SyntaxError{Line: line, Msg: "unterminated comment"}
			}

		case ch == '/' && jsRegexAllowed(c):
			if !lexJSRegex(c) {
				c.lexOperator(jsOperators)
			}

		case isIdentStart(ch) || ch == '$':
			c.lexWord(m.TokenIdentifier, func(b byte) bool { return isIdentPart(b) || b == '$' })

		case isDigit(ch) || (ch == '.' && isDigit(c.peek(1))):
			c.lexNumber()

		case ch == '\'' || ch == '"':
			start, line := c.pos, c.line

			body, ok := c.lexQuoted(ch, true, false)
			if !ok {
				// A stray quote, typically an apostrophe in JSX text.
				c.advance(1)
				c.emit(m.TokenOther, start, line, "")

				continue
			}

			c.emit(m.TokenString, start, line, unescape(body, jsEscapes))

		case ch == '`':
			if err := lexJSTemplate(c); err != nil {
				return nil, err
			}

		default:
			c.lexOperator(jsOperators)
		}
	}

	return c.tokens, nil
}

func jsRegexAllowed(c *cursor) bool {
	prev, ok := c.last()
	if !ok {
		return true
	}

	switch prev.Kind {
	case m.TokenOperator:
		return prev.Raw != ")" && prev.Raw != "]" && prev.Raw != "}"
	case m.TokenIdentifier:
		return jsRegexKeywords[prev.Raw]
	default:
		return false
	}
}

// lexJSRegex consumes a regular expression literal and its flags. It
// reports false, consuming nothing, if the literal ends at a newline.
func lexJSRegex(c *cursor) bool {
	start, line := c.pos, c.line
	inClass := false

	for i := c.pos + 1; i < len(c.src); i++ {
		switch c.src[i] {
		case '\\':
			i++
		case '\n':
			return false
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if inClass {
				continue
			}

			i++
			for i < len(c.src) && isIdentPart(c.src[i]) {
				i++
			}

			c.advance(i - c.pos)
			c.emit(m.TokenOther, start, line, "")

			return true
		}
	}

	return false
}

// lexJSTemplate consumes a template literal. Only templates without
// substitutions are string literals.
func lexJSTemplate(c *cursor) error {
	start, line := c.pos, c.line
	substituted := false

	i := c.pos + 1
	for i < len(c.src) {
		switch {
		case c.src[i] == '\\':
			i += 2
		case c.src[i] == '`':
			body := c.src[c.pos+1 : i]
			c.advance(i + 1 - c.pos)

			if substituted {
				c.emit(m.TokenOther, start, line, "")
			} else {
				c.emit(m.TokenString, start, line, unescape(body, jsEscapes))
			}

			return nil
		case c.src[i] == '$' && i+1 < len(c.src) && c.src[i+1] == '{':
			substituted = true

			end := skipJSSubstitution(c.src, i+2)
			if end < 0 {
				return &SyntaxError{Line: line, Msg: "unterminated template substitution"}
			}

			i = end
		default:
			i++
		}
	}

	return &SyntaxError{Line: line, Msg: "unterminated template literal"}
}

// skipJSSubstitution returns the offset just past the brace closing a
// ${...} that opened before i, or -1.
func skipJSSubstitution(src string, i int) int {
	depth := 1

	for i < len(src) {
		switch ch := src[i]; ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		case '\'', '"', '`':
			i++
			for i < len(src) && src[i] != ch {
				if src[i] == '\\' {
					i++
				}

				i++
			}
		}

		i++
	}

	return -1
}
