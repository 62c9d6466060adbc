package tokenizers

import (
	"strings"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

var pyOperators = newOperatorSet(
	"**=", "//=", ">>=", "<<=", "...", "->", ":=", "**", "//", "==", "!=", "<=", ">=",
	"<<", ">>", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
)

var pyEscapes = escapeRules{
	simple:      withEscapes("ntrvfba\\'\""),
	octal:       true,
	hexMin:      2,
	hexMax:      2,
	u4:          true,
	u8:          true,
	lineJoin:    true,
	keepUnknown: true,
}

// PythonTokenizer lexes Python source.
type PythonTokenizer struct{}

// NewPythonTokenizer returns the Python tokenizer.
func NewPythonTokenizer() *PythonTokenizer {
	return &PythonTokenizer{}
}

func (t *PythonTokenizer) Language() m.Language   { return m.LanguagePython }
func (t *PythonTokenizer) Extensions() []string   { return []string{".py"} }
func (t *PythonTokenizer) ConcatOperator() string { return "+" }

// Tokenize implements Tokenizer.
func (t *PythonTokenizer) Tokenize(src []byte) ([]m.Token, error) {
	c := newCursor(src)

	for !c.eof() {
		ch := c.peek(0)

		switch {
		case isSpace(ch):
			c.advance(1)

		case ch == '#':
			c.skipLine()

		case ch == '\\' && (c.hasPrefix("\\\n") || c.hasPrefix("\\\r\n")):
			// Explicit line join.
			c.skipLine()
			c.advance(1)

		case ch == '\'' || ch == '"':
			if err := lexPyString(c, ""); err != nil {
				return nil, err
			}

		case isIdentStart(ch):
			if prefix, ok := pyStringPrefix(c); ok {
				if err := lexPyString(c, prefix); err != nil {
					return nil, err
				}

				continue
			}

			c.lexWord(m.TokenIdentifier, isIdentPart)

		case isDigit(ch) || (ch == '.' && isDigit(c.peek(1))):
			c.lexNumber()

		default:
			c.lexOperator(pyOperators)
		}
	}

	return c.tokens, nil
}

// pyStringPrefix reports whether the cursor sits on a string prefix such
// as r, b, f, rb or u directly followed by a quote.
func pyStringPrefix(c *cursor) (string, bool) {
	n := 0
	for n < 3 && isAlpha(c.peek(n)) {
		n++
	}

	if n == 0 || n > 2 || (c.peek(n) != '\'' && c.peek(n) != '"') {
		return "", false
	}

	prefix := strings.ToLower(c.rest()[:n])
	switch prefix {
	case "r", "u", "b", "f", "br", "rb", "fr", "rf":
		return prefix, true
	default:
		return "", false
	}
}

// lexPyString consumes a prefixed, possibly triple-quoted string. Bytes and
// formatted strings are not plain text and lex as Other.
func lexPyString(c *cursor, prefix string) error {
	start, line := c.pos, c.line
	c.advance(len(prefix))

	quote := c.peek(0)
	delim := string(quote)

	if c.hasPrefix(strings.Repeat(delim, 3)) {
		delim = strings.Repeat(delim, 3)
	}

	i := c.pos + len(delim)
	bodyStart := i

	for {
		if i >= len(c.src) {
			return &SyntaxError{Line: line, Msg: "unterminated string literal"}
		}

		ch := c.src[i]
		if ch == '\\' {
			i = skipEscape(c.src, i, false)
			continue
		}

		if ch == '\n' && len(delim) == 1 {
			return &SyntaxError{Line: line, Msg: "unterminated string literal"}
		}

		if strings.HasPrefix(c.src[i:], delim) {
			break
		}

		i++
	}

	body := c.src[bodyStart:i]
	c.advance(i + len(delim) - c.pos)

	switch {
	case strings.ContainsAny(prefix, "bf"):
		c.emit(m.TokenOther, start, line, "")
	case strings.Contains(prefix, "r"):
		c.emit(m.TokenString, start, line, body)
	default:
		c.emit(m.TokenString, start, line, unescape(body, pyEscapes))
	}

	return nil
}
