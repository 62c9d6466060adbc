package tokenizers

import (
	"strings"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

var phpOperators = newOperatorSet(
	"<=>", "**=", "...", "<<=", ">>=", "===", "!==", "??=", "?->",
	"->", "=>", "::", "++", "--", "==", "!=", "<>", "<=", ">=", "&&", "||", "??",
	".=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**", "#[",
)

var (
	phpDoubleQuoted = escapeRules{
		simple: map[byte]string{
			'n': "\n", 't': "\t", 'r': "\r", 'v': "\v", 'f': "\f",
			'e': "\x1b", '\\': "\\", '$': "$", '"': "\"",
		},
		octal:       true,
		hexMin:      1,
		hexMax:      2,
		braced:      true,
		keepUnknown: true,
	}
	phpSingleQuoted = escapeRules{
		simple:      map[byte]string{'\\': "\\", '\'': "'"},
		keepUnknown: true,
	}
)

// PHPTokenizer lexes PHP including inline markup around the code blocks.
type PHPTokenizer struct{}

// NewPHPTokenizer returns the PHP tokenizer.
func NewPHPTokenizer() *PHPTokenizer {
	return &PHPTokenizer{}
}

func (t *PHPTokenizer) Language() m.Language   { return m.LanguagePHP }
func (t *PHPTokenizer) Extensions() []string   { return []string{".inc", ".php", ".phtml"} }
func (t *PHPTokenizer) ConcatOperator() string { return "." }

// Tokenize implements Tokenizer.
func (t *PHPTokenizer) Tokenize(src []byte) ([]m.Token, error) {
	c := newCursor(src)
	inCode := false

	for !c.eof() {
		if !inCode {
			lexPHPInline(c)

			inCode = true

			continue
		}

		ch := c.peek(0)

		switch {
		case isSpace(ch):
			c.advance(1)

		case c.hasPrefix("?>"):
			start, line := c.pos, c.line
			c.advance(2)
			c.emit(m.TokenOperator, start, line, "")

			inCode = false

		case c.hasPrefix("#["):
			c.lexOperator(phpOperators)

		case ch == '#' || c.hasPrefix("//"):
			skipPHPLineComment(c)

		case c.hasPrefix("/*"):
			line := c.line
			if !c.skipPast("*/") {
				return nil, &SyntaxError{Line: line, Msg: "unterminated comment"}
			}

		case ch == '$' && isIdentStart(c.peek(1)):
			start, line := c.pos, c.line
			c.pos++

			for !c.eof() && isIdentPart(c.peek(0)) {
				c.pos++
			}

			c.emit(m.TokenOther, start, line, "")

		case isIdentStart(ch):
			c.lexWord(m.TokenIdentifier, isIdentPart)

		case isDigit(ch):
			c.lexNumber()

		case ch == '\'':
			start, line := c.pos, c.line

			body, ok := c.lexQuoted('\'', false, false)
			if !ok {
				return nil, &SyntaxError{Line: line, Msg: "unterminated string literal"}
			}

			c.emit(m.TokenString, start, line, unescape(body, phpSingleQuoted))

		case ch == '"':
			start, line := c.pos, c.line

			body, ok := c.lexQuoted('"', false, false)
			if !ok {
				return nil, &SyntaxError{Line: line, Msg: "unterminated string literal"}
			}

			if phpInterpolates(body) {
				c.emit(m.TokenOther, start, line, "")
			} else {
				c.emit(m.TokenString, start, line, unescape(body, phpDoubleQuoted))
			}

		case ch == '`':
			start, line := c.pos, c.line
			if _, ok := c.lexQuoted('`', false, false); !ok {
				return nil, &SyntaxError{Line: line, Msg: "unterminated shell literal"}
			}

			c.emit(m.TokenOther, start, line, "")

		case c.hasPrefix("<<<"):
			if err := lexPHPHeredoc(c); err != nil {
				return nil, err
			}

		default:
			c.lexOperator(phpOperators)
		}
	}

	return c.tokens, nil
}

// lexPHPInline consumes markup up to and including the next open tag.
func lexPHPInline(c *cursor) {
	start, line := c.pos, c.line

	idx := strings.Index(c.rest(), "<?")
	if idx < 0 {
		c.advance(len(c.rest()))
		c.emit(m.TokenOther, start, line, "")

		return
	}

	if idx > 0 {
		c.advance(idx)
		c.emit(m.TokenOther, start, line, "")
	}

	start, line = c.pos, c.line

	switch {
	case len(c.rest()) >= 5 && strings.EqualFold(c.rest()[2:5], "php"):
		c.advance(5)
	case c.hasPrefix("<?="):
		c.advance(3)
	default:
		c.advance(2)
	}

	c.emit(m.TokenOther, start, line, "")
}

// skipPHPLineComment stops before a newline or a closing tag.
func skipPHPLineComment(c *cursor) {
	for !c.eof() && c.peek(0) != '\n' && !c.hasPrefix("?>") {
		c.pos++
	}
}

// phpInterpolates reports whether a double-quoted body embeds variables.
func phpInterpolates(body string) bool {
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '$':
			if i+1 < len(body) && (isIdentStart(body[i+1]) || body[i+1] == '{') {
				return true
			}
		case '{':
			if i+1 < len(body) && body[i+1] == '$' {
				return true
			}
		}
	}

	return false
}

// lexPHPHeredoc consumes a heredoc or nowdoc. The closing marker may be
// indented, in which case that indentation is stripped from every line.
func lexPHPHeredoc(c *cursor) error {
	start, line := c.pos, c.line
	header := c.rest()

	i := 3
	for i < len(header) && (header[i] == ' ' || header[i] == '\t') {
		i++
	}

	quote := byte(0)
	if i < len(header) && (header[i] == '\'' || header[i] == '"') {
		quote = header[i]
		i++
	}

	idStart := i
	for i < len(header) && isIdentPart(header[i]) {
		i++
	}

	marker := header[idStart:i]
	if marker == "" {
		// Not a heredoc; treat as shift-left followed by less-than.
		c.lexOperator(phpOperators)
		return nil
	}

	if quote != 0 {
		if i >= len(header) || header[i] != quote {
			return &SyntaxError{Line: line, Msg: "malformed heredoc label"}
		}

		i++
	}

	nl := strings.IndexByte(header[i:], '\n')
	if nl < 0 {
		return &SyntaxError{Line: line, Msg: "unterminated heredoc"}
	}

	bodyStart := i + nl + 1
	lines := []string{}
	pos := bodyStart

	for {
		if pos > len(header) {
			return &SyntaxError{Line: line, Msg: "unterminated heredoc"}
		}

		end := strings.IndexByte(header[pos:], '\n')

		var text string
		if end < 0 {
			text = header[pos:]
		} else {
			text = header[pos : pos+end]
		}

		trimmed := strings.TrimLeft(text, " \t")
		if strings.HasPrefix(trimmed, marker) &&
			(len(trimmed) == len(marker) || !isIdentPart(trimmed[len(marker)])) {
			indent := text[:len(text)-len(trimmed)]
			c.advance(pos + len(indent) + len(marker))

			body := make([]string, len(lines))
			for k, l := range lines {
				body[k] = strings.TrimPrefix(l, indent)
			}

			joined := strings.Join(body, "\n")

			switch {
			case quote == '\'':
				c.emit(m.TokenString, start, line, joined)
			case phpInterpolates(joined):
				c.emit(m.TokenOther, start, line, "")
			default:
				c.emit(m.TokenString, start, line, unescape(joined, phpDoubleQuoted))
			}

			return nil
		}

		if end < 0 {
			return &SyntaxError{Line: line, Msg: "unterminated heredoc"}
		}

		lines = append(lines, strings.TrimSuffix(text, "\r"))
		pos += end + 1
	}
}
