package tokenizers

import (
	"sort"
	"strings"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// cursor walks the source text and collects tokens.
type cursor struct {
	src    string
	pos    int
	line   int
	tokens []m.Token
}

func newCursor(src []byte) *cursor {
	return &cursor{src: string(src), line: 1}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) rest() string {
	return c.src[c.pos:]
}

// peek returns the byte at offset off from the current position, or 0.
func (c *cursor) peek(off int) byte {
	if c.pos+off >= len(c.src) || c.pos+off < 0 {
		return 0
	}

	return c.src[c.pos+off]
}

func (c *cursor) hasPrefix(s string) bool {
	return strings.HasPrefix(c.rest(), s)
}

// advance moves n bytes forward, keeping the line count.
func (c *cursor) advance(n int) {
	end := min(c.pos+n, len(c.src))
	c.line += strings.Count(c.src[c.pos:end], "\n")
	c.pos = end
}

// skipPast advances beyond the next occurrence of term. It reports false
// and stops at the end of input when term does not occur.
func (c *cursor) skipPast(term string) bool {
	idx := strings.Index(c.rest(), term)
	if idx < 0 {
		c.advance(len(c.rest()))
		return false
	}

	c.advance(idx + len(term))

	return true
}

// skipLine advances to the next newline without consuming it.
func (c *cursor) skipLine() {
	idx := strings.IndexByte(c.rest(), '\n')
	if idx < 0 {
		idx = len(c.rest())
	}

	c.advance(idx)
}

func (c *cursor) emit(kind m.TokenKind, start, line int, value string) {
	c.tokens = append(c.tokens, m.Token{
		Kind:  kind,
		Raw:   c.src[start:c.pos],
		Value: value,
		Line:  line,
	})
}

// last returns the most recently emitted token.
func (c *cursor) last() (m.Token, bool) {
	if len(c.tokens) == 0 {
		return m.Token{}, false
	}

	return c.tokens[len(c.tokens)-1], true
}

// lexWord consumes an identifier-like run and emits it as kind.
func (c *cursor) lexWord(kind m.TokenKind, isPart func(byte) bool) {
	start, line := c.pos, c.line
	for !c.eof() && isPart(c.peek(0)) {
		c.pos++
	}

	c.emit(kind, start, line, "")
}

// lexNumber consumes a numeric literal. Exponents and radix prefixes are
// covered by accepting any alphanumeric tail.
func (c *cursor) lexNumber() {
	start, line := c.pos, c.line
	for !c.eof() {
		ch := c.peek(0)
		if isAlnum(ch) || ch == '_' || (ch == '.' && isDigit(c.peek(1))) {
			c.pos++
			continue
		}

		break
	}

	c.emit(m.TokenOther, start, line, "")
}

// lexOperator emits the longest operator from ops at the cursor, or the
// single byte under the cursor.
func (c *cursor) lexOperator(ops operatorSet) {
	start, line := c.pos, c.line
	for _, op := range ops {
		if c.hasPrefix(op) {
			c.advance(len(op))
			c.emit(m.TokenOperator, start, line, "")

			return
		}
	}

	c.advance(1)
	c.emit(m.TokenOperator, start, line, "")
}

// lexQuoted consumes a literal delimited by quote where a backslash escapes
// the following byte. It returns false when the literal is unterminated or,
// if singleLine is set, when a raw newline is reached first. With skipSpace
// a \z escape also consumes the whitespace after it, newlines included. On
// failure the cursor is left untouched.
func (c *cursor) lexQuoted(quote byte, singleLine, skipSpace bool) (body string, ok bool) {
	i := c.pos + 1
	for i < len(c.src) {
		switch ch := c.src[i]; {
		case ch == '\\':
			i = skipEscape(c.src, i, skipSpace)
			continue
		case ch == quote:
			body = c.src[c.pos+1 : i]
			c.advance(i + 1 - c.pos)

			return body, true
		case ch == '\n' && singleLine:
			return "", false
		}

		i++
	}

	return "", false
}

// skipEscape returns the index after the escape sequence starting at the
// backslash src[i]. An escaped CRLF counts as one line break.
func skipEscape(src string, i int, skipSpace bool) int {
	switch {
	case i+2 < len(src) && src[i+1] == '\r' && src[i+2] == '\n':
		return i + 3
	case skipSpace && i+1 < len(src) && src[i+1] == 'z':
		i += 2
		for i < len(src) && isSpace(src[i]) {
			i++
		}

		return i
	default:
		return i + 2
	}
}

// operatorSet lists multi-byte operators, longest first.
type operatorSet []string

func newOperatorSet(ops ...string) operatorSet {
	sorted := append(operatorSet(nil), ops...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	return sorted
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlnum(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

// isIdentStart accepts ASCII letters, underscore and any non-ASCII byte so
// UTF-8 identifiers stay in one token.
func isIdentStart(ch byte) bool {
	return isAlpha(ch) || ch == '_' || ch >= 0x80
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
