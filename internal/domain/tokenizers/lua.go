package tokenizers

import (
	"strings"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

var luaOperators = newOperatorSet("...", "..", "==", "~=", "<=", ">=", "//", "::", "<<", ">>")

var luaEscapes = escapeRules{
	simple: map[byte]string{
		'n': "\n", 't': "\t", 'r': "\r", 'v': "\v", 'f': "\f", 'b': "\b", 'a': "\a",
		'\\': "\\", '\'': "'", '"': "\"", '\n': "\n",
	},
	decimal:   true,
	hexMin:    2,
	hexMax:    2,
	braced:    true,
	skipSpace: true,
}

// LuaTokenizer lexes Lua source.
type LuaTokenizer struct{}

// NewLuaTokenizer returns the Lua tokenizer.
func NewLuaTokenizer() *LuaTokenizer {
	return &LuaTokenizer{}
}

func (t *LuaTokenizer) Language() m.Language   { return m.LanguageLua }
func (t *LuaTokenizer) Extensions() []string   { return []string{".lua"} }
func (t *LuaTokenizer) ConcatOperator() string { return ".." }

// Tokenize implements Tokenizer.
func (t *LuaTokenizer) Tokenize(src []byte) ([]m.Token, error) {
	c := newCursor(src)

	if c.hasPrefix("#") {
		c.skipLine()
	}

	for !c.eof() {
		ch := c.peek(0)

		switch {
		case isSpace(ch):
			c.advance(1)

		case c.hasPrefix("--"):
			line := c.line
			c.advance(2)

			if level, ok := luaLongBracket(c.rest()); ok {
				if _, ok := lexLuaLong(c, level); !ok {
					return nil, &SyntaxError{Line: line, Msg: "unterminated long comment"}
				}

				continue
			}

			c.skipLine()

		case ch == '[':
			level, ok := luaLongBracket(c.rest())
			if !ok {
				c.lexOperator(luaOperators)
				continue
			}

			start, line := c.pos, c.line

			body, ok := lexLuaLong(c, level)
			if !ok {
				return nil, &SyntaxError{Line: line, Msg: "unterminated long string"}
			}

			c.emit(m.TokenString, start, line, body)

		case ch == '\'' || ch == '"':
			start, line := c.pos, c.line

			body, ok := c.lexQuoted(ch, true, true)
			if !ok {
				return nil, &SyntaxError{Line: line, Msg: "unterminated string literal"}
			}

			c.emit(m.TokenString, start, line, unescape(body, luaEscapes))

		case isIdentStart(ch):
			c.lexWord(m.TokenIdentifier, isIdentPart)

		case isDigit(ch) || (ch == '.' && isDigit(c.peek(1))):
			c.lexNumber()

		default:
			c.lexOperator(luaOperators)
		}
	}

	return c.tokens, nil
}

// luaLongBracket reports the level of a long bracket opener [==[ at the
// start of s.
func luaLongBracket(s string) (int, bool) {
	if !strings.HasPrefix(s, "[") {
		return 0, false
	}

	level := 1
	for level < len(s) && s[level] == '=' {
		level++
	}

	if level >= len(s) || s[level] != '[' {
		return 0, false
	}

	return level - 1, true
}

// lexLuaLong consumes a long bracket of the given level and returns its
// body. A newline directly after the opener is dropped.
func lexLuaLong(c *cursor, level int) (string, bool) {
	eq := strings.Repeat("=", level)
	c.advance(level + 2)

	if c.hasPrefix("\r\n") {
		c.advance(2)
	} else if c.hasPrefix("\n") {
		c.advance(1)
	}

	closer := "]" + eq + "]"

	idx := strings.Index(c.rest(), closer)
	if idx < 0 {
		return "", false
	}

	body := c.rest()[:idx]
	c.advance(idx + len(closer))

	return body, true
}
