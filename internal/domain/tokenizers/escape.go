package tokenizers

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// escapeRules describes how backslash escapes decode in one string flavour.
type escapeRules struct {
	// simple maps the byte after a backslash to its replacement.
	simple map[byte]string
	// octal accepts one to three octal digits.
	octal bool
	// decimal accepts one to three decimal digits (Lua).
	decimal bool
	// hexMin and hexMax bound the digits after \x. Zero disables \x.
	hexMin, hexMax int
	// braced accepts \u{XXXX}.
	braced bool
	// u4 accepts \uXXXX and u8 accepts \UXXXXXXXX.
	u4, u8 bool
	// skipSpace makes \z swallow following whitespace (Lua).
	skipSpace bool
	// lineJoin removes a backslash-newline pair.
	lineJoin bool
	// keepUnknown keeps the backslash of an unrecognised escape.
	keepUnknown bool
}

var cEscapes = map[byte]string{
	'n':  "\n",
	't':  "\t",
	'r':  "\r",
	'v':  "\v",
	'f':  "\f",
	'b':  "\b",
	'a':  "\a",
	'0':  "\x00",
	'\\': "\\",
	'\'': "'",
	'"':  "\"",
	'`':  "`",
}

// unescape decodes body according to rules. Malformed numeric escapes are
// kept literally rather than failing the whole literal.
func unescape(body string, rules escapeRules) string {
	if !strings.Contains(body, "\\") {
		return body
	}

	var sb strings.Builder

	sb.Grow(len(body))

	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' || i+1 >= len(body) {
			sb.WriteByte(ch)
			continue
		}

		next := body[i+1]

		switch {
		case rules.lineJoin && (next == '\n' || next == '\r'):
			i++
			if next == '\r' && i+1 < len(body) && body[i+1] == '\n' {
				i++
			}

		case rules.skipSpace && next == 'z':
			i++
			for i+1 < len(body) && isSpace(body[i+1]) {
				i++
			}

		case rules.hexMax > 0 && next == 'x':
			n := countDigits(body[i+2:], isHexDigit, rules.hexMax)
			if n < rules.hexMin || n == 0 {
				writeUnknown(&sb, next, rules)
				i++

				continue
			}

			v, _ := strconv.ParseUint(body[i+2:i+2+n], 16, 8)
			sb.WriteByte(byte(v))

			i += 1 + n

		case rules.braced && next == 'u' && i+2 < len(body) && body[i+2] == '{':
			end := strings.IndexByte(body[i+3:], '}')
			if end <= 0 {
				writeUnknown(&sb, next, rules)
				i++

				continue
			}

			v, err := strconv.ParseUint(body[i+3:i+3+end], 16, 32)
			if err != nil || !utf8.ValidRune(rune(v)) {
				writeUnknown(&sb, next, rules)
				i++

				continue
			}

			sb.WriteRune(rune(v))

			i += 3 + end

		case (rules.u4 && next == 'u') || (rules.u8 && next == 'U'):
			width := 4
			if next == 'U' {
				width = 8
			}

			if countDigits(body[i+2:], isHexDigit, width) != width {
				writeUnknown(&sb, next, rules)
				i++

				continue
			}

			v, _ := strconv.ParseUint(body[i+2:i+2+width], 16, 32)
			sb.WriteRune(rune(v))

			i += 1 + width

		case rules.octal && next >= '0' && next <= '7':
			n := countDigits(body[i+1:], isOctalDigit, 3)
			v, _ := strconv.ParseUint(body[i+1:i+1+n], 8, 16)
			sb.WriteByte(byte(v))

			i += n

		case rules.decimal && isDigit(next):
			n := countDigits(body[i+1:], isDigit, 3)
			v, _ := strconv.Atoi(body[i+1 : i+1+n])
			sb.WriteByte(byte(v))

			i += n

		default:
			if rep, ok := rules.simple[next]; ok {
				sb.WriteString(rep)
			} else {
				writeUnknown(&sb, next, rules)
			}

			i++
		}
	}

	return sb.String()
}

func writeUnknown(sb *strings.Builder, next byte, rules escapeRules) {
	if rules.keepUnknown {
		sb.WriteByte('\\')
	}

	sb.WriteByte(next)
}

func countDigits(s string, accept func(byte) bool, limit int) int {
	n := 0
	for n < len(s) && n < limit && accept(s[n]) {
		n++
	}

	return n
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}

func withEscapes(keys string) map[byte]string {
	out := make(map[byte]string, len(keys))
	for i := 0; i < len(keys); i++ {
		out[keys[i]] = cEscapes[keys[i]]
	}

	return out
}
