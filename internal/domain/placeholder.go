package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// placeholderPattern matches printf-style markers with an optional 1-based
// position, e.g. %s, %1$s, %03d, %2$05.2f and the %% escape. The space flag
// is not accepted so prose such as "100% sure" stays plain text.
var placeholderPattern = regexp.MustCompile(`%(?:([1-9][0-9]*)\$)?([-+0#]*)([0-9]+)?(?:\.([0-9]+))?([bcdeEfFgGosuxX%])`)

type placeholder struct {
	start, end int
	// index is 1-based; 0 for the %% escape.
	index     int
	flags     string
	width     string
	precision string
	verb      byte
}

func (p placeholder) literal() bool {
	return p.verb == '%'
}

// parsePlaceholders returns every marker in text in order. Markers without
// a position take the next sequential index.
func parsePlaceholders(text string) []placeholder {
	matches := placeholderPattern.FindAllStringSubmatchIndex(text, -1)
	out := make([]placeholder, 0, len(matches))
	next := 1

	for _, mt := range matches {
		p := placeholder{start: mt[0], end: mt[1], verb: text[mt[10]]}

		if p.verb == '%' {
			if mt[1]-mt[0] != 2 {
				continue
			}

			out = append(out, p)

			continue
		}

		if mt[2] >= 0 {
			p.index, _ = strconv.Atoi(text[mt[2]:mt[3]])
		} else {
			p.index = next
			next++
		}

		p.flags = text[mt[4]:mt[5]]
		if mt[6] >= 0 {
			p.width = text[mt[6]:mt[7]]
		}

		if mt[8] >= 0 {
			p.precision = text[mt[8]:mt[9]]
		}

		out = append(out, p)
	}

	return out
}

// PlaceholderIndices returns the distinct placeholder positions of text in
// ascending order.
func PlaceholderIndices(text string) []int {
	seen := make(map[int]bool)

	var out []int

	for _, p := range parsePlaceholders(text) {
		if p.literal() || seen[p.index] {
			continue
		}

		seen[p.index] = true
		out = append(out, p.index)
	}

	sort.Ints(out)

	return out
}

// ValidatePlaceholders checks that translated only references positions
// that canonical defines. It returns an error wrapping ErrPlaceholderIndex
// listing the offending positions.
func ValidatePlaceholders(canonical, translated string) error {
	defined := make(map[int]bool)
	for _, idx := range PlaceholderIndices(canonical) {
		defined[idx] = true
	}

	var extra []string

	for _, idx := range PlaceholderIndices(translated) {
		if !defined[idx] {
			extra = append(extra, "%"+strconv.Itoa(idx)+"$")
		}
	}

	if len(extra) > 0 {
		return fmt.Errorf("%w: %s", ErrPlaceholderIndex, strings.Join(extra, ", "))
	}

	return nil
}

// substitute replaces every marker of text with the matching argument.
func substitute(text string, args []any) (string, error) {
	placeholders := parsePlaceholders(text)
	if len(placeholders) == 0 {
		return text, nil
	}

	var sb strings.Builder

	last := 0

	for _, p := range placeholders {
		sb.WriteString(text[last:p.start])
		last = p.end

		if p.literal() {
			sb.WriteByte('%')
			continue
		}

		if p.index > len(args) {
			return "", fmt.Errorf("%w: %%%d$ with %d argument(s)", ErrPlaceholderIndex, p.index, len(args))
		}

		sb.WriteString(formatArg(p, args[p.index-1]))
	}

	sb.WriteString(text[last:])

	return sb.String(), nil
}

// formatArg renders arg the way printf renders it for the marker's verb.
func formatArg(p placeholder, arg any) string {
	verb := p.verb

	switch verb {
	case 'u':
		verb = 'd'
	case 'F':
		verb = 'f'
	case 's':
		if _, ok := arg.(string); !ok {
			verb = 'v'
		}
	}

	switch verb {
	case 'd', 'b', 'o', 'x', 'X', 'c':
		arg = asInteger(arg)
	case 'e', 'E', 'f', 'g', 'G':
		arg = asFloat(arg)
	}

	spec := "%" + p.flags + p.width
	if p.precision != "" {
		spec += "." + p.precision
	}

	return fmt.Sprintf(spec+string(verb), arg)
}

func asInteger(arg any) any {
	switch v := arg.(type) {
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}

		return 0
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}

		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int64(f)
		}

		return 0
	default:
		return arg
	}
}

func asFloat(arg any) any {
	switch v := arg.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		return arg
	}
}
