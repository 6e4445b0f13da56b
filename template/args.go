package template

import (
	"strconv"
	"strings"

	"github.com/xelA/tagify/value"
)

// splitArgs splits an argument list on top-level commas. A comma inside a
// matched '...' or "..." span is not a separator; quote state is tracked
// character by character and the quotes stay in the token for later
// stripping.
func splitArgs(expr string) []string {
	var parts []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for _, ch := range expr {
		switch {
		case !inQuote && (ch == '"' || ch == '\''):
			inQuote = true
			quoteChar = ch
			current.WriteRune(ch)
		case inQuote && ch == quoteChar:
			inQuote = false
			current.WriteRune(ch)
		case !inQuote && ch == ',':
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}

	return parts
}

// parseArgs resolves each argument token, in order: an exact top-level
// context key substitutes the stringified context value, a full integer
// literal becomes a number, matching quotes are stripped, and anything
// else passes as raw text.
func (e *Engine) parseArgs(expr string) []value.Value {
	parts := splitArgs(expr)
	args := make([]value.Value, 0, len(parts))

	for _, part := range parts {
		if v, ok := e.context[part]; ok {
			args = append(args, value.String(v.String()))
		} else if n, err := strconv.ParseInt(part, 10, 64); err == nil {
			args = append(args, value.Int(n))
		} else if lit, ok := unquote(part); ok {
			args = append(args, value.String(lit))
		} else {
			args = append(args, value.String(part))
		}
	}
	return args
}

// unquote strips matching single or double quotes bounding s.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q == '\'' || q == '"') && s[len(s)-1] == q {
		return s[1 : len(s)-1], true
	}
	return "", false
}
