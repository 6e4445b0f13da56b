package template

import (
	"strings"

	"github.com/xelA/tagify/value"
)

const setOpen = "{% set "

// bindVariables processes "{% set NAME = VALUE %}" directives in source
// order: VALUE is placeholder-resolved eagerly at bind time, stored into
// the context under NAME (last write wins), and the directive text is
// removed from the output. Unresolved placeholders inside VALUE pass
// through literally rather than failing.
func (e *Engine) bindVariables(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	i := 0
	for {
		j := strings.Index(src[i:], setOpen)
		if j < 0 {
			b.WriteString(src[i:])
			return b.String()
		}
		j += i
		b.WriteString(src[i:j])

		name, val, end, ok := scanSet(src, j)
		if !ok {
			b.WriteString(setOpen)
			i = j + len(setOpen)
			continue
		}

		e.context[name] = value.String(e.resolvePlaceholders(val))
		i = end
	}
}

// scanSet parses a set directive starting at src[start]. NAME is
// letters/digits/underscore; VALUE runs to the nearest " %}" and may not
// span lines.
func scanSet(src string, start int) (name, val string, end int, ok bool) {
	i := start + len(setOpen)

	nameStart := i
	for i < len(src) && isNameChar(src[i]) {
		i++
	}
	if i == nameStart {
		return "", "", 0, false
	}
	name = src[nameStart:i]

	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	if i >= len(src) || src[i] != '=' {
		return "", "", 0, false
	}
	i++

	rest := src[i:]
	closeIdx := strings.Index(rest, tagClose)
	if closeIdx < 0 || strings.IndexByte(rest[:closeIdx], '\n') >= 0 {
		return "", "", 0, false
	}

	val = strings.TrimSpace(rest[:closeIdx])
	return name, val, i + closeIdx + len(tagClose), true
}

// isNameChar reports whether c may appear in a binding name.
func isNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
