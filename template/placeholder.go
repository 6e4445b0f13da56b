package template

import (
	"fmt"
	"strings"

	"github.com/xelA/tagify/value"
)

// token is one placeholder span: "{ path }" or "{path(args)}".
type token struct {
	raw     string // original source text, braces included
	path    string
	args    string // raw argument substring, parentheses stripped
	hasArgs bool
}

// resolvePlaceholders rewrites every placeholder token in src, left to
// right in a single pass. Substituted text is never re-scanned. Text that
// does not form a valid token is copied through unchanged.
func (e *Engine) resolvePlaceholders(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	i := 0
	for i < len(src) {
		if src[i] != '{' {
			b.WriteByte(src[i])
			i++
			continue
		}
		tok, next, ok := scanToken(src, i)
		if !ok {
			b.WriteByte(src[i])
			i++
			continue
		}
		b.WriteString(e.substitute(tok))
		i = next
	}
	return b.String()
}

// scanToken parses a placeholder starting at src[start], which must be '{'.
// Grammar: "{" ws* PATH ( "(" ARGS ")" )? ws* "}". The argument span runs
// to the nearest ')' regardless of nesting, matching the historical
// shortest-match behavior.
func scanToken(src string, start int) (token, int, bool) {
	i := skipSpace(src, start+1)

	pathStart := i
	for i < len(src) && isPathChar(src[i]) {
		i++
	}
	if i == pathStart {
		return token{}, 0, false
	}
	tok := token{path: src[pathStart:i]}

	if i < len(src) && src[i] == '(' {
		end := strings.IndexByte(src[i+1:], ')')
		if end < 0 {
			return token{}, 0, false
		}
		tok.args = src[i+1 : i+1+end]
		tok.hasArgs = true
		i += end + 2
	}

	i = skipSpace(src, i)
	if i >= len(src) || src[i] != '}' {
		return token{}, 0, false
	}
	i++

	tok.raw = src[start:i]
	return tok, i, true
}

// substitute resolves one token to its replacement text. Unresolvable
// paths, mappings, and bare callables pass through as the original source
// text; a mapping is never a valid final render value and a callable is
// never auto-invoked without an argument list.
func (e *Engine) substitute(tok token) string {
	v, ok := e.context.Resolve(tok.path)
	if !ok {
		return tok.raw
	}

	switch v.Kind() {
	case value.KindMapping:
		return tok.raw
	case value.KindCallable:
		if !tok.hasArgs {
			return tok.raw
		}
		return e.invoke(tok.path, v, tok.args)
	default:
		return v.String()
	}
}

// invoke calls a context callable. The raw argument substring gets one
// extra placeholder-resolution pass before splitting, so nested
// placeholders inside arguments are substituted first. A returned error
// or a panic is contained here and rendered inline.
func (e *Engine) invoke(path string, fn value.Value, rawArgs string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = faultMarker(path, fmt.Sprintf("%v", r))
		}
	}()

	args := e.parseArgs(e.resolvePlaceholders(rawArgs))
	result, err := fn.Call(args)
	if err != nil {
		return faultMarker(path, err.Error())
	}
	return result.String()
}

func faultMarker(path, message string) string {
	return fmt.Sprintf("[ ERROR:%s: %s ]", path, message)
}

// isPathChar reports whether c may appear in a dotted path.
func isPathChar(c byte) bool {
	return c == '.' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func skipSpace(src string, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r') {
		i++
	}
	return i
}
