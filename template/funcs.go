package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xelA/tagify/value"
)

// Builtins returns ready-made host callables that a caller may merge into
// a context:
//
//	upper(s), lower(s), trim(s)  - string case and whitespace helpers
//	truncate(s, maxLen)          - cut to max length with ellipsis
//	replace(s, old, new)         - replace all occurrences
//	default(val, fallback)       - fallback when val is empty
//
// Each callable validates its arity and reports an error on misuse, which
// the engine renders as an inline error marker.
func Builtins() value.Mapping {
	return value.Mapping{
		"upper":    value.Func(stringFunc("upper", strings.ToUpper)),
		"lower":    value.Func(stringFunc("lower", strings.ToLower)),
		"trim":     value.Func(stringFunc("trim", strings.TrimSpace)),
		"truncate": value.Func(truncateFunc),
		"replace":  value.Func(replaceFunc),
		"default":  value.Func(defaultFunc),
	}
}

// stringFunc adapts a single-argument string transform to a callable.
func stringFunc(name string, fn func(string) string) value.Callable {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		return value.String(fn(args[0].String())), nil
	}
}

// truncateFunc cuts a string to a maximum length. Strings longer than the
// limit are cut and "..." appended; limits of 3 or less cut without an
// ellipsis.
func truncateFunc(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, fmt.Errorf("truncate expects 2 arguments, got %d", len(args))
	}
	maxLen, err := strconv.Atoi(args[1].String())
	if err != nil || maxLen < 0 {
		return value.Value{}, fmt.Errorf("truncate: invalid length %q", args[1].String())
	}

	s := args[0].String()
	if len(s) <= maxLen {
		return value.String(s), nil
	}
	if maxLen <= 3 {
		return value.String(s[:maxLen]), nil
	}
	return value.String(s[:maxLen-3] + "..."), nil
}

func replaceFunc(args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return value.Value{}, fmt.Errorf("replace expects 3 arguments, got %d", len(args))
	}
	return value.String(strings.ReplaceAll(args[0].String(), args[1].String(), args[2].String())), nil
}

// defaultFunc returns the fallback when the first argument stringifies to
// the empty string.
func defaultFunc(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, fmt.Errorf("default expects 2 arguments, got %d", len(args))
	}
	if args[0].String() == "" {
		return args[1], nil
	}
	return args[0], nil
}
