package value

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

// The closed set of value shapes.
const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindMapping
	KindCallable
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindMapping:
		return "mapping"
	case KindCallable:
		return "callable"
	default:
		return "unknown"
	}
}

// Callable is a host-supplied function invoked with positional arguments.
// Callables execute synchronously with full host privilege; the engine
// contains their faults to the placeholder that invoked them.
type Callable func(args []Value) (Value, error)

// Value is the tagged union flowing through the engine. The zero Value is
// the empty string.
type Value struct {
	kind    Kind
	str     string
	integer int64
	real    float64
	boolean bool
	mapping Mapping
	fn      Callable
}

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int constructs an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, integer: i} }

// Float constructs a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, real: f} }

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Map constructs a mapping Value.
func Map(m Mapping) Value { return Value{kind: KindMapping, mapping: m} }

// Func constructs a callable Value.
func Func(fn Callable) Value { return Value{kind: KindCallable, fn: fn} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Truthy reports the boolean interpretation used by condition evaluation.
// Only the empty string and boolean false are falsy; everything else,
// including zero and empty mappings, is truthy. The engine treats failed
// resolution as falsy at its own layer.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindBool:
		return v.boolean
	default:
		return true
	}
}

// String renders the value as substitution text. Mappings render with
// sorted keys so output is deterministic.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindMapping:
		return v.mapping.String()
	case KindCallable:
		return "<callable>"
	default:
		return ""
	}
}

// Mapping returns the underlying mapping, if the value holds one.
func (v Value) Mapping() (Mapping, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.mapping, true
}

// Call invokes the underlying callable. It reports ErrNotCallable if the
// value is not a callable.
func (v Value) Call(args []Value) (Value, error) {
	if v.kind != KindCallable || v.fn == nil {
		return Value{}, ErrNotCallable
	}
	return v.fn(args)
}

// String renders a mapping as "{k: v, ...}" with sorted keys.
func (m Mapping) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(m[k].String())
	}
	b.WriteByte('}')
	return b.String()
}
