package value

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotCallable is returned by Value.Call on a non-callable value.
var ErrNotCallable = errors.New("value is not callable")

// Mapping is the context shape: string keys to Values. The engine's root
// context is a single Mapping owned by one engine instance.
type Mapping map[string]Value

// Resolve walks a period-separated key sequence through nested mappings.
// Every intermediate step must be a mapping containing the segment key;
// a missing key, or remaining segments on a non-mapping, fails resolution.
// The resolved value may itself be a mapping or callable.
func (m Mapping) Resolve(path string) (Value, bool) {
	current := Map(m)
	for _, segment := range strings.Split(path, ".") {
		inner, ok := current.Mapping()
		if !ok {
			return Value{}, false
		}
		current, ok = inner[segment]
		if !ok {
			return Value{}, false
		}
	}
	return current, true
}

// Merge copies every key of other into m, overwriting existing keys.
func (m Mapping) Merge(other Mapping) {
	for k, v := range other {
		m[k] = v
	}
}

// FromMap converts a plain Go map into a Mapping. Nested map[string]any
// values become nested mappings; functions with the Callable signature
// become callables; anything without a dedicated shape is stringified.
func FromMap(m map[string]any) Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = FromAny(v)
	}
	return out
}

// FromAny converts a single Go value into a Value.
func FromAny(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return String("")
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Int(int64(t))
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case map[string]any:
		return Map(FromMap(t))
	case Mapping:
		return Map(t)
	case Callable:
		return Func(t)
	case func(args []Value) (Value, error):
		return Func(t)
	default:
		return String(fmt.Sprintf("%v", t))
	}
}
