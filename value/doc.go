// Package value defines the data model shared by every stage of the tagify
// engine.
//
// A Value is a closed variant over six shapes: String, Int, Float, Bool,
// Mapping, and Callable. No other shapes exist; hosts convert plain Go data
// with FromMap before handing it to the engine.
//
// Core types:
//   - Value: the tagged union, built with the String, Int, Float, Bool,
//     Map, and Func constructors
//   - Mapping: a map[string]Value with dotted-path resolution
//   - Callable: a host function invoked positionally with []Value
//
// Example usage:
//
//	ctx := value.FromMap(map[string]any{
//	    "user": map[string]any{"name": "Alice"},
//	})
//	v, ok := ctx.Resolve("user.name")
//	// v.String() == "Alice", ok == true
package value
