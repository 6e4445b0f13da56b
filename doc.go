// Package tagify provides lightweight dynamic text templating with
// placeholders, variable bindings, and conditional blocks.
//
// tagify renders a template string against a host-supplied context of
// values and callables. It is designed for small dynamic text (messages,
// reports), not as a general-purpose template language: there are no loops,
// no operator precedence, and no nested conditionals.
//
// Each subpackage can be used independently:
//
//   - template: the rendering engine ({name}, {% set %}, {% if %})
//   - value: the context data model (strings, numbers, mappings, callables)
//   - contextfile: load contexts from YAML, TOML, or JSON files
//   - watch: re-render a template file whenever it changes
//
// # Quick Start
//
// Render a template against a context:
//
//	import (
//	    "github.com/xelA/tagify/template"
//	    "github.com/xelA/tagify/value"
//	)
//
//	engine := template.New(value.FromMap(map[string]any{"name": "World"}))
//	out, _ := engine.Render("Hi {name}!")
//	// out: "Hi World!"
//
// Conditionals and bindings:
//
//	out, _ = engine.Render("{% if name == 'World' %}Hello{% else %}Bye{% endif %}")
//	// out: "Hello"
//
// Host callables:
//
//	ctx := value.Mapping{
//	    "add": value.Func(func(args []value.Value) (value.Value, error) {
//	        ...
//	    }),
//	}
//	engine = template.New(ctx)
//	out, _ = engine.Render("{add(1, 1)}")
//	// out: "2"
//
// # Design Philosophy
//
//   - Small, exact directive grammar kept compatible across ports
//   - Failed lookups pass through as literal text, never as errors
//   - Callable faults are contained to their own substitution span
//   - Each package usable independently
package tagify
