// Package template implements the tagify rendering engine.
//
// A template mixes plain text with three directive kinds, rendered against
// a context of values and callables supplied at construction time.
//
// # Syntax
//
// Placeholders resolve a dotted path through the context:
//
//	Hi {name}!
//	User: { user.name }
//
// Callables are invoked when the placeholder carries an argument list:
//
//	1+1 = {add(1, 1)}
//	{user.greet('Bob')}
//
// Bindings store a value into the context and disappear from the output:
//
//	{% set greeting = Hello %}{greeting}
//
// Conditionals select exactly one branch:
//
//	{% if user.age == 25 %}quarter{% elif user.age != 0 %}other{% else %}newborn{% endif %}
//
// Conditions combine terms with && and || (no precedence, no grouping,
// every term evaluated left to right), compare with == and != only, and
// support prefix not and bare truthy paths. Nested if blocks are not
// supported: the engine pairs an if with the nearest following endif.
//
// # Error handling
//
// A placeholder whose path does not resolve is left in the output as its
// original source text. A callable that fails renders an inline
// "[ ERROR:path: message ]" marker. Only an unknown comparison operator
// makes Render itself return an error.
//
// # Example
//
//	engine := template.New(value.FromMap(map[string]any{"name": "World"}))
//	out, err := engine.Render("Hi {name}!")
//	// out: "Hi World!"
//
// An Engine owns its context and is not safe for concurrent renders:
// {% set %} mutates the context without locking.
package template
