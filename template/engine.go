package template

import (
	"strings"

	"github.com/xelA/tagify/value"
)

// Engine renders templates against a single context mapping. The engine
// owns the context for its lifetime; {% set %} directives mutate it, so a
// single instance must not render concurrently.
type Engine struct {
	context      value.Mapping
	conditionals bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithoutConditionals disables the {% if %} stage. Conditional directives
// then pass through to the output unmodified.
func WithoutConditionals() Option {
	return func(e *Engine) { e.conditionals = false }
}

// New creates an engine over the given context. A nil context starts empty.
func New(context value.Mapping, opts ...Option) *Engine {
	if context == nil {
		context = value.Mapping{}
	}
	e := &Engine{context: context, conditionals: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Context returns the engine's context mapping. Bindings made by
// {% set %} directives are visible here after Render returns.
func (e *Engine) Context() value.Mapping { return e.context }

// Render evaluates the template and returns the produced text. Stages run
// in a fixed order: variable bindings, then conditionals, then
// placeholders, so conditions may reference just-bound variables. The
// result is trimmed of surrounding whitespace.
//
// The only error Render returns is an unknown comparison operator in a
// condition (wrapping ErrUnknownOperator); every other failure is local to
// its own substitution span.
func (e *Engine) Render(template string) (string, error) {
	out := strings.TrimSpace(template)

	out = e.bindVariables(out)

	if e.conditionals {
		var err error
		out, err = e.evalConditionals(out)
		if err != nil {
			return "", err
		}
	}

	out = e.resolvePlaceholders(out)
	return strings.TrimSpace(out), nil
}
