package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xelA/tagify/value"
)

// evalCondition evaluates a condition of the form term (("&&"|"||") term)*.
// The fold is left-associative with no precedence or grouping, and every
// term is evaluated even when short-circuiting would be legal; strict
// left-to-right evaluation is the documented contract.
func (e *Engine) evalCondition(cond string) (bool, error) {
	terms, ops := splitCondition(cond)

	result, err := e.evalTerm(terms[0])
	if err != nil {
		return false, err
	}
	for i, op := range ops {
		next, err := e.evalTerm(terms[i+1])
		if err != nil {
			return false, err
		}
		if op == "&&" {
			result = result && next
		} else {
			result = result || next
		}
	}
	return result, nil
}

// evalTerm evaluates a single term: "not EXPR", a bare truthy path, or a
// comparison LHS (==|!=) RHS.
func (e *Engine) evalTerm(term string) (bool, error) {
	if rest, ok := strings.CutPrefix(term, "not "); ok {
		return !e.truthy(strings.TrimSpace(rest)), nil
	}

	lhs, op, rhs, err := splitComparison(term)
	if err != nil {
		return false, err
	}
	if op == "" {
		return e.truthy(term), nil
	}

	equal := compareOperands(e.operand(lhs), e.operand(rhs))
	if op == "!=" {
		return !equal, nil
	}
	return equal, nil
}

// operand resolves a comparison operand to its comparison string. Quoted
// operands are literals; anything else resolves as a dotted path, falling
// back to the raw operand text when resolution fails. Mappings and
// callables have no comparison string, so they compare as raw text too.
func (e *Engine) operand(s string) string {
	if lit, ok := unquote(s); ok {
		return lit
	}
	if v, ok := e.context.Resolve(s); ok {
		switch v.Kind() {
		case value.KindMapping, value.KindCallable:
			return s
		default:
			return v.String()
		}
	}
	return s
}

// truthy evaluates a bare operand as a boolean: quoted literals are truthy
// when non-empty, resolved values follow Value.Truthy, and an unresolvable
// path is falsy.
func (e *Engine) truthy(s string) bool {
	if lit, ok := unquote(s); ok {
		return lit != ""
	}
	v, ok := e.context.Resolve(s)
	return ok && v.Truthy()
}

// compareOperands reports equality with numeric coercion: two full integer
// strings compare as integers; otherwise, if either side carries a '.',
// two parseable floats compare as floats; everything else compares as
// plain strings.
func compareOperands(lhs, rhs string) bool {
	li, lerr := strconv.ParseInt(lhs, 10, 64)
	ri, rerr := strconv.ParseInt(rhs, 10, 64)
	if lerr == nil && rerr == nil {
		return li == ri
	}

	if strings.Contains(lhs, ".") || strings.Contains(rhs, ".") {
		lf, lerr := strconv.ParseFloat(lhs, 64)
		rf, rerr := strconv.ParseFloat(rhs, 64)
		if lerr == nil && rerr == nil {
			return lf == rf
		}
	}

	return lhs == rhs
}

// splitCondition splits a condition on whitespace-delimited top-level
// "&&" / "||" boundaries, honoring quote spans. Terms come back trimmed.
func splitCondition(cond string) (terms []string, ops []string) {
	inQuote := false
	var quoteChar byte
	last := 0

	for i := 0; i+3 < len(cond); i++ {
		c := cond[i]
		if inQuote {
			if c == quoteChar {
				inQuote = false
			}
			continue
		}
		if c == '\'' || c == '"' {
			inQuote = true
			quoteChar = c
			continue
		}
		if !isSpaceByte(c) {
			continue
		}
		op := cond[i+1 : i+3]
		if (op == "&&" || op == "||") && isSpaceByte(cond[i+3]) {
			terms = append(terms, strings.TrimSpace(cond[last:i]))
			ops = append(ops, op)
			i += 3
			last = i + 1
		}
	}

	terms = append(terms, strings.TrimSpace(cond[last:]))
	return terms, ops
}

// splitComparison finds the first comparison operator outside quotes.
// An empty op means the term is a bare path. Any operator run other than
// == or != (a lone =, <, >=, ...) is a fatal error per the engine
// contract: programmer errors must not evaluate as a silent false.
func splitComparison(term string) (lhs, op, rhs string, err error) {
	inQuote := false
	var quoteChar byte

	for i := 0; i < len(term); i++ {
		c := term[i]
		if inQuote {
			if c == quoteChar {
				inQuote = false
			}
			continue
		}
		if c == '\'' || c == '"' {
			inQuote = true
			quoteChar = c
			continue
		}
		if !isOperatorChar(c) {
			continue
		}

		j := i
		for j < len(term) && isOperatorChar(term[j]) {
			j++
		}
		run := term[i:j]
		if run != "==" && run != "!=" {
			return "", "", "", fmt.Errorf("%w: %q in %q", ErrUnknownOperator, run, term)
		}
		return strings.TrimSpace(term[:i]), run, strings.TrimSpace(term[j:]), nil
	}

	return term, "", "", nil
}

func isOperatorChar(c byte) bool {
	return c == '=' || c == '!' || c == '<' || c == '>'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
