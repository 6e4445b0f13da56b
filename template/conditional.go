package template

import "strings"

// Conditional directive markers.
const (
	ifOpen   = "{% if "
	tagClose = " %}"
	endifTag = "{% endif %}"
	elifOpen = "{% elif "
	elseTag  = "{% else %}"
)

// condBlock is one matched "{% if %}...{% endif %}" span.
type condBlock struct {
	cond string
	body string
}

// branch is one arm of a conditional block. An else branch has no
// condition and is always the terminal fallback.
type branch struct {
	cond    string
	hasCond bool
	body    string
}

// evalConditionals replaces every conditional block in src with the body
// of its selected branch. Spans are non-overlapping and pair each if with
// the nearest following endif; a nested if inside a block is therefore not
// structurally honored (unsupported, see the package documentation). Text
// around unmatched directives passes through untouched, and selected
// bodies are not re-scanned for conditionals.
func (e *Engine) evalConditionals(src string) (string, error) {
	var b strings.Builder
	b.Grow(len(src))

	i := 0
	for {
		j := strings.Index(src[i:], ifOpen)
		if j < 0 {
			b.WriteString(src[i:])
			return b.String(), nil
		}
		j += i
		b.WriteString(src[i:j])

		block, end, ok := scanIfBlock(src, j)
		if !ok {
			b.WriteString(ifOpen)
			i = j + len(ifOpen)
			continue
		}

		body, err := e.selectBranch(block)
		if err != nil {
			return "", err
		}
		b.WriteString(body)
		i = end
	}
}

// scanIfBlock parses the block starting at src[start], which must begin
// with the if marker. The condition runs to the nearest " %}" and the body
// to the nearest "{% endif %}" (shortest match).
func scanIfBlock(src string, start int) (condBlock, int, bool) {
	i := start + len(ifOpen)

	condEnd := strings.Index(src[i:], tagClose)
	if condEnd < 0 {
		return condBlock{}, 0, false
	}
	cond := strings.TrimSpace(src[i : i+condEnd])

	bodyStart := i + condEnd + len(tagClose)
	bodyEnd := strings.Index(src[bodyStart:], endifTag)
	if bodyEnd < 0 {
		return condBlock{}, 0, false
	}

	block := condBlock{cond: cond, body: src[bodyStart : bodyStart+bodyEnd]}
	return block, bodyStart + bodyEnd + len(endifTag), true
}

// selectBranch evaluates branch conditions strictly in order and returns
// the first true branch's body, the else body when none matched, or "".
// The returned body is trimmed of surrounding whitespace.
func (e *Engine) selectBranch(block condBlock) (string, error) {
	for _, br := range splitBranches(block.cond, block.body) {
		if !br.hasCond {
			return strings.TrimSpace(br.body), nil
		}
		ok, err := e.evalCondition(br.cond)
		if err != nil {
			return "", err
		}
		if ok {
			return strings.TrimSpace(br.body), nil
		}
	}
	return "", nil
}

// splitBranches cuts a block body on elif/else boundaries into an ordered
// branch list. Branch 0 carries the outer if condition. An else marker
// ends the list: everything to the end of the body is the fallback, and
// any later markers are literal text inside it.
func splitBranches(ifCond, body string) []branch {
	branches := []branch{{cond: ifCond, hasCond: true}}
	segStart := 0
	i := 0

	for {
		elif := strings.Index(body[i:], elifOpen)
		els := strings.Index(body[i:], elseTag)
		if elif < 0 && els < 0 {
			break
		}

		if els < 0 || (elif >= 0 && elif < els) {
			mark := i + elif
			condStart := mark + len(elifOpen)
			condEnd := strings.Index(body[condStart:], tagClose)
			if condEnd < 0 {
				// Unclosed elif marker stays in the current branch body.
				break
			}
			branches[len(branches)-1].body = body[segStart:mark]
			branches = append(branches, branch{
				cond:    strings.TrimSpace(body[condStart : condStart+condEnd]),
				hasCond: true,
			})
			i = condStart + condEnd + len(tagClose)
			segStart = i
			continue
		}

		mark := i + els
		branches[len(branches)-1].body = body[segStart:mark]
		branches = append(branches, branch{body: body[mark+len(elseTag):]})
		return branches
	}

	branches[len(branches)-1].body = body[segStart:]
	return branches
}
