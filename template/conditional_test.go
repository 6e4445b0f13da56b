package template

import (
	"testing"

	"github.com/xelA/tagify/value"
)

func TestScanIfBlock(t *testing.T) {
	src := "pre {% if a == b %}body{% endif %} post"
	start := 4

	block, end, ok := scanIfBlock(src, start)
	if !ok {
		t.Fatal("expected block to parse")
	}
	if block.cond != "a == b" {
		t.Errorf("cond = %q, want %q", block.cond, "a == b")
	}
	if block.body != "body" {
		t.Errorf("body = %q, want %q", block.body, "body")
	}
	if src[end:] != " post" {
		t.Errorf("end points at %q, want %q", src[end:], " post")
	}
}

func TestScanIfBlock_ShortestEndifMatch(t *testing.T) {
	// Nested blocks are unsupported: the if pairs with the nearest endif.
	src := "{% if a %}x{% if b %}y{% endif %}z{% endif %}"

	block, end, ok := scanIfBlock(src, 0)
	if !ok {
		t.Fatal("expected block to parse")
	}
	if block.body != "x{% if b %}y" {
		t.Errorf("body = %q, want shortest match", block.body)
	}
	if src[end:] != "z{% endif %}" {
		t.Errorf("remainder = %q", src[end:])
	}
}

func TestScanIfBlock_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing close marker", src: "{% if a"},
		{name: "missing endif", src: "{% if a %}body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := scanIfBlock(tt.src, 0); ok {
				t.Error("expected parse failure")
			}
		})
	}
}

func TestSplitBranches(t *testing.T) {
	tests := []struct {
		name string
		cond string
		body string
		want []branch
	}{
		{
			name: "if only",
			cond: "a",
			body: "A",
			want: []branch{{cond: "a", hasCond: true, body: "A"}},
		},
		{
			name: "if else",
			cond: "a",
			body: "A{% else %}B",
			want: []branch{
				{cond: "a", hasCond: true, body: "A"},
				{body: "B"},
			},
		},
		{
			name: "if elif else",
			cond: "a",
			body: "A{% elif b %}B{% else %}C",
			want: []branch{
				{cond: "a", hasCond: true, body: "A"},
				{cond: "b", hasCond: true, body: "B"},
				{body: "C"},
			},
		},
		{
			name: "two elifs",
			cond: "a",
			body: "A{% elif b %}B{% elif c %}C",
			want: []branch{
				{cond: "a", hasCond: true, body: "A"},
				{cond: "b", hasCond: true, body: "B"},
				{cond: "c", hasCond: true, body: "C"},
			},
		},
		{
			name: "markers after else are literal fallback text",
			cond: "a",
			body: "A{% else %}B{% elif c %}C",
			want: []branch{
				{cond: "a", hasCond: true, body: "A"},
				{body: "B{% elif c %}C"},
			},
		},
		{
			name: "unclosed elif stays in branch body",
			cond: "a",
			body: "A{% elif b",
			want: []branch{{cond: "a", hasCond: true, body: "A{% elif b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitBranches(tt.cond, tt.body)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d branches, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("branch %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEngine_EvalConditionals_MultipleBlocks(t *testing.T) {
	e := New(value.Mapping{
		"a": value.Bool(true),
		"b": value.Bool(false),
	})

	got, err := e.evalConditionals("{% if a %}one{% endif %}-{% if b %}two{% else %}none{% endif %}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "one-none" {
		t.Errorf("got %q, want %q", got, "one-none")
	}
}

func TestEngine_EvalConditionals_BodyNotRescanned(t *testing.T) {
	e := New(value.Mapping{"a": value.Bool(true)})

	// The if pairs with the nearest endif, so the directive-shaped text
	// inside the selected body survives the pass untouched.
	got, err := e.evalConditionals("{% if a %}keep {% if b %} this{% endif %}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "keep {% if b %} this" {
		t.Errorf("got %q, want %q", got, "keep {% if b %} this")
	}
}

func TestEngine_EvalConditionals_MultilineBody(t *testing.T) {
	e := New(value.Mapping{"num": value.Int(10)})

	got, err := e.evalConditionals("{% if num == 0 %}\nZero\n{% elif num == 10 %}\nTen\n{% else %}\nOther\n{% endif %}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Ten" {
		t.Errorf("got %q, want %q", got, "Ten")
	}
}
