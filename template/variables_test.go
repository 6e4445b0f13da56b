package template

import (
	"testing"

	"github.com/xelA/tagify/value"
)

func TestScanSet(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantName string
		wantVal  string
		wantOK   bool
	}{
		{name: "simple", src: "{% set x = 1 %}", wantName: "x", wantVal: "1", wantOK: true},
		{name: "multi-word value", src: "{% set x = Test Value %}", wantName: "x", wantVal: "Test Value", wantOK: true},
		{name: "underscored name", src: "{% set user_type = guest %}", wantName: "user_type", wantVal: "guest", wantOK: true},
		{name: "tight equals", src: "{% set x=1 %}", wantName: "x", wantVal: "1", wantOK: true},
		{name: "placeholder value", src: "{% set x = {name} %}", wantName: "x", wantVal: "{name}", wantOK: true},
		{name: "missing name", src: "{% set  = 1 %}", wantOK: false},
		{name: "missing equals", src: "{% set x 1 %}", wantOK: false},
		{name: "unterminated", src: "{% set x = 1", wantOK: false},
		{name: "value may not span lines", src: "{% set x = a\nb %}", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, val, _, ok := scanSet(tt.src, 0)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if val != tt.wantVal {
				t.Errorf("val = %q, want %q", val, tt.wantVal)
			}
		})
	}
}

func TestEngine_BindVariables(t *testing.T) {
	e := New(value.Mapping{"name": value.String("World")})

	out := e.bindVariables("a{% set x = Hi {name} %}b")
	if out != "ab" {
		t.Errorf("output = %q, want directive removed", out)
	}

	v, ok := e.Context().Resolve("x")
	if !ok || v.String() != "Hi World" {
		t.Errorf("x = %q (ok=%v), want %q", v.String(), ok, "Hi World")
	}
	if v.Kind() != value.KindString {
		t.Errorf("bound kind = %v, want string", v.Kind())
	}
}

func TestEngine_BindVariables_TwoDirectivesOnOneLine(t *testing.T) {
	e := New(nil)

	out := e.bindVariables("{% set a = 1 %}{% set b = 2 %}")
	if out != "" {
		t.Errorf("output = %q, want both directives removed", out)
	}

	a, _ := e.Context().Resolve("a")
	b, _ := e.Context().Resolve("b")
	if a.String() != "1" || b.String() != "2" {
		t.Errorf("a=%q b=%q, want 1 and 2", a.String(), b.String())
	}
}

func TestEngine_BindVariables_MalformedDirectiveUntouched(t *testing.T) {
	e := New(nil)

	src := "before {% set x = 1 after"
	if out := e.bindVariables(src); out != src {
		t.Errorf("output = %q, want input untouched", out)
	}
}
