package value

import "testing"

func TestMapping_Resolve(t *testing.T) {
	ctx := Mapping{
		"name": String("World"),
		"user": Map(Mapping{
			"name": String("Alice"),
			"prefs": Map(Mapping{
				"theme": String("dark"),
			}),
		}),
	}

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{name: "top-level key", path: "name", want: "World", wantOK: true},
		{name: "nested key", path: "user.name", want: "Alice", wantOK: true},
		{name: "deeply nested key", path: "user.prefs.theme", want: "dark", wantOK: true},
		{name: "missing key", path: "missing", wantOK: false},
		{name: "missing nested key", path: "user.age", wantOK: false},
		{name: "dig through non-mapping", path: "name.inner", wantOK: false},
		{name: "empty path", path: "", wantOK: false},
		{name: "trailing dot", path: "user.", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ctx.Resolve(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestMapping_Resolve_ReturnsMapping(t *testing.T) {
	ctx := Mapping{"user": Map(Mapping{"name": String("Alice")})}

	v, ok := ctx.Resolve("user")
	if !ok {
		t.Fatal("expected user to resolve")
	}
	if v.Kind() != KindMapping {
		t.Errorf("got kind %v, want mapping", v.Kind())
	}
}

func TestMapping_Merge(t *testing.T) {
	base := Mapping{"a": Int(1), "b": Int(2)}
	base.Merge(Mapping{"b": Int(3), "c": Int(4)})

	if got := base["b"].String(); got != "3" {
		t.Errorf("b = %q, want %q (later keys win)", got, "3")
	}
	if got := base["c"].String(); got != "4" {
		t.Errorf("c = %q, want %q", got, "4")
	}
}

func TestFromMap(t *testing.T) {
	ctx := FromMap(map[string]any{
		"name":    "Alice",
		"age":     25,
		"score":   9.5,
		"admin":   false,
		"nothing": nil,
		"user":    map[string]any{"id": 7},
		"greet": func(args []Value) (Value, error) {
			return String("hey"), nil
		},
	})

	if got := ctx["name"].Kind(); got != KindString {
		t.Errorf("name kind = %v, want string", got)
	}
	if got := ctx["age"].Kind(); got != KindInt {
		t.Errorf("age kind = %v, want int", got)
	}
	if got := ctx["score"].Kind(); got != KindFloat {
		t.Errorf("score kind = %v, want float", got)
	}
	if got := ctx["admin"].Kind(); got != KindBool {
		t.Errorf("admin kind = %v, want bool", got)
	}
	if got := ctx["nothing"].String(); got != "" {
		t.Errorf("nothing = %q, want empty string", got)
	}
	if got := ctx["greet"].Kind(); got != KindCallable {
		t.Errorf("greet kind = %v, want callable", got)
	}

	v, ok := ctx.Resolve("user.id")
	if !ok || v.String() != "7" {
		t.Errorf("user.id = %q (ok=%v), want 7", v.String(), ok)
	}
}
