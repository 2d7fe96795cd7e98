package format

import (
	"testing"
)

func TestRegistry_Builtins(t *testing.T) {
	for _, name := range []string{"rfc3339", "string", "upcase", "downcase"} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("builtin %q not registered", name)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatalf("unexpected registration")
	}
}

func TestRegister_ReplaceAndNil(t *testing.T) {
	Register("custom", func(v any) (any, error) { return "one", nil })
	fn, ok := Lookup("custom")
	if !ok {
		t.Fatalf("custom not registered")
	}
	v, err := fn(nil)
	if err != nil || v != "one" {
		t.Fatalf("unexpected: %v %v", v, err)
	}

	Register("custom", func(v any) (any, error) { return "two", nil })
	fn, _ = Lookup("custom")
	v, _ = fn(nil)
	if v != "two" {
		t.Fatalf("replacement did not take effect")
	}

	Register("", nil) // ignored
}

func TestStringify(t *testing.T) {
	v, err := Stringify(42)
	if err != nil || v != "42" {
		t.Fatalf("unexpected: %v %v", v, err)
	}
	v, err = Stringify(nil)
	if err != nil || v != nil {
		t.Fatalf("nil must pass through, got %v %v", v, err)
	}
}

func TestCaseTransforms(t *testing.T) {
	v, err := Upcase("abc")
	if err != nil || v != "ABC" {
		t.Fatalf("upcase: %v %v", v, err)
	}
	v, err = Downcase("ABC")
	if err != nil || v != "abc" {
		t.Fatalf("downcase: %v %v", v, err)
	}
	if _, err := Upcase(42); err == nil {
		t.Fatalf("expected type error")
	}
	if v, err := Downcase(nil); err != nil || v != nil {
		t.Fatalf("nil must pass through")
	}
}
