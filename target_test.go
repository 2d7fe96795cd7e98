package formbind_test

import (
	"testing"

	formbind "github.com/formbind/formbind"
	"github.com/formbind/formbind/dsl"
)

type user struct {
	FirstName string
	Email     string `json:"mail"`
	Alias     string `formbind:"name=nickname"`
	Age       int
	hidden    string
}

func TestOf_StructPointer_KeyResolution(t *testing.T) {
	u := &user{FirstName: "Ada", Email: "a@b.example", Alias: "ada", Age: 36}
	tgt, err := formbind.Of(u)
	if err != nil {
		t.Fatalf("of err: %v", err)
	}

	if v, ok := tgt.Get("first_name"); !ok || v != "Ada" {
		t.Fatalf("snake_case fallback failed: %v %v", v, ok)
	}
	if v, ok := tgt.Get("mail"); !ok || v != "a@b.example" {
		t.Fatalf("json tag resolution failed: %v %v", v, ok)
	}
	if v, ok := tgt.Get("nickname"); !ok || v != "ada" {
		t.Fatalf("formbind tag resolution failed: %v %v", v, ok)
	}
	if _, ok := tgt.Get("hidden"); ok {
		t.Fatalf("unexported field leaked")
	}
	if _, ok := tgt.Get("email"); ok {
		t.Fatalf("tagged field must not resolve under its default name")
	}
}

func TestOf_StructPointer_Set(t *testing.T) {
	u := &user{}
	tgt := formbind.MustOf(u)

	if err := tgt.Set("first_name", "Grace"); err != nil {
		t.Fatalf("set err: %v", err)
	}
	if u.FirstName != "Grace" {
		t.Fatalf("set did not stick: %+v", u)
	}

	// numeric conversion across kinds
	if err := tgt.Set("age", int64(41)); err != nil {
		t.Fatalf("numeric set err: %v", err)
	}
	if u.Age != 41 {
		t.Fatalf("numeric conversion failed: %+v", u)
	}

	if err := tgt.Set("age", "not a number"); err == nil {
		t.Fatalf("expected type error")
	}
	if err := tgt.Set("unknown", 1); err == nil {
		t.Fatalf("expected unknown attribute error")
	}
}

func TestOf_MapAndTargetPassthrough(t *testing.T) {
	mt := formbind.MapTarget{"a": 1}
	got, err := formbind.Of(mt)
	if err != nil {
		t.Fatalf("of err: %v", err)
	}
	if v, ok := got.Get("a"); !ok || v != 1 {
		t.Fatalf("target passthrough broken")
	}

	raw := map[string]any{"b": 2}
	got, err = formbind.Of(raw)
	if err != nil {
		t.Fatalf("of err: %v", err)
	}
	if err := got.Set("b", 3); err != nil {
		t.Fatalf("set err: %v", err)
	}
	if raw["b"] != 3 {
		t.Fatalf("map adapter must share storage")
	}
}

func TestOf_Unsupported(t *testing.T) {
	if _, err := formbind.Of(nil); err == nil {
		t.Fatalf("nil target must error")
	}
	if _, err := formbind.Of(42); err == nil {
		t.Fatalf("non-struct target must error")
	}
	var u *user
	if _, err := formbind.Of(u); err == nil {
		t.Fatalf("nil struct pointer must error")
	}
}

func TestMapper_StructTarget_EndToEnd(t *testing.T) {
	u := &user{FirstName: "Ada", Email: "a@b.example"}
	def := dsl.NewMapper("user").
		Field("first_name").
		Field("mail").
		MustBuild()

	m := def.MustBind(u)
	got, err := m.Read()
	if err != nil {
		t.Fatalf("read err: %v", err)
	}
	if got["first_name"] != "Ada" || got["mail"] != "a@b.example" {
		t.Fatalf("struct read failed: %v", got)
	}

	if err := m.Write(formbind.Params{"mail": "new@b.example"}); err != nil {
		t.Fatalf("write err: %v", err)
	}
	if u.Email != "new@b.example" {
		t.Fatalf("struct write failed: %+v", u)
	}
}
