package formbind

import (
	"context"
	"fmt"

	"github.com/formbind/formbind/internal/attr"
)

// Getter reads a named attribute from a target object.
type Getter interface {
	Get(attr string) (any, bool)
}

// Setter writes a named attribute on a target object.
type Setter interface {
	Set(attr string, v any) error
}

// Target is the attribute surface a mapper binds to. Persistence-layer
// objects implement it directly or are adapted via Of.
type Target interface {
	Getter
	Setter
}

// Saver is an optional capability consumed by Mapper.Apply. Save mechanics
// (transactions, validation, callbacks) stay with the implementer.
type Saver interface {
	Save(ctx context.Context) error
}

// MapTarget adapts a plain map as a Target.
type MapTarget map[string]any

func (t MapTarget) Get(attr string) (any, bool) { v, ok := t[attr]; return v, ok }
func (t MapTarget) Set(attr string, v any) error {
	t[attr] = v
	return nil
}

// structTarget adapts a struct pointer through reflection. It keeps the
// original object reachable so capability checks (Saver) still apply.
type structTarget struct {
	obj any
	acc *attr.Accessor
}

func (t *structTarget) Get(name string) (any, bool)  { return t.acc.Get(name) }
func (t *structTarget) Set(name string, v any) error { return t.acc.Set(name, v) }
func (t *structTarget) Unwrap() any                  { return t.obj }

// Of adapts v as a Target: Target values pass through, maps become
// MapTarget, struct pointers are wrapped reflectively with
// formbind/json tag key resolution.
func Of(v any) (Target, error) {
	switch tv := v.(type) {
	case nil:
		return nil, Issues{{Path: "/", Code: CodeTargetUnresolved, Message: "nil target"}}
	case Target:
		return tv, nil
	case map[string]any:
		return MapTarget(tv), nil
	case Params:
		return MapTarget(tv), nil
	}
	acc, err := attr.Wrap(v)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: fmt.Sprintf("unsupported target %T", v), Cause: err}}
	}
	return &structTarget{obj: v, acc: acc}, nil
}

// MustOf is like Of but panics on error.
func MustOf(v any) Target {
	t, err := Of(v)
	if err != nil {
		panic(err)
	}
	return t
}

// saverOf resolves the Saver capability of a target, looking through
// adapter wrappers.
func saverOf(t Target) (Saver, bool) {
	if s, ok := t.(Saver); ok {
		return s, true
	}
	if w, ok := t.(interface{ Unwrap() any }); ok {
		if s, ok := w.Unwrap().(Saver); ok {
			return s, true
		}
	}
	return nil, false
}
