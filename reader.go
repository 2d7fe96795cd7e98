package formbind

import (
	"github.com/formbind/formbind/format"
)

// Reader is the polymorphic read strategy of a Mapping. A nil Reader marks
// the field as write-only.
type Reader interface {
	Read(m *Mapping, t Target) (any, error)
}

// BasicReader passes the target attribute through unchanged. Absent
// attributes read as nil rather than erroring.
type BasicReader struct{}

func (BasicReader) Read(m *Mapping, t Target) (any, error) {
	v, _ := t.Get(m.TargetAttribute())
	return v, nil
}

// MethodReader reads through a named accessor resolved against the target at
// call time, so the accessor set need not be statically known.
type MethodReader struct{ Accessor string }

func (r MethodReader) Read(m *Mapping, t Target) (any, error) {
	v, _ := t.Get(r.Accessor)
	return v, nil
}

// ProcReader invokes a user-supplied function with the owning Mapping and the
// target. Errors raised inside are not caught here; they propagate to the
// caller.
type ProcReader struct {
	Fn func(m *Mapping, t Target) (any, error)
}

func (r ProcReader) Read(m *Mapping, t Target) (any, error) { return r.Fn(m, t) }

// FormattedReader composes the basic read with a named transform from the
// format registry.
type FormattedReader struct {
	Format string
	fn     format.Func
}

// NewFormattedReader resolves name against the format registry. Unknown
// names are a configuration error.
func NewFormattedReader(name string) (FormattedReader, error) {
	fn, ok := format.Lookup(name)
	if !ok {
		return FormattedReader{}, Issues{{Path: "/", Code: CodeUnknownFormat, Message: "unknown format", Hint: name, Params: map[string]any{"format": name}}}
	}
	return FormattedReader{Format: name, fn: fn}, nil
}

func (r FormattedReader) Read(m *Mapping, t Target) (any, error) {
	v, _ := t.Get(m.TargetAttribute())
	return r.fn(v)
}
