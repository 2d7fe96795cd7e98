package formbind

// Writer is the polymorphic write strategy of a Mapping. A nil Writer marks
// the field as read-only.
type Writer interface {
	Write(m *Mapping, t Target, v any) error
}

// BasicWriter assigns the incoming value to the target attribute unchanged.
type BasicWriter struct{}

func (BasicWriter) Write(m *Mapping, t Target, v any) error {
	return t.Set(m.TargetAttribute(), v)
}

// MethodWriter writes through a named accessor resolved against the target
// at call time.
type MethodWriter struct{ Accessor string }

func (w MethodWriter) Write(m *Mapping, t Target, v any) error {
	return t.Set(w.Accessor, v)
}

// ProcWriter invokes a user-supplied function with the owning Mapping, the
// target and the incoming value. Errors are not caught here; collaborators
// needing resilient writes wrap their own function body.
type ProcWriter struct {
	Fn func(m *Mapping, t Target, v any) error
}

func (w ProcWriter) Write(m *Mapping, t Target, v any) error { return w.Fn(m, t, v) }
