package dsl

import (
	formbind "github.com/formbind/formbind"
)

// Builder accumulates field and mounting declarations and materializes them
// into a formbind.Definition.
type Builder struct {
	name   string
	fields []*formbind.MappingSpec
	mounts []func(*formbind.Definition)
}

// NewMapper starts a mapper definition with a debug name.
func NewMapper(name string) *Builder {
	return &Builder{name: name}
}

// Field declares a field binding. The returned step mutates this field;
// calling Field/Trait/Mount/Build on the step returns to the builder.
func (b *Builder) Field(name string) *FieldStep {
	spec := &formbind.MappingSpec{Name: name}
	b.fields = append(b.fields, spec)
	return &FieldStep{b: b, spec: spec}
}

// Trait declares a named trait whose body is built with a nested Builder.
// The trait's mapper binds to the host's own target; traits nest freely.
func (b *Builder) Trait(name string, body func(t *Builder)) *Builder {
	sub := &Builder{}
	if body != nil {
		body(sub)
	}
	b.mounts = append(b.mounts, func(d *formbind.Definition) {
		d.AddTrait(name, sub.materialize())
	})
	return b
}

// Mount declares an independent sub-mapper mounted under key.
func (b *Builder) Mount(key string, sub *formbind.Definition, opts ...formbind.MountOption) *Builder {
	b.mounts = append(b.mounts, func(d *formbind.Definition) {
		d.AddMounting(key, sub, opts...)
	})
	return b
}

func (b *Builder) materialize() *formbind.Definition {
	d := formbind.NewDefinition(b.name)
	for _, f := range b.fields {
		d.AddField(*f)
	}
	for _, fn := range b.mounts {
		fn(d)
	}
	return d
}

// Build materializes and validates the definition graph.
func (b *Builder) Build() (*formbind.Definition, error) {
	d := b.materialize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *formbind.Definition {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// Inline materializes an unnamed definition body, for use with
// formbind.WithExtension and formbind.WithMount. Validation happens at Bind.
func Inline(body func(t *Builder)) *formbind.Definition {
	b := &Builder{}
	if body != nil {
		body(b)
	}
	return b.materialize()
}

// FieldStep mutates the most recently declared field.
type FieldStep struct {
	b    *Builder
	spec *formbind.MappingSpec
}

// TargetAttribute renames the attribute read/written on the target; the
// external name stays as declared.
func (f *FieldStep) TargetAttribute(attr string) *FieldStep {
	f.spec.TargetAttribute = attr
	return f
}

// ReadVia reads through the named accessor instead of the target attribute.
func (f *FieldStep) ReadVia(accessor string) *FieldStep {
	f.spec.Reader.Accessor = accessor
	return f
}

// ReadWith reads through a user-supplied function. Errors propagate to the
// Read caller.
func (f *FieldStep) ReadWith(fn func(m *formbind.Mapping, t formbind.Target) (any, error)) *FieldStep {
	f.spec.Reader.Proc = fn
	return f
}

// Format applies the named transform after the basic read.
func (f *FieldStep) Format(name string) *FieldStep {
	f.spec.Reader.Format = name
	return f
}

// WriteVia writes through the named accessor instead of the target attribute.
func (f *FieldStep) WriteVia(accessor string) *FieldStep {
	f.spec.Writer.Accessor = accessor
	return f
}

// WriteWith writes through a user-supplied function. Errors propagate to the
// Write caller.
func (f *FieldStep) WriteWith(fn func(m *formbind.Mapping, t formbind.Target, v any) error) *FieldStep {
	f.spec.Writer.Proc = fn
	return f
}

// ReadOnly disables the write side of the field.
func (f *FieldStep) ReadOnly() *FieldStep {
	f.spec.Writer = formbind.WriterSpec{Disabled: true}
	return f
}

// WriteOnly disables the read side of the field.
func (f *FieldStep) WriteOnly() *FieldStep {
	f.spec.Reader = formbind.ReaderSpec{Disabled: true}
	return f
}

// Multiparam flags the binding as assembled from composite keys by the
// params collaborator.
func (f *FieldStep) Multiparam(k formbind.MultiparamKind) *FieldStep {
	f.spec.Multiparam = k
	return f
}

func (f *FieldStep) Field(name string) *FieldStep { return f.b.Field(name) }
func (f *FieldStep) Trait(name string, body func(t *Builder)) *Builder {
	return f.b.Trait(name, body)
}
func (f *FieldStep) Mount(key string, sub *formbind.Definition, opts ...formbind.MountOption) *Builder {
	return f.b.Mount(key, sub, opts...)
}
func (f *FieldStep) Build() (*formbind.Definition, error) { return f.b.Build() }
func (f *FieldStep) MustBuild() *formbind.Definition      { return f.b.MustBuild() }
