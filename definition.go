package formbind

import (
	"strings"

	"github.com/formbind/formbind/i18n"
)

// ExtensionTrait is the reserved trait name for the per-instance inline
// extension. Extension mountings are composed before other same-level traits.
const ExtensionTrait = "extension"

// MappingSpec declares one external-field binding on a Definition.
type MappingSpec struct {
	Name            string
	TargetAttribute string // defaults to Name
	Reader          ReaderSpec
	Writer          WriterSpec
	Multiparam      MultiparamKind
}

// ReaderSpec selects the read strategy: Disabled -> none, Accessor -> method
// read, Proc -> user function, Format -> formatted basic read, zero value ->
// basic passthrough.
type ReaderSpec struct {
	Disabled bool
	Accessor string
	Proc     func(m *Mapping, t Target) (any, error)
	Format   string
}

func (s ReaderSpec) resolve() (Reader, error) {
	switch {
	case s.Disabled:
		return nil, nil
	case s.Accessor != "":
		return MethodReader{Accessor: s.Accessor}, nil
	case s.Proc != nil:
		return ProcReader{Fn: s.Proc}, nil
	case s.Format != "":
		fr, err := NewFormattedReader(s.Format)
		if err != nil {
			return nil, err
		}
		return fr, nil
	default:
		return BasicReader{}, nil
	}
}

// WriterSpec selects the write strategy analogously to ReaderSpec.
type WriterSpec struct {
	Disabled bool
	Accessor string
	Proc     func(m *Mapping, t Target, v any) error
}

func (s WriterSpec) resolve() Writer {
	switch {
	case s.Disabled:
		return nil
	case s.Accessor != "":
		return MethodWriter{Accessor: s.Accessor}
	case s.Proc != nil:
		return ProcWriter{Fn: s.Proc}
	default:
		return BasicWriter{}
	}
}

// Definition is the per-class descriptor of a mapper: its field bindings and
// its registered mounting factories (traits included). Definitions are
// assembled once at program definition time and are read-only during Bind,
// so instances may be composed concurrently without synchronization.
type Definition struct {
	name      string
	mappings  []MappingSpec
	factories []*MountingFactory
}

// NewDefinition creates an empty Definition with a debug name.
func NewDefinition(name string) *Definition {
	return &Definition{name: name}
}

// Name returns the debug name. Trait definitions registered without a name
// get the deterministic <Host><Trait>Trait form.
func (d *Definition) Name() string { return d.name }

// AddField registers a field binding and returns d for chaining.
func (d *Definition) AddField(spec MappingSpec) *Definition {
	d.mappings = append(d.mappings, spec)
	return d
}

// AddMounting registers an independent sub-mapper mount under key.
func (d *Definition) AddMounting(key string, sub *Definition, opts ...MountOption) *Definition {
	f := &MountingFactory{key: key, def: sub}
	for _, opt := range opts {
		opt(f)
	}
	d.factories = append(d.factories, f)
	return d
}

// AddTrait registers sub as an owned, traited mounting under name. Trait
// mappers bind to the host's own target. Traits nest: sub may register
// further traits resolved at its own level.
func (d *Definition) AddTrait(name string, sub *Definition, opts ...MountOption) *Definition {
	if sub != nil && sub.name == "" {
		sub.name = d.name + camelize(name) + "Trait"
	}
	f := &MountingFactory{key: name, def: sub, owned: true, traited: true, traitName: name}
	for _, opt := range opts {
		opt(f)
	}
	d.factories = append(d.factories, f)
	return d
}

// containsTrait reports whether name is registered as a trait on d or on any
// definition reachable through d's factories.
func (d *Definition) containsTrait(name string) bool {
	for _, f := range d.factories {
		if f.traited && f.traitName == name {
			return true
		}
		if f.def != nil && f.def.containsTrait(name) {
			return true
		}
	}
	return false
}

// Validate checks the definition graph for configuration errors: duplicate
// field names within one definition, unknown formats, duplicate mounting
// keys, nil or cyclic mounted definitions. Bind runs it implicitly.
func (d *Definition) Validate() error {
	iss := d.validate(nil, map[*Definition]bool{})
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (d *Definition) validate(iss Issues, seen map[*Definition]bool) Issues {
	if seen[d] {
		return AppendIssues(iss, Issue{Path: "/", Code: CodeInvalidMounting, Message: i18n.T(CodeInvalidMounting, nil), Hint: "definition mounts itself, directly or transitively: " + d.name})
	}
	seen[d] = true
	defer delete(seen, d)

	names := map[string]bool{}
	for _, spec := range d.mappings {
		if spec.Name == "" {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeInvalidMounting, Message: i18n.T(CodeInvalidMounting, nil), Hint: "field with empty name on " + d.name})
			continue
		}
		if names[spec.Name] {
			iss = AppendIssues(iss, Issue{Path: "/" + spec.Name, Code: CodeDuplicateName, Message: i18n.T(CodeDuplicateName, nil), Params: map[string]any{"name": spec.Name}})
		}
		names[spec.Name] = true
		if f := spec.Reader.Format; f != "" && !spec.Reader.Disabled {
			if _, err := NewFormattedReader(f); err != nil {
				iss = AppendIssues(iss, Issue{Path: "/" + spec.Name, Code: CodeUnknownFormat, Message: i18n.T(CodeUnknownFormat, nil), Hint: f})
			}
		}
	}

	keys := map[string]bool{}
	for _, f := range d.factories {
		if f.key == "" || f.def == nil {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeInvalidMounting, Message: i18n.T(CodeInvalidMounting, nil), Hint: "mounting without key or definition on " + d.name})
			continue
		}
		if keys[f.key] {
			iss = AppendIssues(iss, Issue{Path: "/" + f.key, Code: CodeInvalidMounting, Message: i18n.T(CodeInvalidMounting, nil), Hint: "duplicate mounting key " + f.key})
		}
		keys[f.key] = true
		iss = f.def.validate(iss, seen)
	}
	return iss
}

func camelize(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
