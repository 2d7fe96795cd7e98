package formbind

import (
	"context"
	"reflect"

	"github.com/formbind/formbind/i18n"
)

// BindOption configures one mapper instance at construction time.
type BindOption func(*bindConfig)

type bindConfig struct {
	traits    []string
	extension *Definition
	mounts    []*MountingFactory
}

// WithTraits activates the named traits for this instance. Active traits are
// fixed for the instance's lifetime.
func WithTraits(names ...string) BindOption {
	return func(c *bindConfig) { c.traits = append(c.traits, names...) }
}

// WithExtension registers sub as the per-instance inline extension trait. It
// composes before other same-level traits so extension-defined fields are
// visible to sibling trait logic.
func WithExtension(sub *Definition) BindOption {
	return func(c *bindConfig) { c.extension = sub }
}

// WithMount registers an ad hoc instance-specific mounting, appended after
// the definition's own factories.
func WithMount(key string, sub *Definition, opts ...MountOption) BindOption {
	return func(c *bindConfig) {
		f := &MountingFactory{key: key, def: sub}
		for _, opt := range opts {
			opt(f)
		}
		c.mounts = append(c.mounts, f)
	}
}

// Mapper is one composed instance of a Definition bound to a target: the
// host object combining its own Mappings with the sub-mappers produced by
// its mounting factories. Composition happens once, inside Bind; a Mapper is
// immutable afterwards and must not be shared across concurrent writers.
type Mapper struct {
	def          *Definition
	target       Target
	host         *Mapper
	key          string
	traitName    string
	owned        bool
	suffix       string
	activeTraits []string
	mappings     []*Mapping
	mountings    []*Mapper
}

// Bind composes a mapper instance over target. target may be a Target, a
// map[string]any/Params, or a struct pointer (adapted via Of). The whole
// mounting tree is built eagerly; configuration errors (unknown formats,
// unresolved mount targets, duplicate full names) surface here, not later.
func (d *Definition) Bind(target any, opts ...BindOption) (*Mapper, error) {
	var cfg bindConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	tgt, err := Of(target)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	singles := append([]*MountingFactory(nil), cfg.mounts...)
	active := append([]string(nil), cfg.traits...)
	if cfg.extension != nil {
		if cfg.extension.name == "" {
			cfg.extension.name = d.name + "ExtensionTrait"
		}
		if err := cfg.extension.Validate(); err != nil {
			return nil, err
		}
		singles = append(singles, &MountingFactory{
			key:       ExtensionTrait,
			def:       cfg.extension,
			owned:     true,
			traited:   true,
			traitName: ExtensionTrait,
		})
		active = append(active, ExtensionTrait)
	}
	for _, f := range singles {
		if f.def == nil {
			return nil, Issues{{Path: "/" + f.key, Code: CodeInvalidMounting, Message: i18n.T(CodeInvalidMounting, nil), Hint: "instance mounting without definition"}}
		}
		if err := f.def.Validate(); err != nil {
			return nil, err
		}
	}
	m, err := d.compose(tgt, composeState{active: active, singles: singles})
	if err != nil {
		return nil, err
	}
	if err := m.checkCollisions(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustBind is like Bind but panics on error.
func (d *Definition) MustBind(target any, opts ...BindOption) *Mapper {
	m, err := d.Bind(target, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

type composeState struct {
	host      *Mapper
	active    []string
	owned     bool
	traitName string
	key       string
	suffix    string
	singles   []*MountingFactory // instance-specific factories, root level only
}

func (d *Definition) compose(target Target, st composeState) (*Mapper, error) {
	m := &Mapper{
		def:          d,
		target:       target,
		host:         st.host,
		key:          st.key,
		traitName:    st.traitName,
		owned:        st.owned,
		suffix:       st.suffix,
		activeTraits: append([]string(nil), st.active...),
	}
	for _, spec := range d.mappings {
		mp, err := newMapping(m, spec)
		if err != nil {
			return nil, err
		}
		m.mappings = append(m.mappings, mp)
	}

	activeSet := make(map[string]struct{}, len(st.active))
	for _, t := range st.active {
		activeSet[t] = struct{}{}
	}
	factories := append([]*MountingFactory(nil), d.factories...)
	factories = append(factories, st.singles...)
	for _, f := range factories {
		if f.traited && !f.RequiredForAnyTrait(activeSet) {
			continue
		}
		child, err := f.create(m, st.active)
		if err != nil {
			return nil, err
		}
		m.mountings = append(m.mountings, child)
	}
	return m, nil
}

// Name returns the mapper's debug name (the definition name; traits carry
// the <Host><Trait>Trait form).
func (m *Mapper) Name() string { return m.def.Name() }

// Key returns the identifier this instance was mounted under, empty at the
// root.
func (m *Mapper) Key() string { return m.key }

// Target returns the bound target object (adapter included).
func (m *Mapper) Target() Target { return m.target }

// Host returns the mapper this instance was mounted on, nil at the root.
func (m *Mapper) Host() *Mapper { return m.host }

// Suffix returns the full-name suffix in effect for this mapper's fields.
func (m *Mapper) Suffix() string { return m.suffix }

// ActiveTraits returns the trait names active for this instance.
func (m *Mapper) ActiveTraits() []string { return append([]string(nil), m.activeTraits...) }

// Owned reports whether this instance represents a trait rather than an
// independently mounted mapper.
func (m *Mapper) Owned() bool { return m.owned }

// IsExtension reports whether this instance is the inline extension trait.
func (m *Mapper) IsExtension() bool { return m.traitName == ExtensionTrait }

// Mappings returns this mapper's own Mappings, excluding mounted ones.
func (m *Mapper) Mappings() []*Mapping { return append([]*Mapping(nil), m.mappings...) }

// Mountings returns the composed direct children in composition order.
func (m *Mapper) Mountings() []*Mapper { return append([]*Mapper(nil), m.mountings...) }

// TraitMountings returns the owned direct children. When an extension was
// composed it is moved to the front: extension-defined behavior must be
// processed before other same-level traits.
func (m *Mapper) TraitMountings() []*Mapper {
	var out []*Mapper
	for _, c := range m.mountings {
		if c.owned {
			out = append(out, c)
		}
	}
	if len(out) > 1 && out[len(out)-1].IsExtension() {
		last := out[len(out)-1]
		copy(out[1:], out[:len(out)-1])
		out[0] = last
	}
	return out
}

// MapperMountings returns the non-owned direct children: independently
// mounted mappers over their own targets.
func (m *Mapper) MapperMountings() []*Mapper {
	var out []*Mapper
	for _, c := range m.mountings {
		if !c.owned {
			out = append(out, c)
		}
	}
	return out
}

// SelfMountings flattens this mapper with every nested owned trait,
// depth-first and extension-first, representing the complete logical field
// surface of the node.
func (m *Mapper) SelfMountings() []*Mapper {
	var out []*Mapper
	for _, c := range m.TraitMountings() {
		out = append(out, c.SelfMountings()...)
	}
	return append(out, m)
}

// Trait returns the composed trait instance registered under name, searching
// this node and its nested owned traits. It returns nil when the trait was
// not activated; absence is not an error.
func (m *Mapper) Trait(name string) *Mapper {
	for _, node := range m.SelfMountings() {
		if node.traitName == name {
			return node
		}
	}
	return nil
}

// Extension returns the inline extension instance, or nil.
func (m *Mapper) Extension() *Mapper { return m.Trait(ExtensionTrait) }

// Mounting returns the composed child registered under key, searching the
// direct children of this node and of its nested owned traits.
func (m *Mapper) Mounting(key string) *Mapper {
	for _, node := range m.SelfMountings() {
		for _, c := range node.mountings {
			if c.key == key {
				return c
			}
		}
	}
	return nil
}

// FlattenedMappings returns every Mapping visible on this instance: its own,
// those of nested owned traits, and those of mounted mappers, in dispatch
// order.
func (m *Mapper) FlattenedMappings() []*Mapping {
	var out []*Mapping
	for _, node := range m.SelfMountings() {
		out = append(out, node.mappings...)
		for _, sub := range node.MapperMountings() {
			out = append(out, sub.FlattenedMappings()...)
		}
	}
	return out
}

// Read collects {fullName: value} across the whole composed tree. Order is
// deterministic (declaration order, extension first among same-level
// traits); strategy errors propagate unmodified.
func (m *Mapper) Read() (Params, error) {
	out := Params{}
	for _, node := range m.SelfMountings() {
		for _, mp := range node.mappings {
			p, err := mp.ReadAsParams()
			if err != nil {
				return nil, err
			}
			out.Merge(p)
		}
		for _, sub := range node.MapperMountings() {
			p, err := sub.Read()
			if err != nil {
				return nil, err
			}
			out.Merge(p)
		}
	}
	return out, nil
}

// Write pushes params into every Mapping of the composed tree, in the same
// deterministic order as Read. Unknown keys are ignored; strategy errors
// propagate unmodified.
func (m *Mapper) Write(p Params) error {
	for _, node := range m.SelfMountings() {
		for _, mp := range node.mappings {
			if _, _, err := mp.WriteFromParams(p); err != nil {
				return err
			}
		}
		for _, sub := range node.MapperMountings() {
			if err := sub.Write(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Apply writes params and then saves every distinct target in the tree that
// implements Saver, in composition order. Save errors propagate unmodified;
// transactional grouping stays with the caller.
func (m *Mapper) Apply(ctx context.Context, p Params) error {
	if err := m.Write(p); err != nil {
		return err
	}
	seen := map[uintptr]bool{}
	for _, node := range m.allNodes() {
		if id, ok := targetIdentity(node.target); ok {
			if seen[id] {
				continue
			}
			seen[id] = true
		}
		if s, ok := saverOf(node.target); ok {
			if err := s.Save(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Mapper) allNodes() []*Mapper {
	var out []*Mapper
	for _, node := range m.SelfMountings() {
		out = append(out, node)
		for _, sub := range node.MapperMountings() {
			out = append(out, sub.allNodes()...)
		}
	}
	return out
}

// targetIdentity distinguishes targets by the identity of the underlying
// object where one exists (pointers, maps). Targets without a stable
// identity are treated as distinct.
func targetIdentity(t Target) (uintptr, bool) {
	obj := any(t)
	if w, ok := t.(interface{ Unwrap() any }); ok {
		obj = w.Unwrap()
	}
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		return rv.Pointer(), true
	}
	return 0, false
}

// checkCollisions enforces the no-collision invariant: fullName values
// across the flattened composed Mapping set are pairwise distinct. Collision
// is a configuration error, reported fail-fast at Bind time.
func (m *Mapper) checkCollisions() error {
	seen := map[string]string{}
	var iss Issues
	for _, mp := range m.FlattenedMappings() {
		if prev, ok := seen[mp.FullName()]; ok {
			iss = AppendIssues(iss, Issue{
				Path:    "/" + mp.FullName(),
				Code:    CodeDuplicateName,
				Message: i18n.T(CodeDuplicateName, nil),
				Hint:    "declared by " + prev + " and " + mp.Mapper().Name(),
				Params:  map[string]any{"name": mp.FullName()},
			})
			continue
		}
		seen[mp.FullName()] = mp.Mapper().Name()
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
