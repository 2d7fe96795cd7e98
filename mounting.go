package formbind

import (
	"github.com/formbind/formbind/i18n"
)

// TargetRule resolves the target object a mounted mapper binds to, given the
// host instance. A nil rule inherits the host's target (the trait case).
type TargetRule func(host *Mapper) (Target, error)

// FixedTarget mounts onto a fixed object, adapted via Of.
func FixedTarget(v any) TargetRule {
	return func(*Mapper) (Target, error) { return Of(v) }
}

// TargetAttr mounts onto the object stored under attrName on the host's
// target, typically an associated record.
func TargetAttr(attrName string) TargetRule {
	return func(host *Mapper) (Target, error) {
		v, ok := host.Target().Get(attrName)
		if !ok || v == nil {
			return nil, Issues{{Path: "/" + attrName, Code: CodeTargetUnresolved, Message: i18n.T(CodeTargetUnresolved, nil), Hint: attrName}}
		}
		return Of(v)
	}
}

// TargetFunc derives the target from the host with custom logic.
func TargetFunc(fn func(host *Mapper) (Target, error)) TargetRule { return fn }

// MountOption configures a mounting factory at registration time.
type MountOption func(*MountingFactory)

// MountTarget sets the target-resolution rule.
func MountTarget(rule TargetRule) MountOption {
	return func(f *MountingFactory) { f.rule = rule }
}

// MountSuffix suffixes every field of the mounted mapper (and its own
// mountings) to disambiguate structurally similar targets.
func MountSuffix(s string) MountOption {
	return func(f *MountingFactory) { f.suffix = s }
}

// RequiredFor composes the mounting whenever any of the listed trait names is
// active, even if the mounting's own trait differs. Supports cross-trait
// dependencies.
func RequiredFor(traits ...string) MountOption {
	return func(f *MountingFactory) { f.requiredFor = append(f.requiredFor, traits...) }
}

// MountingFactory describes one sub-mapper to instantiate per host instance:
// the mounted definition, how to resolve its target, and under which traits
// it composes. Factories are registered once on a Definition and never
// mutated afterward, so they are shared read-only across instances.
type MountingFactory struct {
	key         string
	def         *Definition
	rule        TargetRule
	traitName   string
	requiredFor []string
	owned       bool
	traited     bool
	suffix      string
}

// Key returns the registered identifier (the trait name for traits).
func (f *MountingFactory) Key() string { return f.key }

// TraitName returns the trait this factory was registered under, if any.
func (f *MountingFactory) TraitName() string { return f.traitName }

// Owned reports whether the factory came from trait registration rather than
// an explicit mount of an independent mapper.
func (f *MountingFactory) Owned() bool { return f.owned }

// Traited reports whether the factory carries a trait name.
func (f *MountingFactory) Traited() bool { return f.traited }

// RequiredForAnyTrait reports whether the factory composes under the given
// active trait set: non-traited factories always do; traited factories when
// their own trait is active, when an active trait lists them as required, or
// when one of their nested trait names is active (activating a nested trait
// composes the enclosing chain).
func (f *MountingFactory) RequiredForAnyTrait(active map[string]struct{}) bool {
	if !f.traited {
		return true
	}
	if _, ok := active[f.traitName]; ok {
		return true
	}
	for _, t := range f.requiredFor {
		if _, ok := active[t]; ok {
			return true
		}
	}
	for name := range active {
		if f.def != nil && f.def.containsTrait(name) {
			return true
		}
	}
	return false
}

// create instantiates the mounted mapper bound to the resolved target,
// passing the active traits down so nested traits resolve at their own
// level. An unresolvable target is a configuration error.
func (f *MountingFactory) create(host *Mapper, active []string) (*Mapper, error) {
	tgt := host.target
	if f.rule != nil {
		t, err := f.rule(host)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, Issues{{Path: "/" + f.key, Code: CodeTargetUnresolved, Message: i18n.T(CodeTargetUnresolved, nil), Hint: f.key}}
		}
		tgt = t
	}
	suffix := f.suffix
	if suffix == "" {
		suffix = host.suffix
	}
	return f.def.compose(tgt, composeState{
		host:      host,
		active:    active,
		owned:     f.owned,
		traitName: f.traitName,
		key:       f.key,
		suffix:    suffix,
	})
}
