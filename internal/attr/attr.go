package attr

import (
	"fmt"
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external attribute name.
// Priority: formbind:"name=..." > json tag name > snake_case field name;
// "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ft := sf.Tag.Get("formbind"); ft != "" {
		parts := strings.Split(ft, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return SnakeCase(sf.Name)
}

// SnakeCase converts an exported Go field name to its snake_case attribute
// form (FirstName -> first_name, HTTPPort -> http_port).
func SnakeCase(s string) string {
	var b strings.Builder
	rs := []rune(s)
	for i, r := range rs {
		if r >= 'A' && r <= 'Z' {
			lowerNext := i+1 < len(rs) && rs[i+1] >= 'a' && rs[i+1] <= 'z'
			if i > 0 && (lowerNext || !(rs[i-1] >= 'A' && rs[i-1] <= 'Z')) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Accessor reads and writes exported struct fields by resolved attribute name.
// It supports only top-level fields of the wrapped struct.
type Accessor struct {
	v     reflect.Value // addressable struct value
	index map[string]int
}

// Wrap builds an Accessor over a non-nil struct pointer.
func Wrap(v any) (*Accessor, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("attr: expected non-nil struct pointer, got %T", v)
	}
	elem := rv.Elem()
	rt := elem.Type()
	idx := make(map[string]int, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "" || key == "-" {
			continue
		}
		idx[key] = i
	}
	return &Accessor{v: elem, index: idx}, nil
}

// Get returns the field value for the resolved attribute name.
func (a *Accessor) Get(name string) (any, bool) {
	i, ok := a.index[name]
	if !ok {
		return nil, false
	}
	return a.v.Field(i).Interface(), true
}

// Set assigns val to the field for the resolved attribute name. Numeric
// values are converted when the kinds are compatible; anything else must be
// directly assignable.
func (a *Accessor) Set(name string, val any) error {
	i, ok := a.index[name]
	if !ok {
		return fmt.Errorf("attr: unknown attribute %q on %s", name, a.v.Type())
	}
	fv := a.v.Field(i)
	if val == nil {
		switch fv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
			fv.Set(reflect.Zero(fv.Type()))
			return nil
		}
		return fmt.Errorf("attr: cannot assign nil to %q (%s)", name, fv.Type())
	}
	rv := reflect.ValueOf(val)
	if rv.Type().AssignableTo(fv.Type()) {
		fv.Set(rv)
		return nil
	}
	if numeric(rv.Kind()) && numeric(fv.Kind()) {
		fv.Set(rv.Convert(fv.Type()))
		return nil
	}
	return fmt.Errorf("attr: cannot assign %T to %q (%s)", val, name, fv.Type())
}

// Names returns the resolved attribute names in no particular order.
func (a *Accessor) Names() []string {
	out := make([]string, 0, len(a.index))
	for k := range a.index {
		out = append(out, k)
	}
	return out
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
