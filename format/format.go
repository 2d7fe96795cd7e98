// Package format holds the named value transforms applied by formatted
// readers. Transforms run on the raw attribute value after the read and
// before the value enters the params result.
package format

import (
	"fmt"
	"strings"
	"sync"
)

// Func transforms a raw attribute value into its external representation.
type Func func(v any) (any, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Func{}
)

// Register associates name with fn, replacing any previous registration.
// Nil funcs are ignored.
func Register(name string, fn Func) {
	if fn == nil {
		return
	}
	registryMu.Lock()
	registry[name] = fn
	registryMu.Unlock()
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Func, bool) {
	registryMu.RLock()
	fn, ok := registry[name]
	registryMu.RUnlock()
	return fn, ok
}

func init() {
	Register("rfc3339", RFC3339)
	Register("string", Stringify)
	Register("upcase", Upcase)
	Register("downcase", Downcase)
}

// Stringify renders any value via fmt. Nil stays nil so absent attributes do
// not surface as "<nil>".
func Stringify(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return fmt.Sprint(v), nil
}

// Upcase upper-cases string values; other types are rejected.
func Upcase(v any) (any, error) {
	s, err := asString(v)
	if err != nil || s == nil {
		return nil, err
	}
	return strings.ToUpper(*s), nil
}

// Downcase lower-cases string values; other types are rejected.
func Downcase(v any) (any, error) {
	s, err := asString(v)
	if err != nil || s == nil {
		return nil, err
	}
	return strings.ToLower(*s), nil
}

func asString(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("format: expected string, got %T", v)
	}
	return &s, nil
}
