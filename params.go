package formbind

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Params carries incoming form/param values keyed by external field name.
type Params map[string]any

// Get returns the value stored under key.
func (p Params) Get(key string) (any, bool) { v, ok := p[key]; return v, ok }

// Clone returns a shallow copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into p and returns p. Existing keys are
// overwritten.
func (p Params) Merge(other Params) Params {
	for k, v := range other {
		p[k] = v
	}
	return p
}

// ParamsFromValues flattens url.Values into Params. Single-valued keys become
// strings; keys with a "[]" suffix (or repeated keys) become string slices.
func ParamsFromValues(vs url.Values) Params {
	out := make(Params, len(vs))
	for k, v := range vs {
		if strings.HasSuffix(k, "[]") {
			out[strings.TrimSuffix(k, "[]")] = append([]string(nil), v...)
			continue
		}
		if len(v) == 1 {
			out[k] = v[0]
			continue
		}
		out[k] = append([]string(nil), v...)
	}
	return out
}

// MultiparamKind flags a Mapping whose external value arrives split across
// several component keys sharing the mapping name as prefix.
type MultiparamKind int

const (
	MultiparamNone MultiparamKind = iota
	MultiparamDate                // name(1i)..name(3i) -> time.Time at midnight UTC
	MultiparamTime                // name(1i)..name(5i) -> time.Time with hour/minute
)

var multiparamKey = regexp.MustCompile(`^(.+)\(([1-5])i\)$`)

// FoldMultiparams reconstructs Rails-style composite date/time keys
// (attr(1i)=year .. attr(5i)=minute) into a single time.Time entry per base
// key. Component keys are consumed; incomplete sets (missing year, month or
// day) are left untouched. Reconstruction is a collaborator-side concern;
// mappings only carry the MultiparamKind flag.
func FoldMultiparams(p Params) Params {
	parts := map[string]map[int]int{}
	for k, v := range p {
		m := multiparamKey.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		n, err := multiparamInt(v)
		if err != nil {
			continue
		}
		base := m[1]
		pos, _ := strconv.Atoi(m[2])
		if parts[base] == nil {
			parts[base] = map[int]int{}
		}
		parts[base][pos] = n
	}

	out := p.Clone()
	for base, comp := range parts {
		y, okY := comp[1]
		mo, okM := comp[2]
		d, okD := comp[3]
		if !okY || !okM || !okD {
			continue
		}
		t := time.Date(y, time.Month(mo), d, comp[4], comp[5], 0, 0, time.UTC)
		out[base] = t
		for pos := range comp {
			delete(out, base+"("+strconv.Itoa(pos)+"i)")
		}
	}
	return out
}

func multiparamInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, strconv.ErrSyntax
}
