package format

import (
	"fmt"
	"time"
)

// RFC3339 renders a time.Time as its canonical RFC3339 string. Strings that
// already parse as RFC3339 are normalized; nil passes through.
func RFC3339(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return formatRFC3339Canonical(t), nil
	case *time.Time:
		if t == nil {
			return nil, nil
		}
		return formatRFC3339Canonical(*t), nil
	case string:
		parsed, err := parseRFC3339(t)
		if err != nil {
			return nil, fmt.Errorf("format: invalid RFC3339 time %q: %w", t, err)
		}
		return formatRFC3339Canonical(parsed), nil
	}
	return nil, fmt.Errorf("format: cannot render %T as RFC3339", v)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
