package formbind_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	formbind "github.com/formbind/formbind"
)

func TestParamsFromValues_Flattening(t *testing.T) {
	vs := url.Values{}
	vs.Set("name", "Ada")
	vs.Add("tags[]", "a")
	vs.Add("tags[]", "b")
	vs.Add("multi", "1")
	vs.Add("multi", "2")

	p := formbind.ParamsFromValues(vs)
	require.Equal(t, "Ada", p["name"])
	require.Equal(t, []string{"a", "b"}, p["tags"])
	require.Equal(t, []string{"1", "2"}, p["multi"])
}

func TestFoldMultiparams_Date(t *testing.T) {
	p := formbind.Params{
		"published_at(1i)": "2026",
		"published_at(2i)": "8",
		"published_at(3i)": "23",
		"title":            "x",
	}
	out := formbind.FoldMultiparams(p)

	got, ok := out["published_at"].(time.Time)
	require.True(t, ok, "expected folded time.Time, got %T", out["published_at"])
	require.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), got)
	require.NotContains(t, out, "published_at(1i)")
	require.Equal(t, "x", out["title"])

	// original params untouched
	require.Contains(t, p, "published_at(1i)")
}

func TestFoldMultiparams_DateTimeAndIncomplete(t *testing.T) {
	p := formbind.Params{
		"starts_at(1i)": 2026,
		"starts_at(2i)": 1,
		"starts_at(3i)": 2,
		"starts_at(4i)": 9,
		"starts_at(5i)": 30,
		// missing day: left untouched
		"ends_at(1i)": "2026",
		"ends_at(2i)": "1",
	}
	out := formbind.FoldMultiparams(p)

	require.Equal(t, time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC), out["starts_at"])
	require.NotContains(t, out, "ends_at")
	require.Contains(t, out, "ends_at(1i)")
}

func TestFoldMultiparams_FeedsMultiparamMapping(t *testing.T) {
	def := formbind.NewDefinition("event").
		AddField(formbind.MappingSpec{Name: "starts_at", Multiparam: formbind.MultiparamTime})
	tgt := formbind.MapTarget{}
	m := def.MustBind(tgt)

	require.Equal(t, formbind.MultiparamTime, m.Mappings()[0].Multiparam())

	raw := formbind.Params{
		"starts_at(1i)": "2026", "starts_at(2i)": "8",
		"starts_at(3i)": "23", "starts_at(4i)": "10", "starts_at(5i)": "0",
	}
	require.NoError(t, m.Write(formbind.FoldMultiparams(raw)))
	require.Equal(t, time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC), tgt["starts_at"])
}

func TestParamsFromJSON(t *testing.T) {
	p, err := formbind.ParamsFromJSON([]byte(`{"name":"Ada","age":36}`))
	require.NoError(t, err)
	require.Equal(t, "Ada", p["name"])

	_, err = formbind.ParamsFromJSON([]byte(`{"name":`))
	iss, ok := formbind.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, formbind.CodeParseError, iss[0].Code)

	_, err = formbind.ParamsFromJSON([]byte(`null`))
	iss, ok = formbind.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, formbind.CodeInvalidType, iss[0].Code)
}

func TestParamsFromJSONReader(t *testing.T) {
	p, err := formbind.ParamsFromJSONReader(strings.NewReader(`{"ok":true}`))
	require.NoError(t, err)
	require.Equal(t, true, p["ok"])
}

func TestParamsFromYAML(t *testing.T) {
	p, err := formbind.ParamsFromYAML([]byte("name: Ada\nage: 36\n"))
	require.NoError(t, err)
	require.Equal(t, "Ada", p["name"])
	require.Equal(t, 36, p["age"])

	_, err = formbind.ParamsFromYAML([]byte(":\n-"))
	iss, ok := formbind.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, formbind.CodeParseError, iss[0].Code)
}

func TestParams_CloneAndMerge(t *testing.T) {
	p := formbind.Params{"a": 1}
	c := p.Clone()
	c["a"] = 2
	require.Equal(t, 1, p["a"])

	p.Merge(formbind.Params{"b": 3})
	require.Equal(t, 3, p["b"])

	v, ok := p.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	_, ok = p.Get("nope")
	require.False(t, ok)
}
