package formbind

import (
	"gopkg.in/yaml.v3"
)

// ParamsFromYAML decodes a YAML mapping into Params. Useful for fixtures and
// config-driven form payloads.
func ParamsFromYAML(b []byte) (Params, error) {
	var out map[string]any
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "invalid YAML params", Cause: err}}
	}
	if out == nil {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "expected a YAML mapping"}}
	}
	return Params(out), nil
}
