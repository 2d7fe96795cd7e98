package formbind

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// ParamsFromJSON decodes a JSON object into Params.
func ParamsFromJSON(b []byte) (Params, error) {
	var out Params
	if err := gojson.Unmarshal(b, &out); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "invalid JSON params", Cause: err}}
	}
	if out == nil {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "expected a JSON object"}}
	}
	return out, nil
}

// ParamsFromJSONReader decodes a JSON object from r into Params.
func ParamsFromJSONReader(r io.Reader) (Params, error) {
	var out Params
	dec := gojson.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "invalid JSON params", Cause: err}}
	}
	if out == nil {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "expected a JSON object"}}
	}
	return out, nil
}
