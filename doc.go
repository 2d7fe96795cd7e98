// Package formbind provides:
//
// - Declarative binding of external form/param names to attributes on one or
//   more underlying target objects (Definition/Mapping/Reader/Writer)
// - Composition of mappers over several related targets via mountings, with
//   optional named traits and a per-instance inline extension
// - A stable error model via Issues (field path, code, message)
// - Params intake from JSON, YAML and url.Values, including Rails-style
//   multiparam date/time folding
//
// Design policy:
// - Keep only public APIs in the root package; put reflection details under internal/.
// - Place the fluent builder under dsl/ and value transforms under format/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	def := buildDefinition()
//	m, err := def.Bind(target, formbind.WithTraits("with_address"))
//	fields, err := m.Read()
//	err = m.Write(formbind.Params{"email": "a@b.example"})
//	err = m.Apply(ctx, params)
package formbind
