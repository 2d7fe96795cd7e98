// Package dsl provides the fluent builder over formbind.Definition.
//
//	def := dsl.NewMapper("person").
//		Field("first_name").
//		Field("email").ReadVia("contact_email").
//		Trait("with_address", func(t *dsl.Builder) {
//			t.Field("city")
//			t.Mount("address", addressDef, formbind.MountTarget(formbind.TargetAttr("address")))
//		}).
//		MustBuild()
//
// Build validates the whole definition graph; MustBuild panics on
// configuration errors, which is the intended style for package-level
// definitions.
package dsl
