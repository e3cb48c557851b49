// Package schema provides a fluent builder for JSON Schema objects used to
// request structured output from language models.
//
// Schemas compose from typed builders:
//
//	evidenceSchema := schema.Object().
//	    Field("title", schema.String().Required()).
//	    Field("url", schema.String().Desc("Source URL; identity key").Required()).
//	    Field("published_at", schema.String().Desc("ISO date or null")).
//	    MustBuild()
//
// The result is a json.RawMessage suitable for
// [github.com/spetersoncode/inkwell.ResponseSchema].
//
// Builders validate on Build: inverted numeric ranges, arrays without item
// schemas, and inconsistent item counts are rejected rather than silently
// serialized.
package schema
