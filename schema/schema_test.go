package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSchema(t *testing.T) {
	data, err := String().Desc("a name").Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"string","description":"a name"}`, string(data))
}

func TestStringEnum(t *testing.T) {
	data, err := String().Enum("open_book", "hybrid", "closed_book").Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"string","enum":["open_book","hybrid","closed_book"]}`, string(data))
}

func TestIntSchemaWithRange(t *testing.T) {
	data, err := Int().Min(120).Max(550).Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"integer","minimum":120,"maximum":550}`, string(data))
}

func TestIntInvalidRange(t *testing.T) {
	_, err := Int().Min(10).Max(5).Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestBoolSchema(t *testing.T) {
	data, err := Bool().Desc("whether research is needed").Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"boolean","description":"whether research is needed"}`, string(data))
}

func TestArraySchema(t *testing.T) {
	data, err := Array(String()).MinItems(3).MaxItems(6).Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"array","items":{"type":"string"},"minItems":3,"maxItems":6}`, string(data))
}

func TestArrayInvalidItemRange(t *testing.T) {
	_, err := Array(Int().Min(5).Max(2)).Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestArrayInvalidMinMaxItems(t *testing.T) {
	_, err := Array(String()).MinItems(6).MaxItems(3).Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestObjectSchema(t *testing.T) {
	data, err := Object().
		Desc("a decision").
		Field("needs_research", Bool().Required()).
		Field("mode", String().Enum("open_book", "closed_book").Required()).
		Field("reason", String()).
		Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"description": "a decision",
		"properties": {
			"needs_research": {"type": "boolean"},
			"mode": {"type": "string", "enum": ["open_book", "closed_book"]},
			"reason": {"type": "string"}
		},
		"required": ["needs_research", "mode"]
	}`, string(data))
}

func TestObjectNestedValidation(t *testing.T) {
	_, err := Object().
		Field("count", Int().Min(9).Max(1).Required()).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "count", ve.Field)
}

func TestObjectAdditionalProperties(t *testing.T) {
	data, err := Object().
		Field("id", Int().Required()).
		AdditionalProperties(false).
		Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {"id": {"type": "integer"}},
		"required": ["id"],
		"additionalProperties": false
	}`, string(data))
}

func TestObjectRequiredDeduplicated(t *testing.T) {
	data, err := Object().
		Field("id", Int().Required()).
		Field("id", Int().Required()).
		Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {"id": {"type": "integer"}},
		"required": ["id"]
	}`, string(data))
}

func TestObjectFieldRejectsUnknownType(t *testing.T) {
	assert.Panics(t, func() {
		Object().Field("bad", "not a builder")
	})
}

func TestMustBuildPanicsOnInvalidSchema(t *testing.T) {
	assert.Panics(t, func() {
		Int().Min(10).Max(5).MustBuild()
	})
}

func TestNestedObjectArray(t *testing.T) {
	data, err := Object().
		Field("tasks", Array(
			Object().
				Field("id", Int().Min(1).Required()).
				Field("title", String().Required()),
		).MinItems(5).MaxItems(9).Required()).
		Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"tasks": {
				"type": "array",
				"minItems": 5,
				"maxItems": 9,
				"items": {
					"type": "object",
					"properties": {
						"id": {"type": "integer", "minimum": 1},
						"title": {"type": "string"}
					},
					"required": ["id", "title"]
				}
			}
		},
		"required": ["tasks"]
	}`, string(data))
}
