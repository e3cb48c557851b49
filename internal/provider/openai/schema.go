package openai

import (
	"encoding/json"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/inkwell"
)

// buildSchemaFormat maps a response schema onto OpenAI's json_schema
// response format. Strict mode is enabled, which requires
// additionalProperties: false on every object in the schema tree.
func buildSchemaFormat(rs *ai.ResponseSchema) openai.ChatCompletionNewParamsResponseFormatUnion {
	var schemaMap map[string]any
	json.Unmarshal(rs.Schema, &schemaMap)

	name := rs.Name
	if name == "" {
		name = "response_schema"
	}

	addAdditionalPropertiesFalse(schemaMap)

	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			Type: "json_schema",
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:        name,
				Description: openai.String(rs.Description),
				Schema:      schemaMap,
				Strict:      openai.Bool(true),
			},
		},
	}
}

// addAdditionalPropertiesFalse walks the schema tree adding
// additionalProperties: false to every object node.
func addAdditionalPropertiesFalse(schema map[string]any) {
	if schema == nil {
		return
	}

	if schemaType, ok := schema["type"].(string); ok && schemaType == "object" {
		schema["additionalProperties"] = false
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		for _, propSchema := range props {
			if propMap, ok := propSchema.(map[string]any); ok {
				addAdditionalPropertiesFalse(propMap)
			}
		}
	}

	if items, ok := schema["items"].(map[string]any); ok {
		addAdditionalPropertiesFalse(items)
	}
}
