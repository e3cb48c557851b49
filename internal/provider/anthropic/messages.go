package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/inkwell"
)

// jsonResponseToolName is the name of the synthetic tool used for JSON mode.
const jsonResponseToolName = "__inkwell_json_response__"

// convertMessages maps inkwell messages onto Anthropic params. System
// messages become system text blocks; empty messages are skipped because
// the Anthropic API rejects empty text blocks.
func convertMessages(messages []ai.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case ai.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case ai.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return result, system
}

// buildJSONTool creates the synthetic tool that forces structured output.
func buildJSONTool(rs *ai.ResponseSchema) (anthropic.ToolUnionParam, anthropic.ToolChoiceUnionParam) {
	var schema map[string]any
	if rs != nil && len(rs.Schema) > 0 {
		json.Unmarshal(rs.Schema, &schema)
	} else {
		schema = map[string]any{
			"type":                 "object",
			"additionalProperties": true,
		}
	}

	description := "Output the response as structured JSON"
	if rs != nil && rs.Description != "" {
		description = rs.Description
	}

	var required []string
	if reqVal, ok := schema["required"].([]any); ok {
		for _, r := range reqVal {
			if s, ok := r.(string); ok {
				required = append(required, s)
			}
		}
	}

	toolParam := anthropic.ToolParam{
		Name:        jsonResponseToolName,
		Description: anthropic.String(description),
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: schema["properties"],
			Required:   required,
		},
	}

	toolChoice := anthropic.ToolChoiceUnionParam{
		OfTool: &anthropic.ToolChoiceToolParam{Name: jsonResponseToolName},
	}

	return anthropic.ToolUnionParam{OfTool: &toolParam}, toolChoice
}
