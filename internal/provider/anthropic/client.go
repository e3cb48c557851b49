// Package anthropic adapts the Anthropic SDK to the inkwell chat contract.
//
// Anthropic has no native JSON-schema response format, so structured output
// is emulated with a forced synthetic tool whose input schema is the
// requested response schema. The tool input comes back as the response
// content.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	ai "github.com/spetersoncode/inkwell"
)

// Client wraps the Anthropic SDK to implement the chat contract.
type Client struct {
	client *anthropic.Client
}

// New creates a new Anthropic client with the given API key.
func New(apiKey string) *Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &client}
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	if options.Model == nil {
		return nil, ai.NewUserInputError("anthropic: no model specified", 0, nil)
	}

	maxTokens := int64(4096)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	msgs, system := convertMessages(messages)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(options.Model.String()),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}

	useJSONTool := options.ResponseSchema != nil
	if useJSONTool {
		jsonTool, jsonToolChoice := buildJSONTool(options.ResponseSchema)
		params.Tools = []anthropic.ToolUnionParam{jsonTool}
		params.ToolChoice = jsonToolChoice
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	content := ""
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			content += block.Text
		case "tool_use":
			if useJSONTool && block.Name == jsonResponseToolName {
				content = string(block.Input)
			}
		}
	}

	return &ai.Response{
		Content:      content,
		FinishReason: string(resp.StopReason),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}, nil
}
