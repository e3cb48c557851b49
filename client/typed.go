package client

import (
	"context"
	"encoding/json"
	"reflect"

	ai "github.com/spetersoncode/inkwell"
)

// ChatTyped sends a chat request constrained to the given response schema
// and unmarshals the JSON response into type T.
//
// It combines WithResponseSchema and json.Unmarshal into a single call:
//
//	plan, err := client.ChatTyped[blog.Plan](ctx, c, blog.PlanSchema(), msgs)
//
// A response that does not parse as T is reported as an
// [inkwell.UnmarshalError] wrapping the raw content. All provided options
// are passed through to the underlying Chat call.
func ChatTyped[T any](ctx context.Context, c *Client, rs ai.ResponseSchema, msgs []ai.Message, opts ...ai.Option) (T, error) {
	var zero T

	// Prepend the response schema option so caller opts can override it
	allOpts := make([]ai.Option, 0, len(opts)+1)
	allOpts = append(allOpts, ai.WithResponseSchema(rs))
	allOpts = append(allOpts, opts...)

	resp, err := c.Chat(ctx, msgs, allOpts...)
	if err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal([]byte(resp.Content), &result); err != nil {
		return zero, &ai.UnmarshalError{
			Content:    resp.Content,
			TargetType: reflect.TypeOf(result).String(),
			Err:        err,
		}
	}

	return result, nil
}
