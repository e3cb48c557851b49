package blog

import (
	"context"
	"encoding/json"
	"reflect"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/chat"
)

// chatJSON runs a structured-generation call and unmarshals the response
// into T. A non-conforming payload is rejected as an [ai.UnmarshalError]
// rather than coerced; schema mismatch counts as an external-service
// failure.
func chatJSON[T any](ctx context.Context, c chat.Client, stage string, rs ai.ResponseSchema, msgs []ai.Message, opts ...ai.Option) (T, error) {
	var zero T

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
			Context:    "blog: " + stage,
			Content:    resp.Content,
			TargetType: reflect.TypeOf(result).String(),
			Err:        err,
		}
	}
	return result, nil
}
