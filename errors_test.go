package inkwell

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name      string
		err       *Error
		category  ErrorCategory
		retryable bool
		code      int
	}{
		{"transient", NewTransientError("rate limited", 429, cause), ErrorTransient, true, 429},
		{"permanent", NewPermanentError("invalid key", 401, nil), ErrorPermanent, false, 401},
		{"user input", NewUserInputError("empty prompt", 400, nil), ErrorUserInput, false, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category())
			assert.Equal(t, tt.retryable, tt.err.Retryable())
			assert.Equal(t, tt.code, tt.err.StatusCode())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	withCause := NewTransientError("request failed", 500, errors.New("boom"))
	assert.Equal(t, "request failed: boom", withCause.Error())

	withoutCause := NewPermanentError("model not found", 404, nil)
	assert.Equal(t, "model not found", withoutCause.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewTransientError("wrapped", 503, cause)

	assert.ErrorIs(t, err, cause)
}

func TestErrorRetryAfter(t *testing.T) {
	err := NewTransientErrorWithRetry("rate limited", 429, 30*time.Second, nil)

	assert.Equal(t, 30*time.Second, err.RetryAfter())
	assert.True(t, err.Retryable())

	plain := NewTransientError("rate limited", 429, nil)
	assert.Equal(t, time.Duration(0), plain.RetryAfter())
}

func TestCategorizedErrorThroughWrapping(t *testing.T) {
	inner := NewTransientError("overloaded", 529, nil)
	wrapped := fmt.Errorf("chat: %w", inner)

	var ce CategorizedError
	require.ErrorAs(t, wrapped, &ce)
	assert.Equal(t, ErrorTransient, ce.Category())
	assert.Equal(t, 529, ce.StatusCode())
}

func TestUnmarshalErrorMessage(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")

	withContext := &UnmarshalError{
		Context:    "blog: planning",
		Content:    "{",
		TargetType: "blog.Plan",
		Err:        cause,
	}
	assert.Equal(t, "blog: planning: failed to unmarshal response into blog.Plan: unexpected end of JSON input", withContext.Error())
	assert.ErrorIs(t, withContext, cause)

	bare := &UnmarshalError{TargetType: "blog.Decision", Err: cause}
	assert.Equal(t, "failed to unmarshal response into blog.Decision: unexpected end of JSON input", bare.Error())
}
