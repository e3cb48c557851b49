package inkwell

import "encoding/json"

// Model identifies a chat model and the provider that serves it.
// The [github.com/spetersoncode/inkwell/model] package provides the
// curated implementations.
type Model interface {
	// String returns the API identifier for this model.
	String() string
	// Provider returns which provider this model belongs to.
	Provider() Provider
}

// ResponseSchema requests structured JSON output conforming to a schema.
type ResponseSchema struct {
	// Name identifies the schema to the provider.
	Name string
	// Description is optional guidance shown to the model.
	Description string
	// Schema is the JSON Schema the response must conform to.
	Schema json.RawMessage
}

// Options contains configuration for a chat request.
type Options struct {
	Model          Model
	MaxTokens      int
	Temperature    *float64
	ResponseSchema *ResponseSchema
}

// Option is a functional option for configuring chat requests.
type Option func(*Options)

// WithModel sets the model to use for the request.
func WithModel(model Model) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithResponseSchema requests structured JSON output matching the schema.
// Providers that cannot enforce the schema natively emulate it; a response
// that does not conform surfaces as an UnmarshalError at the call site.
func WithResponseSchema(schema ResponseSchema) Option {
	return func(o *Options) {
		o.ResponseSchema = &schema
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
