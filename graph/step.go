package graph

import "context"

// Step represents a single stage in a pipeline over state type S.
// Steps can be functions, LLM-backed stages, or nested compositions
// such as chains, routers, and fan-outs.
type Step[S any] interface {
	// Name returns a unique identifier for the stage.
	Name() string

	// Run executes the stage against the shared state.
	Run(ctx context.Context, state *S, opts ...Option) error
}

// StepFunc is a function signature for simple stage implementations.
type StepFunc[S any] func(ctx context.Context, state *S) error

// FuncStep wraps a function as a Step.
type FuncStep[S any] struct {
	name string
	fn   StepFunc[S]
}

// NewFuncStep creates a stage from a function.
func NewFuncStep[S any](name string, fn StepFunc[S]) *FuncStep[S] {
	return &FuncStep[S]{name: name, fn: fn}
}

// Name returns the stage name.
func (f *FuncStep[S]) Name() string { return f.name }

// Run executes the function.
func (f *FuncStep[S]) Run(ctx context.Context, state *S, opts ...Option) error {
	return f.fn(ctx, state)
}
