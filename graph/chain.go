package graph

import (
	"context"
	"errors"
)

// Chain executes stages sequentially in causal order.
// The first stage failure stops the chain.
type Chain[S any] struct {
	name  string
	steps []Step[S]
}

// NewChain creates a sequential chain of stages.
func NewChain[S any](name string, steps ...Step[S]) *Chain[S] {
	return &Chain[S]{name: name, steps: steps}
}

// Name returns the chain name.
func (c *Chain[S]) Name() string { return c.name }

// Run executes each stage in order against the shared state.
func (c *Chain[S]) Run(ctx context.Context, state *S, opts ...Option) error {
	options := ApplyOptions(opts...)

	for _, step := range c.steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		stepCtx := ctx
		if options.StageTimeout > 0 {
			var cancel context.CancelFunc
			stepCtx, cancel = context.WithTimeout(ctx, options.StageTimeout)
			defer cancel()
		}

		emit(options.Observer, Event{Type: EventStageStart, RunID: options.runID, Stage: step.Name()})
		err := step.Run(stepCtx, state, opts...)
		emit(options.Observer, Event{Type: EventStageEnd, RunID: options.runID, Stage: step.Name(), Err: err})

		if err != nil {
			return wrapStage(step.Name(), err)
		}
	}

	return nil
}

// wrapStage attaches the stage name to an error unless it already carries one.
func wrapStage(name string, err error) error {
	var stageErr *StageError
	var fanoutErr *FanOutError
	var preErr *PreconditionError
	if errors.As(err, &stageErr) || errors.As(err, &fanoutErr) || errors.As(err, &preErr) {
		return err
	}
	return &StageError{Stage: name, Err: err}
}
