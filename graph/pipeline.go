package graph

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Termination describes how a pipeline run ended.
type Termination string

const (
	TerminationComplete  Termination = "complete"
	TerminationError     Termination = "error"
	TerminationTimeout   Termination = "timeout"
	TerminationCancelled Termination = "cancelled"
)

// Result reports the outcome of a pipeline run.
type Result[S any] struct {
	// RunID uniquely identifies the run.
	RunID string

	// State is the final shared state, complete on success and partial
	// up to the failing stage otherwise.
	State *S

	// Termination describes how the run ended.
	Termination Termination

	// Err is the originating failure when Termination is not complete.
	Err error
}

// Pipeline wraps a root stage as a runnable unit with run identity and a
// termination report.
type Pipeline[S any] struct {
	name string
	root Step[S]
}

// NewPipeline creates a pipeline from its root stage, typically a [Chain].
func NewPipeline[S any](name string, root Step[S]) *Pipeline[S] {
	return &Pipeline[S]{name: name, root: root}
}

// Name returns the pipeline name.
func (p *Pipeline[S]) Name() string { return p.name }

// Run executes the pipeline against the given state. The returned Result
// always carries the run ID and final state; Err and the error return are
// the same value.
func (p *Pipeline[S]) Run(ctx context.Context, state *S, opts ...Option) (*Result[S], error) {
	runID := uuid.NewString()
	opts = append(opts, withRunID(runID))
	options := ApplyOptions(opts...)

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	emit(options.Observer, Event{Type: EventRunStart, RunID: runID, Stage: p.name})

	err := p.root.Run(ctx, state, opts...)

	emit(options.Observer, Event{Type: EventRunEnd, RunID: runID, Stage: p.name, Err: err})

	result := &Result[S]{
		RunID:       runID,
		State:       state,
		Termination: terminationFor(err),
		Err:         err,
	}
	return result, err
}

func terminationFor(err error) Termination {
	switch {
	case err == nil:
		return TerminationComplete
	case errors.Is(err, context.DeadlineExceeded):
		return TerminationTimeout
	case errors.Is(err, context.Canceled):
		return TerminationCancelled
	default:
		return TerminationError
	}
}
