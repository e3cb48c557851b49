package graph

import (
	"context"
	"sync"
)

// Dispatcher converts the shared state into independent work payloads.
// The returned slice sizes the fan-out width; each payload must be a
// self-contained copy so workers never observe each other's writes.
type Dispatcher[S, P any] func(state *S) ([]P, error)

// Worker turns one payload into one result. Workers are pure functions of
// their payload; they run concurrently and must not touch shared state.
type Worker[P, R any] func(ctx context.Context, payload P) (R, error)

// Joiner merges the collected results back into the shared state.
// Results arrive indexed by dispatch position regardless of completion
// order. Join runs after the barrier, before any downstream stage.
type Joiner[S, R any] func(state *S, results []R) error

// FanOut dispatches a dynamically-sized batch of parallel workers and
// joins on all of them before continuing. The width is unknown until
// Dispatch runs.
//
// Each worker writes only its own slot in a pre-sized result buffer, so
// the merge across branches is conflict-free without locking. A branch
// failure fails the whole fan-out with a [FanOutError]; the barrier never
// releases a partial result set downstream.
type FanOut[S, P, R any] struct {
	name     string
	dispatch Dispatcher[S, P]
	work     Worker[P, R]
	join     Joiner[S, R]
}

// NewFanOut creates a fan-out stage from its three phases.
func NewFanOut[S, P, R any](name string, dispatch Dispatcher[S, P], work Worker[P, R], join Joiner[S, R]) *FanOut[S, P, R] {
	return &FanOut[S, P, R]{
		name:     name,
		dispatch: dispatch,
		work:     work,
		join:     join,
	}
}

// Name returns the fan-out stage name.
func (f *FanOut[S, P, R]) Name() string { return f.name }

// Run dispatches payloads, executes workers concurrently, waits for all of
// them, and merges the results into the state.
func (f *FanOut[S, P, R]) Run(ctx context.Context, state *S, opts ...Option) error {
	options := ApplyOptions(opts...)

	payloads, err := f.dispatch(state)
	if err != nil {
		return wrapStage(f.name, err)
	}

	emit(options.Observer, Event{Type: EventFanOutStart, RunID: options.runID, Stage: f.name, Width: len(payloads)})

	results := make([]R, len(payloads))
	errs := make([]error, len(payloads))
	var wg sync.WaitGroup

	var sem chan struct{}
	if options.MaxConcurrency > 0 {
		sem = make(chan struct{}, options.MaxConcurrency)
	}

	for i, payload := range payloads {
		wg.Add(1)
		go func(idx int, p P) {
			defer wg.Done()

			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			workCtx := ctx
			if options.StageTimeout > 0 {
				var cancel context.CancelFunc
				workCtx, cancel = context.WithTimeout(ctx, options.StageTimeout)
				defer cancel()
			}

			result, err := f.work(workCtx, p)
			results[idx] = result
			errs[idx] = err

			emit(options.Observer, Event{Type: EventWorkerDone, RunID: options.runID, Stage: f.name, Worker: idx, Err: err})
		}(i, payload)
	}

	// Barrier: every dispatched branch must finish before anything merges.
	wg.Wait()

	branchErrs := make(map[int]error)
	for i, err := range errs {
		if err != nil {
			branchErrs[i] = err
		}
	}
	if len(branchErrs) > 0 {
		fanErr := &FanOutError{Stage: f.name, Branches: branchErrs}
		emit(options.Observer, Event{Type: EventFanOutEnd, RunID: options.runID, Stage: f.name, Width: len(payloads), Err: fanErr})
		return fanErr
	}

	if err := f.join(state, results); err != nil {
		err = wrapStage(f.name, err)
		emit(options.Observer, Event{Type: EventFanOutEnd, RunID: options.runID, Stage: f.name, Width: len(payloads), Err: err})
		return err
	}

	emit(options.Observer, Event{Type: EventFanOutEnd, RunID: options.runID, Stage: f.name, Width: len(payloads)})
	return nil
}
