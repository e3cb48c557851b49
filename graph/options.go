package graph

import "time"

// Options contains configuration for pipeline execution.
type Options struct {
	// Timeout sets a deadline for the entire run.
	Timeout time.Duration

	// StageTimeout sets a default timeout for individual stages and
	// fan-out branches.
	StageTimeout time.Duration

	// MaxConcurrency limits concurrent fan-out branches (0 = unlimited).
	MaxConcurrency int

	// Observer receives engine events.
	Observer Observer

	runID string
}

// Option is a functional option for pipeline configuration.
type Option func(*Options)

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) Options {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithTimeout sets the overall run timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithStageTimeout sets the default timeout for each stage.
func WithStageTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.StageTimeout = d
	}
}

// WithMaxConcurrency limits concurrent fan-out branches.
// A value of 0 means unlimited concurrency.
func WithMaxConcurrency(n int) Option {
	return func(o *Options) {
		o.MaxConcurrency = n
	}
}

// WithObserver registers an observer for engine events.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

func withRunID(id string) Option {
	return func(o *Options) {
		o.runID = id
	}
}
