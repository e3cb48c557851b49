package graph

import "context"

// Condition determines if a route should be taken.
type Condition[S any] func(ctx context.Context, state *S) bool

// Route represents a conditional path in a router.
type Route[S any] struct {
	Name string
	When Condition[S]
	Step Step[S]
}

// Router selects and executes a stage based on conditions.
// Routes are evaluated in order; first match wins. The default route is
// used when no condition matches. A Route with a nil Step is a no-op edge,
// letting a router skip straight to the next stage in a chain.
type Router[S any] struct {
	name         string
	routes       []Route[S]
	defaultRoute Step[S]
}

// NewRouter creates a conditional router.
func NewRouter[S any](name string, routes []Route[S], defaultRoute Step[S]) *Router[S] {
	return &Router[S]{
		name:         name,
		routes:       routes,
		defaultRoute: defaultRoute,
	}
}

// Name returns the router name.
func (r *Router[S]) Name() string { return r.name }

// Run evaluates conditions and executes the matching stage.
func (r *Router[S]) Run(ctx context.Context, state *S, opts ...Option) error {
	options := ApplyOptions(opts...)

	var selected Step[S]
	selectedName := ""
	matched := false

	for _, route := range r.routes {
		if route.When(ctx, state) {
			selected = route.Step
			selectedName = route.Name
			matched = true
			break
		}
	}

	if !matched {
		if r.defaultRoute == nil {
			return &StageError{Stage: r.name, Err: ErrNoRouteMatched}
		}
		selected = r.defaultRoute
		selectedName = "default"
	}

	emit(options.Observer, Event{Type: EventRouteSelected, RunID: options.runID, Stage: r.name, Route: selectedName})

	if selected == nil {
		return nil
	}

	if err := selected.Run(ctx, state, opts...); err != nil {
		return wrapStage(selected.Name(), err)
	}
	return nil
}
