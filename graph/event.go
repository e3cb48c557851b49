package graph

// EventType identifies the kind of engine event.
type EventType string

const (
	// EventRunStart is emitted once when a pipeline run begins.
	EventRunStart EventType = "run_start"
	// EventRunEnd is emitted once when a pipeline run finishes.
	EventRunEnd EventType = "run_end"
	// EventStageStart is emitted before a stage executes.
	EventStageStart EventType = "stage_start"
	// EventStageEnd is emitted after a stage executes.
	EventStageEnd EventType = "stage_end"
	// EventRouteSelected is emitted when a router picks a route.
	EventRouteSelected EventType = "route_selected"
	// EventFanOutStart is emitted after dispatch, before workers launch.
	EventFanOutStart EventType = "fanout_start"
	// EventWorkerDone is emitted as each fan-out branch completes.
	EventWorkerDone EventType = "worker_done"
	// EventFanOutEnd is emitted after the barrier releases.
	EventFanOutEnd EventType = "fanout_end"
)

// Event describes one engine occurrence during a pipeline run.
type Event struct {
	Type  EventType
	RunID string

	// Stage is the name of the stage the event concerns.
	Stage string

	// Route is the selected route name for EventRouteSelected.
	Route string

	// Worker is the dispatch index of the branch for EventWorkerDone.
	Worker int

	// Width is the fan-out width for EventFanOutStart and EventFanOutEnd.
	Width int

	// Err is set on EventStageEnd, EventWorkerDone, EventFanOutEnd, and
	// EventRunEnd when the corresponding unit failed.
	Err error
}

// Observer receives engine events. Observers are invoked synchronously
// from engine goroutines and must not block.
type Observer func(Event)

func emit(o Observer, e Event) {
	if o != nil {
		o(e)
	}
}
