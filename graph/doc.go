// Package graph provides a small orchestration engine for staged pipelines
// over a typed shared state.
//
// A pipeline is a strict DAG of stages: sequential [Chain] edges, one or
// more conditional [Router] edges, and dynamic-width parallel [FanOut]
// edges that join on a synchronization barrier before the next stage runs.
// Stages are values implementing [Step]; the state type is a plain struct
// chosen by the caller, so each stage reads and writes exactly the fields
// it declares.
//
// Execution model:
//
//   - Sequential stages run one at a time in causal order.
//   - A FanOut sizes its width at dispatch time, runs one goroutine per
//     payload, collects results into a slot per payload, and releases the
//     barrier only after every branch has finished. A failed branch fails
//     the whole fan-out; the engine never proceeds with a partial result
//     set.
//   - The engine performs no internal retries. Retry policy belongs to the
//     external-service clients invoked inside stages.
//
// Progress can be observed by registering an [Observer] via [WithObserver];
// the engine emits an [Event] at stage boundaries, route selections, and
// per-worker completions.
package graph
