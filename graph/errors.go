package graph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNoRouteMatched indicates no route condition was satisfied.
	ErrNoRouteMatched = errors.New("graph: no route matched")
)

// StageError wraps errors from stage execution, naming the stage that
// originated the failure.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("graph: stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// PreconditionError indicates a stage was invoked with state that violates
// its contract. It signals an engine-wiring bug, not a recoverable runtime
// condition, and is always fatal to the run.
type PreconditionError struct {
	Stage string
	Msg   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("graph: stage %q precondition violated: %s", e.Stage, e.Msg)
}

// FanOutError reports the failed branches of a fan-out. The barrier never
// releases with a partial result set; any branch failure fails the whole
// fan-out with this error.
type FanOutError struct {
	Stage    string
	Branches map[int]error
}

func (e *FanOutError) Error() string {
	if len(e.Branches) == 1 {
		for idx, err := range e.Branches {
			return fmt.Sprintf("graph: fan-out %q branch %d failed: %v", e.Stage, idx, err)
		}
	}
	indexes := make([]int, 0, len(e.Branches))
	for idx := range e.Branches {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = strconv.Itoa(idx)
	}
	return fmt.Sprintf("graph: fan-out %q failed in %d branches: %s",
		e.Stage, len(e.Branches), strings.Join(parts, ", "))
}

// Unwrap returns the lowest-indexed branch error for errors.Is/As compatibility.
func (e *FanOutError) Unwrap() error {
	lowest := -1
	for idx := range e.Branches {
		if lowest < 0 || idx < lowest {
			lowest = idx
		}
	}
	if lowest < 0 {
		return nil
	}
	return e.Branches[lowest]
}
