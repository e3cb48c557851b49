package blog

import "time"

// State is the shared record threaded through every stage of one run.
// Each field is written by exactly one stage before being read downstream;
// Sections is the only field contributed to by multiple concurrent workers,
// and the engine merges those contributions after the fan-out barrier.
type State struct {
	// Topic is the user's request; immutable once set.
	Topic string

	// AsOf is the reference date for recency decisions.
	AsOf time.Time

	// Mode, NeedsResearch, Queries, and RecencyDays are written by the
	// decide stage.
	Mode          Mode
	NeedsResearch bool
	Queries       []string
	RecencyDays   int

	// Evidence is written by the research stage, or left empty when the
	// research edge is skipped.
	Evidence []EvidenceItem

	// Plan is written by the planning stage; nil until then, non-nil for
	// every stage after it.
	Plan *Plan

	// Sections is the union of all worker outputs, one per task.
	Sections []Section

	// Final and Filename are written by the assemble stage.
	Final    string
	Filename string
}
