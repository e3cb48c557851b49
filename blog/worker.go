package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/chat"
	"github.com/spetersoncode/inkwell/graph"
)

// maxEvidenceInWorkerPrompt caps the compact evidence list handed to each
// section writer.
const maxEvidenceInWorkerPrompt = 20

// WorkerPayload is the self-contained assignment for one section writer,
// copied out of the state at dispatch time. Workers never read shared
// state, so no worker can observe another's writes.
type WorkerPayload struct {
	Task        Task
	Topic       string
	Mode        Mode
	AsOf        time.Time
	RecencyDays int
	Plan        Plan
	Evidence    []EvidenceItem
}

// writeWorker renders one section from its payload.
type writeWorker struct {
	Chat     chat.Client
	ChatOpts []ai.Option
}

// NewWriteFanOut builds the parallel section-writing stage: one dispatched
// payload per planned task, one worker per payload, all joined back into
// the state's section set after the barrier.
func NewWriteFanOut(c chat.Client, chatOpts []ai.Option) *graph.FanOut[State, WorkerPayload, Section] {
	w := &writeWorker{Chat: c, ChatOpts: chatOpts}
	return graph.NewFanOut("write", dispatchSections, w.write, joinSections)
}

// dispatchSections sizes the fan-out: exactly one payload per task. A nil
// or empty plan here is an engine-wiring bug and fails the run.
func dispatchSections(state *State) ([]WorkerPayload, error) {
	if state.Plan == nil {
		return nil, &graph.PreconditionError{Stage: "write", Msg: "plan is nil"}
	}
	if len(state.Plan.Tasks) == 0 {
		return nil, &graph.PreconditionError{Stage: "write", Msg: "plan has no tasks"}
	}

	payloads := make([]WorkerPayload, len(state.Plan.Tasks))
	for i, task := range state.Plan.Tasks {
		payloads[i] = WorkerPayload{
			Task:        task,
			Topic:       state.Topic,
			Mode:        state.Mode,
			AsOf:        state.AsOf,
			RecencyDays: state.RecencyDays,
			Plan:        *state.Plan,
			Evidence:    append([]EvidenceItem(nil), state.Evidence...),
		}
	}
	return payloads, nil
}

// joinSections merges all worker outputs into the state as a union keyed
// by task id. It runs once, after every worker has finished.
func joinSections(state *State, results []Section) error {
	state.Sections = append(state.Sections, results...)
	return nil
}

// write renders one section through a free-text generation call.
func (w *writeWorker) write(ctx context.Context, p WorkerPayload) (Section, error) {
	resp, err := w.Chat.Chat(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: writeSystem},
		{Role: ai.RoleUser, Content: workerPrompt(p)},
	}, w.ChatOpts...)
	if err != nil {
		return Section{}, fmt.Errorf("section %d (%s): %w", p.Task.ID, p.Task.Title, err)
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return Section{}, fmt.Errorf("section %d (%s): empty content", p.Task.ID, p.Task.Title)
	}

	return Section{ID: p.Task.ID, Content: content}, nil
}

// workerPrompt formats one assignment: plan metadata for context, the
// task contract, and a compact evidence list for citations.
func workerPrompt(p WorkerPayload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Blog title: %s\n", p.Plan.Title)
	fmt.Fprintf(&b, "Audience: %s\n", p.Plan.Audience)
	fmt.Fprintf(&b, "Tone: %s\n", p.Plan.Tone)
	fmt.Fprintf(&b, "Blog kind: %s\n", p.Plan.Kind)
	fmt.Fprintf(&b, "Constraints: %s\n", strings.Join(p.Plan.Constraints, "; "))
	fmt.Fprintf(&b, "Topic: %s\n", p.Topic)
	fmt.Fprintf(&b, "Mode: %s\n", p.Mode)
	fmt.Fprintf(&b, "As-of: %s (recency_days=%d)\n\n", p.AsOf.Format("2006-01-02"), p.RecencyDays)

	fmt.Fprintf(&b, "Section title: %s\n", p.Task.Title)
	fmt.Fprintf(&b, "Goal: %s\n", p.Task.Goal)
	fmt.Fprintf(&b, "Target words: %d\n", p.Task.TargetWords)
	fmt.Fprintf(&b, "Tags: %s\n", strings.Join(p.Task.Tags, ", "))
	fmt.Fprintf(&b, "requires_research: %t\n", p.Task.RequiresResearch)
	fmt.Fprintf(&b, "requires_citations: %t\n", p.Task.RequiresCitations)
	fmt.Fprintf(&b, "requires_code: %t\n", p.Task.RequiresCode)

	b.WriteString("Bullets:")
	for _, bullet := range p.Task.Bullets {
		b.WriteString("\n- ")
		b.WriteString(bullet)
	}
	b.WriteString("\n\nEvidence (ONLY use these URLs when citing):\n")

	evidence := p.Evidence
	if len(evidence) > maxEvidenceInWorkerPrompt {
		evidence = evidence[:maxEvidenceInWorkerPrompt]
	}
	for _, e := range evidence {
		date := e.PublishedAt
		if date == "" {
			date = "date:unknown"
		}
		fmt.Fprintf(&b, "- %s | %s | %s\n", e.Title, e.URL, date)
	}

	return b.String()
}
