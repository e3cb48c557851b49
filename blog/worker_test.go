package blog

import (
	"context"
	"strings"
	"testing"
	"time"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchSections(t *testing.T) {
	t.Run("one payload per task with its own id", func(t *testing.T) {
		plan := validPlan(7)
		state := &State{
			Topic: "go generics", Mode: ModeClosedBook, RecencyDays: 3650,
			Plan:     &plan,
			Evidence: []EvidenceItem{{URL: "a", Title: "X"}},
		}

		payloads, err := dispatchSections(state)

		require.NoError(t, err)
		require.Len(t, payloads, 7)
		seen := make(map[int]bool)
		for i, p := range payloads {
			assert.Equal(t, plan.Tasks[i].ID, p.Task.ID)
			assert.False(t, seen[p.Task.ID])
			seen[p.Task.ID] = true
			assert.Equal(t, "go generics", p.Topic)
			assert.Equal(t, plan.Title, p.Plan.Title)
		}
	})

	t.Run("evidence is copied, not shared", func(t *testing.T) {
		plan := validPlan(5)
		state := &State{
			Plan:     &plan,
			Evidence: []EvidenceItem{{URL: "a", Title: "X"}},
		}

		payloads, err := dispatchSections(state)
		require.NoError(t, err)

		payloads[0].Evidence[0].Title = "mutated"
		assert.Equal(t, "X", state.Evidence[0].Title)
		assert.Equal(t, "X", payloads[1].Evidence[0].Title)
	})

	t.Run("nil plan is a precondition failure", func(t *testing.T) {
		_, err := dispatchSections(&State{})

		var preErr *graph.PreconditionError
		require.ErrorAs(t, err, &preErr)
		assert.Equal(t, "write", preErr.Stage)
	})

	t.Run("empty task list is a precondition failure", func(t *testing.T) {
		plan := Plan{Title: "T"}
		_, err := dispatchSections(&State{Plan: &plan})

		var preErr *graph.PreconditionError
		require.ErrorAs(t, err, &preErr)
	})
}

func TestWriteWorker(t *testing.T) {
	payload := WorkerPayload{
		Task: Task{
			ID: 3, Title: "Edge Cases", Goal: "Cover the sharp edges.",
			Bullets: []string{"nil maps", "zero values", "iteration order"}, TargetWords: 200,
		},
		Topic: "go maps", Mode: ModeClosedBook,
		AsOf: time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC), RecencyDays: 3650,
		Plan:     validPlan(5),
		Evidence: []EvidenceItem{{URL: "https://example.com/a", Title: "Ref"}},
	}

	t.Run("returns section keyed by task id", func(t *testing.T) {
		chat := newMockChat()
		chat.freeText = func(msgs []ai.Message) (*ai.Response, error) {
			return &ai.Response{Content: "## Edge Cases\n\nBody.\n"}, nil
		}

		w := &writeWorker{Chat: chat}
		section, err := w.write(context.Background(), payload)

		require.NoError(t, err)
		assert.Equal(t, 3, section.ID)
		assert.Equal(t, "## Edge Cases\n\nBody.", section.Content)
	})

	t.Run("empty content is an error", func(t *testing.T) {
		chat := newMockChat()
		chat.freeText = func(msgs []ai.Message) (*ai.Response, error) {
			return &ai.Response{Content: "  \n"}, nil
		}

		w := &writeWorker{Chat: chat}
		_, err := w.write(context.Background(), payload)

		assert.ErrorContains(t, err, "empty content")
	})

	t.Run("prompt carries the assignment and evidence", func(t *testing.T) {
		prompt := workerPrompt(payload)

		assert.Contains(t, prompt, "Section title: Edge Cases")
		assert.Contains(t, prompt, "Target words: 200")
		assert.Contains(t, prompt, "- nil maps")
		assert.Contains(t, prompt, "https://example.com/a")
		// Bullets appear in listed order.
		assert.Less(t, strings.Index(prompt, "nil maps"), strings.Index(prompt, "zero values"))
	})

	t.Run("unknown dates are marked in the evidence list", func(t *testing.T) {
		p := payload
		p.Evidence = []EvidenceItem{{URL: "https://example.com/b", Title: "NoDate"}}

		prompt := workerPrompt(p)

		assert.Contains(t, prompt, "date:unknown")
	})
}
