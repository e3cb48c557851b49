package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	ai "github.com/spetersoncode/inkwell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideStage(t *testing.T) {
	asOf := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)

	t.Run("recency window recomputed from mode", func(t *testing.T) {
		cases := []struct {
			mode Mode
			want int
		}{
			{ModeOpenBook, 7},
			{ModeHybrid, 45},
			{ModeClosedBook, 3650},
		}

		for _, tc := range cases {
			t.Run(string(tc.mode), func(t *testing.T) {
				chat := newMockChat()
				chat.bySchema["router_decision"] = respondJSON(t, validDecision(tc.mode, tc.mode != ModeClosedBook))

				stage := &DecideStage{Chat: chat}
				state := &State{Topic: "anything", AsOf: asOf}

				require.NoError(t, stage.Run(context.Background(), state))
				assert.Equal(t, tc.mode, state.Mode)
				assert.Equal(t, tc.want, state.RecencyDays)
			})
		}
	})

	t.Run("classifier proposal for the window is discarded", func(t *testing.T) {
		chat := newMockChat()
		// The schema has no recency field, but even a creative payload
		// with one must not influence the computed window.
		chat.bySchema["router_decision"] = func(msgs []ai.Message) (*ai.Response, error) {
			return &ai.Response{Content: `{
				"needs_research": true,
				"mode": "open_book",
				"reason": "volatile",
				"queries": ["ai releases this week", "llm pricing changes february", "model launches past 7 days"],
				"max_results_per_query": 5,
				"recency_days": 999
			}`}, nil
		}

		stage := &DecideStage{Chat: chat}
		state := &State{Topic: "this week in AI", AsOf: asOf}

		require.NoError(t, stage.Run(context.Background(), state))
		assert.Equal(t, 7, state.RecencyDays)
	})

	t.Run("classifier failure is fatal", func(t *testing.T) {
		chat := newMockChat()
		chat.bySchema["router_decision"] = func(msgs []ai.Message) (*ai.Response, error) {
			return nil, errors.New("service unavailable")
		}

		stage := &DecideStage{Chat: chat}
		err := stage.Run(context.Background(), &State{Topic: "anything", AsOf: asOf})

		assert.ErrorContains(t, err, "classification call failed")
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		chat := newMockChat()
		d := validDecision("freeform", false)
		chat.bySchema["router_decision"] = respondJSON(t, d)

		stage := &DecideStage{Chat: chat}
		err := stage.Run(context.Background(), &State{Topic: "anything", AsOf: asOf})

		assert.ErrorContains(t, err, "unknown mode")
	})

	t.Run("too few queries rejected when research is needed", func(t *testing.T) {
		chat := newMockChat()
		d := validDecision(ModeHybrid, true)
		d.Queries = []string{"go generics tutorial"}
		chat.bySchema["router_decision"] = respondJSON(t, d)

		stage := &DecideStage{Chat: chat}
		err := stage.Run(context.Background(), &State{Topic: "anything", AsOf: asOf})

		assert.ErrorContains(t, err, "queries")
	})

	t.Run("single-word queries rejected", func(t *testing.T) {
		chat := newMockChat()
		d := validDecision(ModeHybrid, true)
		d.Queries = []string{"go generics tutorial", "AI", "llm pricing changes"}
		chat.bySchema["router_decision"] = respondJSON(t, d)

		stage := &DecideStage{Chat: chat}
		err := stage.Run(context.Background(), &State{Topic: "anything", AsOf: asOf})

		assert.ErrorContains(t, err, "trivial query")
	})

	t.Run("no queries required without research", func(t *testing.T) {
		chat := newMockChat()
		chat.bySchema["router_decision"] = respondJSON(t, validDecision(ModeClosedBook, false))

		stage := &DecideStage{Chat: chat}
		state := &State{Topic: "explain backprop", AsOf: asOf}

		require.NoError(t, stage.Run(context.Background(), state))
		assert.False(t, state.NeedsResearch)
		assert.Empty(t, state.Queries)
	})
}
