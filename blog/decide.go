package blog

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/chat"
	"github.com/spetersoncode/inkwell/graph"
)

// DecideStage classifies the topic into a handling mode and, when research
// is needed, produces the search queries. A classifier failure is fatal to
// the run; there is no silent default mode.
type DecideStage struct {
	Chat     chat.Client
	ChatOpts []ai.Option
}

// Name returns the stage name.
func (s *DecideStage) Name() string { return "decide" }

// Run sends the classification call and writes mode, needsResearch,
// queries, and recencyDays into the state. The recency window is always
// recomputed from the fixed per-mode table; whatever the classifier
// proposes for it is discarded.
func (s *DecideStage) Run(ctx context.Context, state *State, opts ...graph.Option) error {
	msgs := []ai.Message{
		{Role: ai.RoleSystem, Content: decideSystem},
		{Role: ai.RoleUser, Content: fmt.Sprintf("Topic: %s\nAs-of date: %s", state.Topic, state.AsOf.Format("2006-01-02"))},
	}

	decision, err := chatJSON[Decision](ctx, s.Chat, "decide", DecisionSchema(), msgs, s.ChatOpts...)
	if err != nil {
		return fmt.Errorf("classification call failed: %w", err)
	}

	if err := validateDecision(decision); err != nil {
		return err
	}

	state.Mode = decision.Mode
	state.NeedsResearch = decision.NeedsResearch
	state.Queries = decision.Queries
	state.RecencyDays = decision.Mode.RecencyWindow()
	return nil
}

// validateDecision rejects classifier output that violates the contract:
// an unknown mode, or a research verdict without 3-10 multi-word queries.
func validateDecision(d Decision) error {
	if !d.Mode.Valid() {
		return fmt.Errorf("classifier returned unknown mode %q", d.Mode)
	}
	if !d.NeedsResearch {
		return nil
	}
	if len(d.Queries) < 3 || len(d.Queries) > 10 {
		return fmt.Errorf("classifier returned %d queries, want 3-10", len(d.Queries))
	}
	for _, q := range d.Queries {
		if len(strings.Fields(q)) < 2 {
			return fmt.Errorf("classifier returned trivial query %q", q)
		}
	}
	return nil
}
