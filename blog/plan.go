package blog

import (
	"context"
	"encoding/json"
	"fmt"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/chat"
	"github.com/spetersoncode/inkwell/graph"
)

// PlanStage produces the outline: 5-9 tasks with goals, bullets, and
// target word counts. Structural violations in the generated plan are
// external-service failures, not states the pipeline continues from.
type PlanStage struct {
	Chat     chat.Client
	ChatOpts []ai.Option
}

// Name returns the stage name.
func (s *PlanStage) Name() string { return "plan" }

// Run sends the planning call, validates the outline, and writes the plan
// into the state. Under open-book mode the kind is forced to news_roundup
// after the fact, regardless of what the generator returned.
func (s *PlanStage) Run(ctx context.Context, state *State, opts ...graph.Option) error {
	forceNews := ""
	if state.Mode == ModeOpenBook {
		forceNews = "Force blog_kind=news_roundup\n"
	}

	evidence := state.Evidence
	if len(evidence) > maxEvidenceInPrompt {
		evidence = evidence[:maxEvidenceInPrompt]
	}
	evidenceJSON, err := json.Marshal(evidence)
	if err != nil {
		return fmt.Errorf("encoding evidence: %w", err)
	}

	msgs := []ai.Message{
		{Role: ai.RoleSystem, Content: planSystem},
		{Role: ai.RoleUser, Content: fmt.Sprintf(
			"Topic: %s\nMode: %s\nAs-of: %s (recency_days=%d)\n%s\n"+
				"Evidence (use only for fresh claims; may be empty):\n%s\n\n"+
				"Instruction: If mode=open_book, do NOT write a tutorial.",
			state.Topic, state.Mode, state.AsOf.Format("2006-01-02"), state.RecencyDays,
			forceNews, evidenceJSON,
		)},
	}

	plan, err := chatJSON[Plan](ctx, s.Chat, "plan", PlanSchema(), msgs, s.ChatOpts...)
	if err != nil {
		return fmt.Errorf("planning call failed: %w", err)
	}

	if err := validatePlan(&plan); err != nil {
		return err
	}

	// Safety net: open_book always produces a news roundup.
	if state.Mode == ModeOpenBook {
		plan.Kind = KindNewsRoundup
	}

	state.Plan = &plan
	return nil
}

// validatePlan enforces the outline contract: 5-9 tasks, unique ids, 3-6
// bullets each, target word counts within 120-550.
func validatePlan(plan *Plan) error {
	if n := len(plan.Tasks); n < 5 || n > 9 {
		return fmt.Errorf("plan has %d tasks, want 5-9", n)
	}

	seen := make(map[int]bool, len(plan.Tasks))
	for _, task := range plan.Tasks {
		if seen[task.ID] {
			return fmt.Errorf("plan has duplicate task id %d", task.ID)
		}
		seen[task.ID] = true

		if n := len(task.Bullets); n < 3 || n > 6 {
			return fmt.Errorf("task %d has %d bullets, want 3-6", task.ID, n)
		}
		if task.TargetWords < 120 || task.TargetWords > 550 {
			return fmt.Errorf("task %d targets %d words, want 120-550", task.ID, task.TargetWords)
		}
	}
	return nil
}
