package blog

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/chat"
	"github.com/spetersoncode/inkwell/graph"
	"github.com/spetersoncode/inkwell/search"
)

// Searcher is the web search dependency of the research stage.
// *search.Client implements it.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]search.Result, error)
}

const (
	// defaultMaxQueries caps how many of the classifier's queries are
	// actually executed. A deployment tuning knob, not an invariant.
	defaultMaxQueries = 2

	// defaultResultsPerQuery caps raw results fetched per query.
	defaultResultsPerQuery = 2

	// maxEvidenceInPrompt caps how many raw results are inlined into the
	// normalization prompt.
	maxEvidenceInPrompt = 16
)

// ResearchStage executes the search queries, normalizes the raw results
// into evidence through a structured-generation call, deduplicates them,
// and applies the open-book recency filter. Reached only when the decide
// stage asked for research.
type ResearchStage struct {
	Chat     chat.Client
	Search   Searcher
	ChatOpts []ai.Option

	// MaxQueries and ResultsPerQuery override the default caps when > 0.
	MaxQueries      int
	ResultsPerQuery int
}

// Name returns the stage name.
func (s *ResearchStage) Name() string { return "research" }

// Run gathers raw search results and writes the normalized evidence into
// the state. Zero raw results is a valid outcome, not an error: the state
// keeps empty evidence and the pipeline continues to planning.
func (s *ResearchStage) Run(ctx context.Context, state *State, opts ...graph.Option) error {
	maxQueries := s.MaxQueries
	if maxQueries <= 0 {
		maxQueries = defaultMaxQueries
	}
	perQuery := s.ResultsPerQuery
	if perQuery <= 0 {
		perQuery = defaultResultsPerQuery
	}

	queries := state.Queries
	if len(queries) > maxQueries {
		queries = queries[:maxQueries]
	}

	// Queries hit the search service concurrently; results keep query
	// order via the pre-sized buffer.
	buckets := make([][]search.Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, query := range queries {
		g.Go(func() error {
			results, err := s.Search.Search(gctx, query, perQuery)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			buckets[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var raw []search.Result
	for _, bucket := range buckets {
		raw = append(raw, bucket...)
	}

	if len(raw) == 0 {
		state.Evidence = nil
		return nil
	}

	pack, err := s.normalize(ctx, state, raw)
	if err != nil {
		return err
	}

	evidence := DedupeEvidence(pack.Evidence)
	if state.Mode == ModeOpenBook {
		evidence = FilterByRecency(evidence, state.AsOf, state.RecencyDays)
	}

	state.Evidence = evidence
	return nil
}

// normalize submits the raw results to the structured-generation call and
// returns the evidence pack.
func (s *ResearchStage) normalize(ctx context.Context, state *State, raw []search.Result) (EvidencePack, error) {
	if len(raw) > maxEvidenceInPrompt {
		raw = raw[:maxEvidenceInPrompt]
	}

	rawJSON, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return EvidencePack{}, fmt.Errorf("encoding raw results: %w", err)
	}

	msgs := []ai.Message{
		{Role: ai.RoleSystem, Content: researchSystem},
		{Role: ai.RoleUser, Content: fmt.Sprintf(
			"As-of date: %s\nRecency days: %d\n\nRaw results:\n%s",
			state.AsOf.Format("2006-01-02"), state.RecencyDays, rawJSON,
		)},
	}

	pack, err := chatJSON[EvidencePack](ctx, s.Chat, "research", EvidencePackSchema(), msgs, s.ChatOpts...)
	if err != nil {
		return EvidencePack{}, fmt.Errorf("evidence normalization failed: %w", err)
	}
	return pack, nil
}
