package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spetersoncode/inkwell/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchStage(t *testing.T) {
	asOf := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)

	t.Run("empty search results are not an error", func(t *testing.T) {
		chat := newMockChat()
		searcher := &mockSearcher{results: map[string][]search.Result{}}

		stage := &ResearchStage{Chat: chat, Search: searcher}
		state := &State{
			Mode: ModeHybrid, AsOf: asOf, RecencyDays: 45,
			Queries: []string{"go generics tutorial", "go type parameters release"},
		}

		require.NoError(t, stage.Run(context.Background(), state))
		assert.Empty(t, state.Evidence)
		// No raw results means no normalization call either.
		assert.Zero(t, chat.callCount("evidence_pack"))
	})

	t.Run("queries are capped", func(t *testing.T) {
		chat := newMockChat()
		searcher := &mockSearcher{results: map[string][]search.Result{}}

		stage := &ResearchStage{Chat: chat, Search: searcher}
		state := &State{
			Mode: ModeHybrid, AsOf: asOf, RecencyDays: 45,
			Queries: []string{"first query text", "second query text", "third query text"},
		}

		require.NoError(t, stage.Run(context.Background(), state))
		assert.ElementsMatch(t, []string{"first query text", "second query text"}, searcher.seen())
	})

	t.Run("search failure propagates", func(t *testing.T) {
		chat := newMockChat()
		searcher := &mockSearcher{err: errors.New("rate limited")}

		stage := &ResearchStage{Chat: chat, Search: searcher}
		state := &State{
			Mode: ModeHybrid, AsOf: asOf, RecencyDays: 45,
			Queries: []string{"go generics tutorial"},
		}

		err := stage.Run(context.Background(), state)
		assert.ErrorContains(t, err, "rate limited")
	})

	t.Run("normalized evidence is deduplicated", func(t *testing.T) {
		chat := newMockChat()
		chat.bySchema["evidence_pack"] = respondJSON(t, EvidencePack{Evidence: []EvidenceItem{
			{URL: "a", Title: "X"},
			{URL: "a", Title: "Y"},
			{URL: "b", Title: "Z"},
		}})
		searcher := &mockSearcher{results: map[string][]search.Result{
			"go generics tutorial": {{Title: "raw", URL: "https://example.com/raw"}},
		}}

		stage := &ResearchStage{Chat: chat, Search: searcher}
		state := &State{
			Mode: ModeHybrid, AsOf: asOf, RecencyDays: 45,
			Queries: []string{"go generics tutorial"},
		}

		require.NoError(t, stage.Run(context.Background(), state))
		require.Len(t, state.Evidence, 2)
		assert.Equal(t, "Y", state.Evidence[0].Title)
	})

	t.Run("open_book applies the hard recency filter", func(t *testing.T) {
		chat := newMockChat()
		chat.bySchema["evidence_pack"] = respondJSON(t, EvidencePack{Evidence: []EvidenceItem{
			{URL: "fresh", PublishedAt: "2026-02-18"},
			{URL: "stale", PublishedAt: "2026-02-10"},
			{URL: "undated"},
		}})
		searcher := &mockSearcher{results: map[string][]search.Result{
			"ai releases this week": {{Title: "raw", URL: "https://example.com/raw"}},
		}}

		stage := &ResearchStage{Chat: chat, Search: searcher}
		state := &State{
			Mode: ModeOpenBook, AsOf: asOf, RecencyDays: 7,
			Queries: []string{"ai releases this week"},
		}

		require.NoError(t, stage.Run(context.Background(), state))
		require.Len(t, state.Evidence, 1)
		assert.Equal(t, "fresh", state.Evidence[0].URL)
	})

	t.Run("hybrid keeps undated and stale evidence", func(t *testing.T) {
		chat := newMockChat()
		chat.bySchema["evidence_pack"] = respondJSON(t, EvidencePack{Evidence: []EvidenceItem{
			{URL: "fresh", PublishedAt: "2026-02-18"},
			{URL: "stale", PublishedAt: "2024-01-01"},
			{URL: "undated"},
		}})
		searcher := &mockSearcher{results: map[string][]search.Result{
			"go tooling updates recent": {{Title: "raw", URL: "https://example.com/raw"}},
		}}

		stage := &ResearchStage{Chat: chat, Search: searcher}
		state := &State{
			Mode: ModeHybrid, AsOf: asOf, RecencyDays: 45,
			Queries: []string{"go tooling updates recent"},
		}

		require.NoError(t, stage.Run(context.Background(), state))
		assert.Len(t, state.Evidence, 3)
	})
}
