package blog

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/search"
)

// mockChat scripts chat responses by the requested schema name.
// Free-text calls (no response schema) fall through to freeText.
type mockChat struct {
	mu       sync.Mutex
	bySchema map[string]func(msgs []ai.Message) (*ai.Response, error)
	freeText func(msgs []ai.Message) (*ai.Response, error)
	calls    []string
}

func newMockChat() *mockChat {
	return &mockChat{bySchema: make(map[string]func(msgs []ai.Message) (*ai.Response, error))}
}

func (m *mockChat) Chat(ctx context.Context, msgs []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)

	name := ""
	if options.ResponseSchema != nil {
		name = options.ResponseSchema.Name
	}

	m.mu.Lock()
	m.calls = append(m.calls, name)
	handler := m.freeText
	if name != "" {
		handler = m.bySchema[name]
	}
	m.mu.Unlock()

	if handler == nil {
		return &ai.Response{Content: "{}"}, nil
	}
	return handler(msgs)
}

func (m *mockChat) callCount(schemaName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == schemaName {
			n++
		}
	}
	return n
}

// respondJSON scripts a structured call to return v marshaled as JSON.
func respondJSON(t *testing.T, v any) func(msgs []ai.Message) (*ai.Response, error) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal scripted response: %v", err)
	}
	return func(msgs []ai.Message) (*ai.Response, error) {
		return &ai.Response{Content: string(data)}, nil
	}
}

// mockSearcher records queries and serves canned results.
type mockSearcher struct {
	mu      sync.Mutex
	queries []string
	results map[string][]search.Result
	err     error
}

func (m *mockSearcher) Search(ctx context.Context, query string, maxResults int) ([]search.Result, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return m.results[query], nil
}

func (m *mockSearcher) seen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}

// validDecision is a baseline classifier verdict tests mutate as needed.
func validDecision(mode Mode, needsResearch bool) Decision {
	d := Decision{
		Mode:               mode,
		NeedsResearch:      needsResearch,
		Reason:             "test",
		MaxResultsPerQuery: 5,
	}
	if needsResearch {
		d.Queries = []string{"go generics tutorial", "go type parameters release", "go 1.25 changes"}
	}
	return d
}

// validPlan builds a structurally valid plan with n tasks.
func validPlan(n int) Plan {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{
			ID:          i + 1,
			Title:       "Section",
			Goal:        "Explain one thing.",
			Bullets:     []string{"first", "second", "third"},
			TargetWords: 200,
		}
	}
	return Plan{
		Title:    "Test Post",
		Audience: "engineers",
		Tone:     "direct",
		Kind:     KindExplainer,
		Tasks:    tasks,
	}
}
