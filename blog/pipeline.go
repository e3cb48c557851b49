package blog

import (
	"context"
	"time"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/chat"
	"github.com/spetersoncode/inkwell/graph"
)

// Config holds the external collaborators and tuning knobs for a pipeline.
// The chat and search clients are constructed once by the caller and
// injected here; stages never reach for globals.
type Config struct {
	// Chat is the LLM client for every generation call.
	Chat chat.Client

	// Search is the web search client for the research stage.
	Search Searcher

	// ChatOptions are passed to every chat call, e.g. inkwell.WithModel.
	ChatOptions []ai.Option

	// OutDir is where the final document is written. Empty means the
	// current working directory.
	OutDir string

	// MaxQueries and ResultsPerQuery override the research stage caps
	// when > 0.
	MaxQueries      int
	ResultsPerQuery int
}

// Summary reports one completed run.
type Summary struct {
	RunID         string
	Topic         string
	AsOf          time.Time
	RecencyDays   int
	Mode          Mode
	Kind          Kind
	NeedsResearch bool
	Queries       []string
	EvidenceCount int
	TaskCount     int
	OutputBytes   int
	Filename      string
	Final         string
}

// Pipeline is a runnable blog generator.
type Pipeline struct {
	cfg    Config
	engine *graph.Pipeline[State]
}

// New wires the stages into the run graph:
// decide, then research when the decision asks for it, then plan, then the
// parallel section fan-out, then assemble.
func New(cfg Config) *Pipeline {
	decide := &DecideStage{Chat: cfg.Chat, ChatOpts: cfg.ChatOptions}

	research := &ResearchStage{
		Chat:            cfg.Chat,
		Search:          cfg.Search,
		ChatOpts:        cfg.ChatOptions,
		MaxQueries:      cfg.MaxQueries,
		ResultsPerQuery: cfg.ResultsPerQuery,
	}

	researchRoute := graph.NewRouter("research-route", []graph.Route[State]{
		{
			Name: "research",
			When: func(ctx context.Context, s *State) bool { return s.NeedsResearch },
			Step: research,
		},
		{
			Name: "skip",
			When: func(ctx context.Context, s *State) bool { return true },
			Step: nil,
		},
	}, nil)

	plan := &PlanStage{Chat: cfg.Chat, ChatOpts: cfg.ChatOptions}
	write := NewWriteFanOut(cfg.Chat, cfg.ChatOptions)
	assemble := &AssembleStage{OutDir: cfg.OutDir}

	chain := graph.NewChain[State]("stages", decide, researchRoute, plan, write, assemble)

	return &Pipeline{
		cfg:    cfg,
		engine: graph.NewPipeline("blog", chain),
	}
}

// RunOption configures one pipeline run.
type RunOption func(*runConfig)

type runConfig struct {
	asOf      time.Time
	graphOpts []graph.Option
}

// WithAsOf sets the reference date for recency decisions.
// Defaults to today.
func WithAsOf(t time.Time) RunOption {
	return func(rc *runConfig) {
		rc.asOf = t
	}
}

// WithGraphOptions passes engine options through to the run, e.g.
// graph.WithObserver or graph.WithMaxConcurrency.
func WithGraphOptions(opts ...graph.Option) RunOption {
	return func(rc *runConfig) {
		rc.graphOpts = append(rc.graphOpts, opts...)
	}
}

// Run generates one blog post. On failure the summary is nil and the error
// names the originating stage.
func (p *Pipeline) Run(ctx context.Context, topic string, opts ...RunOption) (*Summary, error) {
	rc := runConfig{asOf: time.Now()}
	for _, opt := range opts {
		opt(&rc)
	}

	state := &State{
		Topic: topic,
		AsOf:  rc.asOf,
	}

	result, err := p.engine.Run(ctx, state, rc.graphOpts...)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:         result.RunID,
		Topic:         state.Topic,
		AsOf:          state.AsOf,
		RecencyDays:   state.RecencyDays,
		Mode:          state.Mode,
		NeedsResearch: state.NeedsResearch,
		Queries:       state.Queries,
		EvidenceCount: len(state.Evidence),
		OutputBytes:   len(state.Final),
		Filename:      state.Filename,
		Final:         state.Final,
	}
	if state.Plan != nil {
		summary.Kind = state.Plan.Kind
		summary.TaskCount = len(state.Plan.Tasks)
	}
	return summary, nil
}
