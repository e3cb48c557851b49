package blog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spetersoncode/inkwell/graph"
)

// AssembleStage restores outline order over the collected sections,
// concatenates them into the final document, and persists it.
type AssembleStage struct {
	// OutDir is the directory the document is written to.
	// Empty means the current working directory.
	OutDir string
}

// Name returns the stage name.
func (s *AssembleStage) Name() string { return "assemble" }

// Run sorts sections ascending by task id, joins them with a blank line,
// prepends the title heading, and writes the file. Workers finish in
// arbitrary order; the sort is what makes the output deterministic.
func (s *AssembleStage) Run(ctx context.Context, state *State, opts ...graph.Option) error {
	if state.Plan == nil {
		return &graph.PreconditionError{Stage: "assemble", Msg: "plan is nil"}
	}

	sections := append([]Section(nil), state.Sections...)
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })

	parts := make([]string, len(sections))
	for i, sec := range sections {
		parts[i] = sec.Content
	}
	body := strings.TrimSpace(strings.Join(parts, "\n\n"))

	state.Final = fmt.Sprintf("# %s\n\n%s\n", state.Plan.Title, body)
	state.Filename = SanitizeFilename(state.Plan.Title) + ".md"

	path := state.Filename
	if s.OutDir != "" {
		path = filepath.Join(s.OutDir, state.Filename)
	}

	// Overwrite on conflict; no versioning or locking.
	if err := os.WriteFile(path, []byte(state.Final), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SanitizeFilename replaces characters that are invalid in file names
// with underscores.
func SanitizeFilename(title string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, title)
}
