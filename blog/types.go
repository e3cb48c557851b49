package blog

import "time"

// Mode classifies a topic's volatility: how much the correctness of the
// post depends on recent facts.
type Mode string

const (
	// ModeClosedBook covers evergreen topics; no research is needed.
	ModeClosedBook Mode = "closed_book"
	// ModeHybrid covers mostly evergreen topics that benefit from
	// up-to-date tool and model names.
	ModeHybrid Mode = "hybrid"
	// ModeOpenBook covers fully time-sensitive topics such as weekly
	// roundups, releases, pricing, and policy.
	ModeOpenBook Mode = "open_book"
)

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeClosedBook, ModeHybrid, ModeOpenBook:
		return true
	}
	return false
}

// RecencyWindow returns the recency window in days for the mode. The
// mapping is fixed; whatever window the classifier proposes is discarded
// and recomputed from this table.
func (m Mode) RecencyWindow() int {
	switch m {
	case ModeOpenBook:
		return 7
	case ModeHybrid:
		return 45
	default:
		return 3650
	}
}

// Kind categorizes the shape of the blog post.
type Kind string

const (
	KindExplainer    Kind = "explainer"
	KindTutorial     Kind = "tutorial"
	KindNewsRoundup  Kind = "news_roundup"
	KindComparison   Kind = "comparison"
	KindSystemDesign Kind = "system_design"
)

// Decision is the classifier's verdict on how to handle a topic.
type Decision struct {
	NeedsResearch      bool     `json:"needs_research"`
	Mode               Mode     `json:"mode"`
	Reason             string   `json:"reason"`
	Queries            []string `json:"queries"`
	MaxResultsPerQuery int      `json:"max_results_per_query"`
}

// Task describes one planned section of the post. ID defines the final
// ordering; it is unique within a plan but not necessarily contiguous.
type Task struct {
	ID                int      `json:"id"`
	Title             string   `json:"title"`
	Goal              string   `json:"goal"`
	Bullets           []string `json:"bullets"`
	TargetWords       int      `json:"target_words"`
	Tags              []string `json:"tags"`
	RequiresResearch  bool     `json:"requires_research"`
	RequiresCitations bool     `json:"requires_citations"`
	RequiresCode      bool     `json:"requires_code"`
}

// Plan is the complete ordered outline: document metadata plus one Task
// per section.
type Plan struct {
	Title       string   `json:"blog_title"`
	Audience    string   `json:"audience"`
	Tone        string   `json:"tone"`
	Kind        Kind     `json:"blog_kind"`
	Constraints []string `json:"constraints"`
	Tasks       []Task   `json:"tasks"`
}

// EvidenceItem is one normalized, deduplicated web search result.
// URL is the identity key and must be non-empty for a valid item.
// PublishedAt is an ISO date string; empty means the date is unknown and
// must never be guessed.
type EvidenceItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Snippet     string `json:"snippet"`
	Source      string `json:"source"`
}

// EvidencePack is the container shape the normalization call returns.
type EvidencePack struct {
	Evidence []EvidenceItem `json:"evidence"`
}

// Section is one worker's output: the rendered content for the task with
// the matching ID.
type Section struct {
	ID      int
	Content string
}

// DedupeEvidence deduplicates items by URL with last-write-wins: the
// position of an item's first occurrence is kept, its value comes from
// the last occurrence. Items without a URL are dropped.
func DedupeEvidence(items []EvidenceItem) []EvidenceItem {
	indexByURL := make(map[string]int)
	var out []EvidenceItem
	for _, item := range items {
		if item.URL == "" {
			continue
		}
		if idx, ok := indexByURL[item.URL]; ok {
			out[idx] = item
			continue
		}
		indexByURL[item.URL] = len(out)
		out = append(out, item)
	}
	return out
}

// FilterByRecency drops every item whose published date is unknown,
// unparseable, or earlier than asOf minus recencyDays. It is applied only
// in open-book mode; stale evidence is tolerable elsewhere.
func FilterByRecency(items []EvidenceItem, asOf time.Time, recencyDays int) []EvidenceItem {
	cutoff := asOf.AddDate(0, 0, -recencyDays)
	var fresh []EvidenceItem
	for _, item := range items {
		published, ok := parseISODate(item.PublishedAt)
		if !ok || published.Before(cutoff) {
			continue
		}
		fresh = append(fresh, item)
	}
	return fresh
}

// parseISODate parses a YYYY-MM-DD prefix from an ISO date string.
// Providers append times and zones inconsistently, so only the first ten
// characters are considered.
func parseISODate(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
