package blog

import (
	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/schema"
)

// DecisionSchema is the response schema for the classification call.
func DecisionSchema() ai.ResponseSchema {
	return ai.ResponseSchema{
		Name:        "router_decision",
		Description: "Routing verdict for a blog topic.",
		Schema: schema.Object().
			Field("needs_research", schema.Bool().Desc("Whether web research is needed before planning.").Required()).
			Field("mode", schema.String().Enum("closed_book", "hybrid", "open_book").Required()).
			Field("reason", schema.String().Desc("One-sentence justification for the mode.").Required()).
			Field("queries", schema.Array(schema.String()).Desc("3-10 specific multi-word search queries; empty when no research is needed.").Required()).
			Field("max_results_per_query", schema.Int().Min(3).Max(8).Desc("Results per query.").Required()).
			MustBuild(),
	}
}

// EvidencePackSchema is the response schema for the research
// normalization call.
func EvidencePackSchema() ai.ResponseSchema {
	item := schema.Object().
		Field("title", schema.String().Required()).
		Field("url", schema.String().Desc("Non-empty source URL; the identity key.").Required()).
		Field("published_at", schema.String().Desc("ISO date YYYY-MM-DD, or empty when the date cannot be inferred reliably.").Required()).
		Field("snippet", schema.String().Desc("At most two sentences.").Required()).
		Field("source", schema.String().Required())

	return ai.ResponseSchema{
		Name:        "evidence_pack",
		Description: "Deduplicated, normalized web search evidence.",
		Schema: schema.Object().
			Field("evidence", schema.Array(item).Required()).
			MustBuild(),
	}
}

// PlanSchema is the response schema for the outline planning call.
func PlanSchema() ai.ResponseSchema {
	task := schema.Object().
		Field("id", schema.Int().Desc("Position in the outline; defines final ordering.").Required()).
		Field("title", schema.String().Required()).
		Field("goal", schema.String().Desc("What the reader will understand after this section.").Required()).
		Field("bullets", schema.Array(schema.String()).MinItems(3).MaxItems(6).Desc("Concrete, non-overlapping subpoints.").Required()).
		Field("target_words", schema.Int().Min(120).Max(550).Required()).
		Field("tags", schema.Array(schema.String()).Required()).
		Field("requires_research", schema.Bool().Required()).
		Field("requires_citations", schema.Bool().Required()).
		Field("requires_code", schema.Bool().Required())

	return ai.ResponseSchema{
		Name:        "plan",
		Description: "Complete ordered outline of the blog post.",
		Schema: schema.Object().
			Field("blog_title", schema.String().Required()).
			Field("audience", schema.String().Required()).
			Field("tone", schema.String().Required()).
			Field("blog_kind", schema.String().Enum("explainer", "tutorial", "news_roundup", "comparison", "system_design").Required()).
			Field("constraints", schema.Array(schema.String()).Required()).
			Field("tasks", schema.Array(task).MinItems(5).MaxItems(9).Required()).
			MustBuild(),
	}
}
