// ABOUTME: Classification engine mapping request text to a task category
// ABOUTME: Declared priority rule list with fixed per-rule confidence scores

package classify

import (
	"strings"
)

// Category identifies the analysis task a request routes to.
type Category string

// Task categories, one per analysis tool.
const (
	CategoryTextAnalysis     Category = "text_analysis"
	CategoryKnowledgeSearch  Category = "knowledge_search"
	CategoryMetrics          Category = "metrics_calculation"
	CategoryWorkflowGuidance Category = "workflow_guidance"
	CategoryGeneral          Category = "general"
)

// Per-rule confidence constants. These are fixed, reproducible scores rather
// than learned probabilities; the routing contract is the rule order below.
const (
	ConfidenceTextAnalysis     = 0.85
	ConfidenceKnowledgeSearch  = 0.75
	ConfidenceMetrics          = 0.90
	ConfidenceWorkflowGuidance = 0.80
	ConfidenceGeneral          = 0.70
)

// Result is the outcome of classifying one request.
type Result struct {
	Category   Category
	Confidence float64
}

// rule pairs a category with its trigger predicate. Ties between rules are
// broken by position in the rules slice, not by confidence magnitude.
type rule struct {
	category   Category
	confidence float64
	match      func(text string) bool
}

// rules is the routing contract: first match wins, top to bottom.
var rules = []rule{
	{
		category:   CategoryTextAnalysis,
		confidence: ConfidenceTextAnalysis,
		match:      containsAny("analyze", "analysis", "sentiment", "keywords"),
	},
	{
		category:   CategoryKnowledgeSearch,
		confidence: ConfidenceKnowledgeSearch,
		match:      containsAny("search", "find", "knowledge", "information"),
	},
	{
		category:   CategoryMetrics,
		confidence: ConfidenceMetrics,
		match:      containsAny("calculate", "metrics", "numbers", "data"),
	},
	{
		category:   CategoryWorkflowGuidance,
		confidence: ConfidenceWorkflowGuidance,
		match:      containsAny("workflow", "process", "step", "procedure"),
	},
}

// Classify maps free-text input to a task category and confidence score.
// It is deterministic: the same input always yields the same result. Empty or
// whitespace-only input classifies as general with the lowest defined
// confidence and never errors.
func Classify(text string) Result {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Result{Category: CategoryGeneral, Confidence: ConfidenceGeneral}
	}

	for _, r := range rules {
		if r.match(normalized) {
			return Result{Category: r.category, Confidence: r.confidence}
		}
	}

	return Result{Category: CategoryGeneral, Confidence: ConfidenceGeneral}
}

// containsAny builds a predicate matching any of the given lowercase markers.
func containsAny(markers ...string) func(string) bool {
	return func(text string) bool {
		for _, m := range markers {
			if strings.Contains(text, m) {
				return true
			}
		}
		return false
	}
}
