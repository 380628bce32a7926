// ABOUTME: Tool registry mapping task categories to analysis routines
// ABOUTME: Each tool is stateless and deterministic, text in, structured text out

package tools

import (
	"github.com/hemanthkethe10/MCP-A2A/internal/classify"
)

// Tool is a stateless analysis routine. Run takes the raw request text and
// returns structured text output. Tools report expected problems (such as
// unparseable input) as human-readable text in their result; a non-nil error
// means the tool itself failed and the caller should substitute a fallback.
type Tool struct {
	Name string
	Run  func(input string) (string, error)
}

// ForCategory returns the tool that handles the given task category.
// Unknown categories get the general fallback.
func ForCategory(category classify.Category) Tool {
	switch category {
	case classify.CategoryTextAnalysis:
		return Tool{Name: "analyze_text_content", Run: AnalyzeText}
	case classify.CategoryKnowledgeSearch:
		return Tool{Name: "search_knowledge_base", Run: SearchKnowledge}
	case classify.CategoryMetrics:
		return Tool{Name: "calculate_metrics", Run: CalculateMetrics}
	case classify.CategoryWorkflowGuidance:
		return Tool{Name: "process_workflow_step", Run: WorkflowGuidance}
	default:
		return Tool{Name: "general_response", Run: GeneralResponse}
	}
}
