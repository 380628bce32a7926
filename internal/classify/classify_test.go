// ABOUTME: Tests for the classification engine
// ABOUTME: Covers rule priority, determinism, and empty-input handling

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		category   Category
		confidence float64
	}{
		{
			name:       "analysis intent",
			input:      "Analyze this text: I love this new feature!",
			category:   CategoryTextAnalysis,
			confidence: ConfidenceTextAnalysis,
		},
		{
			name:       "sentiment marker",
			input:      "what is the sentiment here",
			category:   CategoryTextAnalysis,
			confidence: ConfidenceTextAnalysis,
		},
		{
			name:       "search intent",
			input:      "Search for information about websockets",
			category:   CategoryKnowledgeSearch,
			confidence: ConfidenceKnowledgeSearch,
		},
		{
			name:       "metrics intent",
			input:      "Calculate metrics for: 85, 92, 78, 95, 88, 91",
			category:   CategoryMetrics,
			confidence: ConfidenceMetrics,
		},
		{
			name:       "workflow intent",
			input:      "Help me with a workflow for shipping a release",
			category:   CategoryWorkflowGuidance,
			confidence: ConfidenceWorkflowGuidance,
		},
		{
			name:       "no marker falls back to general",
			input:      "hello there",
			category:   CategoryGeneral,
			confidence: ConfidenceGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			assert.Equal(t, tt.category, got.Category)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// "analyze" and "search" both present: the declared rule order wins,
	// not the higher confidence.
	got := Classify("analyze the results and search for patterns")
	assert.Equal(t, CategoryTextAnalysis, got.Category)

	// "search" and "calculate" both present: knowledge-search is declared
	// before metrics even though metrics carries the higher confidence.
	got = Classify("search the docs then calculate totals")
	assert.Equal(t, CategoryKnowledgeSearch, got.Category)
}

func TestClassify_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		got := Classify(input)
		assert.Equal(t, CategoryGeneral, got.Category)
		assert.InDelta(t, ConfidenceGeneral, got.Confidence, 1e-9)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	input := "Calculate metrics for: 1, 2, 3"
	first := Classify(input)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify(input))
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("ANALYZE THIS"), Classify("analyze this"))
}
