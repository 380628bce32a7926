// ABOUTME: Tests for the text analysis tool
// ABOUTME: Covers sentiment, keywords, complexity thresholds, and summaries

package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeText_PositiveScenario(t *testing.T) {
	out, err := AnalyzeText("Analyze this text: I love this new feature!")
	require.NoError(t, err)

	assert.Contains(t, out, "Sentiment: positive")
	assert.Contains(t, out, "love")
	assert.Contains(t, out, "feature")
	assert.Contains(t, out, "Summary: I love this new feature")
}

func TestAnalyzeText_SegmentExtraction(t *testing.T) {
	// Content after the first colon is analyzed, not the instruction.
	out, err := AnalyzeText("Analyze: the service is terrible and broken")
	require.NoError(t, err)
	assert.Contains(t, out, "Sentiment: negative")
	assert.NotContains(t, out, "analyze")

	// Without a colon the whole input is the segment.
	out, err = AnalyzeText("wonderful excellent results")
	require.NoError(t, err)
	assert.Contains(t, out, "Sentiment: positive")
}

func TestAnalyzeText_NeutralTie(t *testing.T) {
	out, err := AnalyzeText("text: the good parts balance the bad parts")
	require.NoError(t, err)
	assert.Contains(t, out, "Sentiment: neutral")
}

func TestAnalyzeText_EmptySegment(t *testing.T) {
	out, err := AnalyzeText("analyze:   ")
	require.NoError(t, err)
	assert.Contains(t, out, "No text to analyze")
}

func TestComplexityOf(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label string
	}{
		{"short sentences are simple", "One two three. Four five six.", "simple"},
		{
			"mid-length sentences are medium",
			"one two three four five six seven eight nine ten eleven twelve.",
			"medium",
		},
		{
			"long sentences are complex",
			strings.Repeat("word ", 25) + ".",
			"complex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, _ := complexityOf(tt.text)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestKeywordsOf(t *testing.T) {
	keywords := keywordsOf("feature feature feature gateway gateway love this this this")
	require.NotEmpty(t, keywords)

	// Frequency order, stopwords and short words dropped.
	assert.Equal(t, "feature", keywords[0])
	assert.Contains(t, keywords, "gateway")
	assert.Contains(t, keywords, "love")
	assert.NotContains(t, keywords, "this")
}

func TestKeywordsOf_TopN(t *testing.T) {
	keywords := keywordsOf("alpha bravo charlie delta echoes foxtrot golfing hotels")
	assert.LessOrEqual(t, len(keywords), topKeywords)
}

func TestSummarize_NoSentenceBoundary(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 30))
	summary := summarize(long)
	assert.LessOrEqual(t, len(strings.Fields(summary)), summaryWordLimit+1)
}
