// ABOUTME: Text analysis tool: sentiment, keywords, complexity, summary
// ABOUTME: Fixed keyword lists and thresholds keep the output deterministic

package tools

import (
	"fmt"
	"sort"
	"strings"
)

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"love", "like", "happy", "helpful",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "disappointing",
	"hate", "broken", "poor", "sad",
}

// stopwords are excluded from keyword extraction.
var stopwords = map[string]bool{
	"this": true, "that": true, "these": true, "those": true,
	"with": true, "from": true, "have": true, "will": true,
	"about": true, "what": true, "when": true, "where": true,
	"your": true, "their": true, "there": true, "then": true,
	"than": true, "them": true, "been": true, "were": true,
	"would": true, "could": true, "should": true, "into": true,
	"also": true, "some": true, "such": true, "very": true,
}

const topKeywords = 5

// Complexity thresholds in average words per sentence.
const (
	simpleThreshold = 10
	mediumThreshold = 20
)

// summaryWordLimit caps the extractive summary when no sentence boundary exists.
const summaryWordLimit = 12

// AnalyzeText analyzes the text segment embedded in the request: the content
// after the first colon, or the whole input when no colon is present. It
// reports sentiment, top keywords, complexity, and a one-line summary.
func AnalyzeText(input string) (string, error) {
	segment := extractSegment(input)
	if strings.TrimSpace(segment) == "" {
		return "No text to analyze. Try: \"Analyze this text: your text here\"", nil
	}

	sentiment, pos, neg := sentimentOf(segment)
	keywords := keywordsOf(segment)
	complexity, avgWords := complexityOf(segment)
	summary := summarize(segment)

	var b strings.Builder
	b.WriteString("Text analysis results:\n")
	fmt.Fprintf(&b, "- Sentiment: %s (%d positive / %d negative signals)\n", sentiment, pos, neg)
	if len(keywords) > 0 {
		fmt.Fprintf(&b, "- Top keywords: %s\n", strings.Join(keywords, ", "))
	} else {
		b.WriteString("- Top keywords: none\n")
	}
	fmt.Fprintf(&b, "- Complexity: %s (%.1f words/sentence)\n", complexity, avgWords)
	fmt.Fprintf(&b, "- Summary: %s", summary)
	return b.String(), nil
}

// extractSegment returns the content after the first colon, or the whole
// input when no colon is present.
func extractSegment(input string) string {
	if idx := strings.Index(input, ":"); idx >= 0 {
		return strings.TrimSpace(input[idx+1:])
	}
	return strings.TrimSpace(input)
}

// sentimentOf counts fixed positive and negative markers with a simple
// majority rule. Ties are neutral.
func sentimentOf(text string) (label string, pos, neg int) {
	lower := strings.ToLower(text)
	for _, w := range positiveWords {
		pos += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		neg += strings.Count(lower, w)
	}
	switch {
	case pos > neg:
		return "positive", pos, neg
	case neg > pos:
		return "negative", pos, neg
	default:
		return "neutral", pos, neg
	}
}

// keywordsOf returns up to topKeywords case-normalized words by frequency,
// filtering stopwords and words of three runes or fewer. Ordering is
// frequency-descending with alphabetical tie-break so output is stable.
func keywordsOf(text string) []string {
	freq := make(map[string]int)
	for _, word := range strings.Fields(text) {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:\"'()[]"))
		if len([]rune(cleaned)) <= 3 || stopwords[cleaned] {
			continue
		}
		freq[cleaned]++
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > topKeywords {
		words = words[:topKeywords]
	}
	return words
}

// complexityOf labels the text by average words per sentence.
func complexityOf(text string) (label string, avgWords float64) {
	sentences := splitSentences(text)
	wordCount := len(strings.Fields(text))
	sentenceCount := len(sentences)
	if sentenceCount == 0 {
		sentenceCount = 1
	}
	avgWords = float64(wordCount) / float64(sentenceCount)

	switch {
	case avgWords < simpleThreshold:
		return "simple", avgWords
	case avgWords <= mediumThreshold:
		return "medium", avgWords
	default:
		return "complex", avgWords
	}
}

// summarize extracts the first sentence, or the first summaryWordLimit words
// when no sentence boundary is found.
func summarize(text string) string {
	if strings.ContainsAny(text, ".!?") {
		if sentences := splitSentences(text); len(sentences) > 0 {
			return strings.TrimSpace(sentences[0])
		}
	}
	words := strings.Fields(text)
	if len(words) > summaryWordLimit {
		return strings.Join(words[:summaryWordLimit], " ") + "…"
	}
	return strings.TrimSpace(text)
}

// splitSentences breaks text on terminal punctuation, dropping empty parts.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
