// ABOUTME: Knowledge search tool returning canned passages per domain
// ABOUTME: Fixed keyword-to-domain tables, first matching domain and term win

package tools

import (
	"fmt"
	"strings"
)

// domainRule maps trigger keywords to a knowledge domain. Order matters:
// the first rule whose keyword appears in the query wins.
type domainRule struct {
	domain   string
	keywords []string
}

var domainRules = []domainRule{
	{domain: "technical", keywords: []string{"technical", "code", "programming", "api", "websocket", "server"}},
	{domain: "business", keywords: []string{"business", "strategy", "market", "automation"}},
	{domain: "science", keywords: []string{"research", "study", "data", "science"}},
}

// passage pairs a term with its canned answer. Term order within a domain is
// the lookup order, so the dominant matched term is deterministic.
type passage struct {
	term string
	text string
}

var knowledgeBase = map[string][]passage{
	"general": {
		{"machine learning", "Machine learning is a subset of AI where systems improve from examples rather than explicit programming."},
		{"ai", "Artificial intelligence is a field of computer science focused on building systems that perform tasks typically requiring human judgment."},
		{"agent", "An agent is a program that observes its environment, decides on an action, and acts toward a goal, often in a loop."},
	},
	"technical": {
		{"websocket", "WebSockets provide full-duplex communication over a single TCP connection, well suited to real-time streaming applications."},
		{"api", "An API defines the contract through which programs request services from each other, decoupling callers from implementations."},
		{"server", "A server accepts requests from clients over a network and returns responses, typically handling many clients concurrently."},
	},
	"business": {
		{"strategy", "Business strategy defines long-term goals and the approach for achieving a competitive advantage."},
		{"automation", "Process automation uses software to streamline repetitive operations, reducing cost and error rates."},
	},
	"science": {
		{"data", "Data science combines statistical methods, algorithms, and domain expertise to extract insight from raw data."},
		{"research", "Scientific research follows systematic methodology to investigate hypotheses and advance knowledge."},
	},
}

// defaultPassages answer queries that matched a domain but none of its terms.
// The %q verb receives the original query.
var defaultPassages = map[string]string{
	"general":   "General knowledge about %q: this is a broad topic with multiple applications and considerations.",
	"technical": "Technical information about %q: this involves implementation details and practices specific to the technology stack.",
	"business":  "Business insight about %q: consider the impact on operations, costs, and stakeholder value.",
	"science":   "Scientific perspective on %q: this calls for empirical analysis and evidence-based conclusions.",
}

// SearchKnowledge maps the query to a domain via the fixed keyword tables and
// returns the canned passage for the first matched term, falling back to the
// domain's generic passage when no term matches.
func SearchKnowledge(input string) (string, error) {
	query := strings.ToLower(strings.TrimSpace(input))

	domain := "general"
	for _, rule := range domainRules {
		if matchesAny(query, rule.keywords) {
			domain = rule.domain
			break
		}
	}

	text := fmt.Sprintf(defaultPassages[domain], strings.TrimSpace(input))
	for _, p := range knowledgeBase[domain] {
		if strings.Contains(query, p.term) {
			text = p.text
			break
		}
	}

	return fmt.Sprintf("Knowledge search (%s domain):\n%s", domain, text), nil
}

func matchesAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
