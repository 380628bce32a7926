// ABOUTME: Workflow guidance tool matching requests to fixed process templates
// ABOUTME: Returns an ordered step list, or a generic breakdown when nothing matches

package tools

import (
	"fmt"
	"strings"
)

// workflowTemplate is a named process with an ordered step list.
type workflowTemplate struct {
	name     string
	keywords []string
	steps    []string
}

// workflowTemplates is checked in order; the first template with a matching
// keyword wins.
var workflowTemplates = []workflowTemplate{
	{
		name:     "data analysis",
		keywords: []string{"data", "analysis", "analyze", "report", "insight"},
		steps: []string{
			"Collect relevant data from your sources and validate its quality",
			"Clean and normalize the data set",
			"Analyze the data with appropriate methods and identify patterns",
			"Derive actionable insights from the analysis",
			"Formulate recommendations grounded in the insights",
			"Validate recommendations for feasibility and impact",
		},
	},
	{
		name:     "software delivery",
		keywords: []string{"release", "deploy", "ship", "software", "build"},
		steps: []string{
			"Define the scope and acceptance criteria",
			"Implement the change behind review",
			"Run the test suite and fix regressions",
			"Stage the release and verify in a production-like environment",
			"Deploy incrementally and monitor",
			"Confirm rollout health and close the loop with stakeholders",
		},
	},
	{
		name:     "incident response",
		keywords: []string{"incident", "outage", "alert", "postmortem"},
		steps: []string{
			"Acknowledge the alert and assess impact",
			"Mitigate first: restore service before finding root cause",
			"Communicate status to affected parties",
			"Identify and fix the root cause",
			"Write a blameless postmortem with followup actions",
		},
	},
}

// WorkflowGuidance matches the request against the fixed template set and
// returns that template's ordered steps, or a generic break-it-down response
// when no template matches.
func WorkflowGuidance(input string) (string, error) {
	lower := strings.ToLower(input)

	for _, tpl := range workflowTemplates {
		if matchesAny(lower, tpl.keywords) {
			var b strings.Builder
			fmt.Fprintf(&b, "Suggested %s workflow:\n", tpl.name)
			for i, step := range tpl.steps {
				fmt.Fprintf(&b, "%d. %s\n", i+1, step)
			}
			return strings.TrimRight(b.String(), "\n"), nil
		}
	}

	return "No specific workflow template matches. A general approach:\n" +
		"1. Break the task into small, independent steps\n" +
		"2. Order the steps by dependency\n" +
		"3. Execute one step at a time and verify each result\n" +
		"4. Review the outcome against the original goal", nil
}
