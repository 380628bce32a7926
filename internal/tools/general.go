// ABOUTME: General fallback tool used when no specific analysis applies
// ABOUTME: Static capability summary so the session always gets a useful reply

package tools

// GeneralResponse returns a static acknowledgment describing what the
// gateway can do. Used when no other tool is appropriate.
func GeneralResponse(input string) (string, error) {
	return "I can help with a few kinds of analysis:\n" +
		"- Content analysis: \"Analyze this text: <your text>\"\n" +
		"- Knowledge lookup: \"Search for information about <topic>\"\n" +
		"- Metrics: \"Calculate metrics for: 10, 20, 30, 25\"\n" +
		"- Workflow guidance: \"Help me with a workflow for <your process>\"\n" +
		"What would you like me to do?", nil
}
