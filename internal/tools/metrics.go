// ABOUTME: Metrics tool computing summary statistics over an embedded numeric list
// ABOUTME: Population (N) denominator for variance, growth rate guarded against zero

package tools

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// CalculateMetrics extracts a numeric list from the input and reports count,
// sum, mean, min, max, population standard deviation and variance, and the
// growth rate between first and last value. Zero parseable numbers is not an
// error: the result explains what was expected.
func CalculateMetrics(input string) (string, error) {
	values := extractNumbers(input)
	if len(values) == 0 {
		return "I didn't find any numeric data in your message. " +
			"Provide comma-separated numbers, for example: \"Calculate metrics for: 10, 20, 30, 25, 35\"", nil
	}

	count := len(values)
	sum := 0.0
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		sum += v
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	mean := sum / float64(count)

	// Population variance: N in the denominator, not N-1.
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(count)
	stdDev := math.Sqrt(variance)

	// Period-over-period growth between first and last value. A zero first
	// value reports 0% rather than dividing by zero.
	growth := 0.0
	if values[0] != 0 {
		growth = (values[count-1] - values[0]) / values[0] * 100
	}

	var b strings.Builder
	b.WriteString("Metrics results:\n")
	fmt.Fprintf(&b, "- Count: %d\n", count)
	fmt.Fprintf(&b, "- Sum: %s\n", formatNumber(sum))
	fmt.Fprintf(&b, "- Mean: %.2f\n", mean)
	fmt.Fprintf(&b, "- Min: %s\n", formatNumber(minVal))
	fmt.Fprintf(&b, "- Max: %s\n", formatNumber(maxVal))
	fmt.Fprintf(&b, "- Std dev: %.2f (variance %.2f)\n", stdDev, variance)
	fmt.Fprintf(&b, "- Growth: %.1f%% (first to last)", growth)
	return b.String(), nil
}

// extractNumbers pulls every parseable number out of free text.
func extractNumbers(input string) []float64 {
	matches := numberPattern.FindAllString(input, -1)
	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// formatNumber prints integers without a decimal tail.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
