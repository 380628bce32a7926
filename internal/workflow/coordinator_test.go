// ABOUTME: Tests for the workflow coordinator's event sequencing
// ABOUTME: Covers ordering, tool failure fallback, panic recovery, and cancellation

package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthkethe10/MCP-A2A/internal/classify"
	"github.com/hemanthkethe10/MCP-A2A/internal/tools"
)

func newTestCoordinator() *Coordinator {
	return NewCoordinator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// collect drains a request's event channel with a timeout guard so a missing
// close fails the test instead of hanging it.
func collect(t *testing.T, ch <-chan Event) []Event {
	t.Helper()

	var events []Event
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-deadline:
			t.Fatal("event channel was not closed")
		}
	}
}

func TestCoordinator_EventSequence(t *testing.T) {
	c := newTestCoordinator()

	events := collect(t, c.Run(context.Background(), "sess-1", "Calculate metrics for: 85, 92, 78"))
	require.Len(t, events, 5)

	assert.Equal(t, EventProcessingStarted, events[0].Type)
	assert.Equal(t, EventStepDetail, events[1].Type)
	assert.Equal(t, EventStepDetail, events[2].Type)
	assert.Equal(t, EventFinalResponse, events[3].Type)
	assert.Equal(t, EventProcessingComplete, events[4].Type)
}

func TestCoordinator_RouterStepDetail(t *testing.T) {
	c := newTestCoordinator()

	events := collect(t, c.Run(context.Background(), "sess-1", "Calculate metrics for: 1, 2, 3"))
	require.Len(t, events, 5)

	router := events[1]
	require.NotNil(t, router.Step)
	assert.Equal(t, 1, router.Step.StepNumber)
	assert.Equal(t, "router", router.Step.NodeName)
	assert.InDelta(t, 0.90, router.Step.Confidence, 0.001)
	assert.Empty(t, router.Step.ToolsUsed, "no tool has run at the routing step")
	assert.Contains(t, router.Content, "metrics_calculation")
}

func TestCoordinator_ToolStepDetail(t *testing.T) {
	c := newTestCoordinator()

	events := collect(t, c.Run(context.Background(), "sess-1", "Analyze this text: I love it"))
	require.Len(t, events, 5)

	toolStep := events[2]
	require.NotNil(t, toolStep.Step)
	assert.Equal(t, 2, toolStep.Step.StepNumber)
	assert.Equal(t, "analyze_text_content", toolStep.Step.NodeName)
	assert.InDelta(t, 0.85, toolStep.Step.Confidence, 0.001)
	assert.Equal(t, []string{"analyze_text_content"}, toolStep.Step.ToolsUsed)
}

func TestCoordinator_FinalResponseCarriesToolOutput(t *testing.T) {
	c := newTestCoordinator()

	events := collect(t, c.Run(context.Background(), "sess-1", "Calculate metrics for: 85, 92, 78"))
	require.Len(t, events, 5)

	final := events[3]
	assert.Contains(t, final.Content, "Count: 3")
	require.NotNil(t, final.Step)
	assert.Equal(t, 3, final.Step.StepNumber)
	assert.Equal(t, "respond", final.Step.NodeName)
	assert.Equal(t, []string{"calculate_metrics"}, final.Step.ToolsUsed)
}

func TestCoordinator_ToolFailureFallback(t *testing.T) {
	c := newTestCoordinator()
	c.toolFor = func(classify.Category) tools.Tool {
		return tools.Tool{
			Name: "broken_tool",
			Run:  func(string) (string, error) { return "", errors.New("backend unavailable") },
		}
	}

	events := collect(t, c.Run(context.Background(), "sess-1", "anything"))
	require.Len(t, events, 5, "a tool failure must not truncate the sequence")

	final := events[3]
	assert.Equal(t, EventFinalResponse, final.Type)
	assert.Contains(t, final.Content, "broken_tool")
	assert.Contains(t, final.Content, "could not process")
	assert.Equal(t, EventProcessingComplete, events[4].Type)
}

func TestCoordinator_ToolPanicRecovered(t *testing.T) {
	c := newTestCoordinator()
	c.toolFor = func(classify.Category) tools.Tool {
		return tools.Tool{
			Name: "panicky_tool",
			Run:  func(string) (string, error) { panic("boom") },
		}
	}

	events := collect(t, c.Run(context.Background(), "sess-1", "anything"))
	require.Len(t, events, 5)
	assert.Equal(t, EventFinalResponse, events[3].Type)
	assert.Contains(t, events[3].Content, "panicky_tool")
}

func TestCoordinator_ContextCancellationClosesChannel(t *testing.T) {
	c := newTestCoordinator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := c.Run(ctx, "sess-1", "Calculate metrics for: 1, 2")

	// The channel must close without delivering the full sequence; the
	// buffered head of the sequence may still arrive.
	events := collect(t, ch)
	assert.LessOrEqual(t, len(events), 5)
}

func TestCoordinator_IndependentRuns(t *testing.T) {
	c := newTestCoordinator()

	first := c.Run(context.Background(), "sess-1", "Calculate metrics for: 1, 2, 3")
	second := c.Run(context.Background(), "sess-2", "Search for knowledge about ai")

	got1 := collect(t, first)
	got2 := collect(t, second)

	require.Len(t, got1, 5)
	require.Len(t, got2, 5)
	assert.Contains(t, got1[3].Content, "Count: 3")
	assert.Contains(t, got2[1].Content, "knowledge_search")
}
