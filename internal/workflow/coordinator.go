// ABOUTME: Workflow coordinator driving one request through classify and dispatch
// ABOUTME: Produces a lazy, ordered, finite sequence of events over a channel

package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hemanthkethe10/MCP-A2A/internal/classify"
	"github.com/hemanthkethe10/MCP-A2A/internal/tools"
)

// EventType indicates the kind of event produced for a request.
type EventType int

const (
	EventProcessingStarted EventType = iota
	EventStepDetail
	EventFinalResponse
	EventProcessingComplete
)

// StepInfo describes the workflow node an event originated from.
type StepInfo struct {
	StepNumber int
	NodeName   string
	Confidence float64
	ToolsUsed  []string
}

// Event is one element of a request's ordered event sequence.
type Event struct {
	Type    EventType
	Content string
	Step    *StepInfo
}

// Coordinator orchestrates one request through classification, tool
// invocation, and result assembly. It holds no per-request state; each Run
// call is independent.
type Coordinator struct {
	classifyFn func(string) classify.Result
	toolFor    func(classify.Category) tools.Tool
	logger     *slog.Logger
}

// NewCoordinator creates a Coordinator using the classification engine and
// tool registry.
func NewCoordinator(logger *slog.Logger) *Coordinator {
	return &Coordinator{
		classifyFn: classify.Classify,
		toolFor:    tools.ForCategory,
		logger:     logger,
	}
}

// Run handles exactly one request and returns the channel its event sequence
// is delivered on. The sequence is always processing-started, one step-detail
// per workflow node, exactly one final-response, then processing-complete,
// after which the channel is closed. A tool failure is recovered locally into
// a fallback response; it never truncates the sequence. Cancelling ctx stops
// emission early, still closing the channel.
func (c *Coordinator) Run(ctx context.Context, sessionID, text string) <-chan Event {
	out := make(chan Event, 8)
	go c.run(ctx, sessionID, text, out)
	return out
}

func (c *Coordinator) run(ctx context.Context, sessionID, text string, out chan<- Event) {
	defer close(out)

	requestID := uuid.New().String()
	log := c.logger.With("session_id", sessionID, "request_id", requestID)

	if !emit(ctx, out, Event{
		Type:    EventProcessingStarted,
		Content: "Processing your request...",
	}) {
		return
	}

	// Node 1: routing.
	result := c.classifyFn(text)
	record := newInvocationRecord()
	record.visit("router")
	log.Debug("request classified",
		"category", result.Category,
		"confidence", result.Confidence,
	)

	if !emit(ctx, out, Event{
		Type:    EventStepDetail,
		Content: fmt.Sprintf("Routing completed: %s", result.Category),
		Step:    record.stepInfo(result.Confidence),
	}) {
		return
	}

	// Node 2: the single matching tool.
	tool := c.toolFor(result.Category)
	record.visit(tool.Name)
	record.invoke(tool.Name)

	response, err := c.invokeTool(tool, text)
	if err != nil {
		// ToolExecutionError: recovered locally, never surfaced to the
		// channel as a failure. The session still gets a complete sequence.
		log.Error("tool execution failed", "tool", tool.Name, "error", err)
		response = fmt.Sprintf(
			"The %s step could not process this request. Please rephrase and try again.",
			tool.Name,
		)
	}

	if !emit(ctx, out, Event{
		Type:    EventStepDetail,
		Content: fmt.Sprintf("Executed %s", tool.Name),
		Step:    record.stepInfo(result.Confidence),
	}) {
		return
	}

	record.visit("respond")
	if !emit(ctx, out, Event{
		Type:    EventFinalResponse,
		Content: response,
		Step:    record.stepInfo(result.Confidence),
	}) {
		return
	}

	emit(ctx, out, Event{
		Type:    EventProcessingComplete,
		Content: "Processing completed. Feel free to ask another question.",
	})
}

// invokeTool runs a tool, converting a panic into an error so a misbehaving
// tool cannot take down the session's receive loop.
func (c *Coordinator) invokeTool(tool tools.Tool, text string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", tool.Name, r)
		}
	}()
	return tool.Run(text)
}

// emit sends an event unless the context is done. Reports whether the event
// was delivered.
func emit(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// invocationRecord accumulates the nodes traversed and tools invoked for the
// lifetime of one request. Discarded once the final response is emitted.
type invocationRecord struct {
	steps     int
	lastNode  string
	toolsUsed []string
}

func newInvocationRecord() *invocationRecord {
	return &invocationRecord{toolsUsed: []string{}}
}

func (r *invocationRecord) visit(node string) {
	r.steps++
	r.lastNode = node
}

func (r *invocationRecord) invoke(tool string) {
	r.toolsUsed = append(r.toolsUsed, tool)
}

// stepInfo snapshots the record for an event. ToolsUsed is copied so later
// invocations cannot mutate an already-emitted event.
func (r *invocationRecord) stepInfo(confidence float64) *StepInfo {
	used := make([]string, len(r.toolsUsed))
	copy(used, r.toolsUsed)
	return &StepInfo{
		StepNumber: r.steps,
		NodeName:   r.lastNode,
		Confidence: confidence,
		ToolsUsed:  used,
	}
}
