// ABOUTME: Wire-format event types exchanged with websocket clients
// ABOUTME: Converts internal workflow events into outbound JSON payloads

package gateway

import (
	"time"

	"github.com/hemanthkethe10/MCP-A2A/internal/workflow"
)

// Outbound event types. Every payload a client receives carries exactly one
// of these in its type field.
const (
	EventConnectionEstablished = "connection_established"
	EventProcessingStarted     = "processing_started"
	EventStepDetail            = "step_detail"
	EventFinalResponse         = "final_response"
	EventProcessingComplete    = "processing_complete"
	EventError                 = "error"
	EventBroadcast             = "broadcast"
)

// MessageTypeUser is the only inbound message type clients may send.
const MessageTypeUser = "user_message"

// StepInfo is the wire form of a workflow step annotation.
type StepInfo struct {
	StepNumber      int      `json:"step_number"`
	NodeName        string   `json:"node_name"`
	ConfidenceScore float64  `json:"confidence_score"`
	ToolsUsed       []string `json:"tools_used"`
}

// OutboundEvent is one JSON payload sent to a client.
type OutboundEvent struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	SessionID string    `json:"session_id"`
	Timestamp string    `json:"timestamp"`
	StepInfo  *StepInfo `json:"step_info,omitempty"`
}

// InboundMessage is one JSON payload received from a client.
type InboundMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// newEvent builds an outbound event stamped with the current time.
func newEvent(eventType, content, sessionID string) OutboundEvent {
	return OutboundEvent{
		Type:      eventType,
		Content:   content,
		SessionID: sessionID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// fromWorkflowEvent converts a coordinator event into its wire form.
func fromWorkflowEvent(ev workflow.Event, sessionID string) OutboundEvent {
	out := newEvent(workflowEventType(ev.Type), ev.Content, sessionID)
	if ev.Step != nil {
		out.StepInfo = &StepInfo{
			StepNumber:      ev.Step.StepNumber,
			NodeName:        ev.Step.NodeName,
			ConfidenceScore: ev.Step.Confidence,
			ToolsUsed:       ev.Step.ToolsUsed,
		}
	}
	return out
}

func workflowEventType(t workflow.EventType) string {
	switch t {
	case workflow.EventProcessingStarted:
		return EventProcessingStarted
	case workflow.EventStepDetail:
		return EventStepDetail
	case workflow.EventFinalResponse:
		return EventFinalResponse
	case workflow.EventProcessingComplete:
		return EventProcessingComplete
	default:
		return EventError
	}
}
