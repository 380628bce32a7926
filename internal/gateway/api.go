// ABOUTME: HTTP API handlers for session inspection and broadcast
// ABOUTME: Provides /api/sessions and /api/broadcast endpoints

package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/hemanthkethe10/MCP-A2A/internal/session"
)

// SessionListResponse is the JSON response for GET /api/sessions.
type SessionListResponse struct {
	Sessions []session.Summary `json:"sessions"`
	Count    int               `json:"count"`
}

// BroadcastRequest is the JSON request body for POST /api/broadcast.
type BroadcastRequest struct {
	Content string `json:"content"`
}

// BroadcastResponse is the JSON response for POST /api/broadcast.
type BroadcastResponse struct {
	Delivered int `json:"delivered"`
	Sessions  int `json:"sessions"`
}

// handleListSessions handles GET /api/sessions requests.
func (g *Gateway) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	summaries := g.registry.ListActive()
	response := SessionListResponse{Sessions: summaries, Count: len(summaries)}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

// handleSessionRoutes handles GET and DELETE on /api/sessions/{id}.
func (g *Gateway) handleSessionRoutes(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/sessions"), "/")
	if sessionID == "" || strings.Contains(sessionID, "/") {
		g.sendJSONError(w, http.StatusBadRequest, "invalid session path")
		return
	}

	switch r.Method {
	case http.MethodGet:
		g.handleGetSession(w, sessionID)
	case http.MethodDelete:
		g.handleDeleteSession(w, sessionID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleGetSession returns the session's detail view including its history.
func (g *Gateway) handleGetSession(w http.ResponseWriter, sessionID string) {
	info, err := g.registry.Get(sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		g.sendJSONError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		g.logger.Error("failed to get session", "session_id", sessionID, "error", err)
		g.sendJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(info)
}

// handleDeleteSession force-closes a session's connection and removes it.
func (g *Gateway) handleDeleteSession(w http.ResponseWriter, sessionID string) {
	if _, err := g.registry.Get(sessionID); errors.Is(err, session.ErrSessionNotFound) {
		g.sendJSONError(w, http.StatusNotFound, "session not found")
		return
	}

	g.registry.Unregister(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// handleBroadcast handles POST /api/broadcast requests. The message is pushed
// to every connected session; sessions whose delivery fails are skipped, not
// retried, and the response reports how many deliveries succeeded.
func (g *Gateway) handleBroadcast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	req, err := parseBroadcastRequest(r.Body)
	if err != nil {
		g.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	delivered, total := g.broadcast(req.Content)
	g.logger.Info("broadcast dispatched", "delivered", delivered, "sessions", total)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(BroadcastResponse{Delivered: delivered, Sessions: total})
}

// broadcast pushes a broadcast event to every registered session and returns
// the delivered and total counts.
func (g *Gateway) broadcast(content string) (delivered, total int) {
	g.registry.ForEachHandle(func(id string, h session.Handle) {
		total++
		payload, err := json.Marshal(newEvent(EventBroadcast, content, id))
		if err != nil {
			g.logger.Error("marshaling broadcast event", "error", err)
			return
		}
		if err := h.Deliver(payload); err != nil {
			g.logger.Warn("broadcast delivery failed", "session_id", id, "error", err)
			return
		}
		delivered++
	})
	return delivered, total
}

// parseBroadcastRequest parses and validates a BroadcastRequest body.
func parseBroadcastRequest(r io.Reader) (*BroadcastRequest, error) {
	var req BroadcastRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.New("invalid JSON body")
	}
	if req.Content == "" {
		return nil, errors.New("content is required")
	}
	return &req, nil
}

// sendJSONError writes a JSON error response.
func (g *Gateway) sendJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
