// ABOUTME: Websocket connection handling for chat sessions
// ABOUTME: Owns the per-connection read loop, write pump, and session lifecycle

package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hemanthkethe10/MCP-A2A/internal/session"
)

const (
	// writeWait bounds a single frame write.
	writeWait = 10 * time.Second

	// pongWait is how long a connection may stay silent before the read
	// loop gives up on it. Pings go out at pingPeriod to keep it alive.
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second

	maxMessageSize = 64 * 1024
	sendQueueSize  = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin enforcement is left to the fronting proxy; the gateway itself
	// accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

var (
	errConnClosed    = errors.New("connection closed")
	errDeliveryStall = errors.New("send queue stalled")
)

// wsConn is one open websocket channel. It implements session.Handle so the
// registry can deliver broadcasts and close displaced connections without
// knowing about websockets.
type wsConn struct {
	sessionID   string
	conn        *websocket.Conn
	send        chan []byte
	done        chan struct{}
	closeOnce   sync.Once
	sendTimeout time.Duration
}

func newWSConn(sessionID string, conn *websocket.Conn, sendTimeout time.Duration) *wsConn {
	return &wsConn{
		sessionID:   sessionID,
		conn:        conn,
		send:        make(chan []byte, sendQueueSize),
		done:        make(chan struct{}),
		sendTimeout: sendTimeout,
	}
}

// Deliver queues a payload for the write pump. A connection whose queue stays
// full past the send timeout is reported as stalled rather than blocking the
// caller.
func (c *wsConn) Deliver(payload []byte) error {
	timer := time.NewTimer(c.sendTimeout)
	defer timer.Stop()

	select {
	case c.send <- payload:
		return nil
	case <-c.done:
		return errConnClosed
	case <-timer.C:
		return errDeliveryStall
	}
}

// Close signals the write pump to send a close frame and tear the connection
// down. Safe to call more than once.
func (c *wsConn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// writePump serializes all frame writes for the connection, including pings.
// It is the only goroutine allowed to write to the underlying conn.
func (c *wsConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleWebSocket handles GET /ws/{session_id} upgrade requests. An empty
// session identifier gets a freshly generated one; reconnecting with an
// existing identifier displaces the previous connection.
func (g *Gateway) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/ws"), "/")
	if strings.Contains(sessionID, "/") {
		http.Error(w, "invalid session path", http.StatusNotFound)
		return
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		g.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newWSConn(sessionID, conn, g.config.Sessions.BroadcastTimeout)
	g.registry.Register(sessionID, client)
	go client.writePump()

	g.deliverEvent(client, newEvent(
		EventConnectionEstablished,
		fmt.Sprintf("Connected to session %s", sessionID),
		sessionID,
	))

	g.readLoop(r, client)

	// Release is a no-op when a reconnect already displaced this connection.
	g.registry.Release(sessionID, client)
	client.Close()
}

// readLoop consumes inbound messages until the connection drops. Requests are
// processed synchronously, so messages on one session are answered strictly
// in arrival order.
func (g *Gateway) readLoop(r *http.Request, c *wsConn) {
	log := g.logger.With("session_id", c.sessionID)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("websocket read failed", "error", err)
			}
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			g.deliverEvent(c, newEvent(EventError, "invalid JSON payload", c.sessionID))
			continue
		}
		if msg.Type != MessageTypeUser {
			g.deliverEvent(c, newEvent(EventError,
				fmt.Sprintf("unsupported message type %q", msg.Type), c.sessionID))
			continue
		}

		if err := g.recordMessage(c.sessionID, MessageTypeUser, msg.Content); err != nil {
			log.Warn("recording user message", "error", err)
		}

		for ev := range g.coordinator.Run(r.Context(), c.sessionID, msg.Content) {
			out := fromWorkflowEvent(ev, c.sessionID)
			if out.Type == EventFinalResponse {
				if err := g.recordMessage(c.sessionID, EventFinalResponse, out.Content); err != nil {
					log.Warn("recording response", "error", err)
				}
			}
			if err := g.deliverEvent(c, out); err != nil {
				log.Warn("delivering event", "type", out.Type, "error", err)
				return
			}
		}
	}
}

func (g *Gateway) recordMessage(sessionID, msgType, content string) error {
	return g.registry.RecordMessage(sessionID, session.Message{
		Type:      msgType,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
}

// deliverEvent marshals an event and queues it on the connection.
func (g *Gateway) deliverEvent(c *wsConn, ev OutboundEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	return c.Deliver(payload)
}

var _ session.Handle = (*wsConn)(nil)
