// ABOUTME: Session registry tracking every open channel by session identifier
// ABOUTME: Owns Session records exclusively and hands out handles for delivery

package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrSessionNotFound indicates the specified session was not found.
var ErrSessionNotFound = errors.New("session not found")

// Handle is the delivery side of an open channel. The connection manager
// implements it; the registry closes a handle when it is displaced by a
// reconnect.
type Handle interface {
	// Deliver queues a payload for the client. It must not block
	// indefinitely: a slow or broken consumer returns an error instead.
	Deliver(payload []byte) error

	// Close releases the handle. Safe to call more than once.
	Close()
}

// Message is one exchanged message retained in session history.
type Message struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one logical client conversation. The registry owns each Session
// record; callers only ever see snapshots.
type Session struct {
	id        string
	createdAt time.Time
	history   []Message
	handle    Handle
}

// Summary is the listing view of a session.
type Summary struct {
	ID           string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	MessageCount int       `json:"message_count"`
}

// Info is the detail view of a session, including its message history.
type Info struct {
	ID        string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	History   []Message `json:"history"`
}

// Registry tracks every open channel by session identifier. All operations
// are safe under concurrent access; the registry is the only mutable
// structure shared between sessions.
type Registry struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	historyLimit int
	logger       *slog.Logger
}

// NewRegistry creates a Registry bounding per-session history at
// historyLimit messages (oldest dropped first).
func NewRegistry(historyLimit int, logger *slog.Logger) *Registry {
	return &Registry{
		sessions:     make(map[string]*Session),
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Register binds a handle to a session identifier. Registering an identifier
// that is already present is treated as a reconnect, not an error: the stale
// handle is closed and replaced while the session's creation time and history
// are kept. Returns true when an existing entry was replaced.
func (r *Registry) Register(id string, handle Handle) bool {
	r.mu.Lock()

	existing, replaced := r.sessions[id]
	var displaced Handle
	if replaced {
		displaced = existing.handle
		existing.handle = handle
	} else {
		r.sessions[id] = &Session{
			id:        id,
			createdAt: time.Now().UTC(),
			handle:    handle,
		}
	}
	total := len(r.sessions)
	r.mu.Unlock()

	if displaced != nil {
		displaced.Close()
	}

	r.logger.Info("session registered",
		"session_id", id,
		"replaced", replaced,
		"total_sessions", total,
	)
	return replaced
}

// Unregister removes a session. Unregistering an absent identifier is a
// no-op, not an error.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	total := len(r.sessions)
	r.mu.Unlock()

	if !ok {
		return
	}
	sess.handle.Close()
	r.logger.Info("session unregistered",
		"session_id", id,
		"total_sessions", total,
	)
}

// Release removes the session only while handle is still the registered one.
// Connection teardown uses this so a connection displaced by a reconnect
// cannot tear down its replacement.
func (r *Registry) Release(id string, handle Handle) {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	if !ok || sess.handle != handle {
		r.mu.Unlock()
		return
	}
	delete(r.sessions, id)
	total := len(r.sessions)
	r.mu.Unlock()

	handle.Close()
	r.logger.Info("session unregistered",
		"session_id", id,
		"total_sessions", total,
	)
}

// Get returns a snapshot of the session's info, or ErrSessionNotFound.
func (r *Registry) Get(id string) (Info, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return Info{}, ErrSessionNotFound
	}

	history := make([]Message, len(sess.history))
	copy(history, sess.history)
	return Info{ID: sess.id, CreatedAt: sess.createdAt, History: history}, nil
}

// ListActive returns a summary for every registered session.
func (r *Registry) ListActive() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]Summary, 0, len(r.sessions))
	for _, sess := range r.sessions {
		summaries = append(summaries, Summary{
			ID:           sess.id,
			CreatedAt:    sess.createdAt,
			MessageCount: len(sess.history),
		})
	}
	return summaries
}

// RecordMessage appends a message to the session's bounded history. The
// oldest message is dropped once the limit is reached, so history growth
// never blocks. Recording against an unknown session returns
// ErrSessionNotFound.
func (r *Registry) RecordMessage(id string, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	sess.history = append(sess.history, msg)
	if r.historyLimit > 0 && len(sess.history) > r.historyLimit {
		overflow := len(sess.history) - r.historyLimit
		sess.history = append(sess.history[:0], sess.history[overflow:]...)
	}
	return nil
}

// ForEachHandle calls fn with every registered session's handle. Handles are
// snapshotted under the lock first so fn runs without holding it.
func (r *Registry) ForEachHandle(fn func(id string, h Handle)) {
	type entry struct {
		id string
		h  Handle
	}

	r.mu.RLock()
	entries := make([]entry, 0, len(r.sessions))
	for id, sess := range r.sessions {
		entries = append(entries, entry{id: id, h: sess.handle})
	}
	r.mu.RUnlock()

	for _, e := range entries {
		fn(e.id, e.h)
	}
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
