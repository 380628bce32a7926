// Package gateway wires the session registry, the workflow coordinator, and
// the HTTP server into one runnable unit.
//
// The server exposes three surfaces: the websocket endpoint at /ws/{id} where
// chat sessions live, a small management API under /api/ for listing,
// inspecting, closing, and broadcasting to sessions, and health probes.
//
// Each websocket connection runs two goroutines: a read loop that consumes
// client messages and drives the coordinator, and a write pump that owns all
// frame writes. Requests within one session are processed strictly in arrival
// order; sessions never block each other.
package gateway
