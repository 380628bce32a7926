// ABOUTME: Gateway orchestrator that wires the registry, coordinator, and HTTP server
// ABOUTME: Manages websocket sessions, API routes, and lifecycle

package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hemanthkethe10/MCP-A2A/internal/config"
	"github.com/hemanthkethe10/MCP-A2A/internal/session"
	"github.com/hemanthkethe10/MCP-A2A/internal/workflow"
)

// Gateway orchestrates the chat gateway server components. It owns the
// session registry, the workflow coordinator, and the HTTP server carrying
// the websocket endpoint and the management API.
type Gateway struct {
	config      *config.Config
	registry    *session.Registry
	coordinator *workflow.Coordinator
	httpServer  *http.Server
	logger      *slog.Logger

	// serverID identifies this gateway instance
	serverID string

	startTime time.Time
}

// New creates a new Gateway instance with the given configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Gateway, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	gw := &Gateway{
		config:      cfg,
		registry:    session.NewRegistry(cfg.Sessions.HistoryLimit, logger.With("component", "session-registry")),
		coordinator: workflow.NewCoordinator(logger.With("component", "coordinator")),
		logger:      logger.With("component", "gateway"),
		serverID:    generateServerID(),
		startTime:   time.Now().UTC(),
	}

	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("/health", gw.handleHealth)
	mux.HandleFunc("/health/ready", gw.handleReady)

	// Websocket endpoint: /ws opens a fresh session, /ws/{id} resumes one
	mux.HandleFunc("/ws", gw.handleWebSocket)
	mux.HandleFunc("/ws/", gw.handleWebSocket)

	// Management API
	mux.HandleFunc("/api/sessions", gw.handleListSessions)
	mux.HandleFunc("/api/sessions/", gw.handleSessionRoutes)
	mux.HandleFunc("/api/broadcast", gw.handleBroadcast)

	gw.httpServer = &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return gw, nil
}

// Run starts the gateway server and blocks until the context is canceled.
// Returns nil on graceful shutdown (context canceled), or an error if the
// server fails.
func (g *Gateway) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", g.config.Server.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening on HTTP address: %w", err)
	}

	errCh := g.startServer(ln)
	serverErr := g.waitForShutdownSignal(ctx, errCh)

	shutdownErr := g.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// startServer starts the HTTP server in a goroutine, returning error channel.
func (g *Gateway) startServer(ln net.Listener) chan error {
	errCh := make(chan error, 1)

	go func() {
		g.logger.Info("HTTP server listening", "addr", ln.Addr().String(), "server_id", g.serverID)
		if err := g.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	return errCh
}

// waitForShutdownSignal waits for context cancellation or a server error.
func (g *Gateway) waitForShutdownSignal(ctx context.Context, errCh chan error) error {
	select {
	case <-ctx.Done():
		g.logger.Info("context canceled, initiating shutdown")
		return nil
	case err := <-errCh:
		g.logger.Error("server error", "error", err)
		return err
	}
}

// gracefulShutdown performs shutdown with a fresh context and timeout.
// Uses context.Background() intentionally since the original context is
// already canceled.
func (g *Gateway) gracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return g.Shutdown(ctx)
}

// Shutdown gracefully stops the HTTP server and closes every open session.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.logger.Info("shutting down gateway", "open_sessions", g.registry.Len())

	// Release closes each handle as it removes the session.
	g.registry.ForEachHandle(func(id string, h session.Handle) {
		g.registry.Release(id, h)
	})

	if err := g.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown: %w", err)
	}
	return nil
}

// Registry exposes the session registry for management tooling.
func (g *Gateway) Registry() *session.Registry {
	return g.registry
}

// handleHealth returns 200 OK if the server is alive.
func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleReady reports readiness along with the open session count.
func (g *Gateway) handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "ready (%d sessions)", g.registry.Len())
}

// generateServerID creates a unique identifier for this gateway instance.
func generateServerID() string {
	return fmt.Sprintf("mcp-gateway-%d", time.Now().UnixNano()%1000000)
}
