// ABOUTME: Tests for gateway construction and lifecycle
// ABOUTME: Covers startup, graceful shutdown, and session cleanup on stop

package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_NewRequiresConfig(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestGateway_RunStopsOnContextCancel(t *testing.T) {
	g := newTestGateway(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- g.Run(ctx)
	}()

	// Give the listener a moment to come up, then trigger shutdown.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "context cancellation is a graceful stop")
	case <-time.After(10 * time.Second):
		t.Fatal("gateway did not shut down")
	}
}

func TestGateway_ShutdownClosesSessions(t *testing.T) {
	g := newTestGateway(t)

	h := &stubHandle{}
	g.registry.Register("sess-1", h)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, g.Shutdown(ctx))

	assert.Equal(t, 0, g.registry.Len())

	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	assert.Equal(t, 1, closed)
}
