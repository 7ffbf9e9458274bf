package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newPushServer runs a websocket endpoint that sends the given frames to
// every client, then keeps the connection open.
func newPushServer(t *testing.T, frames []any) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		for _, frame := range frames {
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		}
		// Hold the connection until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestWebSocketSource_DeliversActivationEvents(t *testing.T) {
	url := newPushServer(t, []any{
		map[string]any{"event": "somethingElse", "data": map[string]any{"title": "ignored"}},
		map[string]any{"event": EventProductActivated, "data": map[string]any{"title": "Mouse"}},
	})

	source := NewWebSocketSource(url, zap.NewNop())
	defer source.Close()

	payloads := make(chan []byte, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = source.Subscribe(ctx, func(ctx context.Context, data []byte) error {
			payloads <- data
			return nil
		})
	}()

	select {
	case data := <-payloads:
		event, err := ParseActivation(data)
		require.NoError(t, err)
		assert.Equal(t, "Mouse", event.DisplayTitle())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for activation event")
	}
}

func TestWebSocketSource_CloseUnblocksSubscribe(t *testing.T) {
	url := newPushServer(t, nil)

	source := NewWebSocketSource(url, zap.NewNop())
	done := make(chan error, 1)

	go func() {
		done <- source.Subscribe(context.Background(), func(ctx context.Context, data []byte) error {
			return nil
		})
	}()

	// Give the dial a moment, then tear the subscription down.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, source.Close())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe did not return after Close")
	}
}

func TestWebSocketSource_ContextCancelStopsSubscribe(t *testing.T) {
	// Nothing is listening at this address; the source keeps retrying
	// until the context ends.
	source := NewWebSocketSource("ws://127.0.0.1:1/events", zap.NewNop())
	source.retryDelay = 10 * time.Millisecond
	defer source.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := source.Subscribe(ctx, func(ctx context.Context, data []byte) error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
