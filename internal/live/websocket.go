package live

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocketSource subscribes to the push gateway over a websocket. Dial and
// read failures are logged and retried; they are never surfaced to the
// subscriber and never tear the catalog view down.
type WebSocketSource struct {
	url        string
	log        *zap.Logger
	retryDelay time.Duration

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// NewWebSocketSource creates a source for the gateway at url.
func NewWebSocketSource(url string, log *zap.Logger) *WebSocketSource {
	return &WebSocketSource{
		url:        url,
		log:        log,
		retryDelay: 3 * time.Second,
	}
}

// Subscribe dials the gateway and forwards product-activation payloads to
// handler until the context is cancelled or the source is closed.
func (s *WebSocketSource) Subscribe(ctx context.Context, handler EventHandler) error {
	for {
		if s.isClosed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Warn("websocket connect failed", zap.String("url", s.url), zap.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.retryDelay):
			}
			continue
		}

		if !s.track(conn) {
			conn.Close()
			return nil
		}
		s.log.Info("websocket connected", zap.String("url", s.url))
		s.readLoop(ctx, conn, handler)
	}
}

// track remembers the live connection so Close can unblock the read loop.
// Returns false when the source was closed while dialing.
func (s *WebSocketSource) track(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conn = conn
	return true
}

func (s *WebSocketSource) readLoop(ctx context.Context, conn *websocket.Conn, handler EventHandler) {
	defer conn.Close()
	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if !s.isClosed() && ctx.Err() == nil {
				s.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		if env.Event != EventProductActivated {
			continue
		}
		if err := handler(ctx, env.Data); err != nil {
			s.log.Warn("event handler failed", zap.Error(err))
		}
	}
}

func (s *WebSocketSource) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the subscription. Safe to call regardless of connection
// state.
func (s *WebSocketSource) Close() error {
	s.mu.Lock()
	s.closed = true
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()
	if conn != nil {
		return conn.Close()
	}
	return nil
}
