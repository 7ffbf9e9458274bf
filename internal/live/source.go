package live

import "context"

// EventHandler receives the payload of each product-activation event.
type EventHandler func(ctx context.Context, data []byte) error

// EventSource is a standing subscription to the activation-event channel.
// Subscribe blocks until the context is cancelled or the source is closed;
// connection trouble is the source's own problem and must never reach the
// subscriber. Close releases the subscription unconditionally.
type EventSource interface {
	Subscribe(ctx context.Context, handler EventHandler) error
	Close() error
}
