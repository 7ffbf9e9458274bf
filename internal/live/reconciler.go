package live

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/shop-console/internal/catalog"
	"github.com/example/shop-console/internal/model"
	"go.uber.org/zap"
)

// ProductGetter resolves a single product, used to discover the title of an
// activation event that arrived without one.
type ProductGetter interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
}

// Notifier receives the one-shot "product activated" signal.
type Notifier interface {
	Notify(message string)
}

// pendingState is the two-state machine for a notification whose title is
// not yet known.
type pendingState int

const (
	pendingIdle pendingState = iota
	pendingAwaitingTitle
)

// Reconciler merges activation events with authoritative re-fetches. The
// event payload is never trusted for catalog contents; every event that
// identifies a product triggers a full re-fetch, and the view reflects the
// most recently completed one.
type Reconciler struct {
	view     *catalog.View
	products ProductGetter
	notify   Notifier
	log      *zap.Logger

	mu        sync.Mutex
	state     pendingState
	pendingID int64
	closed    bool
}

// NewReconciler wires a reconciler to its view.
func NewReconciler(view *catalog.View, products ProductGetter, notify Notifier, log *zap.Logger) *Reconciler {
	return &Reconciler{
		view:     view,
		products: products,
		notify:   notify,
		log:      log,
	}
}

// HandleEvent dispatches one activation event by payload shape:
//
//	title present        -> notify with it, re-fetch
//	product id only      -> re-fetch now, resolve the title asynchronously
//	neither              -> dropped silently
//
// Dropping malformed events without any user-visible noise is policy, not
// an oversight.
func (r *Reconciler) HandleEvent(ctx context.Context, data []byte) error {
	event, err := ParseActivation(data)
	if err != nil {
		r.log.Debug("undecodable activation event", zap.Error(err))
		return nil
	}

	if title := event.DisplayTitle(); title != "" {
		r.sendNotification(title)
		r.view.RefreshAsync(ctx)
		return nil
	}

	if id := event.ID(); id != 0 {
		r.mu.Lock()
		r.state = pendingAwaitingTitle
		r.pendingID = id
		r.mu.Unlock()

		// Re-fetch immediately so the view is not stale while the
		// title is still unknown.
		r.view.RefreshAsync(ctx)
		go r.resolveTitle(ctx, id)
		return nil
	}

	r.log.Debug("activation event without title or product id, dropped")
	return nil
}

// resolveTitle looks the product up to discover its title, falling back to
// a literal id when the lookup fails. The notification fires only if this
// id is still the pending one and the reconciler is still live.
func (r *Reconciler) resolveTitle(ctx context.Context, id int64) {
	title := fmt.Sprintf("Product ID #%d", id)
	product, err := r.products.GetProduct(ctx, id)
	if err != nil {
		r.log.Warn("could not fetch product for notification",
			zap.Int64("product_id", id), zap.Error(err))
	} else if product.Title != "" {
		title = product.Title
	}

	r.mu.Lock()
	live := !r.closed && r.state == pendingAwaitingTitle && r.pendingID == id
	if live {
		r.state = pendingIdle
		r.pendingID = 0
	}
	r.mu.Unlock()

	if live {
		r.sendNotification(title)
	}
}

func (r *Reconciler) sendNotification(title string) {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return
	}
	r.notify.Notify("New product activated in the store: " + title)
}

// Close stops the reconciler; late lookups and notifications are discarded.
func (r *Reconciler) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}
