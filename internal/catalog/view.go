// Package catalog holds the process-local view of the product catalog. A
// view is owned by whoever mounted it, is re-fetched on mount and on live
// activation events, and is never shared across views.
package catalog

import (
	"context"
	"sync"

	"github.com/example/shop-console/internal/model"
	"go.uber.org/zap"
)

// Mode selects the visibility rule for the view.
type Mode int

const (
	// Storefront shows active products only.
	Storefront Mode = iota
	// Admin shows everything, including pending shells.
	Admin
)

// Fetcher supplies the authoritative catalog.
type Fetcher interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

// View is an ordered snapshot of the catalog. Concurrent refreshes apply in
// completion order, so the view always reflects the most recently completed
// fetch; a closed view ignores late completions.
type View struct {
	mode  Mode
	fetch Fetcher
	log   *zap.Logger

	mu       sync.Mutex
	products []model.Product
	fetches  uint64
	closed   bool
}

// NewView creates an empty view.
func NewView(mode Mode, fetch Fetcher, log *zap.Logger) *View {
	return &View{mode: mode, fetch: fetch, log: log}
}

// Refresh performs a synchronous full fetch and replaces the view. Used for
// the baseline on mount, where the caller wants the error.
func (v *View) Refresh(ctx context.Context) error {
	products, err := v.fetch.ListProducts(ctx)
	if err != nil {
		return err
	}
	v.apply(products)
	return nil
}

// RefreshAsync re-fetches in the background. Errors are logged and the
// previous snapshot stays valid.
func (v *View) RefreshAsync(ctx context.Context) {
	go func() {
		products, err := v.fetch.ListProducts(ctx)
		if err != nil {
			v.log.Warn("catalog re-fetch failed", zap.Error(err))
			return
		}
		v.apply(products)
	}()
}

func (v *View) apply(products []model.Product) {
	if v.mode == Storefront {
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.IsActive {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.products = products
	v.fetches++
}

// Products returns a copy of the current snapshot.
func (v *View) Products() []model.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]model.Product, len(v.products))
	copy(out, v.products)
	return out
}

// Fetches reports how many fetches have been applied.
func (v *View) Fetches() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetches
}

// Close marks the view torn down; completions arriving afterwards are
// discarded.
func (v *View) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}
