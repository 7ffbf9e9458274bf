package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/example/shop-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func zapNop() *zap.Logger { return zap.NewNop() }

// fakeFetcher serves scripted catalogs and counts calls.
type fakeFetcher struct {
	mu       sync.Mutex
	products []model.Product
	err      error
	calls    int
	done     chan struct{}
}

func (f *fakeFetcher) ListProducts(ctx context.Context) ([]model.Product, error) {
	f.mu.Lock()
	f.calls++
	products, err := f.products, f.err
	done := f.done
	f.mu.Unlock()
	if done != nil {
		defer func() { done <- struct{}{} }()
	}
	return products, err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func sampleCatalog() []model.Product {
	return []model.Product{
		{ID: 1, Title: "Mouse", IsActive: true},
		{ID: 2, Title: "Pending Keyboard", IsActive: false},
		{ID: 3, Title: "Monitor", IsActive: true},
	}
}

func TestView_Storefront_FiltersInactive(t *testing.T) {
	fetch := &fakeFetcher{products: sampleCatalog()}
	view := NewView(Storefront, fetch, zapNop())

	require.NoError(t, view.Refresh(context.Background()))

	products := view.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Mouse", products[0].Title)
	assert.Equal(t, "Monitor", products[1].Title)
}

func TestView_Admin_Unfiltered(t *testing.T) {
	fetch := &fakeFetcher{products: sampleCatalog()}
	view := NewView(Admin, fetch, zapNop())

	require.NoError(t, view.Refresh(context.Background()))

	assert.Len(t, view.Products(), 3)
}

func TestView_Refresh_Error_KeepsSnapshot(t *testing.T) {
	fetch := &fakeFetcher{products: sampleCatalog()}
	view := NewView(Storefront, fetch, zapNop())
	require.NoError(t, view.Refresh(context.Background()))

	fetch.mu.Lock()
	fetch.err = errors.New("boom")
	fetch.mu.Unlock()

	assert.Error(t, view.Refresh(context.Background()))
	assert.Len(t, view.Products(), 2, "baseline stays valid")
}

func TestView_RefreshAsync_AppliesOnCompletion(t *testing.T) {
	fetch := &fakeFetcher{products: sampleCatalog(), done: make(chan struct{}, 1)}
	view := NewView(Storefront, fetch, zapNop())

	view.RefreshAsync(context.Background())

	waitFor(t, fetch.done)
	waitUntil(t, func() bool { return view.Fetches() == 1 })
	assert.Len(t, view.Products(), 2)
}

func TestView_Closed_DiscardsLateCompletion(t *testing.T) {
	fetch := &fakeFetcher{products: sampleCatalog(), done: make(chan struct{}, 1)}
	view := NewView(Storefront, fetch, zapNop())

	view.Close()
	view.RefreshAsync(context.Background())

	waitFor(t, fetch.done)
	assert.Equal(t, 1, fetch.callCount())
	assert.Empty(t, view.Products(), "a torn-down view never changes")
	assert.Zero(t, view.Fetches())
}

func TestView_LastCompletedFetchWins(t *testing.T) {
	fetch := &fakeFetcher{products: sampleCatalog()}
	view := NewView(Admin, fetch, zapNop())
	require.NoError(t, view.Refresh(context.Background()))

	fetch.mu.Lock()
	fetch.products = []model.Product{{ID: 9, Title: "Latest", IsActive: true}}
	fetch.mu.Unlock()
	require.NoError(t, view.Refresh(context.Background()))

	products := view.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Latest", products[0].Title)
	assert.Equal(t, uint64(2), view.Fetches())
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fetch")
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}
