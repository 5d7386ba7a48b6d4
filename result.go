package navtree

import (
	"context"
	"sync"
)

// ResultManager delivers at most one navigation result per pending screen:
// a screen requests a result before pushing the screen that produces it,
// and either receives the completed value, or nil when the producing
// screen is torn down without answering, so the waiter never hangs.
//
// Requests and cancellations arrive from waiting goroutines while
// completion arrives from synchronous event handlers, so the pending map
// is mutex-guarded. Delivery itself is a buffered channel send and cannot
// block.
type ResultManager struct {
	mu      sync.Mutex
	pending map[NodeKey]chan any
}

// NewResultManager creates an empty manager.
func NewResultManager() *ResultManager {
	return &ResultManager{pending: make(map[NodeKey]chan any)}
}

// RequestResult creates a pending slot for the screen and returns the
// channel its result will arrive on. The channel receives exactly one
// value: the completed result, or nil on cancellation. A second request
// for the same key supersedes the first, whose waiter receives nil.
func (m *ResultManager) RequestResult(screenKey NodeKey) <-chan any {
	ch := make(chan any, 1)
	m.mu.Lock()
	if prev, ok := m.pending[screenKey]; ok {
		prev <- nil
	}
	m.pending[screenKey] = ch
	m.mu.Unlock()
	return ch
}

// AwaitResult blocks on the screen's pending result until delivery or
// context cancellation.
func (m *ResultManager) AwaitResult(ctx context.Context, screenKey NodeKey) (any, error) {
	ch := m.RequestResult(screenKey)
	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		m.CancelResult(screenKey)
		return nil, ctx.Err()
	}
}

// CompleteResult delivers a value to the screen's waiter and clears the
// slot. A key with nothing pending is a no-op: the caller may already
// have navigated away without waiting.
func (m *ResultManager) CompleteResult(screenKey NodeKey, result any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch, ok := m.pending[screenKey]
	if !ok {
		return
	}
	delete(m.pending, screenKey)
	ch <- result
}

// CancelResult delivers nil to the screen's waiter and clears the slot.
// Called when a screen is torn down without explicitly returning a
// result. No-op when nothing is pending.
func (m *ResultManager) CancelResult(screenKey NodeKey) {
	m.CompleteResult(screenKey, nil)
}

// HasPending reports whether a result slot is open for the screen.
func (m *ResultManager) HasPending(screenKey NodeKey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[screenKey]
	return ok
}
