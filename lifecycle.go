package navtree

import (
	"sync"

	"go.uber.org/atomic"
)

// LifecycleState is a lifecycle-aware node's current state.
type LifecycleState int

const (
	// LifecycleDetached means the node is in no tree.
	LifecycleDetached LifecycleState = iota
	// LifecycleAttached means the node is in the tree but not rendered.
	LifecycleAttached
	// LifecycleDisplayed means the node is actively rendered.
	LifecycleDisplayed
)

func (s LifecycleState) String() string {
	switch s {
	case LifecycleAttached:
		return "attached"
	case LifecycleDisplayed:
		return "displayed"
	}
	return "detached"
}

// Lifecycle tracks a node's attached/displayed state and runs destroy
// callbacks exactly once, at the moment the node is neither attached to
// the navigator nor displayed. It is shared by every copy of a node that
// tree rebuilds produce and is never part of structural identity.
type Lifecycle struct {
	mu        sync.Mutex
	attached  bool
	displayed bool
	destroyed atomic.Bool
	onDestroy []func()
}

// NewLifecycle creates a lifecycle in the detached state.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// State returns the current state.
func (l *Lifecycle) State() LifecycleState {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch {
	case l.displayed:
		return LifecycleDisplayed
	case l.attached:
		return LifecycleAttached
	}
	return LifecycleDetached
}

// OnDestroy registers a callback to run when the node is destroyed.
// Registration after destruction runs the callback immediately.
func (l *Lifecycle) OnDestroy(fn func()) {
	l.mu.Lock()
	if !l.destroyed.Load() {
		l.onDestroy = append(l.onDestroy, fn)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	fn()
}

// AttachToNavigator marks the node as part of a live tree.
func (l *Lifecycle) AttachToNavigator() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attached = true
}

// AttachToUI marks the node as actively rendered, attaching it to the
// navigator first if needed.
func (l *Lifecycle) AttachToUI() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attached = true
	l.displayed = true
}

// DetachFromUI marks the node as no longer rendered. A node that was
// already detached from the navigator is destroyed.
func (l *Lifecycle) DetachFromUI() {
	l.mu.Lock()
	l.displayed = false
	fns := l.takeDestroyCallbacks()
	l.mu.Unlock()
	runDestroy(fns)
}

// DetachFromNavigator marks the node as removed from the tree. A node
// that is not displayed is destroyed.
func (l *Lifecycle) DetachFromNavigator() {
	l.mu.Lock()
	l.attached = false
	fns := l.takeDestroyCallbacks()
	l.mu.Unlock()
	runDestroy(fns)
}

// takeDestroyCallbacks claims the destroy callbacks when the destroy
// condition first holds. Callers hold l.mu.
func (l *Lifecycle) takeDestroyCallbacks() []func() {
	if l.attached || l.displayed {
		return nil
	}
	if !l.destroyed.CompareAndSwap(false, true) {
		return nil
	}
	fns := l.onDestroy
	l.onDestroy = nil
	return fns
}

func runDestroy(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
