package navtree

import "sync"

// TransitionPhase identifies the transition state machine's phase.
type TransitionPhase int

const (
	// TransitionIdle means no transition or gesture is running.
	TransitionIdle TransitionPhase = iota
	// TransitionInProgress means a navigation transition is animating.
	TransitionInProgress
	// TransitionPredictiveBack means a back gesture is being tracked.
	TransitionPredictiveBack
	// TransitionSeeking means a transition is being scrubbed to an
	// arbitrary progress point.
	TransitionSeeking
)

// TransitionState is a snapshot of the transition state machine. Which
// fields are meaningful depends on Phase: Name/Progress/FromKey/ToKey for
// InProgress, Name/Progress for Seeking, and Progress/CurrentKey/
// PreviousKey/TouchX/TouchY/Committed for PredictiveBack.
type TransitionState struct {
	Phase    TransitionPhase
	Name     string
	Progress float64

	FromKey NodeKey
	ToKey   NodeKey

	CurrentKey  NodeKey
	PreviousKey NodeKey
	TouchX      float64
	TouchY      float64
	Committed   bool
}

// TransitionManager tracks the current transition or gesture as an
// observable state machine. A renderer subscribes to decide what to paint
// mid-transition; the manager itself never mutates the navigation tree
// except through the commit callback injected at construction.
type TransitionManager struct {
	mu           sync.Mutex
	state        TransitionState
	listeners    []func(TransitionState)
	onCommitBack func()
}

// NewTransitionManager creates an idle manager. onCommitBack performs the
// actual tree pop when a predictive back gesture commits; it must be
// synchronous and fast. It may be nil.
func NewTransitionManager(onCommitBack func()) *TransitionManager {
	return &TransitionManager{onCommitBack: onCommitBack}
}

// State returns the current snapshot.
func (m *TransitionManager) State() TransitionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// OnChange registers a listener for state changes and returns a function
// that removes it. Listeners run inline on the mutating goroutine.
func (m *TransitionManager) OnChange(fn func(TransitionState)) func() {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	idx := len(m.listeners) - 1
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.listeners[idx] = nil
	}
}

// StartNavigationTransition begins animating a navigation from the screen
// keyed from to the screen keyed to. An empty transition name means the
// navigation is instantaneous and the machine stays idle.
func (m *TransitionManager) StartNavigationTransition(name string, from, to NodeKey) {
	m.mu.Lock()
	if name == "" {
		m.state = TransitionState{Phase: TransitionIdle}
	} else {
		m.state = TransitionState{
			Phase:   TransitionInProgress,
			Name:    name,
			FromKey: from,
			ToKey:   to,
		}
	}
	m.notifyLocked()
}

// StartPredictiveBack begins tracking a back gesture, capturing the
// current leaf key and the leaf key underneath it from the live tree. The
// tree itself is untouched until the gesture commits.
func (m *TransitionManager) StartPredictiveBack(root Node) {
	var current, previous NodeKey
	if leaf, ok := ActiveLeaf(root); ok {
		current = leaf.Key()
	}
	if st, ok := activeStack(root); ok && st.Len() >= 2 {
		under := st.children[st.Len()-2]
		if leaf, ok := ActiveLeaf(under); ok {
			previous = leaf.Key()
		}
	}

	m.mu.Lock()
	m.state = TransitionState{
		Phase:       TransitionPredictiveBack,
		CurrentKey:  current,
		PreviousKey: previous,
	}
	m.notifyLocked()
}

// UpdatePredictiveBack advances the tracked gesture. Progress and touch
// coordinates are clamped to [0, 1]. Ignored outside a gesture.
func (m *TransitionManager) UpdatePredictiveBack(progress, touchX, touchY float64) {
	m.mu.Lock()
	if m.state.Phase != TransitionPredictiveBack {
		m.mu.Unlock()
		return
	}
	m.state.Progress = clamp01(progress)
	m.state.TouchX = clamp01(touchX)
	m.state.TouchY = clamp01(touchY)
	m.notifyLocked()
}

// CancelPredictiveBack discards the gesture. Nothing was mutated, so
// nothing is restored.
func (m *TransitionManager) CancelPredictiveBack() {
	m.mu.Lock()
	if m.state.Phase != TransitionPredictiveBack {
		m.mu.Unlock()
		return
	}
	m.state = TransitionState{Phase: TransitionIdle}
	m.notifyLocked()
}

// CommitPredictiveBack marks the gesture committed, runs the injected
// commit callback to perform the tree pop, then returns to idle.
func (m *TransitionManager) CommitPredictiveBack() {
	m.mu.Lock()
	if m.state.Phase != TransitionPredictiveBack {
		m.mu.Unlock()
		return
	}
	m.state.Committed = true
	m.notifyLocked()

	if m.onCommitBack != nil {
		m.onCommitBack()
	}

	m.mu.Lock()
	m.state = TransitionState{Phase: TransitionIdle}
	m.notifyLocked()
}

// SeekTransition scrubs a named transition to an arbitrary progress.
func (m *TransitionManager) SeekTransition(name string, progress float64) {
	m.mu.Lock()
	m.state = TransitionState{
		Phase:    TransitionSeeking,
		Name:     name,
		Progress: clamp01(progress),
	}
	m.notifyLocked()
}

// CompleteTransition returns the machine to idle.
func (m *TransitionManager) CompleteTransition() {
	m.mu.Lock()
	m.state = TransitionState{Phase: TransitionIdle}
	m.notifyLocked()
}

// notifyLocked snapshots the state and listeners, then releases the lock
// before invoking anyone so listeners may call back into the manager.
func (m *TransitionManager) notifyLocked() {
	state := m.state
	listeners := make([]func(TransitionState), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()
	for _, fn := range listeners {
		if fn != nil {
			fn(state)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
