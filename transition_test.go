package navtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionManager(t *testing.T) {
	t.Run("StartsIdle", func(t *testing.T) {
		m := NewTransitionManager(nil)
		require.Equal(t, TransitionIdle, m.State().Phase)
	})

	t.Run("NavigationTransition", func(t *testing.T) {
		m := NewTransitionManager(nil)
		m.StartNavigationTransition("slide", "from", "to")

		state := m.State()
		require.Equal(t, TransitionInProgress, state.Phase)
		require.Equal(t, "slide", state.Name)
		require.Equal(t, NodeKey("from"), state.FromKey)
		require.Equal(t, NodeKey("to"), state.ToKey)

		m.CompleteTransition()
		require.Equal(t, TransitionIdle, m.State().Phase)
	})

	t.Run("EmptyTransitionNameStaysIdle", func(t *testing.T) {
		m := NewTransitionManager(nil)
		m.StartNavigationTransition("", "from", "to")
		require.Equal(t, TransitionIdle, m.State().Phase)
	})

	t.Run("PredictiveBackCapturesLeafKeys", func(t *testing.T) {
		root := NewStackNode("root", "", screen("a", "home"), screen("b", "detail/1"))
		m := NewTransitionManager(nil)
		m.StartPredictiveBack(root)

		state := m.State()
		require.Equal(t, TransitionPredictiveBack, state.Phase)
		require.Equal(t, NodeKey("b"), state.CurrentKey)
		require.Equal(t, NodeKey("a"), state.PreviousKey)
		require.False(t, state.Committed)
	})

	t.Run("PredictiveBackDescendsNestedPrevious", func(t *testing.T) {
		nested := NewStackNode("nested", "", screen("n1", "wizard/1"), screen("n2", "wizard/2"))
		root := NewStackNode("root", "", nested, screen("top", "help"))
		m := NewTransitionManager(nil)
		m.StartPredictiveBack(root)

		state := m.State()
		require.Equal(t, NodeKey("top"), state.CurrentKey)
		// The screen under the top entry is the nested stack's own leaf.
		require.Equal(t, NodeKey("n2"), state.PreviousKey)
	})

	t.Run("UpdateClampsEverything", func(t *testing.T) {
		m := NewTransitionManager(nil)
		m.StartPredictiveBack(NewStackNode("root", "", screen("a", "home")))

		m.UpdatePredictiveBack(1.7, -0.4, 0.5)
		state := m.State()
		require.Equal(t, 1.0, state.Progress)
		require.Equal(t, 0.0, state.TouchX)
		require.Equal(t, 0.5, state.TouchY)
	})

	t.Run("UpdateOutsideGestureIsIgnored", func(t *testing.T) {
		m := NewTransitionManager(nil)
		m.UpdatePredictiveBack(0.5, 0.5, 0.5)
		require.Equal(t, TransitionIdle, m.State().Phase)
	})

	t.Run("CancelDiscardsTheGesture", func(t *testing.T) {
		m := NewTransitionManager(nil)
		m.StartPredictiveBack(NewStackNode("root", "", screen("a", "home")))
		m.UpdatePredictiveBack(0.8, 0.2, 0.2)
		m.CancelPredictiveBack()
		require.Equal(t, TransitionIdle, m.State().Phase)
	})

	t.Run("CommitRunsTheInjectedPop", func(t *testing.T) {
		committed := 0
		var seen []TransitionState
		m := NewTransitionManager(func() { committed++ })
		m.OnChange(func(s TransitionState) { seen = append(seen, s) })

		m.StartPredictiveBack(NewStackNode("root", "", screen("a", "home"), screen("b", "x")))
		m.CommitPredictiveBack()

		require.Equal(t, 1, committed)
		require.Equal(t, TransitionIdle, m.State().Phase)

		// Listeners saw the committed snapshot before idle.
		var sawCommitted bool
		for _, s := range seen {
			if s.Phase == TransitionPredictiveBack && s.Committed {
				sawCommitted = true
			}
		}
		require.True(t, sawCommitted)
	})

	t.Run("CommitOutsideGestureIsIgnored", func(t *testing.T) {
		committed := 0
		m := NewTransitionManager(func() { committed++ })
		m.CommitPredictiveBack()
		require.Zero(t, committed)
	})

	t.Run("Seeking", func(t *testing.T) {
		m := NewTransitionManager(nil)
		m.SeekTransition("fade", 2.0)
		state := m.State()
		require.Equal(t, TransitionSeeking, state.Phase)
		require.Equal(t, "fade", state.Name)
		require.Equal(t, 1.0, state.Progress)
	})

	t.Run("UnsubscribeStopsNotifications", func(t *testing.T) {
		m := NewTransitionManager(nil)
		calls := 0
		cancel := m.OnChange(func(TransitionState) { calls++ })

		m.SeekTransition("fade", 0.5)
		require.Equal(t, 1, calls)

		cancel()
		m.CompleteTransition()
		require.Equal(t, 1, calls)
	})
}
