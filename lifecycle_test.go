package navtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	t.Run("StateTransitions", func(t *testing.T) {
		lc := NewLifecycle()
		require.Equal(t, LifecycleDetached, lc.State())

		lc.AttachToNavigator()
		require.Equal(t, LifecycleAttached, lc.State())

		lc.AttachToUI()
		require.Equal(t, LifecycleDisplayed, lc.State())

		lc.DetachFromUI()
		require.Equal(t, LifecycleAttached, lc.State())
	})

	t.Run("AttachToUIAutoAttaches", func(t *testing.T) {
		lc := NewLifecycle()
		lc.AttachToUI()
		require.Equal(t, LifecycleDisplayed, lc.State())

		// Leaving the UI now keeps navigator attachment.
		lc.DetachFromUI()
		require.Equal(t, LifecycleAttached, lc.State())
	})

	t.Run("DestroyFiresExactlyOnce", func(t *testing.T) {
		lc := NewLifecycle()
		first, second := 0, 0
		lc.OnDestroy(func() { first++ })
		lc.OnDestroy(func() { second++ })

		lc.AttachToUI()
		lc.DetachFromUI()
		require.Zero(t, first, "still attached to navigator")

		lc.DetachFromNavigator()
		require.Equal(t, 1, first)
		require.Equal(t, 1, second)

		// Already destroyed: nothing left to run.
		lc.DetachFromNavigator()
		lc.DetachFromUI()
		require.Equal(t, 1, first)
		require.Equal(t, 1, second)
	})

	t.Run("DetachFromNavigatorWhileDisplayedDefersDestroy", func(t *testing.T) {
		lc := NewLifecycle()
		destroyed := 0
		lc.OnDestroy(func() { destroyed++ })

		lc.AttachToUI()
		lc.DetachFromNavigator()
		// Still displayed, so not destroyed yet.
		require.Equal(t, LifecycleDisplayed, lc.State())
		require.Zero(t, destroyed)

		lc.DetachFromUI()
		require.Equal(t, 1, destroyed)
	})

	t.Run("RegistrationAfterDestroyRunsImmediately", func(t *testing.T) {
		lc := NewLifecycle()
		lc.AttachToNavigator()
		lc.DetachFromNavigator()

		ran := false
		lc.OnDestroy(func() { ran = true })
		require.True(t, ran)
	})

	t.Run("SharedAcrossNodeCopies", func(t *testing.T) {
		s := screen("a", "home")
		st := NewStackNode("stack", "", s)
		copied := st.Children()[0].(*ScreenNode)
		require.NotSame(t, s, copied)
		require.Same(t, s.Lifecycle(), copied.Lifecycle())
	})
}
