package navtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleBack(t *testing.T) {
	t.Run("PopsTheDeepStack", func(t *testing.T) {
		root := tabbedFixture(t)
		pushed, err := Push(root, Destination{Route: "feed/42"}, seqGen())
		require.NoError(t, err)

		res := HandleBack(pushed, false)
		require.Equal(t, BackHandled, res.Status)
		require.Equal(t, keyShape(root), keyShape(res.Tree))
	})

	t.Run("SoftBacksToTheFirstTab", func(t *testing.T) {
		root := tabbedFixture(t)
		switched, err := SwitchTab(root, "tabs", 1)
		require.NoError(t, err)

		res := HandleBack(switched, false)
		require.Equal(t, BackHandled, res.Status)
		tab := res.Tree.(*StackNode).Children()[1].(*TabNode)
		require.Equal(t, 0, tab.ActiveStackIndex())
	})

	t.Run("ExcisesANestedSingleChildStack", func(t *testing.T) {
		nested := NewStackNode("nested", "", screen("n1", "wizard/done"))
		root := NewStackNode("root", "", screen("h1", "home"), nested)

		res := HandleBack(root, false)
		require.Equal(t, BackHandled, res.Status)
		_, found := FindNode(res.Tree, "nested")
		require.False(t, found)
		scr, _ := ActiveScreen(res.Tree)
		require.Equal(t, "home", scr.Destination().Route)
	})

	t.Run("PaneCollapsesInCompactLayout", func(t *testing.T) {
		root := paneFixture(t)
		focused, err := SwitchActivePane(root, "mail", PaneRoleSupporting)
		require.NoError(t, err)

		res := HandleBack(focused, true)
		require.Equal(t, BackHandled, res.Status)
		require.Equal(t, PaneRolePrimary, paneOf(t, res.Tree).ActivePaneRole())
	})

	t.Run("CompactExitLeavesThePaneLayout", func(t *testing.T) {
		pane, err := NewPaneNode("mail", "", PaneRolePrimary, map[PaneRole]PaneConfiguration{
			PaneRolePrimary: {Content: NewStackNode("list", "")},
		})
		require.NoError(t, err)
		root := NewStackNode("root", "", screen("h1", "home"), pane)

		res := HandleBack(root, true)
		require.Equal(t, BackHandled, res.Status)
		_, found := FindNode(res.Tree, "mail")
		require.False(t, found)
	})

	t.Run("LastScreenDelegatesToSystem", func(t *testing.T) {
		root := NewStackNode("root", "", screen("h1", "home"))
		res := HandleBack(root, false)
		require.Equal(t, BackDelegateToSystem, res.Status)
	})

	t.Run("ExhaustedTabGroupPopsOffItsParentStack", func(t *testing.T) {
		// First tab active, single screen in it: the back walks past the
		// tab group and pops it from the root stack, back to home.
		res := HandleBack(tabbedFixture(t), false)
		require.Equal(t, BackHandled, res.Status)
		scr, _ := ActiveScreen(res.Tree)
		require.Equal(t, "home", scr.Destination().Route)
	})

	t.Run("ExhaustedTabGroupAtTheRootDelegates", func(t *testing.T) {
		tab, err := NewTabNode("tabs", "", 0,
			NewStackNode("t0", "", screen("s0", "feed")),
			NewStackNode("t1", "", screen("s1", "search")),
		)
		require.NoError(t, err)
		root := NewStackNode("root", "", tab)

		res := HandleBack(root, false)
		require.Equal(t, BackDelegateToSystem, res.Status)
	})

	t.Run("NilTreeCannotHandle", func(t *testing.T) {
		res := HandleBack(nil, false)
		require.Equal(t, BackCannotHandle, res.Status)
	})
}

func TestCanGoBack(t *testing.T) {
	root := NewStackNode("root", "", screen("h1", "home"))
	require.False(t, CanGoBack(root))

	pushed, err := Push(root, Destination{Route: "detail/1"}, seqGen())
	require.NoError(t, err)
	require.True(t, CanGoBack(pushed))

	popped, ok := Pop(pushed, PopBehaviorPreserveEmpty)
	require.True(t, ok)
	require.False(t, CanGoBack(popped))
}
