package navtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture:
//
//	Stack[root]
//	├── Stack[home]   Screen[h1:home]
//	└── Tab[tabs]     (active 0)
//	    ├── Stack[t0] Screen[s0:feed]
//	    └── Stack[t1] Screen[s1:search]
func tabbedFixture(t *testing.T) *StackNode {
	t.Helper()
	tab, err := NewTabNode("tabs", "", 0,
		NewStackNode("t0", "", screen("s0", "feed")),
		NewStackNode("t1", "", screen("s1", "search")),
	)
	require.NoError(t, err)
	home := NewStackNode("home", "", screen("h1", "home"))
	return NewStackNode("root", "", home, tab)
}

func TestFindNode(t *testing.T) {
	root := tabbedFixture(t)

	n, ok := FindNode(root, "s1")
	require.True(t, ok)
	require.Equal(t, NodeKey("t1"), n.ParentKey())

	_, ok = FindNode(root, "missing")
	require.False(t, ok)
}

func TestReplaceNode(t *testing.T) {
	t.Run("SharesSubtreesOffThePath", func(t *testing.T) {
		root := tabbedFixture(t)
		repl := screen("s0b", "feed/1")

		next, err := ReplaceNode(root, "s0", repl)
		require.NoError(t, err)

		nextRoot := next.(*StackNode)
		// The home stack and tab t1 are off the path and shared by
		// reference; t0 and the tab node were rebuilt.
		require.Same(t, root.Children()[0], nextRoot.Children()[0])
		oldTab := root.Children()[1].(*TabNode)
		newTab := nextRoot.Children()[1].(*TabNode)
		require.NotSame(t, oldTab, newTab)
		require.Same(t, oldTab.Stacks()[1], newTab.Stacks()[1])
		require.NotSame(t, oldTab.Stacks()[0], newTab.Stacks()[0])

		got, ok := FindNode(next, "s0b")
		require.True(t, ok)
		require.Equal(t, NodeKey("t0"), got.ParentKey())
	})

	t.Run("LeavesInputTreeIntact", func(t *testing.T) {
		root := tabbedFixture(t)
		_, err := ReplaceNode(root, "h1", screen("h2", "home/2"))
		require.NoError(t, err)
		_, ok := FindNode(root, "h1")
		require.True(t, ok)
	})

	t.Run("MissingKeyFailsLoudly", func(t *testing.T) {
		root := tabbedFixture(t)
		_, err := ReplaceNode(root, "missing", screen("x", "x"))
		var notFound *NodeNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("TabStackOnlyReplaceableByStack", func(t *testing.T) {
		root := tabbedFixture(t)
		_, err := ReplaceNode(root, "t0", screen("x", "x"))
		var invalid *InvalidNodeError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestRemoveNode(t *testing.T) {
	t.Run("RemovesFromStackParent", func(t *testing.T) {
		root := tabbedFixture(t)
		next, err := RemoveNode(root, "s0")
		require.NoError(t, err)
		_, ok := FindNode(next, "s0")
		require.False(t, ok)
		st, err := stackByKey(next, "t0")
		require.NoError(t, err)
		require.True(t, st.IsEmpty())
	})

	t.Run("RootRemovalReturnsNil", func(t *testing.T) {
		root := tabbedFixture(t)
		next, err := RemoveNode(root, "root")
		require.NoError(t, err)
		require.Nil(t, next)
	})

	t.Run("TabStackRemovalIsInvalid", func(t *testing.T) {
		root := tabbedFixture(t)
		_, err := RemoveNode(root, "t0")
		var invalid *InvalidNodeError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("PaneContentRootRemovalIsInvalid", func(t *testing.T) {
		pane, err := NewPaneNode("panes", "", PaneRolePrimary, map[PaneRole]PaneConfiguration{
			PaneRolePrimary: {Content: NewStackNode("pri", "", screen("p1", "list"))},
		})
		require.NoError(t, err)
		root := NewStackNode("root", "", pane)

		_, err = RemoveNode(root, "pri")
		var invalid *InvalidNodeError
		require.ErrorAs(t, err, &invalid)

		// Screens inside the pane's stack are still removable.
		next, err := RemoveNode(root, "p1")
		require.NoError(t, err)
		_, ok := FindNode(next, "p1")
		require.False(t, ok)
	})

	t.Run("MissingKeyFailsLoudly", func(t *testing.T) {
		root := tabbedFixture(t)
		_, err := RemoveNode(root, "missing")
		var notFound *NodeNotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestActivePath(t *testing.T) {
	root := tabbedFixture(t)
	path := ActivePath(root)

	keys := make([]NodeKey, len(path))
	for i, n := range path {
		keys[i] = n.Key()
	}
	require.Equal(t, []NodeKey{"root", "tabs", "t0", "s0"}, keys)

	leaf, ok := ActiveLeaf(root)
	require.True(t, ok)
	require.Equal(t, NodeKey("s0"), leaf.Key())

	scr, ok := ActiveScreen(root)
	require.True(t, ok)
	require.Equal(t, "feed", scr.Destination().Route)

	st, ok := activeStack(root)
	require.True(t, ok)
	require.Equal(t, NodeKey("t0"), st.Key())
}

func TestActivePathThroughPane(t *testing.T) {
	pane, err := NewPaneNode("panes", "", PaneRoleSupporting, map[PaneRole]PaneConfiguration{
		PaneRolePrimary:    {Content: NewStackNode("pri", "", screen("p1", "list"))},
		PaneRoleSupporting: {Content: NewStackNode("sup", "", screen("p2", "detail/1"))},
	})
	require.NoError(t, err)
	root := NewStackNode("root", "", pane)

	st, ok := activeStack(root)
	require.True(t, ok)
	require.Equal(t, NodeKey("sup"), st.Key())

	leaf, ok := ActiveLeaf(root)
	require.True(t, ok)
	require.Equal(t, NodeKey("p2"), leaf.Key())
}
