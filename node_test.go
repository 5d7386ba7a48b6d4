package navtree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqGen returns a deterministic key generator for tests.
func seqGen() KeyGenerator {
	n := 0
	return func() NodeKey {
		n++
		return NodeKey(fmt.Sprintf("gen-%d", n))
	}
}

// screen builds a screen node with a fixed key.
func screen(key NodeKey, route string) *ScreenNode {
	return NewScreenNode(key, "", Destination{Route: route})
}

func TestDestinationKind(t *testing.T) {
	require.Equal(t, "detail", Destination{Route: "detail/42"}.Kind())
	require.Equal(t, "home", Destination{Route: "home"}.Kind())
	require.Equal(t, "", Destination{}.Kind())
}

func TestNewStackNode(t *testing.T) {
	t.Run("ReparentsChildren", func(t *testing.T) {
		s := screen("a", "home")
		st := NewStackNode("stack", "", s)
		require.Equal(t, NodeKey("stack"), st.Children()[0].ParentKey())
		// The input node is untouched; reparenting copied it.
		require.Equal(t, NodeKey(""), s.ParentKey())
	})

	t.Run("EmptyIsLegal", func(t *testing.T) {
		st := NewStackNode("stack", "")
		require.True(t, st.IsEmpty())
		_, ok := st.ActiveChild()
		require.False(t, ok)
	})

	t.Run("ActiveChildIsLast", func(t *testing.T) {
		st := NewStackNode("stack", "", screen("a", "home"), screen("b", "detail/1"))
		active, ok := st.ActiveChild()
		require.True(t, ok)
		require.Equal(t, NodeKey("b"), active.Key())
	})
}

func TestNewTabNode(t *testing.T) {
	t.Run("RejectsEmptyStacks", func(t *testing.T) {
		_, err := NewTabNode("tabs", "", 0)
		var invalid *InvalidNodeError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("RejectsBadActiveIndex", func(t *testing.T) {
		_, err := NewTabNode("tabs", "", 2, NewStackNode("t0", ""), NewStackNode("t1", ""))
		var tabErr *TabIndexError
		require.ErrorAs(t, err, &tabErr)
		require.Equal(t, 2, tabErr.Index)
	})

	t.Run("ReparentsStacks", func(t *testing.T) {
		tab, err := NewTabNode("tabs", "", 1, NewStackNode("t0", ""), NewStackNode("t1", ""))
		require.NoError(t, err)
		require.Equal(t, NodeKey("tabs"), tab.Stacks()[0].ParentKey())
		require.Equal(t, NodeKey("t1"), tab.ActiveStack().Key())
	})
}

func TestNewPaneNode(t *testing.T) {
	t.Run("RequiresPrimary", func(t *testing.T) {
		_, err := NewPaneNode("panes", "", PaneRoleSupporting, map[PaneRole]PaneConfiguration{
			PaneRoleSupporting: {Content: NewStackNode("sup", "")},
		})
		var invalid *InvalidNodeError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("ActiveRoleMustBeConfigured", func(t *testing.T) {
		_, err := NewPaneNode("panes", "", PaneRoleExtra, map[PaneRole]PaneConfiguration{
			PaneRolePrimary: {Content: NewStackNode("pri", "")},
		})
		require.Error(t, err)
	})

	t.Run("ReparentsContent", func(t *testing.T) {
		pane, err := NewPaneNode("panes", "", PaneRolePrimary, map[PaneRole]PaneConfiguration{
			PaneRolePrimary: {Content: NewStackNode("pri", "")},
		})
		require.NoError(t, err)
		require.Equal(t, NodeKey("panes"), pane.ActiveContent().ParentKey())
	})
}

func TestRequireScreen(t *testing.T) {
	s := screen("a", "home")
	got, err := RequireScreen(s)
	require.NoError(t, err)
	require.Same(t, s, got)

	_, err = RequireScreen(NewStackNode("stack", ""))
	var invalid *InvalidNodeError
	require.ErrorAs(t, err, &invalid)
}
