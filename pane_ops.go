package navtree

// PanePopStatus classifies the outcome of a logical back action resolved
// against a pane node.
type PanePopStatus int

const (
	// PanePopped means a normal pop inside the active pane succeeded.
	PanePopped PanePopStatus = iota
	// PanePopEmpty means the pop succeeded and emptied the active pane's
	// stack; the renderer decides whether to collapse the pane or show an
	// empty state.
	PanePopEmpty
	// PanePopCannot means no further back action is possible here.
	PanePopCannot
	// PanePopScaffoldChange means a layout transition stands in for the
	// pop: the pane collapsed back to its primary role without any stack
	// content being removed.
	PanePopScaffoldChange
)

// PanePopResult is the outcome of PopPaneAdaptive. Tree is the new root
// for every status except PanePopCannot, which leaves the input tree
// current.
type PanePopResult struct {
	Status PanePopStatus
	Tree   Node
	Role   PaneRole
}

// NavigateToPane pushes dest onto the named role's stack inside the pane
// node keyed paneKey. With switchFocus the role also becomes active.
//
// An unconfigured role is treated as speculative routing by the caller
// and is silently ignored: the tree is returned unchanged. A missing or
// non-pane paneKey is a programmer error and fails.
func NavigateToPane(root Node, paneKey NodeKey, role PaneRole, dest Destination, switchFocus bool, gen KeyGenerator) (Node, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, err
	}
	cfg, configured := pane.Configuration(role)
	if !configured {
		return root, nil
	}
	st, ok := cfg.Content.(*StackNode)
	if !ok {
		return nil, &InvalidNodeError{Key: paneKey, Reason: "pane role " + string(role) + " does not hold a stack"}
	}
	cfg.Content = st.appendChildren(NewScreenNode(gen(), st.key, dest))
	next := pane.withConfiguration(role, cfg)
	if switchFocus {
		next = next.withActiveRole(role)
	}
	return ReplaceNode(root, paneKey, next)
}

// SwitchActivePane focuses a configured role without touching any pane's
// content. Focusing an unconfigured role would dangle the active role and
// fails.
func SwitchActivePane(root Node, paneKey NodeKey, role PaneRole) (Node, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, err
	}
	if _, configured := pane.Configuration(role); !configured {
		return nil, &InvalidNodeError{Key: paneKey, Reason: "pane role " + string(role) + " is not configured"}
	}
	if pane.active == role {
		return root, nil
	}
	return ReplaceNode(root, paneKey, pane.withActiveRole(role))
}

// PopPane pops the named role's stack only; sibling panes are unaffected.
// The second result is false when that stack is already empty.
func PopPane(root Node, paneKey NodeKey, role PaneRole) (Node, bool, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, false, err
	}
	cfg, configured := pane.Configuration(role)
	if !configured {
		return nil, false, &InvalidNodeError{Key: paneKey, Reason: "pane role " + string(role) + " is not configured"}
	}
	st, ok := cfg.Content.(*StackNode)
	if !ok {
		return nil, false, &InvalidNodeError{Key: paneKey, Reason: "pane role " + string(role) + " does not hold a stack"}
	}
	if st.IsEmpty() {
		return root, false, nil
	}
	cfg.Content = st.withChildren(st.children[:len(st.children)-1])
	next, err := ReplaceNode(root, paneKey, pane.withConfiguration(role, cfg))
	if err != nil {
		return nil, false, err
	}
	return next, true, nil
}

// PopWithPaneBehavior resolves a logical back action against the pane
// node in an expanded (non-compact) layout.
func PopWithPaneBehavior(root Node, paneKey NodeKey) (PanePopResult, error) {
	return PopPaneAdaptive(root, paneKey, false)
}

// PopPaneAdaptive resolves a logical back action against the pane node,
// honoring its BackBehavior and the current layout width. In a compact
// layout, a pane configured with BackBehaviorPopUntilScaffoldChange
// collapses from a non-primary role back to the primary pane before any
// content is popped: that collapse is reported as PanePopScaffoldChange
// and visually reads as one back step.
func PopPaneAdaptive(root Node, paneKey NodeKey, isCompact bool) (PanePopResult, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return PanePopResult{}, err
	}
	cfg := pane.configs[pane.active]
	st, ok := cfg.Content.(*StackNode)
	if !ok {
		return PanePopResult{}, &InvalidNodeError{Key: paneKey, Reason: "active pane role does not hold a stack"}
	}

	collapse := isCompact &&
		pane.back == BackBehaviorPopUntilScaffoldChange &&
		pane.active != PaneRolePrimary

	switch {
	case st.Len() >= 2:
		cfg.Content = st.withChildren(st.children[:len(st.children)-1])
		next, err := ReplaceNode(root, paneKey, pane.withConfiguration(pane.active, cfg))
		if err != nil {
			return PanePopResult{}, err
		}
		return PanePopResult{Status: PanePopped, Tree: next}, nil

	case collapse:
		next, err := ReplaceNode(root, paneKey, pane.withActiveRole(PaneRolePrimary))
		if err != nil {
			return PanePopResult{}, err
		}
		return PanePopResult{Status: PanePopScaffoldChange, Tree: next, Role: PaneRolePrimary}, nil

	case st.Len() == 1:
		role := pane.active
		cfg.Content = st.withChildren(nil)
		next, err := ReplaceNode(root, paneKey, pane.withConfiguration(role, cfg))
		if err != nil {
			return PanePopResult{}, err
		}
		return PanePopResult{Status: PanePopEmpty, Tree: next, Role: role}, nil

	default:
		return PanePopResult{Status: PanePopCannot, Tree: root}, nil
	}
}

// PopEntirePaneNode removes the whole pane node from its stack parent:
// the compact-mode exit from a pane layout whose active pane has nothing
// left to pop. The second result is false when the pane node's parent is
// not a stack, or when removing it would take the root with it.
func PopEntirePaneNode(root Node, paneKey NodeKey) (Node, bool) {
	n, ok := FindNode(root, paneKey)
	if !ok {
		return root, false
	}
	pane, ok := n.(*PaneNode)
	if !ok || pane.key == root.Key() {
		return root, false
	}
	parent, ok := FindNode(root, pane.parentKey)
	if !ok {
		return root, false
	}
	if _, isStack := parent.(*StackNode); !isStack {
		return root, false
	}
	next, err := RemoveNode(root, paneKey)
	if err != nil || next == nil {
		return root, false
	}
	return next, true
}

// SetPaneConfiguration adds or replaces a role's slot on the pane node.
func SetPaneConfiguration(root Node, paneKey NodeKey, role PaneRole, cfg PaneConfiguration) (Node, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, err
	}
	return ReplaceNode(root, paneKey, pane.withConfiguration(role, cfg))
}

// RemovePaneConfiguration removes a role's slot from the pane node.
// The primary role and the currently-active role cannot be removed; to
// remove the active role, focus another role first so the active role
// never dangles.
func RemovePaneConfiguration(root Node, paneKey NodeKey, role PaneRole) (Node, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, err
	}
	if role == PaneRolePrimary {
		return nil, &InvalidNodeError{Key: paneKey, Reason: "cannot remove the primary pane"}
	}
	if role == pane.active {
		return nil, &InvalidNodeError{Key: paneKey, Reason: "cannot remove the active pane role"}
	}
	if _, configured := pane.Configuration(role); !configured {
		return root, nil
	}
	return ReplaceNode(root, paneKey, pane.withoutConfiguration(role))
}

func paneByKey(root Node, key NodeKey) (*PaneNode, error) {
	n, ok := FindNode(root, key)
	if !ok {
		return nil, &NodeNotFoundError{Key: key}
	}
	pane, ok := n.(*PaneNode)
	if !ok {
		return nil, &InvalidNodeError{Key: key, Reason: "not a pane node"}
	}
	return pane, nil
}
