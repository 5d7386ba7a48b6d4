package navtree

// BackStatus classifies how a system back press resolved against the tree.
type BackStatus int

const (
	// BackHandled means the tree absorbed the back action; Tree holds the
	// new root.
	BackHandled BackStatus = iota
	// BackDelegateToSystem means the tree is at its last screen and the
	// host platform owns the action (exit the app, OS back).
	BackDelegateToSystem
	// BackCannotHandle means there is no tree to resolve against.
	BackCannotHandle
)

// BackResult is the outcome of HandleBack. Tree is set only for
// BackHandled.
type BackResult struct {
	Status BackStatus
	Tree   Node
}

// HandleBack resolves one platform back press against the whole tree. It
// walks the active path from the deepest node outward and takes the first
// available action:
//
//   - a stack with at least two children pops its top entry
//   - a nested single-child stack whose stack parent has other content is
//     excised entirely, top entry and all
//   - a tab group on a non-first tab soft-backs to the first tab
//   - a pane group resolves through PopPaneAdaptive, and in compact
//     layouts a pane with nothing left to pop exits the pane layout via
//     PopEntirePaneNode
//
// When no node can absorb the action the result delegates to the system.
func HandleBack(root Node, isCompact bool) BackResult {
	if root == nil {
		return BackResult{Status: BackCannotHandle}
	}
	path := ActivePath(root)
	for i := len(path) - 1; i >= 0; i-- {
		switch c := path[i].(type) {
		case *StackNode:
			if c.Len() >= 2 {
				popped := c.withChildren(c.children[:c.Len()-1])
				if next, err := ReplaceNode(root, c.key, popped); err == nil {
					return BackResult{Status: BackHandled, Tree: next}
				}
				return BackResult{Status: BackCannotHandle}
			}
			if c.Len() == 1 && i > 0 {
				if parent, ok := path[i-1].(*StackNode); ok && parent.Len() >= 2 {
					if next, err := RemoveNode(root, c.key); err == nil && next != nil {
						return BackResult{Status: BackHandled, Tree: next}
					}
				}
			}

		case *TabNode:
			if c.active != 0 {
				if next, err := SwitchTab(root, c.key, 0); err == nil {
					return BackResult{Status: BackHandled, Tree: next}
				}
				return BackResult{Status: BackCannotHandle}
			}

		case *PaneNode:
			res, err := PopPaneAdaptive(root, c.key, isCompact)
			if err != nil {
				return BackResult{Status: BackCannotHandle}
			}
			switch res.Status {
			case PanePopped, PanePopScaffoldChange, PanePopEmpty:
				return BackResult{Status: BackHandled, Tree: res.Tree}
			}
			if isCompact {
				if next, ok := PopEntirePaneNode(root, c.key); ok {
					return BackResult{Status: BackHandled, Tree: next}
				}
			}
		}
	}
	return BackResult{Status: BackDelegateToSystem}
}

// CanGoBack reports whether HandleBack would absorb a back press in an
// expanded layout, without mutating anything. Renderers use it to decide
// whether to show a back affordance at all.
func CanGoBack(root Node) bool {
	return CanHandleBack(root, false)
}

// CanHandleBack reports whether HandleBack would absorb a back press for
// the given layout width.
func CanHandleBack(root Node, isCompact bool) bool {
	return HandleBack(root, isCompact).Status == BackHandled
}
