package navtree

// PopBehavior selects what happens when a pop empties a stack.
type PopBehavior int

const (
	// PopBehaviorPreserveEmpty leaves the emptied stack in place as an
	// explicit empty state.
	PopBehaviorPreserveEmpty PopBehavior = iota
	// PopBehaviorCascade removes the emptied stack from a stack parent.
	// Tab and pane parents keep their stacks for structural reasons, so
	// cascade falls back to preserving the empty stack there. Cascade is
	// single-level: the parent is not re-examined for emptiness.
	PopBehaviorCascade
)

// Pop removes the last child of the deepest active stack and returns the
// new root. The second result is false when there is nothing to pop: an
// already-empty stack, or a cascade that would remove the root itself.
// That is a normal boundary condition, not an error.
func Pop(root Node, behavior PopBehavior) (Node, bool) {
	st, ok := activeStack(root)
	if !ok || st.IsEmpty() {
		return root, false
	}
	popped := st.withChildren(st.children[:len(st.children)-1])
	if !popped.IsEmpty() || behavior == PopBehaviorPreserveEmpty {
		next, err := ReplaceNode(root, st.key, popped)
		if err != nil {
			return root, false
		}
		return next, true
	}

	// Cascade: excise the emptied stack from a stack parent.
	if st.key == root.Key() {
		return root, false
	}
	parent, ok := FindNode(root, st.parentKey)
	if !ok {
		return root, false
	}
	if _, isStack := parent.(*StackNode); !isStack {
		// Tab and pane parents must keep their stacks.
		next, err := ReplaceNode(root, st.key, popped)
		if err != nil {
			return root, false
		}
		return next, true
	}
	next, err := RemoveNode(root, st.key)
	if err != nil || next == nil {
		return root, false
	}
	return next, true
}

// PopTo truncates the deepest active stack back to the most recent child
// matching predicate. With inclusive false everything above the match is
// dropped and the match stays on top; with inclusive true the match is
// dropped too. A missing match, or a truncation that would empty the
// stack, leaves the tree unchanged: emptying goes through Pop and its
// cascade policy, not PopTo.
func PopTo(root Node, predicate func(Node) bool, inclusive bool) Node {
	st, ok := activeStack(root)
	if !ok {
		return root
	}
	for i := len(st.children) - 1; i >= 0; i-- {
		if !predicate(st.children[i]) {
			continue
		}
		keep := i + 1
		if inclusive {
			keep = i
		}
		if keep == 0 || keep == len(st.children) {
			return root
		}
		next, err := ReplaceNode(root, st.key, st.withChildren(st.children[:keep]))
		if err != nil {
			return root
		}
		return next
	}
	return root
}

// PopToRoute truncates the active stack back to the most recent screen
// with the given route.
func PopToRoute(root Node, route string, inclusive bool) Node {
	return PopTo(root, func(n Node) bool {
		s, ok := AsScreen(n)
		return ok && s.dest.Route == route
	}, inclusive)
}

// PopToKind truncates the active stack back to the most recent screen
// whose destination is of the given kind.
func PopToKind(root Node, kind string, inclusive bool) Node {
	return PopTo(root, func(n Node) bool {
		s, ok := AsScreen(n)
		return ok && s.dest.Kind() == kind
	}, inclusive)
}
