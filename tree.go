package navtree

// FindNode searches the whole tree depth-first for a key.
func FindNode(root Node, key NodeKey) (Node, bool) {
	if root == nil {
		return nil, false
	}
	if root.Key() == key {
		return root, true
	}
	switch t := root.(type) {
	case *StackNode:
		for _, child := range t.children {
			if n, ok := FindNode(child, key); ok {
				return n, true
			}
		}
	case *TabNode:
		for _, st := range t.stacks {
			if n, ok := FindNode(st, key); ok {
				return n, true
			}
		}
	case *PaneNode:
		for _, cfg := range t.configs {
			if n, ok := FindNode(cfg.Content, key); ok {
				return n, true
			}
		}
	}
	return nil, false
}

// ReplaceNode returns a new tree with the node keyed target replaced by
// repl. Every ancestor on the path from the root to target is rebuilt;
// subtrees off that path are shared with the input tree. The replacement
// adopts the old node's position, so its parent key is rewritten.
//
// A missing target is a programmer error and returns NodeNotFoundError.
func ReplaceNode(root Node, target NodeKey, repl Node) (Node, error) {
	next, found, err := replaceIn(root, target, repl)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NodeNotFoundError{Key: target}
	}
	return next, nil
}

func replaceIn(n Node, target NodeKey, repl Node) (Node, bool, error) {
	if n.Key() == target {
		if repl.ParentKey() != n.ParentKey() {
			repl = repl.withParent(n.ParentKey())
		}
		return repl, true, nil
	}
	switch t := n.(type) {
	case *StackNode:
		for i, child := range t.children {
			next, found, err := replaceIn(child, target, repl)
			if err != nil {
				return nil, false, err
			}
			if !found {
				continue
			}
			children := make([]Node, len(t.children))
			copy(children, t.children)
			children[i] = next
			return t.withChildren(children), true, nil
		}
	case *TabNode:
		for i, st := range t.stacks {
			next, found, err := replaceIn(st, target, repl)
			if err != nil {
				return nil, false, err
			}
			if !found {
				continue
			}
			stack, ok := next.(*StackNode)
			if !ok {
				return nil, false, &InvalidNodeError{Key: target, Reason: "a tab's stack can only be replaced by a stack node"}
			}
			return t.withStack(i, stack), true, nil
		}
	case *PaneNode:
		for role, cfg := range t.configs {
			next, found, err := replaceIn(cfg.Content, target, repl)
			if err != nil {
				return nil, false, err
			}
			if !found {
				continue
			}
			cfg.Content = next
			return t.withConfiguration(role, cfg), true, nil
		}
	}
	return n, false, nil
}

// RemoveNode returns a new tree with the node keyed target removed from
// its stack parent. Removing a tab's stack or a pane's content root would
// break those containers' shape invariants and fails with
// InvalidNodeError; use the tab and pane operations instead.
//
// Removing the root returns (nil, nil): the whole tree is gone and the
// caller must handle that.
func RemoveNode(root Node, target NodeKey) (Node, error) {
	if root.Key() == target {
		return nil, nil
	}
	next, found, err := removeIn(root, target)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NodeNotFoundError{Key: target}
	}
	return next, nil
}

func removeIn(n Node, target NodeKey) (Node, bool, error) {
	switch t := n.(type) {
	case *StackNode:
		for i, child := range t.children {
			if child.Key() == target {
				children := make([]Node, 0, len(t.children)-1)
				children = append(children, t.children[:i]...)
				children = append(children, t.children[i+1:]...)
				return t.withChildren(children), true, nil
			}
			next, found, err := removeIn(child, target)
			if err != nil {
				return nil, false, err
			}
			if !found {
				continue
			}
			children := make([]Node, len(t.children))
			copy(children, t.children)
			children[i] = next
			return t.withChildren(children), true, nil
		}
	case *TabNode:
		for i, st := range t.stacks {
			if st.Key() == target {
				return nil, false, &InvalidNodeError{Key: target, Reason: "cannot remove a tab's stack; use tab operations"}
			}
			next, found, err := removeIn(st, target)
			if err != nil {
				return nil, false, err
			}
			if !found {
				continue
			}
			return t.withStack(i, next.(*StackNode)), true, nil
		}
	case *PaneNode:
		for role, cfg := range t.configs {
			if cfg.Content != nil && cfg.Content.Key() == target {
				return nil, false, &InvalidNodeError{Key: target, Reason: "cannot remove a pane's content root; use pane operations"}
			}
			next, found, err := removeIn(cfg.Content, target)
			if err != nil {
				return nil, false, err
			}
			if !found {
				continue
			}
			cfg.Content = next
			return t.withConfiguration(role, cfg), true, nil
		}
	}
	return n, false, nil
}

// ActivePath returns the unique root-to-leaf path obtained by descending
// into each container's focused child: a stack's last child, a tab's
// active stack, a pane's active role content.
func ActivePath(root Node) []Node {
	if root == nil {
		return nil
	}
	path := []Node{root}
	for {
		child, ok := activeChildOf(path[len(path)-1])
		if !ok {
			return path
		}
		path = append(path, child)
	}
}

func activeChildOf(n Node) (Node, bool) {
	switch t := n.(type) {
	case *StackNode:
		return t.ActiveChild()
	case *TabNode:
		return t.ActiveStack(), true
	case *PaneNode:
		content := t.ActiveContent()
		return content, content != nil
	}
	return nil, false
}

// ActiveLeaf returns the deepest node on the active path.
func ActiveLeaf(root Node) (Node, bool) {
	path := ActivePath(root)
	if len(path) == 0 {
		return nil, false
	}
	return path[len(path)-1], true
}

// ActiveScreen returns the screen currently shown, if the active path ends
// in one. It does not when the deepest active stack is empty.
func ActiveScreen(root Node) (*ScreenNode, bool) {
	leaf, ok := ActiveLeaf(root)
	if !ok {
		return nil, false
	}
	return AsScreen(leaf)
}

// activeStack returns the deepest stack on the active path: the stack a
// plain push or pop operates on.
func activeStack(root Node) (*StackNode, bool) {
	var deepest *StackNode
	for _, n := range ActivePath(root) {
		if st, ok := n.(*StackNode); ok {
			deepest = st
		}
	}
	return deepest, deepest != nil
}
