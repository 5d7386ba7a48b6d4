package navtree

// SwitchTab focuses the tab at index on the tab node keyed tabKey. It is
// purely a focus change: no stack content is touched. An index outside
// the tab list fails with TabIndexError.
func SwitchTab(root Node, tabKey NodeKey, index int) (Node, error) {
	n, ok := FindNode(root, tabKey)
	if !ok {
		return nil, &NodeNotFoundError{Key: tabKey}
	}
	tab, ok := n.(*TabNode)
	if !ok {
		return nil, &InvalidNodeError{Key: tabKey, Reason: "not a tab node"}
	}
	if index < 0 || index >= len(tab.stacks) {
		return nil, &TabIndexError{Key: tabKey, Index: index, Count: len(tab.stacks)}
	}
	if index == tab.active {
		return root, nil
	}
	return ReplaceNode(root, tabKey, tab.withActive(index))
}

// SwitchActiveTab focuses the tab at index on the tab node currently on
// the active path. There is at most one such node; resolution fails with
// InvalidNodeError when the path holds none.
func SwitchActiveTab(root Node, index int) (Node, error) {
	tab, ok := activeTabNode(root)
	if !ok {
		return nil, &InvalidNodeError{Key: root.Key(), Reason: "no tab node on the active path"}
	}
	return SwitchTab(root, tab.key, index)
}

// activeTabNode returns the deepest tab node on the active path.
func activeTabNode(root Node) (*TabNode, bool) {
	var deepest *TabNode
	for _, n := range ActivePath(root) {
		if tab, ok := n.(*TabNode); ok {
			deepest = tab
		}
	}
	return deepest, deepest != nil
}
