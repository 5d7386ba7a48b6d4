package navtree

// TreeDiff is the result of comparing two consecutive roots by key
// identity: the lifecycle-aware nodes that disappeared, and the screen
// keys that disappeared. A renderer evicts cached UI state for the
// removed screen keys; the removed lifecycle nodes are detached from the
// navigator, which destroys any that are no longer displayed.
type TreeDiff struct {
	RemovedLifecycleNodes []LifecycleAware
	RemovedScreenKeys     []NodeKey
}

// ComputeDiff compares old and new trees in one pass over each: it never
// compares node pairs, only key sets, so cost is linear in the two tree
// sizes. Either root may be nil.
func ComputeDiff(oldRoot, newRoot Node) TreeDiff {
	oldIndex := indexTree(oldRoot)
	newIndex := indexTree(newRoot)

	var diff TreeDiff
	for key, n := range oldIndex.lifecycle {
		if _, kept := newIndex.keys[key]; !kept {
			diff.RemovedLifecycleNodes = append(diff.RemovedLifecycleNodes, n)
		}
	}
	for key := range oldIndex.screens {
		if _, kept := newIndex.keys[key]; !kept {
			diff.RemovedScreenKeys = append(diff.RemovedScreenKeys, key)
		}
	}
	return diff
}

// DetachRemoved detaches every removed lifecycle node from the navigator,
// triggering destroy callbacks for nodes that are no longer displayed.
// Callbacks run inline; they are expected to be fast and non-blocking.
func (d TreeDiff) DetachRemoved() {
	for _, n := range d.RemovedLifecycleNodes {
		n.Lifecycle().DetachFromNavigator()
	}
}

type treeIndex struct {
	keys      map[NodeKey]struct{}
	lifecycle map[NodeKey]LifecycleAware
	screens   map[NodeKey]struct{}
}

func indexTree(root Node) treeIndex {
	idx := treeIndex{
		keys:      make(map[NodeKey]struct{}),
		lifecycle: make(map[NodeKey]LifecycleAware),
		screens:   make(map[NodeKey]struct{}),
	}
	idx.collect(root)
	return idx
}

func (idx *treeIndex) collect(n Node) {
	if n == nil {
		return
	}
	idx.keys[n.Key()] = struct{}{}
	if la, ok := n.(LifecycleAware); ok {
		idx.lifecycle[n.Key()] = la
	}
	switch t := n.(type) {
	case *ScreenNode:
		idx.screens[t.key] = struct{}{}
	case *StackNode:
		for _, child := range t.children {
			idx.collect(child)
		}
	case *TabNode:
		for _, st := range t.stacks {
			idx.collect(st)
		}
	case *PaneNode:
		for _, cfg := range t.configs {
			idx.collect(cfg.Content)
		}
	}
}
