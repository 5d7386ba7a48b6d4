// Package navtree models an application's navigable structure as an
// immutable tree of nodes (screens, stacks, tabs, panes) and provides the
// pure operations that transform it: push, pop, tab switching, pane routing
// and tree-aware back resolution.
//
// Every operation takes the current root and returns a new root; unchanged
// subtrees are shared by reference. A renderer owns the current root,
// funnels navigation intents through these operations one at a time, and
// diffs consecutive roots with ComputeDiff to drive lifecycle teardown.
//
// # Basic usage
//
//	gen := NewKeyGenerator()
//	home := NewScreenNode(gen(), "", Destination{Route: "home"})
//	root := NewStackNode(gen(), "", home)
//
//	// Forward navigation: a new root with a detail screen on top.
//	next, err := Push(root, Destination{Route: "detail/42"}, gen)
//	if err != nil {
//	    // malformed tree, programmer error
//	}
//
//	// Lifecycle: tell removed nodes they are gone.
//	ComputeDiff(root, next).DetachRemoved()
//	root = next
//
//	// Back navigation resolves against the whole tree.
//	if res := HandleBack(root, false); res.Status == BackHandled {
//	    root = res.Tree
//	}
//
// The tree is a value: operations never lock and never mutate shared state.
// Callers are expected to serialize navigation intents through a single
// writer, which is the natural shape of a UI event loop.
package navtree
