package navtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrEmptyStack indicates an operation that needs a top entry was run
	// against an empty stack (e.g. ReplaceCurrent).
	ErrEmptyStack = errors.New("navtree: stack is empty")

	// ErrNoActiveStack indicates the active path contains no stack to push
	// onto. A valid tree always has one; this signals a malformed tree.
	ErrNoActiveStack = errors.New("navtree: no active stack")
)

// NodeNotFoundError reports a key that does not exist anywhere in the tree.
// It signals an invariant violation in calling code, not a recoverable
// navigation outcome.
type NodeNotFoundError struct {
	Key NodeKey
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("navtree: node %q not found", string(e.Key))
}

// InvalidNodeError reports a structurally invalid operation against an
// existing node, such as removing a tab's stack through RemoveNode or
// pushing to a key that is not a stack.
type InvalidNodeError struct {
	Key    NodeKey
	Reason string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("navtree: node %q: %s", string(e.Key), e.Reason)
}

// TabIndexError reports a tab index outside the tab node's stack list.
type TabIndexError struct {
	Key   NodeKey
	Index int
	Count int
}

func (e *TabIndexError) Error() string {
	return fmt.Sprintf("navtree: tab node %q: index %d out of range (%d tabs)", string(e.Key), e.Index, e.Count)
}
