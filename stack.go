package navtree

import "slices"

// StackNode is an ordered navigation stack. Insertion order is navigation
// order and the last child is the active one. A stack may legally be
// empty: that is an explicit state, not an error, and pop callers choose
// how to treat it via PopBehavior.
//
// Stacks are transparent containers: they have no lifecycle of their own.
type StackNode struct {
	key       NodeKey
	parentKey NodeKey
	scopeKey  ScopeKey
	children  []Node
}

// NewStackNode creates a stack containing children in order. The children
// are reparented under the stack's key.
func NewStackNode(key, parentKey NodeKey, children ...Node) *StackNode {
	s := &StackNode{key: key, parentKey: parentKey}
	s.children = reparent(children, key)
	return s
}

// NewScopedStackNode creates a stack that declares a navigation scope.
func NewScopedStackNode(key, parentKey NodeKey, scope ScopeKey, children ...Node) *StackNode {
	s := NewStackNode(key, parentKey, children...)
	s.scopeKey = scope
	return s
}

// Key returns the node key.
func (s *StackNode) Key() NodeKey { return s.key }

// ParentKey returns the containing node's key.
func (s *StackNode) ParentKey() NodeKey { return s.parentKey }

// ScopeKey returns the stack's scope, empty if it declares none.
func (s *StackNode) ScopeKey() ScopeKey { return s.scopeKey }

// Children returns the child nodes in navigation order. The returned slice
// is the node's own storage and must not be modified.
func (s *StackNode) Children() []Node { return s.children }

// Len returns the number of children.
func (s *StackNode) Len() int { return len(s.children) }

// IsEmpty reports whether the stack has no children.
func (s *StackNode) IsEmpty() bool { return len(s.children) == 0 }

// ActiveChild returns the last child, the one currently shown.
func (s *StackNode) ActiveChild() (Node, bool) {
	if len(s.children) == 0 {
		return nil, false
	}
	return s.children[len(s.children)-1], true
}

// withChildren returns a copy of the stack holding children, reparented
// under the stack's key.
func (s *StackNode) withChildren(children []Node) *StackNode {
	c := *s
	c.children = reparent(children, s.key)
	return &c
}

// appendChildren returns a copy of the stack with nodes appended.
func (s *StackNode) appendChildren(nodes ...Node) *StackNode {
	children := make([]Node, 0, len(s.children)+len(nodes))
	children = append(children, s.children...)
	children = append(children, nodes...)
	return s.withChildren(children)
}

func (s *StackNode) withParent(key NodeKey) Node {
	c := *s
	c.parentKey = key
	return &c
}

// reparent returns nodes with every parent key set to key. Nodes already
// parented correctly are reused as-is.
func reparent(nodes []Node, key NodeKey) []Node {
	if !slices.ContainsFunc(nodes, func(n Node) bool { return n.ParentKey() != key }) {
		return nodes
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		if n.ParentKey() == key {
			out[i] = n
		} else {
			out[i] = n.withParent(key)
		}
	}
	return out
}
