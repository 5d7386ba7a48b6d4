package navtree

import "strings"

// Destination describes what a screen should render: a route plus optional
// arguments and a per-destination transition hint. It is an opaque payload
// to the tree engine; only Route and Kind participate in navigation policy.
type Destination struct {
	Route      string
	Args       map[string]string
	Transition string
}

// Kind returns the destination's route family: the route up to the first
// '/'. Two destinations of the same kind are considered the same screen
// type for tab-duplicate detection.
func (d Destination) Kind() string {
	if i := strings.IndexByte(d.Route, '/'); i >= 0 {
		return d.Route[:i]
	}
	return d.Route
}

// Node is a node in the navigation tree. Nodes are immutable values: every
// mutation produces a new node, rebuilt bottom-up to the root with
// unchanged subtrees shared by reference.
type Node interface {
	// Key uniquely identifies this node within the tree.
	Key() NodeKey
	// ParentKey is the key of the structurally containing node, empty for
	// the tree root.
	ParentKey() NodeKey

	// withParent returns a copy of the node reparented under key.
	withParent(key NodeKey) Node
}

// LifecycleAware is implemented by node types whose attach/display/destroy
// transitions are tracked: screens, tabs and panes. Stacks are transparent
// containers and are not lifecycle-aware.
type LifecycleAware interface {
	Node
	Lifecycle() *Lifecycle
}

// ScreenNode is a leaf of the tree: a single renderable destination.
type ScreenNode struct {
	key       NodeKey
	parentKey NodeKey
	dest      Destination
	lc        *Lifecycle
}

// NewScreenNode creates a screen node. parentKey may be empty when the
// screen is about to be placed into a container, which reparents it.
func NewScreenNode(key, parentKey NodeKey, dest Destination) *ScreenNode {
	return &ScreenNode{key: key, parentKey: parentKey, dest: dest, lc: NewLifecycle()}
}

// Key returns the node key.
func (s *ScreenNode) Key() NodeKey { return s.key }

// ParentKey returns the containing node's key.
func (s *ScreenNode) ParentKey() NodeKey { return s.parentKey }

// Destination returns the screen's destination payload.
func (s *ScreenNode) Destination() Destination { return s.dest }

// Lifecycle returns the screen's lifecycle state machine. Copies of the
// node produced by tree rebuilds share it; it is runtime state, not part
// of the node's structural identity.
func (s *ScreenNode) Lifecycle() *Lifecycle { return s.lc }

func (s *ScreenNode) withParent(key NodeKey) Node {
	c := *s
	c.parentKey = key
	return &c
}

// AsScreen type-checks n as a screen node.
func AsScreen(n Node) (*ScreenNode, bool) {
	s, ok := n.(*ScreenNode)
	return s, ok
}

// RequireScreen returns n as a screen node or an InvalidNodeError if it is
// any other variant.
func RequireScreen(n Node) (*ScreenNode, error) {
	if s, ok := n.(*ScreenNode); ok {
		return s, nil
	}
	return nil, &InvalidNodeError{Key: n.Key(), Reason: "not a screen node"}
}
