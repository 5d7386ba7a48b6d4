package navtree

// TabMetadata carries per-tab presentation hints for a renderer: a label
// and the route of the tab's root destination. The engine never reads it.
type TabMetadata struct {
	Label string
	Route string
}

// TabNode holds a fixed set of parallel stacks, one per tab, with exactly
// one active at a time. Tabs cannot be added or removed through generic
// tree operations; only the content inside a tab's stack changes.
//
// The tab group has a lifecycle independent of its children.
type TabNode struct {
	key       NodeKey
	parentKey NodeKey
	scopeKey  ScopeKey
	stacks    []*StackNode
	active    int
	meta      []TabMetadata
	lc        *Lifecycle
}

// NewTabNode creates a tab node over stacks with the given active index.
// It fails if stacks is empty or active is out of range.
func NewTabNode(key, parentKey NodeKey, active int, stacks ...*StackNode) (*TabNode, error) {
	if len(stacks) == 0 {
		return nil, &InvalidNodeError{Key: key, Reason: "tab node needs at least one stack"}
	}
	if active < 0 || active >= len(stacks) {
		return nil, &TabIndexError{Key: key, Index: active, Count: len(stacks)}
	}
	t := &TabNode{key: key, parentKey: parentKey, active: active, lc: NewLifecycle()}
	t.stacks = reparentStacks(stacks, key)
	return t, nil
}

// WithScope returns a copy of the tab node declaring a navigation scope.
func (t *TabNode) WithScope(scope ScopeKey) *TabNode {
	c := *t
	c.scopeKey = scope
	return &c
}

// WithMetadata returns a copy of the tab node carrying per-tab metadata.
// The slice is indexed like Stacks.
func (t *TabNode) WithMetadata(meta ...TabMetadata) *TabNode {
	c := *t
	c.meta = meta
	return &c
}

// Key returns the node key.
func (t *TabNode) Key() NodeKey { return t.key }

// ParentKey returns the containing node's key.
func (t *TabNode) ParentKey() NodeKey { return t.parentKey }

// ScopeKey returns the tab group's scope, empty if it declares none.
func (t *TabNode) ScopeKey() ScopeKey { return t.scopeKey }

// Stacks returns the per-tab stacks in tab order. The returned slice is
// the node's own storage and must not be modified.
func (t *TabNode) Stacks() []*StackNode { return t.stacks }

// ActiveStackIndex returns the index of the focused tab.
func (t *TabNode) ActiveStackIndex() int { return t.active }

// ActiveStack returns the focused tab's stack.
func (t *TabNode) ActiveStack() *StackNode { return t.stacks[t.active] }

// Metadata returns the per-tab metadata, nil if none was set.
func (t *TabNode) Metadata() []TabMetadata { return t.meta }

// Lifecycle returns the tab group's lifecycle state machine.
func (t *TabNode) Lifecycle() *Lifecycle { return t.lc }

// withActive returns a copy focused on index. Callers validate the index.
func (t *TabNode) withActive(index int) *TabNode {
	c := *t
	c.active = index
	return &c
}

// withStack returns a copy with the stack at index replaced.
func (t *TabNode) withStack(index int, stack *StackNode) *TabNode {
	c := *t
	stacks := make([]*StackNode, len(t.stacks))
	copy(stacks, t.stacks)
	if stack.ParentKey() != t.key {
		stack = stack.withParent(t.key).(*StackNode)
	}
	stacks[index] = stack
	c.stacks = stacks
	return &c
}

func (t *TabNode) withParent(key NodeKey) Node {
	c := *t
	c.parentKey = key
	return &c
}

func reparentStacks(stacks []*StackNode, key NodeKey) []*StackNode {
	out := make([]*StackNode, len(stacks))
	for i, s := range stacks {
		if s.ParentKey() == key {
			out[i] = s
		} else {
			out[i] = s.withParent(key).(*StackNode)
		}
	}
	return out
}
