package navtree

// PushStrategy is the outcome of resolving a scope-aware push. Exactly one
// strategy is executed per navigation intent.
type PushStrategy int

const (
	// PushStrategyActiveStack appends to the deepest active stack.
	PushStrategyActiveStack PushStrategy = iota
	// PushStrategyOutOfScope appends to a stack above a container whose
	// scope does not admit the destination, preserving the container's
	// internal state for later return.
	PushStrategyOutOfScope
	// PushStrategySwitchTab switches to the tab that already holds a
	// screen of the destination's kind instead of pushing a duplicate.
	PushStrategySwitchTab
	// PushStrategyPaneRole appends to a configured pane role's stack and
	// focuses that role.
	PushStrategyPaneRole
)

func (s PushStrategy) String() string {
	switch s {
	case PushStrategyActiveStack:
		return "active-stack"
	case PushStrategyOutOfScope:
		return "out-of-scope"
	case PushStrategySwitchTab:
		return "switch-tab"
	case PushStrategyPaneRole:
		return "pane-role"
	}
	return "unknown"
}

// PushOptions carries the registries consulted by PushWithOptions. Nil
// registries disable the corresponding policy checks.
type PushOptions struct {
	Scopes    ScopeRegistry
	PaneRoles PaneRoleRegistry
}

// Push appends a new screen for dest to the deepest active stack.
func Push(root Node, dest Destination, gen KeyGenerator) (Node, error) {
	st, ok := activeStack(root)
	if !ok {
		return nil, ErrNoActiveStack
	}
	return appendScreens(root, st, gen, dest)
}

// PushToStack appends a new screen for dest to an explicit stack, whether
// or not it is on the active path. Used to pre-populate inactive tabs.
func PushToStack(root Node, stackKey NodeKey, dest Destination, gen KeyGenerator) (Node, error) {
	st, err := stackByKey(root, stackKey)
	if err != nil {
		return nil, err
	}
	return appendScreens(root, st, gen, dest)
}

// PushAll appends one screen per destination to the deepest active stack
// in a single tree rebuild.
func PushAll(root Node, dests []Destination, gen KeyGenerator) (Node, error) {
	if len(dests) == 0 {
		return root, nil
	}
	st, ok := activeStack(root)
	if !ok {
		return nil, ErrNoActiveStack
	}
	return appendScreens(root, st, gen, dests...)
}

// ClearAndPush discards the active stack's history and pushes dest as its
// only entry.
func ClearAndPush(root Node, dest Destination, gen KeyGenerator) (Node, error) {
	st, ok := activeStack(root)
	if !ok {
		return nil, ErrNoActiveStack
	}
	return clearAndPush(root, st, dest, gen)
}

// ClearStackAndPush discards an explicit stack's history and pushes dest
// as its only entry.
func ClearStackAndPush(root Node, stackKey NodeKey, dest Destination, gen KeyGenerator) (Node, error) {
	st, err := stackByKey(root, stackKey)
	if err != nil {
		return nil, err
	}
	return clearAndPush(root, st, dest, gen)
}

// ReplaceCurrent swaps the active stack's top entry for a new screen. The
// back history does not grow. Fails with ErrEmptyStack if there is no top
// entry to replace.
func ReplaceCurrent(root Node, dest Destination, gen KeyGenerator) (Node, error) {
	st, ok := activeStack(root)
	if !ok {
		return nil, ErrNoActiveStack
	}
	if st.IsEmpty() {
		return nil, ErrEmptyStack
	}
	children := make([]Node, len(st.children))
	copy(children, st.children)
	children[len(children)-1] = NewScreenNode(gen(), st.key, dest)
	return ReplaceNode(root, st.key, st.withChildren(children))
}

// PushWithOptions resolves dest against the active path's containers from
// the deepest outward and executes exactly one of the four push
// strategies. At each container, in priority order:
//
//  1. A declared scope that does not admit dest sends the push above the
//     container, to its nearest enclosing stack.
//  2. An in-scope tab group holding a screen of dest's kind in a
//     different tab switches to that tab instead of pushing.
//  3. An in-scope pane group whose role registry maps dest to a
//     configured role pushes onto that role's stack and focuses it.
//
// When nothing along the path applies, the push lands on the deepest
// active stack.
func PushWithOptions(root Node, dest Destination, gen KeyGenerator, opts PushOptions) (Node, PushStrategy, error) {
	plan := resolvePush(ActivePath(root), dest, opts)
	switch plan.strategy {
	case PushStrategySwitchTab:
		next, err := SwitchTab(root, plan.tabKey, plan.tabIndex)
		return next, plan.strategy, err

	case PushStrategyPaneRole:
		next, err := pushToPaneRole(root, plan.paneKey, plan.paneRole, dest, gen)
		return next, plan.strategy, err

	default:
		if plan.stackKey == "" {
			return nil, plan.strategy, ErrNoActiveStack
		}
		next, err := PushToStack(root, plan.stackKey, dest, gen)
		return next, plan.strategy, err
	}
}

type pushPlan struct {
	strategy PushStrategy
	stackKey NodeKey
	tabKey   NodeKey
	tabIndex int
	paneKey  NodeKey
	paneRole PaneRole
}

func resolvePush(path []Node, dest Destination, opts PushOptions) pushPlan {
	// limit is the path index below which pushing is forbidden because an
	// out-of-scope container was escaped.
	limit := len(path)

	for i := len(path) - 1; i >= 0; i-- {
		scope := scopeOf(path[i])
		if scope != "" && opts.Scopes != nil && !opts.Scopes.IsInScope(scope, dest) {
			limit = i
			if i > 0 {
				if parent, ok := path[i-1].(*StackNode); ok {
					return pushPlan{strategy: PushStrategyOutOfScope, stackKey: parent.Key()}
				}
			}
			// Parent is another container (or the tree root); keep
			// evaluating ancestors.
			continue
		}

		switch c := path[i].(type) {
		case *TabNode:
			for idx, st := range c.stacks {
				if idx == c.active {
					continue
				}
				if containsKind(st, dest.Kind()) {
					return pushPlan{strategy: PushStrategySwitchTab, tabKey: c.key, tabIndex: idx}
				}
			}
		case *PaneNode:
			if opts.PaneRoles == nil {
				continue
			}
			role, ok := opts.PaneRoles.PaneRoleFor(c.scopeKey, dest)
			if !ok {
				continue
			}
			cfg, configured := c.Configuration(role)
			if !configured {
				continue
			}
			if _, isStack := cfg.Content.(*StackNode); !isStack {
				continue
			}
			return pushPlan{strategy: PushStrategyPaneRole, paneKey: c.key, paneRole: role}
		}
	}

	// Deepest stack still in bounds.
	for i := limit - 1; i >= 0; i-- {
		if st, ok := path[i].(*StackNode); ok {
			return pushPlan{strategy: pickStackStrategy(limit, len(path)), stackKey: st.Key()}
		}
	}
	return pushPlan{strategy: PushStrategyActiveStack}
}

// pickStackStrategy labels the fallback: landing above an escaped
// container is still an out-of-scope push.
func pickStackStrategy(limit, pathLen int) PushStrategy {
	if limit < pathLen {
		return PushStrategyOutOfScope
	}
	return PushStrategyActiveStack
}

func scopeOf(n Node) ScopeKey {
	switch t := n.(type) {
	case *StackNode:
		return t.scopeKey
	case *TabNode:
		return t.scopeKey
	case *PaneNode:
		return t.scopeKey
	}
	return ""
}

// containsKind reports whether the subtree holds a screen of the given
// destination kind.
func containsKind(n Node, kind string) bool {
	switch t := n.(type) {
	case *ScreenNode:
		return t.dest.Kind() == kind
	case *StackNode:
		for _, child := range t.children {
			if containsKind(child, kind) {
				return true
			}
		}
	case *TabNode:
		for _, st := range t.stacks {
			if containsKind(st, kind) {
				return true
			}
		}
	case *PaneNode:
		for _, cfg := range t.configs {
			if cfg.Content != nil && containsKind(cfg.Content, kind) {
				return true
			}
		}
	}
	return false
}

func pushToPaneRole(root Node, paneKey NodeKey, role PaneRole, dest Destination, gen KeyGenerator) (Node, error) {
	n, ok := FindNode(root, paneKey)
	if !ok {
		return nil, &NodeNotFoundError{Key: paneKey}
	}
	pane, ok := n.(*PaneNode)
	if !ok {
		return nil, &InvalidNodeError{Key: paneKey, Reason: "not a pane node"}
	}
	cfg, configured := pane.Configuration(role)
	if !configured {
		return nil, &InvalidNodeError{Key: paneKey, Reason: "pane role " + string(role) + " is not configured"}
	}
	st, ok := cfg.Content.(*StackNode)
	if !ok {
		return nil, &InvalidNodeError{Key: paneKey, Reason: "pane role " + string(role) + " does not hold a stack"}
	}
	cfg.Content = st.appendChildren(NewScreenNode(gen(), st.key, dest))
	next := pane.withConfiguration(role, cfg).withActiveRole(role)
	return ReplaceNode(root, paneKey, next)
}

func appendScreens(root Node, st *StackNode, gen KeyGenerator, dests ...Destination) (Node, error) {
	screens := make([]Node, len(dests))
	for i, d := range dests {
		screens[i] = NewScreenNode(gen(), st.key, d)
	}
	return ReplaceNode(root, st.key, st.appendChildren(screens...))
}

func clearAndPush(root Node, st *StackNode, dest Destination, gen KeyGenerator) (Node, error) {
	screen := NewScreenNode(gen(), st.key, dest)
	return ReplaceNode(root, st.key, st.withChildren([]Node{screen}))
}

func stackByKey(root Node, key NodeKey) (*StackNode, error) {
	n, ok := FindNode(root, key)
	if !ok {
		return nil, &NodeNotFoundError{Key: key}
	}
	st, ok := n.(*StackNode)
	if !ok {
		return nil, &InvalidNodeError{Key: key, Reason: "not a stack node"}
	}
	return st, nil
}
