package navtree

// AdaptStrategy tells a renderer what to do with a non-active pane when
// the layout is too narrow to show every configured pane.
type AdaptStrategy int

const (
	// AdaptStrategyHide hides the pane entirely in compact layouts.
	AdaptStrategyHide AdaptStrategy = iota
	// AdaptStrategyReflow moves the pane below the active one.
	AdaptStrategyReflow
	// AdaptStrategyLevitate floats the pane over the active one.
	AdaptStrategyLevitate
)

// BackBehavior selects how a pane node resolves a logical back action.
type BackBehavior int

const (
	// BackBehaviorPopActivePane pops within the active pane's stack only.
	BackBehaviorPopActivePane BackBehavior = iota
	// BackBehaviorPopUntilScaffoldChange treats collapsing back to the
	// primary pane as a back step in compact layouts before any further
	// popping happens.
	BackBehaviorPopUntilScaffoldChange
)

// PaneConfiguration is one role's slot in a pane node: the content subtree
// shown in that pane and how the pane adapts in compact layouts.
type PaneConfiguration struct {
	Content Node
	Adapt   AdaptStrategy
}

// PaneNode lays out named roles side by side, each holding its own
// navigation subtree. Exactly one role has focus; the others may still be
// visible depending on layout width, which is the renderer's concern.
//
// A pane node must configure at least PaneRolePrimary, and the active role
// must be configured. The pane group has a lifecycle independent of its
// children.
type PaneNode struct {
	key       NodeKey
	parentKey NodeKey
	scopeKey  ScopeKey
	configs   map[PaneRole]PaneConfiguration
	active    PaneRole
	back      BackBehavior
	lc        *Lifecycle
}

// NewPaneNode creates a pane node from role configurations. It fails if
// PaneRolePrimary is missing or active is not a configured role.
func NewPaneNode(key, parentKey NodeKey, active PaneRole, configs map[PaneRole]PaneConfiguration) (*PaneNode, error) {
	if _, ok := configs[PaneRolePrimary]; !ok {
		return nil, &InvalidNodeError{Key: key, Reason: "pane node needs a primary pane"}
	}
	if _, ok := configs[active]; !ok {
		return nil, &InvalidNodeError{Key: key, Reason: "active pane role " + string(active) + " is not configured"}
	}
	p := &PaneNode{key: key, parentKey: parentKey, active: active, lc: NewLifecycle()}
	p.configs = reparentConfigs(configs, key)
	return p, nil
}

// WithScope returns a copy of the pane node declaring a navigation scope.
func (p *PaneNode) WithScope(scope ScopeKey) *PaneNode {
	c := *p
	c.scopeKey = scope
	return &c
}

// WithBackBehavior returns a copy using the given back resolution policy.
func (p *PaneNode) WithBackBehavior(b BackBehavior) *PaneNode {
	c := *p
	c.back = b
	return &c
}

// Key returns the node key.
func (p *PaneNode) Key() NodeKey { return p.key }

// ParentKey returns the containing node's key.
func (p *PaneNode) ParentKey() NodeKey { return p.parentKey }

// ScopeKey returns the pane group's scope, empty if it declares none.
func (p *PaneNode) ScopeKey() ScopeKey { return p.scopeKey }

// Configurations returns the role map. It is the node's own storage and
// must not be modified.
func (p *PaneNode) Configurations() map[PaneRole]PaneConfiguration { return p.configs }

// Configuration returns the configuration for role.
func (p *PaneNode) Configuration(role PaneRole) (PaneConfiguration, bool) {
	cfg, ok := p.configs[role]
	return cfg, ok
}

// ActivePaneRole returns the focused role.
func (p *PaneNode) ActivePaneRole() PaneRole { return p.active }

// ActiveContent returns the focused role's content subtree.
func (p *PaneNode) ActiveContent() Node { return p.configs[p.active].Content }

// BackBehavior returns the pane's back resolution policy.
func (p *PaneNode) BackBehavior() BackBehavior { return p.back }

// Lifecycle returns the pane group's lifecycle state machine.
func (p *PaneNode) Lifecycle() *Lifecycle { return p.lc }

// withActiveRole returns a copy focused on role. Callers validate that the
// role is configured.
func (p *PaneNode) withActiveRole(role PaneRole) *PaneNode {
	c := *p
	c.active = role
	return &c
}

// withConfiguration returns a copy with role's slot replaced (or added).
func (p *PaneNode) withConfiguration(role PaneRole, cfg PaneConfiguration) *PaneNode {
	c := *p
	configs := make(map[PaneRole]PaneConfiguration, len(p.configs)+1)
	for r, existing := range p.configs {
		configs[r] = existing
	}
	if cfg.Content != nil && cfg.Content.ParentKey() != p.key {
		cfg.Content = cfg.Content.withParent(p.key)
	}
	configs[role] = cfg
	c.configs = configs
	return &c
}

// withoutConfiguration returns a copy with role's slot removed.
func (p *PaneNode) withoutConfiguration(role PaneRole) *PaneNode {
	c := *p
	configs := make(map[PaneRole]PaneConfiguration, len(p.configs))
	for r, existing := range p.configs {
		if r != role {
			configs[r] = existing
		}
	}
	c.configs = configs
	return &c
}

func (p *PaneNode) withParent(key NodeKey) Node {
	c := *p
	c.parentKey = key
	return &c
}

func reparentConfigs(configs map[PaneRole]PaneConfiguration, key NodeKey) map[PaneRole]PaneConfiguration {
	out := make(map[PaneRole]PaneConfiguration, len(configs))
	for role, cfg := range configs {
		if cfg.Content != nil && cfg.Content.ParentKey() != key {
			cfg.Content = cfg.Content.withParent(key)
		}
		out[role] = cfg
	}
	return out
}
