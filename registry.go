package navtree

// Lookup is the read side of a registry.
type Lookup[K comparable, V any] interface {
	Get(key K) (V, bool)
}

// Registry is a map-backed Lookup. Registries are configuration objects:
// build them up front and hand them to whatever consumes them; they are
// not safe for concurrent registration.
type Registry[K comparable, V any] struct {
	entries map[K]V
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{entries: make(map[K]V)}
}

// Register binds key to value, replacing any previous binding.
func (r *Registry[K, V]) Register(key K, value V) *Registry[K, V] {
	r.entries[key] = value
	return r
}

// Get returns the value bound to key.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	v, ok := r.entries[key]
	return v, ok
}

// Len returns the number of bindings.
func (r *Registry[K, V]) Len() int {
	return len(r.entries)
}

// Merge combines two lookups into one where secondary's bindings override
// primary's. The combination is associative but not commutative.
func Merge[K comparable, V any](primary, secondary Lookup[K, V]) Lookup[K, V] {
	return composite[K, V]{primary: primary, secondary: secondary}
}

type composite[K comparable, V any] struct {
	primary   Lookup[K, V]
	secondary Lookup[K, V]
}

func (c composite[K, V]) Get(key K) (V, bool) {
	if v, ok := c.secondary.Get(key); ok {
		return v, true
	}
	return c.primary.Get(key)
}

// ScopeRegistry answers which scope a destination belongs to. A container
// consults it during scope-aware pushes: a destination outside the
// container's scope navigates above the container instead of inside it.
type ScopeRegistry interface {
	// ScopeOf returns the scope the destination belongs to.
	ScopeOf(dest Destination) (ScopeKey, bool)
	// IsInScope reports whether the destination belongs to scope.
	IsInScope(scope ScopeKey, dest Destination) bool
}

// MapScopeRegistry binds destination kinds to scopes.
type MapScopeRegistry struct {
	kinds *Registry[string, ScopeKey]
}

// NewScopeRegistry creates an empty scope registry.
func NewScopeRegistry() *MapScopeRegistry {
	return &MapScopeRegistry{kinds: NewRegistry[string, ScopeKey]()}
}

// Bind declares that destinations of the given kind belong to scope.
func (r *MapScopeRegistry) Bind(kind string, scope ScopeKey) *MapScopeRegistry {
	r.kinds.Register(kind, scope)
	return r
}

// ScopeOf returns the scope bound to the destination's kind.
func (r *MapScopeRegistry) ScopeOf(dest Destination) (ScopeKey, bool) {
	return r.kinds.Get(dest.Kind())
}

// IsInScope reports whether the destination's kind is bound to scope.
func (r *MapScopeRegistry) IsInScope(scope ScopeKey, dest Destination) bool {
	s, ok := r.ScopeOf(dest)
	return ok && s == scope
}

// MergeScopeRegistries combines two scope registries; secondary's
// bindings win.
func MergeScopeRegistries(primary, secondary ScopeRegistry) ScopeRegistry {
	return mergedScopes{primary: primary, secondary: secondary}
}

type mergedScopes struct {
	primary   ScopeRegistry
	secondary ScopeRegistry
}

func (m mergedScopes) ScopeOf(dest Destination) (ScopeKey, bool) {
	if s, ok := m.secondary.ScopeOf(dest); ok {
		return s, true
	}
	return m.primary.ScopeOf(dest)
}

func (m mergedScopes) IsInScope(scope ScopeKey, dest Destination) bool {
	s, ok := m.ScopeOf(dest)
	return ok && s == scope
}

// PaneRoleRegistry answers which pane role a destination prefers within a
// scoped pane group.
type PaneRoleRegistry interface {
	PaneRoleFor(scope ScopeKey, dest Destination) (PaneRole, bool)
}

type scopeKind struct {
	Scope ScopeKey
	Kind  string
}

// MapPaneRoleRegistry binds (scope, destination kind) pairs to roles.
type MapPaneRoleRegistry struct {
	roles *Registry[scopeKind, PaneRole]
}

// NewPaneRoleRegistry creates an empty pane role registry.
func NewPaneRoleRegistry() *MapPaneRoleRegistry {
	return &MapPaneRoleRegistry{roles: NewRegistry[scopeKind, PaneRole]()}
}

// Bind routes destinations of the given kind to role inside scope.
func (r *MapPaneRoleRegistry) Bind(scope ScopeKey, kind string, role PaneRole) *MapPaneRoleRegistry {
	r.roles.Register(scopeKind{Scope: scope, Kind: kind}, role)
	return r
}

// PaneRoleFor returns the preferred role for the destination in scope.
func (r *MapPaneRoleRegistry) PaneRoleFor(scope ScopeKey, dest Destination) (PaneRole, bool) {
	return r.roles.Get(scopeKind{Scope: scope, Kind: dest.Kind()})
}

// MergePaneRoleRegistries combines two pane role registries; secondary's
// bindings win.
func MergePaneRoleRegistries(primary, secondary PaneRoleRegistry) PaneRoleRegistry {
	return mergedPaneRoles{primary: primary, secondary: secondary}
}

type mergedPaneRoles struct {
	primary   PaneRoleRegistry
	secondary PaneRoleRegistry
}

func (m mergedPaneRoles) PaneRoleFor(scope ScopeKey, dest Destination) (PaneRole, bool) {
	if role, ok := m.secondary.PaneRoleFor(scope, dest); ok {
		return role, true
	}
	return m.primary.PaneRoleFor(scope, dest)
}

// TransitionLookup maps a destination kind to the transition name a
// renderer should play when navigating to it.
type TransitionLookup = Lookup[string, string]

// NewTransitionRegistry creates an empty transition registry.
func NewTransitionRegistry() *Registry[string, string] {
	return NewRegistry[string, string]()
}

// TransitionFor returns the transition for a destination: its own
// Transition hint first, then the registry binding for its kind.
func TransitionFor(reg TransitionLookup, dest Destination) (string, bool) {
	if dest.Transition != "" {
		return dest.Transition, true
	}
	if reg == nil {
		return "", false
	}
	return reg.Get(dest.Kind())
}

// ScreenRenderer produces a screen's content for a destination. Only the
// demo renderers in cmd/ use it; the engine never renders.
type ScreenRenderer func(dest Destination) string

// ScreenLookup maps a route to its renderer.
type ScreenLookup = Lookup[string, ScreenRenderer]

// NewScreenRegistry creates an empty screen registry.
func NewScreenRegistry() *Registry[string, ScreenRenderer] {
	return NewRegistry[string, ScreenRenderer]()
}

// ContainerFactory builds a container subtree for a scope's entry
// destination, used to materialize scoped flows on demand.
type ContainerFactory func(gen KeyGenerator, parentKey NodeKey, dest Destination) (Node, error)

// ContainerLookup maps a scope to its container factory.
type ContainerLookup = Lookup[ScopeKey, ContainerFactory]

// NewContainerRegistry creates an empty container registry.
func NewContainerRegistry() *Registry[ScopeKey, ContainerFactory] {
	return NewRegistry[ScopeKey, ContainerFactory]()
}
