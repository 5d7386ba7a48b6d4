package navtree

import "github.com/google/uuid"

// NodeKey identifies a node. Keys are unique within a tree and are never
// reused while still present in it.
type NodeKey string

// ScopeKey names a logical navigation scope declared by a container.
// Destinations outside the scope navigate above the container instead of
// inside it.
type ScopeKey string

// PaneRole names a slot within a pane node's multi-pane layout.
type PaneRole string

// Standard pane roles. Applications may define additional ones.
const (
	PaneRolePrimary    PaneRole = "primary"
	PaneRoleSupporting PaneRole = "supporting"
	PaneRoleExtra      PaneRole = "extra"
)

// KeyGenerator produces fresh node keys. Generated values must be unique
// across the lifetime of a tree.
type KeyGenerator func() NodeKey

// NewKeyGenerator returns the default UUID-backed key generator.
func NewKeyGenerator() KeyGenerator {
	return func() NodeKey {
		return NodeKey(uuid.NewString())
	}
}
