package command

import "fmt"

// WarningKind classifies a construction warning.
type WarningKind string

const (
	// WarnCollision means a later section replaced an existing key.
	WarnCollision WarningKind = "collision"
	// WarnDanglingAlias means an alias targets a key absent from the namespace.
	WarnDanglingAlias WarningKind = "dangling-alias"
	// WarnMissingAgent means a direct command was authored without an agent.
	WarnMissingAgent WarningKind = "missing-agent"
)

// Warning is a non-fatal condition found while compiling a registry.
type Warning struct {
	Kind     WarningKind
	Key      string // colliding key or alias target
	Alias    string // dangling alias token
	Previous Kind   // kind of the replaced descriptor (collisions)
	Replaced Kind   // kind of the replacing descriptor (collisions)
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnCollision:
		return fmt.Sprintf("key %q from %s section replaced %s entry", w.Key, w.Replaced.Section(), w.Previous.Section())
	case WarnDanglingAlias:
		return fmt.Sprintf("alias %q targets unknown command %q", w.Alias, w.Key)
	case WarnMissingAgent:
		return fmt.Sprintf("command %q has no agent", w.Key)
	default:
		return string(w.Kind)
	}
}
