// Package flags provides feature flag support for controlled feature rollout.
// Flags are read-only after initialization and provide safe defaults for unknown flags.
package flags

import (
	"maps"

	"github.com/vltrn/slashroute/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagStrictRegistry rejects registries with key collisions or dangling
	// aliases instead of loading them with warnings.
	FlagStrictRegistry = "strict-registry"

	// FlagSuggestionCache memoises suggestion lookups per compiled registry.
	FlagSuggestionCache = "suggestion-cache"

	// FlagHotReload recompiles the registry when its file changes.
	FlagHotReload = "hot-reload"
)

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map.
// If flags is nil, an empty registry is created (all flags disabled).
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: make(map[string]bool, len(flags))}
	maps.Copy(r.flags, flags)
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(r.flags), "flags", r.All())
	return r
}

// Enabled returns true if the named flag is enabled.
// Returns false for unknown flags and on a nil registry.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name, "result", false)
		return false
	}
	return value
}

// EnabledOr returns the flag value, or fallback when the flag is not set.
func (r *Registry) EnabledOr(name string, fallback bool) bool {
	if r == nil {
		return fallback
	}
	if value, exists := r.flags[name]; exists {
		return value
	}
	return fallback
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	result := make(map[string]bool)
	if r == nil {
		return result
	}
	maps.Copy(result, r.flags)
	return result
}
