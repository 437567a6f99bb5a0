// Package registrydata embeds the built-in command registry.
package registrydata

import (
	_ "embed"
)

// FileName is the name of the embedded registry document.
const FileName = "registry.yaml"

//go:embed registry.yaml
var registryYAML []byte

// Default returns a copy of the built-in registry document.
func Default() []byte {
	out := make([]byte, len(registryYAML))
	copy(out, registryYAML)
	return out
}
