package command

import (
	"fmt"
	"strings"
)

// Key prefixes for derived commands.
const (
	WorkflowPrefix  = "workflow"
	BackendPrefix   = "nvidia"
	ProviderPrefix  = "llm"
	ValidatorPrefix = "oracle"
)

// CanonicalKey returns the namespace key for an entry of the given kind.
// Direct command names are used as authored.
func CanonicalKey(kind Kind, name string) string {
	switch kind {
	case KindWorkflow:
		return WorkflowPrefix + "." + name
	case KindBackend:
		return BackendPrefix + "." + name
	case KindProvider:
		return ProviderPrefix + "." + name
	case KindValidator:
		return ValidatorPrefix + "." + name
	default:
		return name
	}
}

// AgentName returns the synthesized agent identifier for a derived entry.
// Direct commands carry a registry-authored agent, so the name is returned as-is.
//
// Only workflow names have hyphens rewritten to underscores; the other
// sections are upper-cased verbatim.
func AgentName(kind Kind, name string) string {
	switch kind {
	case KindWorkflow:
		return "WORKFLOW_" + strings.ReplaceAll(strings.ToUpper(name), "-", "_")
	case KindBackend:
		return "NVIDIA_" + strings.ToUpper(name)
	case KindProvider:
		return "LLM_" + strings.ToUpper(name)
	case KindValidator:
		return "ORACLE_" + strings.ToUpper(name)
	default:
		return name
	}
}

// DefaultDescription returns the generated description for a derived entry.
// authored wins when non-empty, except for workflows whose description is
// always generated.
func DefaultDescription(kind Kind, name, authored string) string {
	if kind == KindWorkflow {
		return fmt.Sprintf("Execute %s workflow", name)
	}
	if authored != "" {
		return authored
	}
	switch kind {
	case KindBackend:
		return fmt.Sprintf("Invoke %s NVIDIA backend", name)
	case KindProvider:
		return fmt.Sprintf("Route to %s LLM provider", name)
	case KindValidator:
		return fmt.Sprintf("Validate with %s oracle", name)
	default:
		return ""
	}
}
