package command

// Kind identifies the registry section a descriptor was compiled from.
type Kind int

const (
	// KindDirect is a command authored inside a tier section.
	KindDirect Kind = iota
	// KindWorkflow is derived from a workflow category entry.
	KindWorkflow
	// KindBackend is derived from the nvidia section.
	KindBackend
	// KindProvider is derived from the llm section.
	KindProvider
	// KindValidator is derived from the oracle section.
	KindValidator
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindWorkflow:
		return "workflow"
	case KindBackend:
		return "backend"
	case KindProvider:
		return "provider"
	case KindValidator:
		return "validator"
	default:
		return "unknown"
	}
}

// Section returns the registry section name the kind is read from.
// Direct commands live under "tiers".
func (k Kind) Section() string {
	switch k {
	case KindDirect:
		return "tiers"
	case KindWorkflow:
		return "workflows"
	case KindBackend:
		return "nvidia"
	case KindProvider:
		return "llm"
	case KindValidator:
		return "oracle"
	default:
		return ""
	}
}

// DefaultTier returns the fixed tier for derived kinds.
// Direct commands inherit their tier from the section and return "".
func (k Kind) DefaultTier() Tier {
	switch k {
	case KindWorkflow, KindBackend, KindProvider:
		return TierConfidential
	case KindValidator:
		return TierRestricted
	default:
		return ""
	}
}
