package command

import "errors"

// Builder errors
var (
	ErrEmptyKey   = errors.New("command key cannot be empty")
	ErrEmptyAgent = errors.New("command agent cannot be empty")
)

// Builder provides a fluent API for creating descriptors
type Builder struct {
	d Descriptor
}

// NewBuilder creates a new descriptor builder for the given kind
func NewBuilder(kind Kind) *Builder {
	return &Builder{d: Descriptor{kind: kind, tier: kind.DefaultTier()}}
}

// Key sets the canonical command key
func (b *Builder) Key(k string) *Builder {
	b.d.key = k
	return b
}

// Agent sets the target agent identifier
func (b *Builder) Agent(a string) *Builder {
	b.d.agent = a
	return b
}

// Description sets the human-readable description
func (b *Builder) Description(desc string) *Builder {
	b.d.description = desc
	return b
}

// Tier sets the clearance tier
func (b *Builder) Tier(t Tier) *Builder {
	b.d.tier = t
	return b
}

// Section sets the tier key a direct command was authored under
func (b *Builder) Section(s string) *Builder {
	b.d.section = s
	return b
}

// Domain sets the authored domain
func (b *Builder) Domain(domain string) *Builder {
	b.d.domain = domain
	return b
}

// Category sets the workflow category
func (b *Builder) Category(c string) *Builder {
	b.d.category = c
	return b
}

// Backend sets the nvidia backend name
func (b *Builder) Backend(name string) *Builder {
	b.d.backend = name
	return b
}

// Provider sets the llm provider name
func (b *Builder) Provider(name string) *Builder {
	b.d.provider = name
	return b
}

// Validator sets the oracle validator name
func (b *Builder) Validator(name string) *Builder {
	b.d.validator = name
	return b
}

// SubAgents sets the named sub-agents
func (b *Builder) SubAgents(names ...string) *Builder {
	b.d.subAgents = append([]string(nil), names...)
	return b
}

// SubAgentTotal sets the authored sub-agent count
func (b *Builder) SubAgentTotal(n int) *Builder {
	b.d.subAgentTotal = n
	return b
}

// Build creates the descriptor, validating required fields
func (b *Builder) Build() (*Descriptor, error) {
	if b.d.key == "" {
		return nil, ErrEmptyKey
	}
	if b.d.agent == "" {
		return nil, ErrEmptyAgent
	}
	d := b.d
	return &d, nil
}
