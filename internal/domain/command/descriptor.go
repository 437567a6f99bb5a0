package command

import "slices"

// Descriptor identifies one invocable unit in the compiled namespace.
// It is immutable once built; accessors return copies of slice fields.
type Descriptor struct {
	key           string   // e.g., "genesis", "workflow.close-books"
	agent         string   // e.g., "GENESIS_ORCHESTRATOR"
	description   string   // e.g., "Divine Orchestrator"
	tier          Tier     // clearance label
	kind          Kind     // source section discriminator
	section       string   // tier key for direct commands (e.g., "tier0")
	domain        string   // registry-authored domain (direct commands)
	category      string   // workflow category
	backend       string   // nvidia backend name
	provider      string   // llm provider name
	validator     string   // oracle validator name
	subAgents     []string // named sub-agents
	subAgentTotal int      // authored sub-agent count when only a number is given
}

// Key returns the canonical command key.
func (d *Descriptor) Key() string {
	return d.key
}

// Agent returns the target execution agent.
func (d *Descriptor) Agent() string {
	return d.agent
}

// Description returns the human-readable description.
func (d *Descriptor) Description() string {
	return d.description
}

// Tier returns the clearance tier the command requires.
func (d *Descriptor) Tier() Tier {
	return d.tier
}

// Kind returns which registry section produced the descriptor.
func (d *Descriptor) Kind() Kind {
	return d.kind
}

// Section returns the tier key for direct commands, empty otherwise.
func (d *Descriptor) Section() string {
	return d.section
}

// Domain returns the registry-authored domain of a direct command.
func (d *Descriptor) Domain() string {
	return d.domain
}

// Category returns the workflow category of a workflow command.
func (d *Descriptor) Category() string {
	return d.category
}

// Backend returns the backend name of an nvidia command.
func (d *Descriptor) Backend() string {
	return d.backend
}

// Provider returns the provider name of an llm command.
func (d *Descriptor) Provider() string {
	return d.provider
}

// Validator returns the validator name of an oracle command.
func (d *Descriptor) Validator() string {
	return d.validator
}

// SubAgents returns a copy of the named sub-agents.
func (d *Descriptor) SubAgents() []string {
	return slices.Clone(d.subAgents)
}

// SubAgentTotal returns the number of sub-agents: the authored count when the
// registry gives only a number, otherwise the length of SubAgents.
func (d *Descriptor) SubAgentTotal() int {
	if d.subAgentTotal > 0 {
		return d.subAgentTotal
	}
	return len(d.subAgents)
}

// MatchesDomain reports whether the descriptor's domain or workflow category
// equals domain.
func (d *Descriptor) MatchesDomain(domain string) bool {
	return d.domain == domain || d.category == domain
}
