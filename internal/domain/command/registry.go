package command

// Registry is a parsed registry description. Every section is an ordered
// list so compilation and suggestion order follow authoring order.
type Registry struct {
	Tiers      []TierSection
	Workflows  []WorkflowCategory
	Backends   []Entry // nvidia
	Providers  []Entry // llm
	Validators []Entry // oracle
	Aliases    []Alias
}

// TierSection is one clearance group of direct commands.
type TierSection struct {
	Key       string // e.g., "tier0"
	Clearance Tier   // e.g., L5-BLACK
	Commands  []CommandSpec
}

// CommandSpec is a registry-authored direct command.
type CommandSpec struct {
	Name          string
	Agent         string
	Description   string
	Domain        string
	SubAgents     []string
	SubAgentTotal int
}

// WorkflowCategory groups workflow names under a category.
type WorkflowCategory struct {
	Name      string
	Workflows []string
}

// Entry is a name → description pair from the nvidia, llm or oracle sections.
type Entry struct {
	Name        string
	Description string
}

// SectionCounts are the sizes of the registry sections, taken from the
// description rather than the compiled namespace.
type SectionCounts struct {
	Tiers              int
	WorkflowCategories int
	Backends           int
	Providers          int
	Validators         int
}

// Counts returns the section sizes of r.
func (r Registry) Counts() SectionCounts {
	return SectionCounts{
		Tiers:              len(r.Tiers),
		WorkflowCategories: len(r.Workflows),
		Backends:           len(r.Backends),
		Providers:          len(r.Providers),
		Validators:         len(r.Validators),
	}
}

// Tier returns the tier section with the given key.
func (r Registry) Tier(key string) (TierSection, bool) {
	for _, t := range r.Tiers {
		if t.Key == key {
			return t, true
		}
	}
	return TierSection{}, false
}
