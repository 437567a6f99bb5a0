package testutil

import domaincmd "github.com/vltrn/slashroute/internal/domain/command"

// WithStandardRegistry adds the standard fixture: two tiers, one workflow
// category and one entry in each derived section, plus two aliases.
func (b *Builder) WithStandardRegistry() *Builder {
	return b.
		WithTier("tier0", domaincmd.TierBlack,
			Command("genesis", Agent("GENESIS_ORCHESTRATOR"), Description("Divine Orchestrator"), SubAgentTotal(12))).
		WithTier("tier1", domaincmd.TierRestricted,
			Command("aurum", Agent("AURUM_CFO"), Description("Finance & Treasury"), Domain("finance"), SubAgents("ledger", "treasury"))).
		WithWorkflows("finance", "close-books").
		WithBackend("nim", "NVIDIA NIM inference").
		WithProvider("claude", "Anthropic Claude").
		WithValidator("truth", "Fact validation oracle").
		WithAlias("g", "genesis").
		WithAlias("cfo", "aurum")
}
