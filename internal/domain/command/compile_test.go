package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sampleRegistry() Registry {
	return Registry{
		Tiers: []TierSection{
			{
				Key:       "tier0",
				Clearance: TierBlack,
				Commands: []CommandSpec{
					{Name: "genesis", Agent: "GENESIS_ORCHESTRATOR", Description: "Divine Orchestrator", SubAgentTotal: 12},
				},
			},
			{
				Key:       "tier1",
				Clearance: TierRestricted,
				Commands: []CommandSpec{
					{Name: "aurum", Agent: "AURUM_TREASURY", Description: "Finance & Treasury", Domain: "finance"},
				},
			},
		},
		Workflows:  []WorkflowCategory{{Name: "finance", Workflows: []string{"close-books"}}},
		Backends:   []Entry{{Name: "nim", Description: "NVIDIA NIM inference"}},
		Providers:  []Entry{{Name: "claude", Description: "Anthropic Claude"}},
		Validators: []Entry{{Name: "truth", Description: "Fact validation"}},
		Aliases:    []Alias{{Token: "g", Target: "genesis"}},
	}
}

func TestCompile_DirectCommand(t *testing.T) {
	catalog, err := Compile(sampleRegistry())
	require.NoError(t, err)

	d, ok := catalog.Lookup("genesis")
	require.True(t, ok)
	require.Equal(t, "GENESIS_ORCHESTRATOR", d.Agent())
	require.Equal(t, "Divine Orchestrator", d.Description())
	require.Equal(t, TierBlack, d.Tier())
	require.Equal(t, KindDirect, d.Kind())
	require.Equal(t, "tier0", d.Section())
	require.Equal(t, 12, d.SubAgentTotal())
}

func TestCompile_Workflow(t *testing.T) {
	catalog, err := Compile(sampleRegistry())
	require.NoError(t, err)

	d, ok := catalog.Lookup("workflow.close-books")
	require.True(t, ok)
	require.Equal(t, "WORKFLOW_CLOSE_BOOKS", d.Agent())
	require.Equal(t, "Execute close-books workflow", d.Description())
	require.Equal(t, TierConfidential, d.Tier())
	require.Equal(t, "finance", d.Category())
}

func TestCompile_DerivedSections(t *testing.T) {
	catalog, err := Compile(sampleRegistry())
	require.NoError(t, err)

	nim, ok := catalog.Lookup("nvidia.nim")
	require.True(t, ok)
	require.Equal(t, "NVIDIA_NIM", nim.Agent())
	require.Equal(t, "NVIDIA NIM inference", nim.Description())
	require.Equal(t, TierConfidential, nim.Tier())
	require.Equal(t, "nim", nim.Backend())

	claude, ok := catalog.Lookup("llm.claude")
	require.True(t, ok)
	require.Equal(t, "LLM_CLAUDE", claude.Agent())
	require.Equal(t, TierConfidential, claude.Tier())
	require.Equal(t, "claude", claude.Provider())

	truth, ok := catalog.Lookup("oracle.truth")
	require.True(t, ok)
	require.Equal(t, "ORACLE_TRUTH", truth.Agent())
	require.Equal(t, TierRestricted, truth.Tier())
	require.Equal(t, "truth", truth.Validator())
}

func TestCompile_InsertionOrder(t *testing.T) {
	catalog, err := Compile(sampleRegistry())
	require.NoError(t, err)

	require.Equal(t, []string{
		"genesis", "aurum", "workflow.close-books", "nvidia.nim", "llm.claude", "oracle.truth",
	}, catalog.Index().Keys())
	require.Empty(t, catalog.Warnings())
}

func TestCompile_Counts(t *testing.T) {
	catalog, err := Compile(sampleRegistry())
	require.NoError(t, err)

	require.Equal(t, SectionCounts{Tiers: 2, WorkflowCategories: 1, Backends: 1, Providers: 1, Validators: 1}, catalog.Counts())
	require.Equal(t, []string{"tier0", "tier1"}, catalog.TierKeys())
}

func TestCompile_CollisionLastWriterWins(t *testing.T) {
	reg := sampleRegistry()
	// A direct command that shadows a derived key.
	reg.Tiers[0].Commands = append(reg.Tiers[0].Commands, CommandSpec{Name: "nvidia.nim", Agent: "HAND_WRITTEN"})

	catalog, err := Compile(reg)
	require.NoError(t, err)

	d, _ := catalog.Lookup("nvidia.nim")
	require.Equal(t, "NVIDIA_NIM", d.Agent())
	require.Equal(t, KindBackend, d.Kind())

	warnings := catalog.Warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, WarnCollision, warnings[0].Kind)
	require.Equal(t, "nvidia.nim", warnings[0].Key)
	require.Equal(t, KindDirect, warnings[0].Previous)
	require.Equal(t, KindBackend, warnings[0].Replaced)
	require.Contains(t, warnings[0].String(), "nvidia.nim")
}

func TestCompile_CollisionStrict(t *testing.T) {
	reg := sampleRegistry()
	reg.Tiers[1].Commands = append(reg.Tiers[1].Commands, CommandSpec{Name: "genesis", Agent: "OTHER"})

	catalog, err := Compile(reg, Strict(true))
	require.Nil(t, catalog)
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestCompile_DanglingAlias(t *testing.T) {
	reg := sampleRegistry()
	reg.Aliases = append(reg.Aliases, Alias{Token: "x", Target: "missing"})

	catalog, err := Compile(reg)
	require.NoError(t, err)

	warnings := catalog.Warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, WarnDanglingAlias, warnings[0].Kind)
	require.Equal(t, "x", warnings[0].Alias)
	require.Equal(t, "missing", warnings[0].Key)

	_, err = Compile(reg, Strict(true))
	require.ErrorIs(t, err, ErrDanglingAlias)
}

func TestCompile_MissingAgentIsWarning(t *testing.T) {
	reg := Registry{Tiers: []TierSection{{Key: "tier0", Clearance: TierBlack, Commands: []CommandSpec{
		{Name: "genesis", Agent: "GENESIS_ORCHESTRATOR"},
		{Name: "draft", Description: "Draft without an agent"},
	}}}}

	catalog, err := Compile(reg)
	require.NoError(t, err)

	d, ok := catalog.Lookup("draft")
	require.True(t, ok)
	require.Equal(t, "UNASSIGNED", d.Agent())
	require.Equal(t, "Draft without an agent", d.Description())
	_, ok = catalog.Lookup("genesis")
	require.True(t, ok)

	warnings := catalog.Warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, WarnMissingAgent, warnings[0].Kind)
	require.Equal(t, "draft", warnings[0].Key)
	require.Contains(t, warnings[0].String(), "draft")

	_, err = Compile(reg, Strict(true))
	require.ErrorIs(t, err, ErrEmptyAgent)
	require.Contains(t, err.Error(), "draft")
}

func TestCompile_EmptyRegistry(t *testing.T) {
	catalog, err := Compile(Registry{})
	require.NoError(t, err)
	require.Equal(t, 0, catalog.Index().Len())
	require.Equal(t, 0, catalog.Aliases().Len())
}

func TestCatalog_Resolve(t *testing.T) {
	catalog, err := Compile(sampleRegistry())
	require.NoError(t, err)

	key, isAlias := catalog.Resolve("g")
	require.True(t, isAlias)
	require.Equal(t, "genesis", key)

	key, isAlias = catalog.Resolve("aurum")
	require.False(t, isAlias)
	require.Equal(t, "aurum", key)
}

func TestCatalog_ResolveEmptyTargetFallsBackToToken(t *testing.T) {
	reg := sampleRegistry()
	reg.Aliases = append(reg.Aliases, Alias{Token: "aurum", Target: ""}, Alias{Token: "blank", Target: ""})

	catalog, err := Compile(reg, Strict(true))
	require.NoError(t, err)
	require.Empty(t, catalog.Warnings())

	key, isAlias := catalog.Resolve("aurum")
	require.False(t, isAlias)
	require.Equal(t, "aurum", key)

	key, isAlias = catalog.Resolve("blank")
	require.False(t, isAlias)
	require.Equal(t, "blank", key)
}

// TestCompile_EveryEntryRetrievable is a property-based test: for registries
// without key collisions, every section entry is found under its canonical key.
func TestCompile_EveryEntryRetrievable(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		name := rapid.StringMatching(`[a-z][a-z0-9-]{0,8}`)
		// Distinct names per section keep keys collision-free.
		direct := rapid.SliceOfNDistinct(name, 0, 6, rapid.ID[string]).Draw(r, "direct")
		workflows := rapid.SliceOfNDistinct(name, 0, 6, rapid.ID[string]).Draw(r, "workflows")
		backends := rapid.SliceOfNDistinct(name, 0, 4, rapid.ID[string]).Draw(r, "backends")
		providers := rapid.SliceOfNDistinct(name, 0, 4, rapid.ID[string]).Draw(r, "providers")
		validators := rapid.SliceOfNDistinct(name, 0, 4, rapid.ID[string]).Draw(r, "validators")

		reg := Registry{Tiers: []TierSection{{Key: "tier0", Clearance: TierBlack}}}
		for _, n := range direct {
			reg.Tiers[0].Commands = append(reg.Tiers[0].Commands, CommandSpec{Name: n, Agent: "AGENT_" + n})
		}
		reg.Workflows = []WorkflowCategory{{Name: "cat", Workflows: workflows}}
		for _, n := range backends {
			reg.Backends = append(reg.Backends, Entry{Name: n})
		}
		for _, n := range providers {
			reg.Providers = append(reg.Providers, Entry{Name: n})
		}
		for _, n := range validators {
			reg.Validators = append(reg.Validators, Entry{Name: n})
		}

		catalog, err := Compile(reg)
		if err != nil {
			r.Fatalf("compile: %v", err)
		}

		check := func(kind Kind, names []string) {
			for _, n := range names {
				key := CanonicalKey(kind, n)
				d, ok := catalog.Lookup(key)
				if !ok {
					r.Fatalf("%s entry %q not found under %q", kind, n, key)
				}
				if kind != KindDirect && d.Agent() != AgentName(kind, n) {
					r.Fatalf("agent for %q = %q", key, d.Agent())
				}
			}
		}
		check(KindDirect, direct)
		check(KindWorkflow, workflows)
		check(KindBackend, backends)
		check(KindProvider, providers)
		check(KindValidator, validators)

		want := len(direct) + len(workflows) + len(backends) + len(providers) + len(validators)
		if got := catalog.Index().Len(); got != want {
			r.Fatalf("index size = %d, want %d (%s)", got, want, fmt.Sprint(catalog.Warnings()))
		}
	})
}
