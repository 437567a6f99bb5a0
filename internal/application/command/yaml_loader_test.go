package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

func TestParseRegistry_PreservesOrder(t *testing.T) {
	reg := testRegistry(t)

	require.Len(t, reg.Tiers, 2)
	require.Equal(t, "tier0", reg.Tiers[0].Key)
	require.Equal(t, domaincmd.TierBlack, reg.Tiers[0].Clearance)
	require.Equal(t, "tier1", reg.Tiers[1].Key)

	tier1 := reg.Tiers[1].Commands
	require.Len(t, tier1, 2)
	require.Equal(t, "aurum", tier1[0].Name)
	require.Equal(t, "techne", tier1[1].Name)

	require.Equal(t, []domaincmd.WorkflowCategory{
		{Name: "finance", Workflows: []string{"close-books", "budget-review"}},
		{Name: "engineering", Workflows: []string{"code-review"}},
	}, reg.Workflows)
	require.Equal(t, []domaincmd.Entry{{Name: "claude", Description: "Anthropic Claude"}, {Name: "gpt", Description: "OpenAI GPT"}}, reg.Providers)
	require.Equal(t, []domaincmd.Entry{{Name: "nim", Description: "NVIDIA NIM inference"}}, reg.Backends)
	require.Equal(t, []domaincmd.Entry{{Name: "truth", Description: "Fact validation oracle"}}, reg.Validators)
	require.Equal(t, []domaincmd.Alias{
		{Token: "g", Target: "genesis"},
		{Token: "cfo", Target: "aurum"},
		{Token: "close", Target: "workflow.close-books"},
	}, reg.Aliases)
}

func TestParseRegistry_CommandFields(t *testing.T) {
	reg := testRegistry(t)

	genesis := reg.Tiers[0].Commands[0]
	require.Equal(t, domaincmd.CommandSpec{
		Name:          "genesis",
		Agent:         "GENESIS_ORCHESTRATOR",
		Description:   "Divine Orchestrator",
		Domain:        "executive",
		SubAgentTotal: 12,
	}, genesis)

	aurum := reg.Tiers[1].Commands[0]
	require.Equal(t, []string{"ledger", "treasury"}, aurum.SubAgents)
	require.Zero(t, aurum.SubAgentTotal)

	techne := reg.Tiers[1].Commands[1]
	require.Nil(t, techne.SubAgents)
	require.Zero(t, techne.SubAgentTotal)
}

func TestParseRegistry_EmptyDocument(t *testing.T) {
	reg, err := ParseRegistry(nil)
	require.NoError(t, err)
	require.Equal(t, domaincmd.Registry{}, reg)

	reg, err = ParseRegistry([]byte("# only a comment\n"))
	require.NoError(t, err)
	require.Equal(t, domaincmd.Registry{}, reg)
}

func TestParseRegistry_NullSectionsAreEmpty(t *testing.T) {
	reg, err := ParseRegistry([]byte("tiers:\nworkflows:\nnvidia:\nllm:\noracle:\naliases:\n"))
	require.NoError(t, err)
	require.Equal(t, domaincmd.Registry{}.Counts(), reg.Counts())
	require.Empty(t, reg.Aliases)
}

func TestParseRegistry_UnknownSectionIgnored(t *testing.T) {
	reg, err := ParseRegistry([]byte("version: 2\nllm:\n  claude: Anthropic Claude\n"))
	require.NoError(t, err)
	require.Len(t, reg.Providers, 1)
}

func TestParseRegistry_NullEntryDescription(t *testing.T) {
	reg, err := ParseRegistry([]byte("oracle:\n  truth:\n"))
	require.NoError(t, err)
	require.Equal(t, []domaincmd.Entry{{Name: "truth"}}, reg.Validators)
}

func TestParseRegistry_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{name: "root is a list", yaml: "- tiers\n", wantMsg: "registry must be a mapping"},
		{name: "tiers is a list", yaml: "tiers:\n  - tier0\n", wantMsg: "tiers must be a mapping"},
		{name: "command is a string", yaml: "tiers:\n  tier0:\n    commands:\n      genesis: GENESIS\n", wantMsg: "command genesis must be a mapping"},
		{name: "subAgents is a mapping", yaml: "tiers:\n  tier0:\n    commands:\n      genesis:\n        agent: G\n        subAgents: {a: b}\n", wantMsg: "subAgents must be a list or a number"},
		{name: "subAgents is text", yaml: "tiers:\n  tier0:\n    commands:\n      genesis:\n        agent: G\n        subAgents: many\n", wantMsg: "non-negative number"},
		{name: "workflow category is a string", yaml: "workflows:\n  finance: close-books\n", wantMsg: "workflow category finance must be a list"},
		{name: "backend is a mapping", yaml: "nvidia:\n  nim: {desc: x}\n", wantMsg: "nvidia entry nim must be a description string"},
		{name: "alias without target", yaml: "aliases:\n  g:\n", wantMsg: "alias g must target a command key"},
		{name: "malformed yaml", yaml: "tiers: [\n", wantMsg: "invalid registry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegistry([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidRegistry)
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseRegistry_ShapeErrorHasLine(t *testing.T) {
	_, err := ParseRegistry([]byte("llm:\n  claude: Anthropic\naliases:\n  g: [genesis]\n"))
	require.ErrorIs(t, err, ErrInvalidRegistry)
	require.Contains(t, err.Error(), "line 4")
}

func TestParseRegistry_YAMLAnchors(t *testing.T) {
	reg, err := ParseRegistry([]byte(`
llm: &providers
  claude: Anthropic Claude
nvidia: *providers
`))
	require.NoError(t, err)
	require.Equal(t, reg.Providers, reg.Backends)
}

func TestLoadDefaultRegistry_CompilesCleanly(t *testing.T) {
	reg, err := LoadDefaultRegistry()
	require.NoError(t, err)
	require.NotEmpty(t, reg.Tiers)
	require.NotEmpty(t, reg.Aliases)

	catalog, err := domaincmd.Compile(reg, domaincmd.Strict(true))
	require.NoError(t, err)
	require.Empty(t, catalog.Warnings())

	genesis, ok := catalog.Lookup("genesis")
	require.True(t, ok)
	require.Equal(t, domaincmd.TierBlack, genesis.Tier())
}

func TestLoadRegistryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRegistryYAML), 0o600))

	reg, err := LoadRegistryFile(path)
	require.NoError(t, err)
	require.Len(t, reg.Tiers, 2)

	_, err = LoadRegistryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRegistry_EmptyPathUsesBuiltIn(t *testing.T) {
	reg, err := LoadRegistry("")
	require.NoError(t, err)

	builtIn, err := LoadDefaultRegistry()
	require.NoError(t, err)
	require.Equal(t, builtIn, reg)
}
