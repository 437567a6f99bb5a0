package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

const testRegistryYAML = `
# test registry
tiers:
  tier0:
    clearance: L5-BLACK
    commands:
      genesis:
        agent: GENESIS_ORCHESTRATOR
        description: Divine Orchestrator
        domain: executive
        subAgents: 12
  tier1:
    clearance: L4-RESTRICTED
    commands:
      aurum:
        agent: AURUM_CFO
        description: Finance & Treasury
        domain: finance
        subAgents: [ledger, treasury]
      techne:
        agent: TECHNE_CTO
        description: Technology & Development
        domain: engineering
workflows:
  finance: [close-books, budget-review]
  engineering: [code-review]
nvidia:
  nim: NVIDIA NIM inference
llm:
  claude: Anthropic Claude
  gpt: OpenAI GPT
oracle:
  truth: Fact validation oracle
aliases:
  g: genesis
  cfo: aurum
  close: workflow.close-books
`

func testRegistry(t *testing.T) domaincmd.Registry {
	t.Helper()
	reg, err := ParseRegistry([]byte(testRegistryYAML))
	require.NoError(t, err)
	return reg
}

func testParser(t *testing.T, opts ...ParserOption) *Parser {
	t.Helper()
	catalog, err := domaincmd.Compile(testRegistry(t))
	require.NoError(t, err)
	return NewParser(catalog, opts...)
}

func parserFor(t *testing.T, reg domaincmd.Registry, opts ...ParserOption) *Parser {
	t.Helper()
	catalog, err := domaincmd.Compile(reg)
	require.NoError(t, err)
	return NewParser(catalog, opts...)
}
