package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

func TestBuilder_StandardRegistry(t *testing.T) {
	catalog := NewBuilder(t).WithStandardRegistry().Catalog()

	require.Equal(t, 6, catalog.Index().Len())
	require.Equal(t, 2, catalog.Aliases().Len())
	require.Empty(t, catalog.Warnings())

	d, ok := catalog.Lookup("workflow.close-books")
	require.True(t, ok)
	require.Equal(t, "WORKFLOW_CLOSE_BOOKS", d.Agent())
}

func TestBuilder_PreservesOrder(t *testing.T) {
	reg := NewBuilder(t).
		WithTier("tier0", domaincmd.TierBlack, Command("b"), Command("a")).
		WithAlias("z", "b").
		WithAlias("y", "a").
		Registry()

	require.Equal(t, "b", reg.Tiers[0].Commands[0].Name)
	require.Equal(t, "a", reg.Tiers[0].Commands[1].Name)
	require.Equal(t, "z", reg.Aliases[0].Token)
}

func TestCommand_DefaultAgent(t *testing.T) {
	spec := Command("close-books")
	require.Equal(t, "CLOSE_BOOKS", spec.Agent)

	spec = Command("aurum", Agent("AURUM_CFO"), SubAgents("ledger"))
	require.Equal(t, "AURUM_CFO", spec.Agent)
	require.Equal(t, []string{"ledger"}, spec.SubAgents)
}
