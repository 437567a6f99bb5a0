package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTier_Rank(t *testing.T) {
	tiers := KnownTiers()
	for i := 1; i < len(tiers); i++ {
		require.Greater(t, tiers[i].Rank(), tiers[i-1].Rank())
	}
	require.Equal(t, 0, Tier("L9-COSMIC").Rank())
	require.Equal(t, 0, Tier("").Rank())
}

func TestTier_Known(t *testing.T) {
	require.True(t, TierBlack.Known())
	require.False(t, Tier("custom").Known())
}

func TestTier_AtLeast(t *testing.T) {
	require.True(t, TierBlack.AtLeast(TierRestricted))
	require.True(t, TierConfidential.AtLeast(TierConfidential))
	require.False(t, TierInternal.AtLeast(TierConfidential))
}

func TestTier_Label(t *testing.T) {
	require.Equal(t, "unknown", Tier("").Label())
	require.Equal(t, "L5-BLACK", TierBlack.Label())
}
