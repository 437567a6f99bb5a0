package command

// Tier is a clearance level label. Registries may author labels outside the
// known set; those are kept verbatim and rank below every known tier.
type Tier string

// Known tiers, from least to most restricted.
const (
	TierInternal     Tier = "L2-INTERNAL"
	TierConfidential Tier = "L3-CONFIDENTIAL"
	TierRestricted   Tier = "L4-RESTRICTED"
	TierBlack        Tier = "L5-BLACK"
)

// TierUnknown is the stats bucket for descriptors without a tier.
const TierUnknown = "unknown"

var tierRanks = map[Tier]int{
	TierInternal:     1,
	TierConfidential: 2,
	TierRestricted:   3,
	TierBlack:        4,
}

// KnownTiers returns the known tiers ordered from least to most restricted.
func KnownTiers() []Tier {
	return []Tier{TierInternal, TierConfidential, TierRestricted, TierBlack}
}

// Rank returns the position of the tier in the clearance order.
// Unknown and empty tiers rank 0.
func (t Tier) Rank() int {
	return tierRanks[t]
}

// Known reports whether the tier is one of the four known levels.
func (t Tier) Known() bool {
	_, ok := tierRanks[t]
	return ok
}

// AtLeast reports whether t is as restricted as other or more.
func (t Tier) AtLeast(other Tier) bool {
	return t.Rank() >= other.Rank()
}

// Label returns the histogram label for the tier ("unknown" when empty).
func (t Tier) Label() string {
	if t == "" {
		return TierUnknown
	}
	return string(t)
}

func (t Tier) String() string {
	return string(t)
}
