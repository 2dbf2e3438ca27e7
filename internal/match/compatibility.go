package match

import "branch-builder/internal/space"

// PriorCompatibility represents how close two priors are.
type PriorCompatibility int

const (
	// PriorIncompatible means the distributions differ.
	PriorIncompatible PriorCompatibility = iota
	// PriorSameDistribution means same distribution family, different arguments.
	PriorSameDistribution
	// PriorIdentical means the priors are exactly the same.
	PriorIdentical
)

const (
	VerdictIdentical        = "identical"
	VerdictSameDistribution = "same_distribution"
	VerdictIncompatible     = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c PriorCompatibility) String() string {
	switch c {
	case PriorIdentical:
		return VerdictIdentical
	case PriorSameDistribution:
		return VerdictSameDistribution
	case PriorIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// ScorePriorCompatibility compares the priors of two dimensions, ignoring names.
func ScorePriorCompatibility(a, b space.Dimension) PriorCompatibility {
	switch {
	case a.Prior == b.Prior && a.Shape == b.Shape:
		return PriorIdentical
	case a.Distribution == b.Distribution:
		return PriorSameDistribution
	default:
		return PriorIncompatible
	}
}
