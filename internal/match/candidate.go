package match

import (
	"sort"

	"branch-builder/internal/space"
)

// Candidate is a potential rename of a missing dimension onto a new one.
type Candidate struct {
	// Dimension is the new child dimension proposed as rename target.
	Dimension space.Dimension

	// Scoring components
	NameScore float64            // Name similarity (0-1)
	Prior     PriorCompatibility // Prior compatibility

	// Combined score for ranking (higher is better)
	CombinedScore float64
}

// Name returns the candidate dimension name without namespace prefix.
func (c Candidate) Name() string {
	return c.Dimension.ShortName()
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every target against the missing dimension and
// returns them sorted by combined score (descending).
func RankCandidates(missing space.Dimension, targets []space.Dimension) CandidateList {
	candidates := make(CandidateList, 0, len(targets))

	for _, target := range targets {
		nameScore := NameScore(missing.ShortName(), target.ShortName())
		prior := ScorePriorCompatibility(missing, target)

		candidates = append(candidates, Candidate{
			Dimension:     target,
			NameScore:     nameScore,
			Prior:         prior,
			CombinedScore: calculateCombinedScore(nameScore, prior),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// calculateCombinedScore computes a combined score from name similarity and prior compatibility.
// Weights:
//   - Name similarity: 70% (0.0-0.7)
//   - Prior compatibility: 30% (0.0-0.3)
func calculateCombinedScore(nameScore float64, prior PriorCompatibility) float64 {
	const (
		nameWeight  = 0.7
		priorWeight = 0.3
	)

	var priorScore float64
	switch prior {
	case PriorIdentical:
		priorScore = 1.0
	case PriorSameDistribution:
		priorScore = 0.5
	case PriorIncompatible:
		priorScore = 0.0
	}

	return nameScore*nameWeight + priorScore*priorWeight
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by combined score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}

	return c[i].Dimension.Name < c[j].Dimension.Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].CombinedScore-c[1].CombinedScore < threshold
}

// AboveThreshold returns candidates with combined score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name())
	}

	return names
}

// Ranking thresholds.
const (
	// DefaultMinScore is the minimum combined score for a suggestion.
	DefaultMinScore = 0.5
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)
