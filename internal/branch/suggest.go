package branch

import (
	"branch-builder/internal/conflict"
	"branch-builder/internal/match"
	"branch-builder/internal/space"
)

// RenameSuggestion lists the likely rename targets of a missing dimension.
type RenameSuggestion struct {
	Missing    string
	Candidates match.CandidateList
}

// SuggestRenames ranks the unsolved new dimensions as rename targets for
// every unsolved missing dimension. Missing dimensions without a candidate
// above Config.MinRenameScore are left out. It never changes the session.
func (b *Builder) SuggestRenames() []RenameSuggestion {
	var targets []space.Dimension

	for c := range b.FilterConflicts(unsolvedWith(conflict.StatusNew)) {
		targets = append(targets, c.Dimension)
	}

	if len(targets) == 0 {
		return nil
	}

	var out []RenameSuggestion

	for c := range b.FilterConflicts(unsolvedWith(conflict.StatusMissing)) {
		candidates := match.RankCandidates(c.Dimension, targets).
			AboveThreshold(b.config.MinRenameScore)
		if b.config.MaxSuggestions > 0 {
			candidates = candidates.Top(b.config.MaxSuggestions)
		}

		if len(candidates) == 0 {
			continue
		}

		out = append(out, RenameSuggestion{Missing: c.Name(), Candidates: candidates})
	}

	return out
}

func (b *Builder) suggestionsByMissing() map[string][]string {
	out := make(map[string][]string)
	for _, s := range b.SuggestRenames() {
		out[s.Missing] = s.Candidates.Names()
	}

	return out
}

func unsolvedWith(status conflict.Status) func(conflict.Conflict) bool {
	return func(c conflict.Conflict) bool {
		return !c.Solved && c.Status == status
	}
}
