// Package match provides name normalization, Levenshtein distance calculation,
// prior compatibility scoring, and candidate ranking used to suggest renames
// between a missing parent dimension and new child dimensions.
//
// Key functions:
//   - NormalizeIdent: normalizes dimension names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - ScorePriorCompatibility: compares two priors
//   - RankCandidates: ranks potential rename targets
package match
