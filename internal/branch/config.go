package branch

import (
	"fmt"

	"branch-builder/internal/common"
	"branch-builder/internal/match"
)

// ExpansionMode controls how multi-token name lists are expanded.
type ExpansionMode int

const (
	// ExpandUnion resolves every token and keeps the union, in order.
	ExpandUnion ExpansionMode = iota
	// ExpandLastToken replays the historical behavior: a literal name
	// discards everything expanded before it.
	ExpandLastToken
)

// String returns the mode name accepted by ParseExpansionMode.
func (m ExpansionMode) String() string {
	switch m {
	case ExpandUnion:
		return "union"
	case ExpandLastToken:
		return "last-token"
	default:
		return common.UnknownStr
	}
}

// ParseExpansionMode parses "union" or "last-token".
func ParseExpansionMode(s string) (ExpansionMode, error) {
	switch s {
	case "union", "":
		return ExpandUnion, nil
	case "last-token":
		return ExpandLastToken, nil
	default:
		return 0, fmt.Errorf("unknown expansion mode %q", s)
	}
}

// Config holds configuration for a branch resolution session.
type Config struct {
	// Expansion selects the multi-token expansion rule.
	Expansion ExpansionMode
	// StrictMode makes CreateAdaptors fail while conflicts remain unsolved.
	StrictMode bool
	// MaxSuggestions caps rename suggestions per missing dimension.
	MaxSuggestions int
	// MinRenameScore is the minimum combined score for a rename suggestion.
	MinRenameScore float64
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		Expansion:      ExpandUnion,
		StrictMode:     false,
		MaxSuggestions: 3,
		MinRenameScore: match.DefaultMinScore,
	}
}
