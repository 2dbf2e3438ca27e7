package script

import (
	"fmt"

	"branch-builder/internal/branch"
)

// Resolver is the part of a branch session a script drives.
type Resolver interface {
	ResetDimension(names string) error
	AddDimension(names string) error
	RemoveDimension(names string) error
	RenameDimension(oldName, newName string) error
	ChangeExperimentName(name string) bool
}

// Apply validates s and applies it to r in the order reset, add, remove,
// rename, branch. It stops at the first failing entry; entries before it
// stay applied.
func Apply(r Resolver, s *Script) error {
	if diags := Validate(s); diags.HasErrors() {
		return fmt.Errorf("invalid script: %w", diags.Error())
	}

	steps := []struct {
		section string
		entries StringOrArray
		call    func(string) error
	}{
		{"reset", s.Reset, r.ResetDimension},
		{"add", s.Add, r.AddDimension},
		{"remove", s.Remove, r.RemoveDimension},
	}

	for _, step := range steps {
		for _, entry := range step.entries {
			if err := step.call(entry); err != nil {
				return fmt.Errorf("%s: %w", step.section, err)
			}
		}
	}

	for _, rule := range s.Rename {
		if err := r.RenameDimension(rule.Old, rule.New); err != nil {
			return fmt.Errorf("rename: %w", err)
		}
	}

	if s.Branch != "" {
		r.ChangeExperimentName(s.Branch)
	}

	return nil
}

// FromSuggestions drafts a script renaming every missing dimension onto its
// best candidate. Ambiguous suggestions are left out.
func FromSuggestions(suggestions []branch.RenameSuggestion, ambiguity float64) *Script {
	s := &Script{Version: CurrentVersion}

	taken := map[string]struct{}{}

	for _, sg := range suggestions {
		best := sg.Candidates.Best()
		if best == nil || sg.Candidates.IsAmbiguous(ambiguity) {
			continue
		}

		if _, ok := taken[best.Name()]; ok {
			continue
		}

		taken[best.Name()] = struct{}{}
		s.Rename = append(s.Rename, RenameRule{Old: sg.Missing, New: best.Name()})
	}

	return s
}
