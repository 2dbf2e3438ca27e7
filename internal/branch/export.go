package branch

import (
	"gopkg.in/yaml.v3"
)

// Report is a reviewable snapshot of a resolution session.
type Report struct {
	Parent      string             `yaml:"parent"`
	Child       string             `yaml:"child"`
	Resolved    bool               `yaml:"resolved"`
	Conflicts   []ConflictReport   `yaml:"conflicts"`
	Operations  OperationsReport   `yaml:"operations"`
	Suggestions []SuggestionReport `yaml:"suggestions,omitempty"`
}

// ConflictReport describes one conflict.
type ConflictReport struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
	Prior  string `yaml:"prior"`
	// OldPrior is the parent's prior of a changed dimension.
	OldPrior string `yaml:"old_prior,omitempty"`
	Solved   bool   `yaml:"solved"`
}

// OperationsReport lists the pending operations by dimension name.
type OperationsReport struct {
	Add    []string       `yaml:"add,omitempty"`
	Remove []string       `yaml:"remove,omitempty"`
	Rename []RenameReport `yaml:"rename,omitempty"`
}

// RenameReport is a pending rename pair.
type RenameReport struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// SuggestionReport lists rename candidates for a missing dimension.
type SuggestionReport struct {
	Missing    string            `yaml:"missing"`
	Candidates []CandidateReport `yaml:"candidates"`
}

// CandidateReport describes a potential rename target.
type CandidateReport struct {
	Name       string  `yaml:"name"`
	Score      float64 `yaml:"score"`
	PriorMatch string  `yaml:"prior_match"`
}

// Export builds a report of the session's current state.
func Export(b *Builder) *Report {
	report := &Report{
		Parent:    b.parent.Name,
		Child:     b.child.Name,
		Resolved:  b.IsResolved(),
		Conflicts: make([]ConflictReport, 0, len(b.conflicts)),
	}

	for _, c := range b.conflicts {
		cr := ConflictReport{
			Name:   c.Name(),
			Status: c.Status.String(),
			Prior:  c.Dimension.Prior,
			Solved: c.Solved,
		}

		if old, ok := b.parentSpace.Get(c.Name()); ok && !old.Equal(c.Dimension) {
			cr.OldPrior = old.Prior
		}

		report.Conflicts = append(report.Conflicts, cr)
	}

	ops := b.Operations()

	for _, op := range ops.Add {
		report.Operations.Add = append(report.Operations.Add, op.Conflict.Name())
	}

	for _, c := range ops.Remove {
		report.Operations.Remove = append(report.Operations.Remove, c.Name())
	}

	for _, op := range ops.Rename {
		report.Operations.Rename = append(report.Operations.Rename, RenameReport{
			Old: op.Old.Name(),
			New: op.New.Name(),
		})
	}

	for _, s := range b.SuggestRenames() {
		sr := SuggestionReport{Missing: s.Missing}
		for _, cand := range s.Candidates {
			sr.Candidates = append(sr.Candidates, CandidateReport{
				Name:       cand.Name(),
				Score:      cand.CombinedScore,
				PriorMatch: cand.Prior.String(),
			})
		}

		report.Suggestions = append(report.Suggestions, sr)
	}

	return report
}

// ExportYAML renders the session report as YAML.
func ExportYAML(b *Builder) ([]byte, error) {
	return yaml.Marshal(Export(b))
}
