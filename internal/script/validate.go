package script

import (
	"fmt"
	"strings"

	"branch-builder/internal/diagnostic"
)

// Validate checks a script's structure. It does not look at any branch:
// unknown names surface when the script is applied.
func Validate(s *Script) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("script_is_nil", "script is nil", "", "")
		return res
	}

	if s.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported script version %q", s.Version), "", "")
	}

	if s.IsEmpty() {
		res.AddInfo("empty_script", "script resolves nothing", "", "")
	}

	sections := []struct {
		name    string
		entries StringOrArray
	}{
		{"reset", s.Reset},
		{"add", s.Add},
		{"remove", s.Remove},
	}

	for _, section := range sections {
		for i, entry := range section.entries {
			if strings.TrimSpace(entry) == "" {
				res.AddError("empty_entry", fmt.Sprintf("%s entry %d is empty", section.name, i), "", "")
			}
		}
	}

	added := make(map[string]struct{}, len(s.Add))
	for _, entry := range s.Add {
		added[entry] = struct{}{}
	}

	for _, entry := range s.Remove {
		if _, ok := added[entry]; ok {
			res.AddWarning("add_and_remove", fmt.Sprintf("%q is both added and removed", entry), "", entry)
		}
	}

	olds := map[string]struct{}{}
	news := map[string]struct{}{}

	for i, rule := range s.Rename {
		if rule.Old == "" || rule.New == "" {
			res.AddError("incomplete_rename", fmt.Sprintf("rename %d needs both old and new", i), "", rule.Old)
			continue
		}

		if strings.ContainsAny(rule.Old+rule.New, "*") {
			res.AddError("wildcard_rename", fmt.Sprintf("rename %s -> %s cannot use wildcards", rule.Old, rule.New),
				"", rule.Old)
		}

		if _, ok := olds[rule.Old]; ok {
			res.AddError("duplicate_rename", fmt.Sprintf("%q is renamed more than once", rule.Old), "missing", rule.Old)
		}

		if _, ok := news[rule.New]; ok {
			res.AddError("duplicate_rename", fmt.Sprintf("%q is a rename target more than once", rule.New),
				"new", rule.New)
		}

		olds[rule.Old] = struct{}{}
		news[rule.New] = struct{}{}
	}

	return res
}
