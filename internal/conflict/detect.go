package conflict

import "branch-builder/internal/space"

// Detect compares parent and child and returns every conflict between them:
// child dimensions first (new or changed, in child order), then missing
// parent dimensions in parent order. Identical dimensions yield nothing.
func Detect(parent, child *space.Space) []Conflict {
	var conflicts []Conflict

	for dim := range child.All() {
		old, ok := parent.Get(dim.Name)

		switch {
		case !ok:
			conflicts = append(conflicts, Conflict{Status: StatusNew, Dimension: dim})
		case !old.Equal(dim):
			conflicts = append(conflicts, Conflict{Status: StatusChanged, Dimension: dim})
		}
	}

	for dim := range parent.All() {
		if !child.Has(dim.Name) {
			conflicts = append(conflicts, Conflict{Status: StatusMissing, Dimension: dim})
		}
	}

	return conflicts
}
