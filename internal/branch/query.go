package branch

import (
	"fmt"
	"iter"
	"slices"

	"branch-builder/internal/conflict"
	"branch-builder/internal/space"
)

// GetDimensionConflict returns the conflict for name. The lookup is exact:
// keywords and wildcards are not expanded.
func (b *Builder) GetDimensionConflict(name string) (conflict.Conflict, error) {
	idx, err := b.lookup(name, conflict.AllStatuses)
	if err != nil {
		return conflict.Conflict{}, err
	}

	return b.conflicts[idx], nil
}

// GetOldDimensionValue returns the parent's dimension called name.
func (b *Builder) GetOldDimensionValue(name string) (space.Dimension, bool) {
	return b.parentSpace.Get(name)
}

// FilterConflicts yields the conflicts matching keep, in detection order.
func (b *Builder) FilterConflicts(keep func(conflict.Conflict) bool) iter.Seq[conflict.Conflict] {
	return func(yield func(conflict.Conflict) bool) {
		for _, c := range b.conflicts {
			if keep != nil && !keep(c) {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// Conflicts returns a copy of the conflict set.
func (b *Builder) Conflicts() []conflict.Conflict {
	return slices.Clone(b.conflicts)
}

// Unsolved returns the conflicts still waiting for a resolution.
func (b *Builder) Unsolved() []conflict.Conflict {
	return slices.Collect(b.FilterConflicts(func(c conflict.Conflict) bool { return !c.Solved }))
}

// IsResolved reports whether every conflict is solved.
func (b *Builder) IsResolved() bool {
	return !slices.ContainsFunc(b.conflicts, func(c conflict.Conflict) bool { return !c.Solved })
}

// ChangeExperimentName renames the child experiment. Empty names and the
// parent's own name are ignored; the result reports whether the name changed.
func (b *Builder) ChangeExperimentName(name string) bool {
	if name == "" || name == b.parent.Name {
		b.lggr.Debugw("Ignoring experiment name", "name", name, "parent", b.parent.Name)
		return false
	}

	b.child.Name = name

	return true
}

// ExperimentName returns the child experiment's current name.
func (b *Builder) ExperimentName() string {
	return b.child.Name
}

func (b *Builder) String() string {
	return fmt.Sprintf("branch %s -> %s (%d conflicts, %d unsolved)",
		b.parent.Name, b.child.Name, len(b.conflicts), len(b.Unsolved()))
}
