package branch

import (
	"fmt"

	"branch-builder/internal/conflict"
)

var (
	addStatuses    = []conflict.Status{conflict.StatusNew, conflict.StatusChanged}
	removeStatuses = []conflict.Status{conflict.StatusMissing}
)

// AddDimension resolves new or changed conflicts by adding them to the child.
// names is a whitespace separated list of names, status keywords and
// "prefix*" wildcards. Adding an already added conflict is a no-op.
func (b *Builder) AddDimension(names string) error {
	idxs, err := b.expand(names, expansion{allowed: addStatuses, op: OperationAdd})
	if err != nil {
		return fmt.Errorf("add %q: %w", names, err)
	}

	if err := b.add(idxs); err != nil {
		return fmt.Errorf("add %q: %w", names, err)
	}

	return nil
}

// RemoveDimension resolves missing conflicts by dropping the dimension.
// Names follow the same rules as AddDimension.
func (b *Builder) RemoveDimension(names string) error {
	idxs, err := b.expand(names, expansion{allowed: removeStatuses, op: OperationRemove})
	if err != nil {
		return fmt.Errorf("remove %q: %w", names, err)
	}

	if err := b.remove(idxs); err != nil {
		return fmt.Errorf("remove %q: %w", names, err)
	}

	return nil
}

// RenameDimension pairs the missing dimension oldName with the new dimension
// newName. Both must be unsolved unless the exact pair is already recorded,
// in which case the call is a no-op.
func (b *Builder) RenameDimension(oldName, newName string) error {
	oldIdx, err := b.lookup(oldName, removeStatuses)
	if err != nil {
		return fmt.Errorf("rename %q to %q: %w", oldName, newName, err)
	}

	newIdx, err := b.lookup(newName, []conflict.Status{conflict.StatusNew})
	if err != nil {
		return fmt.Errorf("rename %q to %q: %w", oldName, newName, err)
	}

	if b.log.hasRename(oldIdx, newIdx) {
		return nil
	}

	for _, i := range []int{oldIdx, newIdx} {
		if kind, held := b.log.holder(i); held {
			return fmt.Errorf("rename %q to %q: %w: %s is already held by a pending %s",
				oldName, newName, ErrAmbiguousOperation, b.conflicts[i].String(), kind)
		}
	}

	b.conflicts[oldIdx].Solved = true
	b.conflicts[newIdx].Solved = true
	b.log.putRename(oldIdx, newIdx)

	b.lggr.Debugw("Renamed dimension", "old", b.conflicts[oldIdx].Name(), "new", b.conflicts[newIdx].Name())

	return nil
}

// ResetDimension clears the resolution of the named conflicts, whatever
// their status. Resetting one side of a rename unsolves both sides.
// Conflicts without a recorded operation are left alone.
func (b *Builder) ResetDimension(names string) error {
	idxs, err := b.expand(names, expansion{allowed: conflict.AllStatuses, reset: true})
	if err != nil {
		return fmt.Errorf("reset %q: %w", names, err)
	}

	for _, i := range idxs {
		for _, r := range b.log.drop(i) {
			b.conflicts[r].Solved = false

			b.lggr.Debugw("Reset dimension", "conflict", b.conflicts[r].String())
		}
	}

	return nil
}

func (b *Builder) add(idxs []int) error {
	return b.resolve(OperationAdd, idxs)
}

func (b *Builder) remove(idxs []int) error {
	return b.resolve(OperationRemove, idxs)
}

// resolve records idxs under kind. Every index is checked before any state
// changes, so a failure leaves the session untouched.
func (b *Builder) resolve(kind OperationKind, idxs []int) error {
	for _, i := range idxs {
		if held, ok := b.log.holder(i); ok && held != kind {
			return fmt.Errorf("%w: %s is already held by a pending %s",
				ErrAmbiguousOperation, b.conflicts[i].String(), held)
		}
	}

	for _, i := range idxs {
		if b.conflicts[i].Solved {
			continue
		}

		b.conflicts[i].Solved = true
		b.log.put(kind, i)

		b.lggr.Debugw("Resolved dimension", "operation", kind.String(), "conflict", b.conflicts[i].String())
	}

	return nil
}
