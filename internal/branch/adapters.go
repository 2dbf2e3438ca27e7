package branch

import (
	"fmt"

	"branch-builder/internal/adapter"
	"branch-builder/internal/conflict"
	"branch-builder/internal/diagnostic"
)

// Operations returns the operation log resolved into conflict values, in
// the order the operations were recorded.
func (b *Builder) Operations() adapter.Operations {
	var ops adapter.Operations

	for _, i := range b.log.add {
		c := b.conflicts[i]
		op := adapter.AddOp{Conflict: c}

		if c.Status == conflict.StatusChanged {
			if parent, ok := b.parentSpace.Get(c.Name()); ok {
				op.Parent = &parent
			}
		}

		ops.Add = append(ops.Add, op)
	}

	for _, i := range b.log.remove {
		ops.Remove = append(ops.Remove, b.conflicts[i])
	}

	for _, pair := range b.log.rename {
		ops.Rename = append(ops.Rename, adapter.RenameOp{
			Old: b.conflicts[pair[0]],
			New: b.conflicts[pair[1]],
		})
	}

	return ops
}

// CreateAdaptors hands the operation log to the adapter factory.
//
// Unsolved conflicts are reported as warnings and logged. In strict mode
// they fail the call with ErrUnresolvedConflicts instead.
func (b *Builder) CreateAdaptors() ([]adapter.Adapter, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	unsolved := b.Unsolved()
	if len(unsolved) > 0 && b.config.StrictMode {
		names := make([]string, 0, len(unsolved))
		for _, c := range unsolved {
			names = append(names, c.String())
		}

		return nil, diags, fmt.Errorf("%w: %v", ErrUnresolvedConflicts, names)
	}

	suggestions := b.suggestionsByMissing()

	for _, c := range unsolved {
		b.lggr.Warnw("Creating adapters with an unresolved conflict",
			"status", c.Status.String(),
			"dimension", c.Name(),
		)

		diags.AddWarning("unresolved_conflict",
			fmt.Sprintf("%s dimension has no resolution, the branch space is not fully reconciled", c.Status),
			c.Status.String(), c.Name(), suggestions[c.Name()]...)
	}

	adapters, err := b.factory.Build(b.Operations())
	if err != nil {
		return nil, diags, fmt.Errorf("failed to build adapters: %w", err)
	}

	b.lggr.Debugw("Created adapters", "adapters", len(adapters), "unresolved", len(unsolved))

	return adapters, diags, nil
}
