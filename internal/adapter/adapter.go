// Package adapter turns resolved branch operations into adapters that
// describe how a parent sample maps onto the child space.
//
// Adapters here are descriptors: they name the transformation and the
// dimensions involved. Applying them to trial samples is the caller's job.
package adapter

import (
	"errors"
	"fmt"

	"branch-builder/internal/common"
	"branch-builder/internal/conflict"
	"branch-builder/internal/space"
)

// Kind identifies the transformation an adapter performs.
type Kind int

const (
	KindDimensionAddition Kind = iota
	KindDimensionDeletion
	KindDimensionRenaming
	KindDimensionPriorChange
)

// String returns the adapter kind name.
func (k Kind) String() string {
	switch k {
	case KindDimensionAddition:
		return "DimensionAddition"
	case KindDimensionDeletion:
		return "DimensionDeletion"
	case KindDimensionRenaming:
		return "DimensionRenaming"
	case KindDimensionPriorChange:
		return "DimensionPriorChange"
	default:
		return common.UnknownStr
	}
}

// Adapter bridges one dimension between the parent and the child space.
type Adapter struct {
	Kind Kind
	// From is the parent-side dimension. Zero for additions.
	From space.Dimension
	// To is the child-side dimension. Zero for deletions.
	To space.Dimension
}

// String renders the adapter, e.g. "DimensionRenaming(lr~uniform(0,1) -> rate~uniform(0,1))".
func (a Adapter) String() string {
	switch a.Kind {
	case KindDimensionAddition:
		return fmt.Sprintf("%s(%s)", a.Kind, a.To)
	case KindDimensionDeletion:
		return fmt.Sprintf("%s(%s)", a.Kind, a.From)
	default:
		return fmt.Sprintf("%s(%s -> %s)", a.Kind, a.From, a.To)
	}
}

// AddOp is a resolved add of a new or changed dimension.
type AddOp struct {
	Conflict conflict.Conflict
	// Parent is the parent's dimension for a changed conflict.
	Parent *space.Dimension
}

// RenameOp pairs a missing parent dimension with a new child dimension.
type RenameOp struct {
	Old conflict.Conflict
	New conflict.Conflict
}

// Operations is the resolved operation log handed to a Factory.
type Operations struct {
	Add    []AddOp
	Remove []conflict.Conflict
	Rename []RenameOp
}

// Len returns the total number of operations.
func (o Operations) Len() int {
	return len(o.Add) + len(o.Remove) + len(o.Rename)
}

// Factory builds one adapter per resolved operation.
type Factory interface {
	Build(ops Operations) ([]Adapter, error)
}

// ErrMissingParent is returned when a changed dimension has no parent prior.
var ErrMissingParent = errors.New("changed dimension without parent dimension")

// DefaultFactory maps operations onto adapters in add, remove, rename order.
type DefaultFactory struct{}

// Build implements Factory.
func (DefaultFactory) Build(ops Operations) ([]Adapter, error) {
	adapters := make([]Adapter, 0, ops.Len())

	for _, op := range ops.Add {
		switch op.Conflict.Status {
		case conflict.StatusNew:
			adapters = append(adapters, Adapter{Kind: KindDimensionAddition, To: op.Conflict.Dimension})
		case conflict.StatusChanged:
			if op.Parent == nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingParent, op.Conflict.Name())
			}

			adapters = append(adapters, Adapter{
				Kind: KindDimensionPriorChange,
				From: *op.Parent,
				To:   op.Conflict.Dimension,
			})
		default:
			return nil, fmt.Errorf("cannot add %s conflict %q", op.Conflict.Status, op.Conflict.Name())
		}
	}

	for _, c := range ops.Remove {
		adapters = append(adapters, Adapter{Kind: KindDimensionDeletion, From: c.Dimension})
	}

	for _, op := range ops.Rename {
		adapters = append(adapters, Adapter{
			Kind: KindDimensionRenaming,
			From: op.Old.Dimension,
			To:   op.New.Dimension,
		})
	}

	return adapters, nil
}
