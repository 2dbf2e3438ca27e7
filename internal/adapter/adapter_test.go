package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branch-builder/internal/conflict"
	"branch-builder/internal/space"
)

func dim(t *testing.T, name, prior string) space.Dimension {
	t.Helper()

	d, err := space.NewDimension(name, prior)
	require.NoError(t, err)

	return d
}

func TestDefaultFactoryBuild(t *testing.T) {
	oldChanged := dim(t, "changed", "uniform(-10,10)")

	ops := Operations{
		Add: []AddOp{
			{Conflict: conflict.Conflict{Status: conflict.StatusNew, Dimension: dim(t, "new", "normal(0,2)")}},
			{
				Conflict: conflict.Conflict{Status: conflict.StatusChanged, Dimension: dim(t, "changed", "normal(0,2)")},
				Parent:   &oldChanged,
			},
		},
		Remove: []conflict.Conflict{
			{Status: conflict.StatusMissing, Dimension: dim(t, "missing", "uniform(-10,10)")},
		},
		Rename: []RenameOp{{
			Old: conflict.Conflict{Status: conflict.StatusMissing, Dimension: dim(t, "lr", "uniform(0,1)")},
			New: conflict.Conflict{Status: conflict.StatusNew, Dimension: dim(t, "rate", "uniform(0,1)")},
		}},
	}

	adapters, err := DefaultFactory{}.Build(ops)
	require.NoError(t, err)
	require.Len(t, adapters, ops.Len())

	var got []string
	for _, a := range adapters {
		got = append(got, a.String())
	}

	assert.Equal(t, []string{
		"DimensionAddition(new~normal(0,2))",
		"DimensionPriorChange(changed~uniform(-10,10) -> changed~normal(0,2))",
		"DimensionDeletion(missing~uniform(-10,10))",
		"DimensionRenaming(lr~uniform(0,1) -> rate~uniform(0,1))",
	}, got)
}

func TestDefaultFactoryErrors(t *testing.T) {
	_, err := DefaultFactory{}.Build(Operations{Add: []AddOp{
		{Conflict: conflict.Conflict{Status: conflict.StatusChanged, Dimension: dim(t, "c", "normal(0,1)")}},
	}})
	require.ErrorIs(t, err, ErrMissingParent)

	_, err = DefaultFactory{}.Build(Operations{Add: []AddOp{
		{Conflict: conflict.Conflict{Status: conflict.StatusMissing, Dimension: dim(t, "m", "normal(0,1)")}},
	}})
	require.Error(t, err)
}

func TestDefaultFactoryEmpty(t *testing.T) {
	adapters, err := DefaultFactory{}.Build(Operations{})
	require.NoError(t, err)
	assert.Empty(t, adapters)
	assert.Equal(t, "unknown", Kind(12).String())
}
