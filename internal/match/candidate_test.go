package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branch-builder/internal/space"
)

func dim(t *testing.T, name, prior string) space.Dimension {
	t.Helper()

	d, err := space.NewDimension(name, prior)
	require.NoError(t, err)

	return d
}

func TestRankCandidates(t *testing.T) {
	missing := dim(t, "num_layers", "uniform(1, 8, discrete=True)")

	targets := []space.Dimension{
		dim(t, "dropout", "normal(0.5, 0.1)"),
		dim(t, "depth", "uniform(1,8,discrete=True)"),
		dim(t, "layers", "uniform(1,8,discrete=True)"),
	}

	candidates := RankCandidates(missing, targets)
	require.Len(t, candidates, 3)

	assert.Equal(t, []string{"layers", "depth", "dropout"}, candidates.Names())

	best := candidates.Best()
	require.NotNil(t, best)
	assert.InDelta(t, 1.0, best.CombinedScore, 0.001)
	assert.Equal(t, PriorIdentical, best.Prior)
	assert.Equal(t, PriorIncompatible, candidates[2].Prior)

	assert.False(t, candidates.IsAmbiguous(DefaultAmbiguityThreshold))
	assert.Equal(t, []string{"layers"}, candidates.AboveThreshold(DefaultMinScore).Names())
	assert.Len(t, candidates.Top(2), 2)
	assert.Len(t, candidates.Top(10), 3)
}

func TestRankCandidatesEmpty(t *testing.T) {
	candidates := RankCandidates(dim(t, "lr", "uniform(0,1)"), nil)
	assert.Empty(t, candidates)
	assert.Nil(t, candidates.Best())
	assert.False(t, candidates.IsAmbiguous(DefaultAmbiguityThreshold))
}

func TestRankCandidatesTieBreak(t *testing.T) {
	missing := dim(t, "x", "uniform(0,1)")

	candidates := RankCandidates(missing, []space.Dimension{
		dim(t, "b", "uniform(0,1)"),
		dim(t, "a", "uniform(0,1)"),
	})

	assert.Equal(t, []string{"a", "b"}, candidates.Names())
	assert.True(t, candidates.IsAmbiguous(DefaultAmbiguityThreshold))
}

func TestScorePriorCompatibility(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected PriorCompatibility
	}{
		{"identical", "uniform(0,1)", "uniform(0, 1)", PriorIdentical},
		{"same distribution", "uniform(0,1)", "uniform(0,2)", PriorSameDistribution},
		{"different", "uniform(0,1)", "normal(0,1)", PriorIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePriorCompatibility(dim(t, "p", tt.a), dim(t, "q", tt.b))
			assert.Equal(t, tt.expected, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}
