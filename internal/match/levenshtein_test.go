package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"momentum", "momentum", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"algorithm", "altruistic", 6},

		// Hyperparameter names
		{"lr", "lrate", 3},
		{"momentum", "momentun", 1},
		{"Dropout", "dropout", 1},

		// Counted in runes
		{"αβ", "αγ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, result, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"hello", "hello", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"abc", "ab", 1.0 - 1.0/3.0},
		{"αβ", "αγ", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LevenshteinNormalized(tt.a, tt.b), 0.001)
		})
	}
}

func TestNameScore(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
		maxScore float64
	}{
		// Exact match after normalization
		{"learning_rate", "learningRate", 1.0, 1.0},
		{"db.host", "db_host", 1.0, 1.0},

		// Affix stripping
		{"num_layers", "layers", 1.0, 1.0},
		{"batch_size", "batch", 1.0, 1.0},

		// Similar names
		{"momentum", "momentun", 0.8, 1.0},

		// Different names
		{"momentum", "weight_decay", 0.0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			score := NameScore(tt.a, tt.b)
			assert.GreaterOrEqual(t, score, tt.minScore)
			assert.LessOrEqual(t, score, tt.maxScore)
		})
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for b.Loop() {
		Levenshtein("algorithm", "altruistic")
	}
}

func BenchmarkNameScore(b *testing.B) {
	for b.Loop() {
		NameScore("num_hidden_layers", "hiddenLayers")
	}
}
