package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Separators
		{"learning_rate", "learningrate"},
		{"learning-rate", "learningrate"},
		{"db.host", "dbhost"},

		// Case variations
		{"learningRate", "learningrate"},
		{"LearningRate", "learningrate"},
		{"LEARNING_RATE", "learningrate"},
		{"MLPWidth", "mlpwidth"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"LR", "lr"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeIdentWithAffixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Prefixes
		{"num_layers", "layers"},
		{"nLayers", "layers"},
		{"numHiddenUnits", "hiddenunits"},

		// Suffixes
		{"batch_size", "batch"},
		{"layer_count", "layer"},

		// Nothing stripped when it would empty the name
		{"size", "size"},
		{"num", "num"},

		// No affix
		{"learning_rate", "learningrate"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdentWithAffixStrip(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"learningRate", []string{"learning", "Rate"}},
		{"batchSize", []string{"batch", "Size"}},
		{"MLPWidth", []string{"MLP", "Width"}},
		{"num_layers", []string{"num", "layers"}},
		{"db.host", []string{"db", "host"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"learning", "rate"}, TokenizeIdent("learningRate"))
	assert.Equal(t, []string{"mlp", "width"}, TokenizeIdent("MLP_width"))
}
