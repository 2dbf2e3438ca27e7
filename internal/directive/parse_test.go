package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args := []string{
		"--a~>b",
		"--new~+normal(0,2)",
		"--changed~normal(0,2)",
		"--gone~-",
		"--epochs=10",
		"-other~+uniform(0, 1)",
		"--x~>y",
	}
	original := append([]string(nil), args...)

	corrected, directives, err := Parse(args)
	require.NoError(t, err)

	assert.Equal(t, original, args, "input must not be modified")
	assert.Equal(t, []string{
		"--new~normal(0,2)",
		"--changed~normal(0,2)",
		"--epochs=10",
		"-other~uniform(0, 1)",
	}, corrected)

	require.Len(t, directives, 5)

	expected := []Directive{
		{Kind: KindAppend, Name: "new", Arg: "--new~+normal(0,2)"},
		{Kind: KindAppend, Name: "other", Arg: "-other~+uniform(0, 1)"},
		{Kind: KindDrop, Name: "gone", Arg: "--gone~-"},
		{Kind: KindRename, Name: "a", Target: "b", Arg: "--a~>b"},
		{Kind: KindRename, Name: "x", Target: "y", Arg: "--x~>y"},
	}
	assert.Equal(t, expected, directives)
}

func TestParseNoFalsePositives(t *testing.T) {
	args := []string{
		"--lr~choices(['~+','~-'])",
		"--path=/tmp/a~>b",
		"positional~+",
		"--plain",
	}

	corrected, directives, err := Parse(args)
	require.NoError(t, err)
	assert.Empty(t, directives)
	assert.Equal(t, args, corrected)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"append without prior", "--a~+"},
		{"drop with value", "--a~-uniform(0,1)"},
		{"rename without target", "--a~>"},
		{"rename to invalid name", "--a~>1b"},
		{"invalid source name", "--1a~-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]string{"--ok~uniform(0,1)", tt.arg})
			require.ErrorIs(t, err, ErrDirectiveParse)
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Append", KindAppend.String())
	assert.Equal(t, "Rename", KindRename.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
	assert.Equal(t, "~-", KindDrop.Marker())
	assert.Equal(t, "lr~>rate", Directive{Kind: KindRename, Name: "lr", Target: "rate"}.String())
}
