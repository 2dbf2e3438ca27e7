package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"branch-builder/internal/branch"
	"branch-builder/internal/logger"
	"branch-builder/internal/script"
)

const parentYAML = `
name: exp
metadata:
  user: alice
  user_args:
    - --missing~uniform(-10,10)
    - --changed~uniform(-10,10)
    - --learning_rate~uniform(0,1)
`

const childTOML = `
name = "exp"

[metadata]
user_args = [
  "--new~+normal(0,2)",
  "--changed~normal(0, 2)",
  "--learningRate~uniform(0,1)",
]
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	a := newApp()
	a.lggr = logger.Test(t)

	var stdout, stderr bytes.Buffer

	root := a.rootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestConflictsCmd(t *testing.T) {
	dir := writeFiles(t, map[string]string{"parent.yaml": parentYAML, "child.toml": childTOML})
	parent, child := filepath.Join(dir, "parent.yaml"), filepath.Join(dir, "child.toml")

	out, _, err := execute(t, "conflicts", "-p", parent, "-c", child)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"changed  changed                  normal(0,2) (was uniform(-10,10))\n"+
		"new      learningRate             uniform(0,1)\n"+
		"missing  missing                  uniform(-10,10)\n"+
		"missing  learning_rate            uniform(0,1)\n", out)

	out, _, err = execute(t, "conflicts", "-p", parent, "-c", child, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "new      new                      normal(0,2) [solved]\n")
}

func TestSuggestCmd(t *testing.T) {
	dir := writeFiles(t, map[string]string{"parent.yaml": parentYAML, "child.toml": childTOML})
	draft := filepath.Join(dir, "draft.yaml")

	out, _, err := execute(t, "suggest",
		"--parent", filepath.Join(dir, "parent.yaml"),
		"--child", filepath.Join(dir, "child.toml"),
		"--write", draft,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "learning_rate:\n  learningRate")

	s, err := script.LoadFile(draft)
	require.NoError(t, err)
	assert.Equal(t, []script.RenameRule{{Old: "learning_rate", New: "learningRate"}}, s.Rename)
}

func TestResolveCmd(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"parent.yaml": parentYAML,
		"child.toml":  childTOML,
		"resolve.yaml": `
add: anyChanged
remove: missing
rename:
  - old: learning_rate
    new: learningRate
`,
	})
	report := filepath.Join(dir, "report.yaml")

	out, stderr, err := execute(t, "resolve",
		"-p", filepath.Join(dir, "parent.yaml"),
		"-c", filepath.Join(dir, "child.toml"),
		"--script", filepath.Join(dir, "resolve.yaml"),
		"--branch", "exp-v2",
		"--report", report,
		"--strict",
	)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Equal(t, ""+
		"experiment: exp-v2\n"+
		"DimensionAddition(new~normal(0,2))\n"+
		"DimensionPriorChange(changed~uniform(-10,10) -> changed~normal(0,2))\n"+
		"DimensionDeletion(missing~uniform(-10,10))\n"+
		"DimensionRenaming(learning_rate~uniform(0,1) -> learningRate~uniform(0,1))\n", out)

	data, err := os.ReadFile(report)
	require.NoError(t, err)

	var r branch.Report
	require.NoError(t, yaml.Unmarshal(data, &r))
	assert.True(t, r.Resolved)
	assert.Equal(t, "exp-v2", r.Child)
	assert.Equal(t, []string{"new", "changed"}, r.Operations.Add)
}

func TestResolveCmdUnresolved(t *testing.T) {
	dir := writeFiles(t, map[string]string{"parent.yaml": parentYAML, "child.toml": childTOML})
	args := []string{"resolve", "-p", filepath.Join(dir, "parent.yaml"), "-c", filepath.Join(dir, "child.toml")}

	out, stderr, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "DimensionAddition(new~normal(0,2))\n")
	assert.Contains(t, stderr, "warning:")
	assert.Contains(t, stderr, "did you mean: learningRate?")

	_, stderr, err = execute(t, append(args, "--strict")...)
	require.ErrorIs(t, err, branch.ErrUnresolvedConflicts)
	assert.Contains(t, stderr, "missing  learning_rate")

	t.Setenv("BRANCH_STRICT", "true")

	_, _, err = execute(t, args...)
	require.ErrorIs(t, err, branch.ErrUnresolvedConflicts)
}

func TestSessionErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{"parent.yaml": parentYAML, "child.toml": childTOML})

	_, _, err := execute(t, "conflicts", "-p", filepath.Join(dir, "parent.yaml"))
	require.ErrorContains(t, err, "--child")

	_, _, err = execute(t, "conflicts",
		"-p", filepath.Join(dir, "parent.yaml"),
		"-c", filepath.Join(dir, "child.toml"),
		"--expansion", "first-token",
	)
	require.ErrorContains(t, err, "--expansion")

	_, _, err = execute(t, "conflicts", "-p", filepath.Join(dir, "parent.yaml"), "-c", filepath.Join(dir, "child.ini"))
	require.Error(t, err)
}
