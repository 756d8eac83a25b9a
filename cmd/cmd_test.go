package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `implies:
  - and: [P, {not: Q}]
  - R
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNormalizeCommand(t *testing.T) {
	out, _, err := run(t, example, "normalize")
	require.NoError(t, err)
	assert.Equal(t, "formula:\n((P AND ~(Q)) -> R)\ncnf:\n(~(P) OR Q OR R)\n1 clauses, 3 variables\n", out)
}

func TestNormalizeCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iff.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iff:\n  - or: [p, q]\n  - r\n"), 0o644))
	out, _, err := run(t, "", "normalize", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "and:")
	assert.Contains(t, out, "not: p")

	_, _, err = run(t, "", "normalize", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "could not open")
}

func TestNormalizeCommandErrors(t *testing.T) {
	_, _, err := run(t, example, "normalize", "--format", "json")
	assert.ErrorContains(t, err, `invalid format "json"`)

	_, _, err = run(t, "xor: [a, b]", "normalize")
	assert.ErrorContains(t, err, "unknown connective")

	_, stderr, err := run(t, "or: [{and: [a, b]}, {and: [c, d]}]", "normalize", "--max-clauses", "3")
	assert.ErrorContains(t, err, "clause budget exceeded")
	assert.Contains(t, stderr, "CNF clause budget exceeded")
}

func TestNormalizeCommandVerbose(t *testing.T) {
	_, stderr, err := run(t, example, "normalize", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "connectives eliminated")
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestDimacsCommand(t *testing.T) {
	out, _, err := run(t, example, "dimacs")
	require.NoError(t, err)
	assert.Equal(t, "p cnf 3 1\nc P=1\nc Q=2\nc R=3\n-1 2 3 0\n", out)
}

func TestRootHelp(t *testing.T) {
	out, _, err := run(t, "", "--help")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "gophercnf reads a propositional formula"))
	assert.Equal(t, "Translate propositional formulas into conjunctive normal form", newRootCmd().Short)
}
