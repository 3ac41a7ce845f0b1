package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	// resolveProgram logs through the package-level logger, which
	// PersistentPreRunE normally builds; unit tests that call it directly
	// need a logger in place first.
	logger = zap.NewNop()
}

func writeProgram(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "program.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const reachabilityProgram = `
clauses:
  - head:
      predicate: arc
      args: ["a", "b"]
  - head:
      predicate: arc
      args: ["b", "c"]
  - head:
      predicate: reach
      args: ["?X", "?Y"]
    body:
      - - predicate: arc
          args: ["?X", "?Y"]
  - head:
      predicate: reach
      args: ["?X", "?Z"]
    body:
      - - predicate: arc
          args: ["?X", "?Y"]
        - predicate: reach
          args: ["?Y", "?Z"]

groundness:
  "arc/2":
    vars: [true, true]
  "reach/2":
    vars: [true, true]

goal:
  - predicate: reach
    args: ["a", "?Who"]

max_depth: 10
`

func TestResolveProgramFindsAnswers(t *testing.T) {
	path := writeProgram(t, reachabilityProgram)
	result, err := resolveProgram(path)
	require.NoError(t, err)
	require.NotNil(t, result.Tree)
	assert.Len(t, result.Goal, 1)
	assert.Equal(t, 4, len(result.Rules))
}

func TestResolveProgramMaxDepthFlagOverridesDocument(t *testing.T) {
	path := writeProgram(t, reachabilityProgram)

	orig := maxDepth
	defer func() { maxDepth = orig }()

	maxDepth = 1
	result, err := resolveProgram(path)
	require.NoError(t, err)
	assert.Nil(t, result.Tree, "a depth of 1 should be too shallow to prove reach(a, ?Who), which needs at least two resolution steps (reach, then arc)")

	maxDepth = 0
}

func TestResolveProgramRejectsNonPositiveDepth(t *testing.T) {
	path := writeProgram(t, `
clauses: []
groundness: {}
goal: []
max_depth: 0
`)
	_, err := resolveProgram(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth")
}

func TestResolveProgramMissingFile(t *testing.T) {
	_, err := resolveProgram(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolveProgramBadGroundnessArity(t *testing.T) {
	path := writeProgram(t, `
clauses: []
groundness:
  "arc/2":
    vars: [true]
goal: []
max_depth: 5
`)
	_, err := resolveProgram(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groundness map")
}
