package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/config"
)

// lintFixture has one duplicate alias, a missing url, and a string where
// an integer belongs.
const lintFixture = `{
  "a": {
    "model": "model-a",
    "alias": "dup",
    "parent": "X",
    "model_category": "LLM",
    "family": "fa",
    "series": "s1",
    "url": "https://a.example.com",
    "apikey": "KEY",
    "context_window": 1000,
    "max_output_tokens": 100,
    "vision": 1,
    "available": 9,
    "enabled": 1
  },
  "b": {
    "model": "model-b",
    "alias": "dup",
    "parent": "X",
    "model_category": "LLM",
    "family": "fb",
    "series": "s1",
    "apikey": "KEY",
    "context_window": 1000,
    "max_output_tokens": 100,
    "vision": "yes",
    "available": 9,
    "enabled": 1
  }
}`

func TestCheckCommand_ReportsFindings(t *testing.T) {
	out, err := execute(t, newCheckCommand, config.DefaultConfigTemplate(),
		"--registry", writeRegistry(t, lintFixture))
	require.NoError(t, err, "lint findings are not command failures")

	require.Contains(t, out, "2 records")
	require.Contains(t, out, "duplicate aliases:")
	require.Contains(t, out, "  dup: a, b")
	require.Contains(t, out, "missing fields:")
	require.Contains(t, out, "  b: url")
	require.Contains(t, out, "type issues:")
	require.Contains(t, out, "  b: vision should be integer, got string")
	require.Contains(t, out, "records by parent:")
	require.Contains(t, out, "  X: 2")
	require.Contains(t, out, "3 issues")
	require.NotContains(t, out, "\nok\n")
}

func TestCheckCommand_CleanRegistry(t *testing.T) {
	out, err := execute(t, newCheckCommand, config.DefaultConfigTemplate(),
		"--registry", writeRegistry(t, modelsFixture))
	require.NoError(t, err)

	require.Contains(t, out, "4 records")
	require.Contains(t, out, "records by parent:")
	require.Contains(t, out, "  OpenAI: 2")
	require.Contains(t, out, "ok")
	require.NotContains(t, out, "issues")
}

func TestCheckCommand_AgentsProfile(t *testing.T) {
	out, err := execute(t, newCheckCommand, config.DefaultConfigTemplate(),
		"--agents", "--registry", writeRegistry(t, agentsFixture))
	require.NoError(t, err)

	require.Contains(t, out, "3 records")
	require.Contains(t, out, "records by category:")
	require.Contains(t, out, "  Specialist: 1")
	require.Contains(t, out, "ok")
}

func TestCheckCommand_LoadFailure(t *testing.T) {
	_, err := execute(t, newCheckCommand, config.DefaultConfigTemplate(),
		"--registry", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "load registry")
}
