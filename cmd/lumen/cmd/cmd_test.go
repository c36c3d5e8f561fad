package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-sh/lumen/internal/config"
)

// runCommand executes the CLI with args against an isolated config and
// state directory, returning stdout.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Default().Save(cfgPath))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", cfgPath))

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	assert.Contains(t, out, "lumen")
}

func TestVersionCommandJSON(t *testing.T) {
	out := runCommand(t, "version", "--json")

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")
}

func TestQueryCommandCalculation(t *testing.T) {
	out := runCommand(t, "query", "2+2")
	assert.Contains(t, out, "calculation")
	assert.Contains(t, out, "= 4")
}

func TestQueryCommandURL(t *testing.T) {
	out := runCommand(t, "query", "github.com")
	assert.Contains(t, out, "url")
	assert.Contains(t, out, "https://github.com")
}

func TestQueryCommandJSON(t *testing.T) {
	out := runCommand(t, "query", "--json", "@golang")

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "web-search", results[0]["kind"])
	assert.Equal(t, "golang", results[0]["text"])
}

func TestAppsCommand(t *testing.T) {
	out := runCommand(t, "apps")
	assert.Contains(t, out, "entries")
}

func TestConfigPathCommand(t *testing.T) {
	out := runCommand(t, "config", "path")
	assert.Contains(t, out, "config.yaml")
}

func TestConfigShowCommand(t *testing.T) {
	out := runCommand(t, "config", "show")
	assert.Contains(t, out, "result_limit")
	assert.Contains(t, out, "primary_url")
}
