package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuild = BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}

// execute runs the command tree with an isolated home directory
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cmd := NewRoot(testBuild)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootHasSubcommands(t *testing.T) {
	cmd := NewRoot(testBuild)
	for _, name := range []string{"list", "paths", "browse", "snapshot", "diff", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	sub, _, err := cmd.Find([]string{"ls"})
	require.NoError(t, err)
	assert.Equal(t, "list", sub.Name())
}

func TestRootGlobalFlags(t *testing.T) {
	cmd := NewRoot(testBuild)
	for _, name := range []string{"config", "mount-table", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mountinfo 1.2.3 (commit: abc123, built: 2026-01-01)\n", out)

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "mountinfo 1.2.3\n", out)
}

func TestListHelp(t *testing.T) {
	out, err := execute(t, "list", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--output")
	assert.Contains(t, out, "--all")
	assert.Contains(t, out, "--mount-table")
}

func TestListRejectsUnknownOutput(t *testing.T) {
	_, err := execute(t, "list", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestEnvRejectsUnknownOutput(t *testing.T) {
	t.Setenv("MOUNTINFO_OUTPUT", "csv")
	_, err := execute(t, "list")
	assert.ErrorContains(t, err, "csv")
}

func TestListRejectsArgs(t *testing.T) {
	_, err := execute(t, "list", "extra")
	assert.Error(t, err)
}
