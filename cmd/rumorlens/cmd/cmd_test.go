package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-08-01")

	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "rumorlens 1.2.3")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "2026-08-01")
}

func TestRootCommand_ShowsHelp(t *testing.T) {
	out, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "analyze")
}

func TestInitCommand_WritesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := executeCommand(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, ".rumorlens/config.yaml")

	data, err := os.ReadFile(filepath.Join(".rumorlens", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "gemini")
}

func TestInitCommand_RefusesSecondRun(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeCommand(t, "init")
	require.NoError(t, err)

	_, err = executeCommand(t, "init")
	assert.Error(t, err)
}

func TestAnalyzeCommand_RequiresClaim(t *testing.T) {
	_, err := executeCommand(t, "analyze")
	assert.Error(t, err)
}

func TestServeCommand_FailsWithoutAPIKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")

	_, err := executeCommand(t, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis client")
}
