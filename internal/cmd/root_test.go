package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["commit"])
	assert.True(t, names["generate"])
	assert.True(t, names["config"])
	assert.True(t, names["history"])
}

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, root.Flags().Lookup("json"))
	assert.NotNil(t, root.Flags().Lookup("no-history"))
}

func TestCommit_MissingConfigFlag(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"commit"})

	err := root.Execute()
	assert.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidArguments, appErr.Code)
}

func TestCommit_MissingConfigFile(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	path := filepath.Join(t.TempDir(), "missing.toml")
	root.SetArgs([]string{"commit", "--config", path})

	err := root.Execute()
	assert.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidConfig, appErr.Code)
	assert.Equal(t, 1, apperrors.GetExitCode(err))
}

func TestConfigInit_WritesStarterFile(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(new(bytes.Buffer))

	path := filepath.Join(t.TempDir(), "aicommit.toml")
	root.SetArgs([]string{"config", "init", path})

	err := root.Execute()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), path)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "prompt")
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	path := filepath.Join(t.TempDir(), "aicommit.toml")
	assert.NoError(t, os.WriteFile(path, []byte("prompt = \"p\"\n"), 0o644))

	root.SetArgs([]string{"config", "init", path})
	err := root.Execute()
	assert.Error(t, err)
}

func TestConfigShow_PrintsResolvedValues(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(new(bytes.Buffer))

	path := filepath.Join(t.TempDir(), "aicommit.toml")
	assert.NoError(t, os.WriteFile(path, []byte("prompt = \"p\"\n"), 0o644))

	root.SetArgs([]string{"config", "show", "--config", path})
	err := root.Execute()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "claude")
	assert.Contains(t, out.String(), path)
}

func TestHistoryList_EmptyHistory(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(new(bytes.Buffer))

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "aicommit.toml")
	cfg := "prompt = \"p\"\n\n[history]\nfile_path = \"" +
		filepath.ToSlash(filepath.Join(dir, "history.json")) + "\"\n"
	assert.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	root.SetArgs([]string{"history", "--config", cfgPath})
	err := root.Execute()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "No history entries")
}

func TestHistoryList_HistoryDisabled(t *testing.T) {
	root := NewRootCmd("test", "none", "unknown")
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	cfgPath := filepath.Join(t.TempDir(), "aicommit.toml")
	assert.NoError(t, os.WriteFile(cfgPath,
		[]byte("prompt = \"p\"\n\n[history]\nenabled = false\n"), 0o644))

	root.SetArgs([]string{"history", "--config", cfgPath})
	err := root.Execute()
	assert.Error(t, err)
}
