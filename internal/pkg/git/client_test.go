package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

// initTestRepo creates a temporary git repository and returns its path.
func initTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "Test User")
	run("config", "commit.gpgsign", "false")

	return dir
}

func stageFile(t *testing.T, dir, name, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	cmd := exec.Command("git", "add", name)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git add: %s", out)
}

func TestHasStagedChanges(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)
	ctx := context.Background()

	staged, err := client.HasStagedChanges(ctx)
	assert.NoError(t, err)
	assert.False(t, staged)

	stageFile(t, dir, "file.txt", "hello\n")

	staged, err = client.HasStagedChanges(ctx)
	assert.NoError(t, err)
	assert.True(t, staged)
}

func TestHasUnstagedChanges(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)
	ctx := context.Background()

	unstaged, err := client.HasUnstagedChanges(ctx)
	assert.NoError(t, err)
	assert.False(t, unstaged)

	// Untracked files count as unstaged work.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x\n"), 0o644))

	unstaged, err = client.HasUnstagedChanges(ctx)
	assert.NoError(t, err)
	assert.True(t, unstaged)
}

func TestAddAll(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b\n"), 0o644))

	assert.NoError(t, client.AddAll(ctx))

	staged, err := client.HasStagedChanges(ctx)
	assert.NoError(t, err)
	assert.True(t, staged)
}

func TestGetStagedDiff(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)
	ctx := context.Background()

	stageFile(t, dir, "file.txt", "hello world\n")

	diff, err := client.GetStagedDiff(ctx)
	assert.NoError(t, err)
	assert.Contains(t, diff, "file.txt")
	assert.Contains(t, diff, "+hello world")
}

func TestGetStagedDiff_EmptyIndex(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)

	_, err := client.GetStagedDiff(context.Background())
	assert.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNoStagedChanges, appErr.Code)
	assert.Equal(t, 1, apperrors.GetExitCode(err))
}

func TestGetStagedDiff_OutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}

	client := NewClientWithWorkDir(t.TempDir())
	_, err := client.GetStagedDiff(context.Background())
	assert.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrGitCommandFailed, appErr.Code)
	assert.Equal(t, 2, apperrors.GetExitCode(err))
}

func TestWriteMessageFile(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)

	path, err := client.WriteMessageFile(context.Background(), "feat: add file\n")
	assert.NoError(t, err)
	assert.Equal(t, MessageFileName, filepath.Base(path))
	assert.True(t, strings.Contains(path, ".git"))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "feat: add file\n", string(content))
}

func TestWriteMessageFile_Overwrites(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)
	ctx := context.Background()

	_, err := client.WriteMessageFile(ctx, "first")
	assert.NoError(t, err)

	path, err := client.WriteMessageFile(ctx, "second")
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestCommitWithEditor(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)
	ctx := context.Background()

	stageFile(t, dir, "file.txt", "hello\n")

	msgFile, err := client.WriteMessageFile(ctx, "feat: add file")
	assert.NoError(t, err)

	// An editor that exits immediately accepts the pre-filled message.
	t.Setenv("GIT_EDITOR", "true")

	err = client.CommitWithEditor(ctx, msgFile)
	assert.NoError(t, err)

	cmd := exec.Command("git", "log", "-1", "--pretty=%s")
	cmd.Dir = dir
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "feat: add file", strings.TrimSpace(string(out)))
}

func TestCommitWithEditor_FailurePropagatesExitStatus(t *testing.T) {
	dir := initTestRepo(t)
	client := NewClientWithWorkDir(dir)
	ctx := context.Background()

	// Nothing staged, so git commit fails with a non-zero status.
	msgFile := filepath.Join(dir, "msg.txt")
	require.NoError(t, os.WriteFile(msgFile, []byte("feat: nothing"), 0o644))

	t.Setenv("GIT_EDITOR", "true")

	err := client.CommitWithEditor(ctx, msgFile)
	assert.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrGitCommandFailed, appErr.Code)
	assert.NotZero(t, appErr.ExitStatus)
	assert.Equal(t, appErr.ExitStatus, apperrors.GetExitCode(err))
}
