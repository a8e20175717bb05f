// Package git provides Git operations for aicommit.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

const (
	// GitCommandTimeout is the default timeout for non-interactive git commands.
	GitCommandTimeout = 10 * time.Second

	// MessageFileName is the file under the git directory that holds the
	// generated message. Named to avoid colliding with git's own COMMIT_EDITMSG.
	MessageFileName = "COMMIT_MSG_GENERATED"
)

// Client defines the interface for Git operations.
type Client interface {
	HasStagedChanges(ctx context.Context) (bool, error)
	HasUnstagedChanges(ctx context.Context) (bool, error)
	AddAll(ctx context.Context) error
	GetStagedDiff(ctx context.Context) (string, error)
	WriteMessageFile(ctx context.Context, message string) (string, error)
	CommitWithEditor(ctx context.Context, msgFile string) error
}

// DefaultClient implements the Client interface using exec.CommandContext.
type DefaultClient struct {
	// workDir is the working directory for git commands.
	// If empty, uses the current directory.
	workDir string
}

// NewClient creates a new DefaultClient.
func NewClient() *DefaultClient {
	return &DefaultClient{}
}

// NewClientWithWorkDir creates a new DefaultClient with a specific working directory.
func NewClientWithWorkDir(workDir string) *DefaultClient {
	return &DefaultClient{workDir: workDir}
}

// HasStagedChanges checks if there are any staged changes in the repository.
func (c *DefaultClient) HasStagedChanges(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	err := cmd.Run()
	if err != nil {
		// Exit code 1 means there are differences (staged changes exist)
		if exitErr, ok := err.(*exec.ExitError); ok {
			if exitErr.ExitCode() == 1 {
				return true, nil
			}
		}
		return false, apperrors.NewGitError(err, "")
	}
	// Exit code 0 means no differences (no staged changes)
	return false, nil
}

// HasUnstagedChanges checks if there are any unstaged changes (modified/untracked files).
func (c *DefaultClient) HasUnstagedChanges(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		return false, apperrors.NewGitError(err, "")
	}

	return len(strings.TrimSpace(string(output))) > 0, nil
}

// AddAll stages all changes (git add .).
func (c *DefaultClient) AddAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "add", ".")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return apperrors.NewGitError(err, string(output))
	}
	return nil
}

// GetStagedDiff retrieves all staged changes as a single unified diff string.
// The diff content is treated as opaque text; only surrounding whitespace is
// trimmed. An empty diff is a "no staged changes" error.
func (c *DefaultClient) GetStagedDiff(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", apperrors.NewGitError(err, string(exitErr.Stderr))
		}
		return "", apperrors.NewGitError(err, "")
	}

	diff := strings.TrimSpace(string(output))
	if diff == "" {
		return "", apperrors.NewNoStagedChangesError()
	}

	return diff, nil
}

// gitDir resolves the repository's metadata directory via git rev-parse.
// The result may be relative (usually ".git"); it is resolved against the
// client's working directory.
func (c *DefaultClient) gitDir(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", apperrors.NewGitError(err, string(exitErr.Stderr))
		}
		return "", apperrors.NewGitError(err, "")
	}

	dir := strings.TrimSpace(string(output))
	if !filepath.IsAbs(dir) && c.workDir != "" {
		dir = filepath.Join(c.workDir, dir)
	}
	return dir, nil
}

// WriteMessageFile writes the generated message to MessageFileName inside
// the repository's git directory and returns the file path.
func (c *DefaultClient) WriteMessageFile(ctx context.Context, message string) (string, error) {
	dir, err := c.gitDir(ctx)
	if err != nil {
		return "", err
	}

	msgPath := filepath.Join(dir, MessageFileName)
	if err := os.WriteFile(msgPath, []byte(message), 0o644); err != nil {
		return "", apperrors.NewFileSystemError(err, msgPath)
	}

	return msgPath, nil
}

// CommitWithEditor runs git commit -v -e -F <msgFile> with inherited
// stdin/stdout/stderr so git can open the user's editor. No timeout is
// applied; the user may take arbitrarily long to edit. A non-zero exit
// status from git (including an aborted commit) is propagated verbatim.
func (c *DefaultClient) CommitWithEditor(ctx context.Context, msgFile string) error {
	cmd := exec.CommandContext(ctx, "git", "commit", "-v", "-e", "-F", msgFile)
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return apperrors.NewCommitExitError(err, exitErr.ExitCode())
		}
		return apperrors.NewGitError(err, "")
	}
	return nil
}
