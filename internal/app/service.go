// Package app contains the application layer with pipeline orchestration logic.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aicommit/aicommit/internal/pkg/ai"
	"github.com/aicommit/aicommit/internal/pkg/config"
	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
	"github.com/aicommit/aicommit/internal/pkg/git"
	"github.com/aicommit/aicommit/internal/pkg/history"
	"github.com/aicommit/aicommit/internal/pkg/message"
	"github.com/aicommit/aicommit/internal/pkg/output"
	"github.com/aicommit/aicommit/internal/pkg/toolcheck"
	"github.com/aicommit/aicommit/internal/pkg/ui"
)

// RunOptions contains options for the commit workflow.
type RunOptions struct {
	// JSON emits {"message": ...} to Output and never commits.
	JSON bool
	// DryRun displays the generated message without committing.
	DryRun bool
	// NoHistory skips history recording for this run.
	NoHistory bool
	// Output is the destination for JSON mode. Defaults to stdout.
	Output io.Writer
}

// CommitService orchestrates the commit message generation pipeline:
// staged-changes probe, diff collection, prompt assembly, generation, and
// output dispatch (JSON or editor-backed commit). The pipeline is sequential
// and synchronous; any failure aborts the run.
type CommitService struct {
	gitClient   git.Client
	generator   ai.Generator
	toolChecker toolcheck.Checker
	uiManager   ui.Manager
	historyMgr  history.Manager
	config      *config.Config
}

// NewCommitService creates a new CommitService with the given dependencies.
func NewCommitService(
	gitClient git.Client,
	generator ai.Generator,
	toolChecker toolcheck.Checker,
	uiManager ui.Manager,
	historyMgr history.Manager,
	cfg *config.Config,
) *CommitService {
	return &CommitService{
		gitClient:   gitClient,
		generator:   generator,
		toolChecker: toolChecker,
		uiManager:   uiManager,
		historyMgr:  historyMgr,
		config:      cfg,
	}
}

// Run executes the complete pipeline.
// Workflow: tool check → staged probe → diff → prompt → generate → dispatch
func (s *CommitService) Run(ctx context.Context, opts *RunOptions) error {
	if opts == nil {
		opts = &RunOptions{}
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	// Step 1: Verify the external commands exist before doing any work.
	if err := s.toolChecker.CheckAll("git", s.generator.Name()); err != nil {
		return err
	}

	// Step 2: Check for staged changes; offer to stage when possible.
	if err := s.ensureStagedChanges(ctx); err != nil {
		return err
	}

	// Step 3: Collect the staged diff as an opaque string.
	spinner := s.uiManager.ShowSpinner("Retrieving staged changes...")
	spinner.Start()
	diff, err := s.gitClient.GetStagedDiff(ctx)
	spinner.Stop()
	if err != nil {
		return err
	}
	apperrors.Debug("Staged diff: %d bytes", len(diff))

	// Step 4: Build the request; size is validated before concatenation.
	prompt, err := ai.BuildPrompt(s.config.Prompt, diff, s.config.MaxPromptSize)
	if err != nil {
		return err
	}

	// Step 5: Invoke the generator. Blocks until the subprocess exits.
	spinner = s.uiManager.ShowSpinner("Generating commit message...")
	spinner.Start()
	msg, err := s.generator.Generate(ctx, prompt)
	spinner.Stop()
	if err != nil {
		return err
	}

	// Step 6: Record to history (failure warns, never aborts).
	s.recordHistory(msg, opts)

	// Step 7: Dispatch.
	if opts.JSON {
		return output.WriteJSON(opts.Output, msg)
	}
	return s.dispatchEditor(ctx, msg, opts)
}

// ensureStagedChanges verifies there is something in the index. When nothing
// is staged but unstaged changes exist, the user is offered a 'git add .';
// declining (or a non-interactive run) aborts.
func (s *CommitService) ensureStagedChanges(ctx context.Context) error {
	hasChanges, err := s.gitClient.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if hasChanges {
		return nil
	}

	hasUnstaged, err := s.gitClient.HasUnstagedChanges(ctx)
	if err != nil {
		return err
	}
	if !hasUnstaged {
		return apperrors.NewNoStagedChangesError()
	}

	confirmed, err := s.uiManager.PromptConfirm("No staged changes found. Run 'git add .' to stage all changes?")
	if err != nil {
		return apperrors.WrapWithContext(err, "failed to prompt user")
	}
	if !confirmed {
		return apperrors.NewNoStagedChangesError()
	}

	if err := s.gitClient.AddAll(ctx); err != nil {
		return err
	}
	s.uiManager.ShowSuccess("All changes staged")
	return nil
}

// recordHistory appends the generated message to the history file.
func (s *CommitService) recordHistory(msg string, opts *RunOptions) {
	if s.historyMgr == nil || opts.NoHistory {
		return
	}

	mode := "editor"
	if opts.JSON {
		mode = "json"
	}
	entry := &history.Entry{
		Message:   msg,
		Generator: s.generator.Name(),
		Mode:      mode,
		Committed: !opts.JSON && !opts.DryRun,
	}
	if err := s.historyMgr.Save(entry); err != nil {
		s.uiManager.ShowWarning(fmt.Sprintf("failed to save to history: %v", err))
	}
}

// dispatchEditor handles the default output mode: show the message, warn on
// lint findings, write the message file, and hand off to git commit with the
// user's editor. The message text itself is never rewritten.
func (s *CommitService) dispatchEditor(ctx context.Context, msg string, opts *RunOptions) error {
	s.uiManager.ShowMessage(msg)

	for _, warning := range message.Lint(msg) {
		s.uiManager.ShowWarning(warning)
	}

	if opts.DryRun {
		s.uiManager.ShowSuccess("Dry-run complete - message generated but not committed")
		return nil
	}

	msgFile, err := s.gitClient.WriteMessageFile(ctx, msg)
	if err != nil {
		return err
	}
	apperrors.Debug("Message written to %s", msgFile)

	// Exit status of the commit subprocess propagates to our own exit code.
	if err := s.gitClient.CommitWithEditor(ctx, msgFile); err != nil {
		return err
	}

	s.uiManager.ShowSuccess("Successfully committed!")
	return nil
}
