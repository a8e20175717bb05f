package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aicommit/aicommit/internal/app"
	"github.com/aicommit/aicommit/internal/pkg/ai"
	"github.com/aicommit/aicommit/internal/pkg/config"
	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
	"github.com/aicommit/aicommit/internal/pkg/git"
	"github.com/aicommit/aicommit/internal/pkg/history"
	"github.com/aicommit/aicommit/internal/pkg/toolcheck"
	"github.com/aicommit/aicommit/internal/pkg/ui"
)

// CommitFlags holds the flags for the commit command.
type CommitFlags struct {
	JSON      bool
	DryRun    bool
	NoHistory bool
}

// NewCommitCmd creates the commit command.
func NewCommitCmd() *cobra.Command {
	flags := &CommitFlags{}

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message and commit via the git editor",
		Long: `Generate a commit message from your staged diff using the configured
AI command, then open the git commit editor pre-filled with it.

In JSON mode the message is printed as {"message": ...} on stdout and
no commit is performed.

Examples:
  aicommit commit --config prompt.toml           # Editor-backed commit
  aicommit commit --config prompt.toml --json    # JSON output, no commit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.JSON, "json", false, `Output {"message": ...} JSON and skip the commit`)
	cmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Skip history recording")

	return cmd
}

// runCommit executes the commit pipeline with the given flags.
func runCommit(cmd *cobra.Command, flags *CommitFlags) error {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		return apperrors.New(apperrors.ErrInvalidArguments, "--config is required").
			WithSuggestion("Pass --config <path> pointing at a TOML file with a 'prompt' key")
	}

	cfgMgr, err := config.NewManager(configPath)
	if err != nil {
		return err
	}

	// Config load happens before any subprocess is spawned.
	cfg, err := cfgMgr.Load()
	if err != nil {
		apperrors.Error("Failed to load config: %v", err)
		return err
	}
	apperrors.Debug("Config loaded from %s", configPath)

	service := buildService(cfg, flags)

	opts := &app.RunOptions{
		JSON:      flags.JSON,
		DryRun:    flags.DryRun,
		NoHistory: flags.NoHistory,
		Output:    cmd.OutOrStdout(),
	}

	return service.Run(ctx, opts)
}

// buildService wires the pipeline dependencies from the loaded config.
func buildService(cfg *config.Config, flags *CommitFlags) *app.CommitService {
	gitClient := git.NewClient()
	generator := ai.NewCLIGenerator(cfg.Generator.Command, cfg.Generator.Args)
	checker := toolcheck.NewChecker()

	var uiMgr ui.Manager
	if flags.JSON {
		// Keep stdout clean for the JSON document.
		uiMgr = ui.NewNonInteractiveManager()
	} else {
		uiMgr = ui.NewDefaultManager(cfg.UI.ColorEnabled)
	}

	var historyMgr history.Manager
	if cfg.History.Enabled {
		historyMgr = history.NewFileManager(cfg.History.FilePath, cfg.History.MaxEntries)
	}

	return app.NewCommitService(gitClient, generator, checker, uiMgr, historyMgr, cfg)
}
