package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aicommit/aicommit/internal/pkg/config"
	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
	"github.com/aicommit/aicommit/internal/pkg/history"
)

const (
	// DefaultHistoryLimit is the default number of history entries to display.
	DefaultHistoryLimit = 20
)

// NewHistoryCmd creates the history command and its subcommands.
func NewHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "View generated commit message history",
		Long: `View the history of generated commit messages.

By default, displays the most recent 20 entries. Use --limit to change
the number of entries shown.

Examples:
  aicommit history --config prompt.toml             # Show last 20 entries
  aicommit history --config prompt.toml --limit 5   # Show last 5 entries
  aicommit history clear --config prompt.toml       # Clear all history`,
		RunE: runHistoryList,
	}

	historyCmd.Flags().IntP("limit", "l", DefaultHistoryLimit, "Number of entries to display (0 = all)")

	historyCmd.AddCommand(newHistoryClearCmd())

	return historyCmd
}

// historyManagerFromFlags loads the config and builds the history manager.
func historyManagerFromFlags(cmd *cobra.Command) (history.Manager, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		return nil, apperrors.New(apperrors.ErrInvalidArguments, "--config is required").
			WithSuggestion("Pass --config <path> pointing at a TOML file with a 'prompt' key")
	}

	mgr, err := config.NewManager(configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := mgr.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, apperrors.New(apperrors.ErrInvalidConfig, "history is disabled in the config").
			WithSuggestion("Set history.enabled = true in your config file")
	}

	return history.NewFileManager(cfg.History.FilePath, cfg.History.MaxEntries), nil
}

// runHistoryList displays the history entries.
func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	historyMgr, err := historyManagerFromFlags(cmd)
	if err != nil {
		return err
	}

	entries, err := historyMgr.List(limit)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileSystemError, "failed to read history")
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history entries")
		return nil
	}

	for _, entry := range entries {
		status := "generated"
		if entry.Committed {
			status = "committed"
		}
		subject := entry.Message
		if idx := strings.IndexByte(subject, '\n'); idx >= 0 {
			subject = subject[:idx]
		}
		fmt.Fprintf(out, "%s  %-9s  %s\n",
			entry.Timestamp.Format("2006-01-02 15:04"), status, subject)
	}
	return nil
}

// newHistoryClearCmd creates the 'history clear' subcommand.
func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			historyMgr, err := historyManagerFromFlags(cmd)
			if err != nil {
				return err
			}

			if err := historyMgr.Clear(); err != nil {
				return apperrors.Wrap(err, apperrors.ErrFileSystemError, "failed to clear history")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	}
}
