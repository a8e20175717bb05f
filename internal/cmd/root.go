// Package cmd contains the CLI command definitions for aicommit.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

// NewRootCmd creates the root command for the aicommit CLI.
func NewRootCmd(version, commitHash, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aicommit",
		Short: "AI-powered git commit message generator",
		Long: `aicommit generates a git commit message from your staged changes by
piping the diff to an external AI CLI (claude by default).

The generated message is either printed as JSON (--json) or used to
pre-fill the git commit editor so you can review and edit it before
the commit is finalized.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env before env-based config resolution; absence is fine.
			_ = godotenv.Load()

			verbose, _ := cmd.Flags().GetBool("verbose")
			apperrors.SetVerbose(verbose)
		},
		// Default action is to run the commit command
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")
			noHistory, _ := cmd.Flags().GetBool("no-history")

			flags := &CommitFlags{
				JSON:      jsonMode,
				NoHistory: noHistory,
			}

			return runCommit(cmd, flags)
		},
	}

	// Set version template
	rootCmd.SetVersionTemplate(`aicommit {{.Version}}
Commit: ` + commitHash + `
Built:  ` + date + "\n")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("config", "", "Path to the TOML config file (required)")

	// Commit-specific flags on the root command for the default action
	rootCmd.Flags().Bool("json", false, `Output {"message": ...} JSON and skip the commit`)
	rootCmd.Flags().Bool("no-history", false, "Skip history recording")

	// Add subcommands
	rootCmd.AddCommand(NewCommitCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewHistoryCmd())

	return rootCmd
}
