package cmd

import (
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command, a commit that never commits.
func NewGenerateCmd() *cobra.Command {
	flags := &CommitFlags{
		DryRun: true, // Always dry-run for generate command
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a commit message without committing",
		Long: `Generate a commit message from your staged diff without committing.

The message is displayed on stdout, or printed as {"message": ...} JSON
with --json.

Examples:
  aicommit generate --config prompt.toml          # Display message
  aicommit generate --config prompt.toml --json   # JSON output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.JSON, "json", false, `Output {"message": ...} JSON`)
	cmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Skip history recording")

	return cmd
}
