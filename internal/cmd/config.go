package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aicommit/aicommit/internal/pkg/config"
	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

// NewConfigCmd creates the config command with its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the aicommit configuration file",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

// newConfigInitCmd creates the 'config init' subcommand.
func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file",
		Long: `Write a commented starter TOML config to the given path
(default: aicommit.toml in the current directory). Fails if the file
already exists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "aicommit.toml"
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.WriteInitTemplate(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Edit the 'prompt' value, then run: aicommit --config "+path)
			return nil
		},
	}
}

// newConfigShowCmd creates the 'config show' subcommand.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Load the config file given by --config, resolve it against
environment variables and defaults, and print the effective values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				return apperrors.New(apperrors.ErrInvalidArguments, "--config is required").
					WithSuggestion("Pass --config <path> pointing at a TOML file with a 'prompt' key")
			}

			mgr, err := config.NewManager(configPath)
			if err != nil {
				return err
			}
			cfg, err := mgr.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file:       %s\n", mgr.GetConfigPath())
			fmt.Fprintf(out, "Prompt:            %d bytes\n", len(cfg.Prompt))
			fmt.Fprintf(out, "Max prompt size:   %d bytes\n", cfg.MaxPromptSize)
			fmt.Fprintf(out, "Generator command: %s\n", cfg.Generator.Command)
			fmt.Fprintf(out, "Generator args:    %v\n", cfg.Generator.Args)
			fmt.Fprintf(out, "History enabled:   %t\n", cfg.History.Enabled)
			if cfg.History.Enabled {
				fmt.Fprintf(out, "History file:      %s\n", cfg.History.FilePath)
				fmt.Fprintf(out, "History max:       %d entries\n", cfg.History.MaxEntries)
			}
			fmt.Fprintf(out, "Color enabled:     %t\n", cfg.UI.ColorEnabled)
			return nil
		},
	}
}
