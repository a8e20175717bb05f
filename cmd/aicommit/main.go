// Package main is the entry point for the aicommit CLI.
// aicommit generates git commit messages from staged changes by piping
// the diff through an external AI command.
package main

import (
	"fmt"
	"os"

	"github.com/aicommit/aicommit/internal/cmd"
	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		if apperrors.IsVerbose() {
			fmt.Fprintln(os.Stderr, apperrors.FormatErrorVerbose(err))
		} else {
			fmt.Fprintln(os.Stderr, apperrors.FormatError(err))
		}
		os.Exit(apperrors.GetExitCode(err))
	}
}
