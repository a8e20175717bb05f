package ai

import (
	"context"
	"os/exec"
	"strings"
	"time"

	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

// CLIGenerator invokes an external AI command-line tool as a text filter.
// The combined prompt is appended to the configured argument vector
// (e.g. claude -p <prompt>) and stdout is captured as the message.
type CLIGenerator struct {
	command string
	args    []string
}

// NewCLIGenerator creates a generator for the given command and base arguments.
func NewCLIGenerator(command string, args []string) *CLIGenerator {
	return &CLIGenerator{
		command: command,
		args:    args,
	}
}

// Name returns the generator command name.
func (g *CLIGenerator) Name() string {
	return g.command
}

// Generate runs the generator subprocess and returns its trimmed stdout.
// No timeout is applied beyond the caller's context; the call blocks until
// the subprocess exits. Empty output is an error.
func (g *CLIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := make([]string, 0, len(g.args)+1)
	args = append(args, g.args...)
	args = append(args, prompt)

	apperrors.LogCommand(g.command, g.args, len(prompt))
	start := time.Now()

	cmd := exec.CommandContext(ctx, g.command, args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			gerr := apperrors.NewGeneratorError(g.command, err)
			if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
				gerr.WithContext("stderr", stderr)
			}
			apperrors.LogCommandResult(g.command, exitErr.ExitCode(), 0, time.Since(start))
			return "", gerr
		}
		return "", apperrors.NewGeneratorError(g.command, err)
	}

	apperrors.LogCommandResult(g.command, 0, len(output), time.Since(start))

	message := strings.TrimSpace(string(output))
	if message == "" {
		return "", apperrors.NewEmptyGeneratorOutputError(g.command)
	}

	return message, nil
}
