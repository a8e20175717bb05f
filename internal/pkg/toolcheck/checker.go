// Package toolcheck verifies that the external commands aicommit drives are
// available before the pipeline starts.
package toolcheck

import (
	"os/exec"

	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

// Checker verifies executable availability.
type Checker interface {
	// CheckTool returns nil if the named command is found in PATH.
	CheckTool(name string) error
	// CheckAll verifies every command the pipeline needs.
	CheckAll(names ...string) error
}

// lookPath is a variable to allow mocking in tests.
var lookPath = exec.LookPath

// PathChecker implements Checker using exec.LookPath.
type PathChecker struct{}

// NewChecker creates a new PathChecker.
func NewChecker() *PathChecker {
	return &PathChecker{}
}

// CheckTool returns a ToolNotFound error with install instructions when the
// command is missing from PATH.
func (c *PathChecker) CheckTool(name string) error {
	if _, err := lookPath(name); err != nil {
		return apperrors.NewToolNotFoundError(name, InstallInstructions(name))
	}
	return nil
}

// CheckAll verifies every command in order and reports the first missing one.
func (c *PathChecker) CheckAll(names ...string) error {
	for _, name := range names {
		if err := c.CheckTool(name); err != nil {
			return err
		}
	}
	return nil
}
