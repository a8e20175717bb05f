package toolcheck

import "fmt"

// InstallInstructions returns a short install hint for a missing command.
func InstallInstructions(name string) string {
	switch name {
	case "git":
		return "Install git from https://git-scm.com/downloads and make sure it is in your PATH"
	case "claude":
		return "Install the Claude CLI (npm install -g @anthropic-ai/claude-code) and make sure it is in your PATH"
	default:
		return fmt.Sprintf("Install %q and make sure it is in your PATH", name)
	}
}
