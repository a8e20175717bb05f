// Package message provides commit message lint checks for aicommit.
//
// The generator's output is used verbatim (whitespace-trimmed only); these
// checks produce warnings for the user, never rewrites.
package message

import (
	"fmt"
	"strings"
)

// MaxSubjectLength is the recommended maximum length for commit subject lines.
const MaxSubjectLength = 72

// Subject returns the first line of a commit message.
func Subject(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}

// Lint inspects a generated commit message and returns human-readable
// warnings. An empty slice means nothing looked suspicious.
func Lint(text string) []string {
	var warnings []string

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []string{"message is empty"}
	}

	subject := Subject(trimmed)

	if len(subject) > MaxSubjectLength {
		warnings = append(warnings,
			fmt.Sprintf("subject line is %d characters (recommended maximum is %d)",
				len(subject), MaxSubjectLength))
	}

	if strings.HasSuffix(subject, ".") {
		warnings = append(warnings, "subject line ends with a period")
	}

	if strings.HasPrefix(trimmed, "```") || strings.HasSuffix(trimmed, "```") {
		warnings = append(warnings, "message appears to be wrapped in a markdown code fence")
	}

	if len(trimmed) >= 2 {
		if (strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`)) ||
			(strings.HasPrefix(trimmed, "'") && strings.HasSuffix(trimmed, "'")) {
			warnings = append(warnings, "message appears to be wrapped in quotes")
		}
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		warnings = append(warnings, "subject and body are not separated by a blank line")
	}

	return warnings
}
