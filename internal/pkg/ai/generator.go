// Package ai provides the message generator interface and the external CLI
// backend for aicommit.
package ai

import (
	"context"
)

// Generator defines the interface for commit message generation backends.
// The prompt is the complete request text (template plus diff); the returned
// message is the backend's output with surrounding whitespace trimmed.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
