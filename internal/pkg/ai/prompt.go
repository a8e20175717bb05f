package ai

import (
	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

// PromptSeparator sits between the prompt template and the diff.
const PromptSeparator = "\n\n"

// PromptSize returns the byte size of the combined request without
// allocating it.
func PromptSize(template, diff string) int {
	return len(template) + len(PromptSeparator) + len(diff)
}

// BuildPrompt combines the prompt template and the staged diff into the
// request sent to the generator. The size is validated before the combined
// string is allocated; requests over maxSize are rejected.
func BuildPrompt(template, diff string, maxSize int) (string, error) {
	if size := PromptSize(template, diff); size > maxSize {
		return "", apperrors.NewPromptTooLargeError(size, maxSize)
	}
	return template + PromptSeparator + diff, nil
}
