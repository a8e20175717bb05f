package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want int
	}{
		{"no staged changes is a user error", ErrNoStagedChanges, 1},
		{"invalid config is a user error", ErrInvalidConfig, 1},
		{"invalid arguments is a user error", ErrInvalidArguments, 1},
		{"prompt too large is a user error", ErrPromptTooLarge, 1},
		{"tool not found is a user error", ErrToolNotFound, 1},
		{"git failure is a system error", ErrGitCommandFailed, 2},
		{"filesystem failure is a system error", ErrFileSystemError, 2},
		{"serialization failure is a system error", ErrSerializationFailed, 2},
		{"generator failure is an external error", ErrGeneratorFailed, 3},
		{"empty generator output is an external error", ErrEmptyGeneratorOutput, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.ExitCode())
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(cause, ErrGitCommandFailed, "git command failed")

	assert.Equal(t, "git command failed: underlying failure", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestAppError_WithContextAndSuggestion(t *testing.T) {
	err := New(ErrInvalidConfig, "bad config").
		WithContext("path", "/tmp/cfg.toml").
		WithSuggestion("fix the config")

	assert.Equal(t, "/tmp/cfg.toml", err.Context["path"])
	assert.Equal(t, "fix the config", err.Suggestion)
}

func TestGetAppError(t *testing.T) {
	appErr := NewNoStagedChangesError()
	wrapped := fmt.Errorf("outer: %w", appErr)

	found := GetAppError(wrapped)
	assert.NotNil(t, found)
	assert.Equal(t, ErrNoStagedChanges, found.Code)

	assert.Nil(t, GetAppError(errors.New("plain error")))
	assert.True(t, IsAppError(wrapped))
	assert.False(t, IsAppError(errors.New("plain error")))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, 1, GetExitCode(NewNoStagedChangesError()))
	assert.Equal(t, 2, GetExitCode(NewGitError(errors.New("boom"), "")))
	assert.Equal(t, 3, GetExitCode(NewGeneratorError("claude", errors.New("boom"))))
	assert.Equal(t, 1, GetExitCode(errors.New("plain error")))
}

func TestGetExitCode_CommitExitStatusOverride(t *testing.T) {
	// The git commit subprocess's exit status wins over the code band.
	err := NewCommitExitError(errors.New("exit status 128"), 128)
	assert.Equal(t, 128, GetExitCode(err))

	// A zero status still maps to a failure exit code.
	err = NewCommitExitError(errors.New("signalled"), 0)
	assert.Equal(t, 1, GetExitCode(err))
}

func TestNewPromptTooLargeError(t *testing.T) {
	err := NewPromptTooLargeError(2_000_000, 1_000_000)
	assert.Equal(t, ErrPromptTooLarge, err.Code)
	assert.Contains(t, err.Message, "2000000")
	assert.Contains(t, err.Message, "1000000")
	assert.NotEmpty(t, err.Suggestion)
}

func TestFormatError(t *testing.T) {
	err := New(ErrInvalidConfig, "config file not found").
		WithSuggestion("create one")

	formatted := FormatError(err)
	assert.Contains(t, formatted, "Error: config file not found")
	assert.Contains(t, formatted, "Suggestion: create one")

	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "Error: plain", FormatError(errors.New("plain")))
}

func TestFormatErrorVerbose(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, ErrGeneratorFailed, "claude command failed").
		WithContext("stderr", "boom")

	formatted := FormatErrorVerbose(err)
	assert.Contains(t, formatted, "GeneratorFailed")
	assert.Contains(t, formatted, "root cause")
	assert.Contains(t, formatted, "stderr")
}
