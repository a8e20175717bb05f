// Package errors provides error types, handling utilities, and logging for aicommit.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents the category of an error.
type ErrorCode int

const (
	// User errors (Exit Code 1)
	ErrNoStagedChanges ErrorCode = iota + 100
	ErrInvalidConfig
	ErrInvalidArguments
	ErrPromptTooLarge
	ErrToolNotFound

	// System errors (Exit Code 2)
	ErrGitCommandFailed ErrorCode = iota + 200
	ErrFileSystemError
	ErrSerializationFailed

	// External errors (Exit Code 3)
	ErrGeneratorFailed ErrorCode = iota + 300
	ErrEmptyGeneratorOutput
)

// ExitCode returns the appropriate exit code for an error code.
func (c ErrorCode) ExitCode() int {
	switch {
	case c >= 100 && c < 200:
		return 1 // User errors
	case c >= 200 && c < 300:
		return 2 // System errors
	case c >= 300:
		return 3 // External errors
	default:
		return 1
	}
}

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrNoStagedChanges:
		return "NoStagedChanges"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrInvalidArguments:
		return "InvalidArguments"
	case ErrPromptTooLarge:
		return "PromptTooLarge"
	case ErrToolNotFound:
		return "ToolNotFound"
	case ErrGitCommandFailed:
		return "GitCommandFailed"
	case ErrFileSystemError:
		return "FileSystemError"
	case ErrSerializationFailed:
		return "SerializationFailed"
	case ErrGeneratorFailed:
		return "GeneratorFailed"
	case ErrEmptyGeneratorOutput:
		return "EmptyGeneratorOutput"
	default:
		return "Unknown"
	}
}

// AppError represents an application error with context.
type AppError struct {
	Code       ErrorCode
	Message    string
	Cause      error
	Context    map[string]interface{}
	Suggestion string
	// ExitStatus, when non-zero, overrides the code-based exit code.
	// Used to propagate the exact exit status of the git commit subprocess.
	ExitStatus int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion to the error.
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestion = suggestion
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with context.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapWithContext wraps an error with a context message.
func WrapWithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from an error chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetExitCode returns the appropriate exit code for an error.
func GetExitCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		if appErr.ExitStatus != 0 {
			return appErr.ExitStatus
		}
		return appErr.Code.ExitCode()
	}
	return 1 // Default to user error
}

// Common error constructors with suggestions

// NewNoStagedChangesError creates an error for no staged changes.
func NewNoStagedChangesError() *AppError {
	return &AppError{
		Code:       ErrNoStagedChanges,
		Message:    "no staged changes found",
		Suggestion: "Use 'git add <files>' to stage changes before generating a commit message",
	}
}

// NewInvalidConfigError creates an error for invalid configuration.
func NewInvalidConfigError(message string) *AppError {
	return &AppError{
		Code:       ErrInvalidConfig,
		Message:    message,
		Suggestion: "Run 'aicommit config init <path>' to create a valid configuration file",
	}
}

// NewPromptTooLargeError creates an error for an oversized generation request.
func NewPromptTooLargeError(size, maxSize int) *AppError {
	return &AppError{
		Code:       ErrPromptTooLarge,
		Message:    fmt.Sprintf("prompt size (%d bytes) exceeds maximum allowed size (%d bytes)", size, maxSize),
		Suggestion: "Reduce the size of staged changes or split into multiple commits",
	}
}

// NewToolNotFoundError creates an error for a missing executable.
func NewToolNotFoundError(tool, instructions string) *AppError {
	return &AppError{
		Code:       ErrToolNotFound,
		Message:    fmt.Sprintf("required command %q not found in PATH", tool),
		Suggestion: instructions,
	}
}

// NewGitError creates an error for git command failures.
func NewGitError(err error, output string) *AppError {
	appErr := &AppError{
		Code:    ErrGitCommandFailed,
		Message: "git command failed",
		Cause:   err,
	}
	if output != "" {
		appErr.Context = map[string]interface{}{
			"output": output,
		}
	}
	return appErr
}

// NewCommitExitError creates an error carrying the exit status of the
// git commit subprocess so the process can exit with the same status.
func NewCommitExitError(err error, exitStatus int) *AppError {
	if exitStatus == 0 {
		exitStatus = 1
	}
	return &AppError{
		Code:       ErrGitCommandFailed,
		Message:    "git commit failed",
		Cause:      err,
		ExitStatus: exitStatus,
	}
}

// NewFileSystemError creates an error for filesystem failures.
func NewFileSystemError(err error, path string) *AppError {
	return &AppError{
		Code:    ErrFileSystemError,
		Message: fmt.Sprintf("filesystem error at %s", path),
		Cause:   err,
	}
}

// NewSerializationError creates an error for output encoding failures.
func NewSerializationError(err error) *AppError {
	return &AppError{
		Code:    ErrSerializationFailed,
		Message: "failed to encode output",
		Cause:   err,
	}
}

// NewGeneratorError creates an error for AI generator subprocess failures.
func NewGeneratorError(command string, err error) *AppError {
	return &AppError{
		Code:       ErrGeneratorFailed,
		Message:    fmt.Sprintf("%s command failed", command),
		Cause:      err,
		Suggestion: fmt.Sprintf("Make sure %q is installed and working (try running it manually)", command),
	}
}

// NewEmptyGeneratorOutputError creates an error for an empty AI response.
func NewEmptyGeneratorOutputError(command string) *AppError {
	return &AppError{
		Code:       ErrEmptyGeneratorOutput,
		Message:    fmt.Sprintf("%s produced no output", command),
		Suggestion: "Check the prompt template in your config file",
	}
}

// FormatError formats an error for user display.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	appErr := GetAppError(err)
	if appErr != nil {
		sb.WriteString("Error: ")
		sb.WriteString(appErr.Message)

		if appErr.Cause != nil {
			sb.WriteString("\n  Cause: ")
			sb.WriteString(appErr.Cause.Error())
		}

		if appErr.Suggestion != "" {
			sb.WriteString("\n  Suggestion: ")
			sb.WriteString(appErr.Suggestion)
		}
	} else {
		sb.WriteString("Error: ")
		sb.WriteString(err.Error())
	}

	return sb.String()
}

// FormatErrorVerbose formats an error with full details for verbose mode.
func FormatErrorVerbose(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	appErr := GetAppError(err)
	if appErr != nil {
		sb.WriteString(fmt.Sprintf("Error [%s]: %s\n", appErr.Code.String(), appErr.Message))

		if appErr.Cause != nil {
			sb.WriteString(fmt.Sprintf("  Cause: %v\n", appErr.Cause))
			sb.WriteString("  Error chain:\n")
			printErrorChain(&sb, appErr.Cause, 2)
		}

		if len(appErr.Context) > 0 {
			sb.WriteString("  Context:\n")
			for k, v := range appErr.Context {
				sb.WriteString(fmt.Sprintf("    %s: %v\n", k, v))
			}
		}

		if appErr.Suggestion != "" {
			sb.WriteString(fmt.Sprintf("  Suggestion: %s\n", appErr.Suggestion))
		}

		if appErr.ExitStatus != 0 {
			sb.WriteString(fmt.Sprintf("  Exit status: %d\n", appErr.ExitStatus))
		}
	} else {
		sb.WriteString(fmt.Sprintf("Error: %v\n", err))
		sb.WriteString("  Error chain:\n")
		printErrorChain(&sb, err, 2)
	}

	return sb.String()
}

// printErrorChain prints the error chain with indentation.
func printErrorChain(sb *strings.Builder, err error, indent int) {
	if err == nil {
		return
	}

	prefix := strings.Repeat("  ", indent)
	sb.WriteString(fmt.Sprintf("%s- %T: %v\n", prefix, err, err))

	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		printErrorChain(sb, unwrapped, indent+1)
	}
}
