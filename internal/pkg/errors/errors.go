// Package errors provides the error taxonomy and formatting utilities for aicommit.
package errors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrorCode represents the category of an error.
type ErrorCode int

const (
	// User errors (Exit Code 1)
	ErrMissingCredential ErrorCode = iota + 100
	ErrNoStagedChanges
	ErrDiffTooLarge
	ErrInvalidConfig

	// System errors (Exit Code 2)
	ErrCollectorShape ErrorCode = iota + 200
	ErrGitCommandFailed
	ErrFileSystem

	// External errors (Exit Code 3)
	ErrTransport ErrorCode = iota + 300
	ErrParse
	ErrEmptyMessage
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
	case ErrMissingCredential:
		return "MissingCredential"
	case ErrNoStagedChanges:
		return "NoStagedChanges"
	case ErrDiffTooLarge:
		return "DiffTooLarge"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrCollectorShape:
		return "CollectorShape"
	case ErrGitCommandFailed:
		return "GitCommandFailed"
	case ErrFileSystem:
		return "FileSystem"
	case ErrTransport:
		return "Transport"
	case ErrParse:
		return "Parse"
	case ErrEmptyMessage:
		return "EmptyMessage"
	default:
		return "Unknown"
	}
}

// IsWarning reports whether the code is a "nothing to do" condition rather
// than a hard failure. These surface as warnings, not errors.
func (c ErrorCode) IsWarning() bool {
	return c == ErrNoStagedChanges || c == ErrEmptyMessage
}

// AppError represents an application error with context.
type AppError struct {
	Code       ErrorCode
	Message    string
	Cause      error
	Suggestion string

	// Status and Body carry the HTTP diagnostics for transport failures.
	// Status is 0 when the request never produced a response.
	Status int
	Body   string
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

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion adds a suggestion to the error.
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestion = suggestion
	return e
}

// GetAppError extracts an AppError from an error chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// GetExitCode returns the appropriate exit code for an error.
func GetExitCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code.ExitCode()
	}
	return 1
}

// NewMissingCredentialError creates an error for an unresolvable API key.
func NewMissingCredentialError(envName string) *AppError {
	return &AppError{
		Code:       ErrMissingCredential,
		Message:    "no API key configured",
		Suggestion: fmt.Sprintf("Set provider.api_key in the config file or export %s", envName),
	}
}

// NewNoStagedChangesError creates an error for an empty staged diff.
func NewNoStagedChangesError() *AppError {
	return &AppError{
		Code:       ErrNoStagedChanges,
		Message:    "no staged changes found",
		Suggestion: "Use 'git add <files>' to stage changes before generating a commit message",
	}
}

// NewCollectorShapeError creates an error for diff collector output that is
// not a decodable sequence of text lines.
func NewCollectorShapeError(detail string) *AppError {
	return &AppError{
		Code:    ErrCollectorShape,
		Message: fmt.Sprintf("unexpected diff collector output: %s", detail),
	}
}

// NewDiffTooLargeError creates an error for a staged diff exceeding the
// configured size limit.
func NewDiffTooLargeError(size, limit int) *AppError {
	return &AppError{
		Code:       ErrDiffTooLarge,
		Message:    fmt.Sprintf("staged diff is %d bytes, limit is %d", size, limit),
		Suggestion: "Split the change into smaller commits or raise max_diff_bytes",
	}
}

// NewTransportError creates an error for a failed completion exchange.
// status is the HTTP status code, or 0 if no response was received.
func NewTransportError(status int, body string, cause error) *AppError {
	msg := "completion request failed"
	if status != 0 {
		msg = fmt.Sprintf("completion endpoint returned status %d", status)
	}
	return &AppError{
		Code:       ErrTransport,
		Message:    msg,
		Cause:      cause,
		Status:     status,
		Body:       body,
		Suggestion: "Check your network connection, endpoint URL and API key",
	}
}

// NewParseError creates an error for an undecodable response body.
func NewParseError(cause error) *AppError {
	return &AppError{
		Code:    ErrParse,
		Message: "could not decode completion response",
		Cause:   cause,
	}
}

// NewEmptyMessageError creates an error for a response with no usable content.
func NewEmptyMessageError() *AppError {
	return &AppError{
		Code:    ErrEmptyMessage,
		Message: "completion response contained no message content",
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
		appErr.Message = fmt.Sprintf("git command failed: %s", strings.TrimSpace(output))
	}
	return appErr
}

// FormatError formats an error for user display.
// API keys and other sensitive data are automatically masked.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	appErr := GetAppError(err)
	if appErr != nil {
		sb.WriteString(SanitizeErrorMessage(appErr.Message))

		if appErr.Cause != nil {
			sb.WriteString("\n  Cause: ")
			sb.WriteString(SanitizeErrorMessage(appErr.Cause.Error()))
		}

		if appErr.Status != 0 && appErr.Body != "" {
			sb.WriteString("\n  Response: ")
			sb.WriteString(SanitizeErrorMessage(appErr.Body))
		}

		if appErr.Suggestion != "" {
			sb.WriteString("\n  Suggestion: ")
			sb.WriteString(appErr.Suggestion)
		}
	} else {
		sb.WriteString(SanitizeErrorMessage(err.Error()))
	}

	return sb.String()
}

// SanitizeErrorMessage masks any API keys or bearer tokens in error messages.
func SanitizeErrorMessage(msg string) string {
	return apiKeyPattern.ReplaceAllStringFunc(msg, func(match string) string {
		if len(match) <= 4 {
			return "****"
		}
		return strings.Repeat("*", len(match)-4) + match[len(match)-4:]
	})
}

// apiKeyPattern matches common API key patterns.
var apiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9-_]{20,}`)

// MaskAPIKey masks an API key for safe logging, showing only the last 4 characters.
func MaskAPIKey(apiKey string) string {
	if len(apiKey) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(apiKey)-4) + apiKey[len(apiKey)-4:]
}
