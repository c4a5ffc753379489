// Package errors provides sentinel errors and custom error types for gitkit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each failure class
var (
	// ErrValidation indicates malformed input: a bad object id, an unknown
	// object kind or a row that does not match its grammar
	ErrValidation = errors.New("validation failed")

	// ErrExternalTool indicates that git reported a failure
	ErrExternalTool = errors.New("external tool failed")

	// ErrNotFound indicates that a ref, revision or commit does not resolve
	ErrNotFound = errors.New("not found")
)

// ValidationError represents input that violates a codec invariant
type ValidationError struct {
	What  string
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q", e.What, e.Input)
}

// Is returns true if the target error is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError
func NewValidationError(what, input string) *ValidationError {
	return &ValidationError{What: what, Input: input}
}

// ExternalToolError represents a failure reported by git. Message holds the
// tool's own diagnostic line verbatim when one was emitted.
type ExternalToolError struct {
	Command  string
	Args     []string
	Message  string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *ExternalToolError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	msg := fmt.Sprintf("%s command failed", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(": %s", strings.Join(e.Args, " "))
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrExternalTool
func (e *ExternalToolError) Is(target error) bool {
	return target == ErrExternalTool
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// NewExternalToolError creates a new ExternalToolError
func NewExternalToolError(command string, args []string, stdout, stderr string, err error) *ExternalToolError {
	return &ExternalToolError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// NotFoundError represents a ref or object that does not resolve
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Kind, e.Name)
}

// Is returns true if the target error is ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}
