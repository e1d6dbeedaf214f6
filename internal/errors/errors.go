// Package errors provides sentinel errors and custom error types for the lit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not inside a git repository")

	// ErrNothingStaged indicates that there are no staged changes to commit
	ErrNothingStaged = errors.New("no staged files")

	// ErrMissingAPIKey indicates that the Lingo.dev API key is not configured
	ErrMissingAPIKey = errors.New("LINGODOTDEV_API_KEY environment variable is not set")

	// ErrGitNotFound indicates that the git binary could not be located
	ErrGitNotFound = errors.New("git is not installed or not in PATH")

	// ErrMissingMessage indicates that lit commit was invoked without -m
	ErrMissingMessage = errors.New(`commit requires a message. Use: lit commit -m "message"`)

	// ErrNotCommitted indicates that the commit flow finished without creating a commit.
	// The flow has already reported the reason; callers map it to a nonzero exit
	// without printing anything further.
	ErrNotCommitted = errors.New("not committed")

	// ErrEngineRequest indicates a network or API failure talking to the Lingo engine
	ErrEngineRequest = errors.New("engine request failed")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// EngineRequestError represents a transport-level failure of the Lingo engine call.
// It is recoverable: the generator falls back to heuristic generation.
type EngineRequestError struct {
	Err error
}

func (e *EngineRequestError) Error() string {
	return fmt.Sprintf("engine request failed: %v", e.Err)
}

func (e *EngineRequestError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrEngineRequest
func (e *EngineRequestError) Is(target error) bool {
	return target == ErrEngineRequest
}

// NewEngineRequestError creates a new EngineRequestError
func NewEngineRequestError(err error) *EngineRequestError {
	return &EngineRequestError{Err: err}
}
