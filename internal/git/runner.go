// Package git provides a wrapper around git commands and go-git for repository operations.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	literrors "lit.dev/lit/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// Runner defines the narrow interface for git process execution used by the
// commit flow. It exists so the flow can be tested against a fake without
// touching a real repository.
type Runner interface {
	// Run executes a git command, captures output, and returns it trimmed.
	Run(ctx context.Context, args ...string) (string, error)

	// RunRaw executes a git command and returns the captured output untrimmed.
	RunRaw(ctx context.Context, args ...string) (string, error)

	// RunInteractive executes a git command with stdin/stdout/stderr
	// connected to the terminal.
	RunInteractive(args ...string) error
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command with the given context and returns the raw output
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if isNotFound(err) {
			return "", literrors.ErrGitNotFound
		}
		if ctx.Err() == context.DeadlineExceeded {
			return "", literrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", literrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// RunInteractive executes a git command with stdin/stdout/stderr connected
// to the terminal.
func (r *CommandRunner) RunInteractive(args ...string) error {
	cmd := exec.Command("git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil && isNotFound(err) {
		return literrors.ErrGitNotFound
	}
	return err
}

// Passthrough forwards the argument list verbatim to git with inherited
// stdio and returns the child's exit code. A missing git binary is reported
// on stderr and mapped to exit code 1.
func Passthrough(args []string) int {
	cmd := exec.Command("git", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0
	}

	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode()
	}
	if isNotFound(err) {
		fmt.Fprintf(os.Stderr, "Error: %v. Please install git to use lit.\n", literrors.ErrGitNotFound)
		return 1
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// isNotFound reports whether err means the git binary could not be located
func isNotFound(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound)
}
