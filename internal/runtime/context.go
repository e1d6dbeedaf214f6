// Package runtime provides a context type that holds the git runner,
// generator, prompter, and logger for use throughout the application.
// This avoids passing multiple parameters.
package runtime

import (
	"lit.dev/lit/internal/git"
	"lit.dev/lit/internal/lingo"
	"lit.dev/lit/internal/output"
	"lit.dev/lit/internal/tui"
)

// Context provides access to the process runner, message generator,
// prompter, and output for commands
type Context struct {
	Git       git.Runner
	Generator *lingo.Generator
	Prompt    tui.Prompter
	Splog     *output.Splog

	// IsRepo reports whether the working directory is inside a git
	// repository. Overridable so flows can be tested outside a repository.
	IsRepo func() bool

	// Spin runs fn behind a wait indicator. Overridable so flows can be
	// tested headlessly, including the interrupted-wait path.
	Spin func(message string, fn func() error) error
}

// NewContext creates a context wired to the real git binary, the
// environment-configured Lingo engine, and interactive terminal prompts.
func NewContext() *Context {
	splog := output.NewSplog()
	return &Context{
		Git:       git.NewCommandRunner(""),
		Generator: lingo.NewGenerator(splog),
		Prompt:    tui.NewSurveyPrompter(),
		Splog:     splog,
		IsRepo:    git.IsRepository,
		Spin:      tui.Spin,
	}
}
