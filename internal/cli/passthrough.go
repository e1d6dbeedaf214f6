package cli

import (
	"os"

	"lit.dev/lit/internal/git"
)

// routedCommands are handled by cobra instead of being forwarded to git
var routedCommands = []string{
	"commit",
	"help",
	"completion",
	"-h",
	"--help",
	"--version",
}

// ShouldPassthrough reports whether the invocation should be forwarded to
// git verbatim: any first argument that is not the commit flow or one of
// lit's own help/version surfaces.
func ShouldPassthrough(args []string) bool {
	if len(args) < 2 {
		return false
	}
	command := args[1]
	for _, routed := range routedCommands {
		if command == routed {
			return false
		}
	}
	return true
}

// HandlePassthrough checks if the command should be passed through to git
// and executes it if so, exiting with the child's exit code. Returns true
// if the command was handled (and the program should exit).
func HandlePassthrough(args []string) bool {
	if !ShouldPassthrough(args) {
		return false
	}

	os.Exit(git.Passthrough(args[1:]))
	return true
}
