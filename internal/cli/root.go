// Package cli wires lit's command router: the commit flow runs through
// cobra, everything else passes straight through to git.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lit",
		Short: "lit - Type how you think, commit effortlessly.",
		Long: `lit wraps git. Type your commit message the way you think, in any
language or a mix, and lit turns it into a Conventional Commit using the
staged diff for context. Every other git command passes through unchanged.

Examples:
  lit status                   # git passthrough
  lit push origin main         # git passthrough
  lit commit -m "message"      # AI-powered commit`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCommitCmd())

	return rootCmd
}
