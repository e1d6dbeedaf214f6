package cli

import (
	"github.com/spf13/cobra"

	"lit.dev/lit/internal/actions"
	literrors "lit.dev/lit/internal/errors"
	"lit.dev/lit/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit -m \"message\"",
		Short: "Generate a Conventional Commit from your message and the staged diff",
		Long: `Generate a Conventional Commit from a free-form message and the staged diff.

The message may be in any language, including mixed colloquial blends like
Hinglish. lit translates the intent to English, analyzes the staged changes,
previews the generated commit, and asks for confirmation before committing.`,
		// Other git commit flags are accepted on the command line but the
		// flow itself only uses -m.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if message == "" {
				return literrors.ErrMissingMessage
			}

			rc := runtime.NewContext()
			committed, err := actions.CommitAction(cmd.Context(), message, rc)
			if err != nil || !committed {
				// The flow already reported the reason on the console.
				return literrors.ErrNotCommitted
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message in any language")

	return cmd
}
