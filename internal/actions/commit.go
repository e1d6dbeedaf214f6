// Package actions contains the orchestration logic for lit's commit flow.
package actions

import (
	"context"
	"errors"

	literrors "lit.dev/lit/internal/errors"
	"lit.dev/lit/internal/git"
	"lit.dev/lit/internal/lingo"
	"lit.dev/lit/internal/output"
	"lit.dev/lit/internal/runtime"
	"lit.dev/lit/internal/tui"
)

// CommitAction runs the full commit flow: validate repository state, inspect
// staged changes, generate a Conventional Commit, preview, confirm or edit,
// and invoke the final commit. It returns whether a commit was created.
//
// All user-visible messages are printed here; the returned error carries the
// machine-readable reason for callers that want to distinguish outcomes.
func CommitAction(ctx context.Context, rawMessage string, rc *runtime.Context) (bool, error) {
	if !rc.IsRepo() {
		rc.Splog.Error("Not inside a git repository.")
		return false, literrors.ErrNotARepository
	}

	stagedFiles, err := git.StagedFiles(ctx, rc.Git)
	if err != nil {
		rc.Splog.Error("Failed to inspect staged files: %v", err)
		return false, err
	}
	if len(stagedFiles) == 0 {
		rc.Splog.Error("No staged files. Run `git add` first.")
		return false, literrors.ErrNothingStaged
	}

	diff, err := git.StagedDiff(ctx, rc.Git)
	if err != nil {
		rc.Splog.Error("Failed to read staged diff: %v", err)
		return false, err
	}
	if diff == "" {
		// Binary-only changes produce no textual diff; keep going.
		rc.Splog.Warn("Staged changes are empty.")
	}

	var commit lingo.ConventionalCommit
	err = rc.Spin("Translating and analyzing via Lingo.dev...", func() error {
		commit = rc.Generator.Generate(ctx, rawMessage, diff)
		return nil
	})
	if err != nil {
		if errors.Is(err, tui.ErrInterrupted) {
			rc.Splog.Info("Interrupted.")
			return false, nil
		}
		return false, err
	}

	title, body := commit.FormatMessage()
	rc.Splog.Newline()
	rc.Splog.Page(output.RenderCommitPreview(title, body) + "\n")
	rc.Splog.Newline()

	action, err := rc.Prompt.ChooseAction()
	if err != nil {
		return false, err
	}

	switch action {
	case tui.ActionCancel:
		rc.Splog.Info("Commit cancelled.")
		return false, nil
	case tui.ActionEdit:
		commit, err = rc.Prompt.EditCommit(commit)
		if err != nil {
			return false, err
		}
		title, body = commit.FormatMessage()
	case tui.ActionAccept:
	}

	if err := git.Commit(rc.Git, title, body); err != nil {
		rc.Splog.Error("Commit failed. Check git status.")
		rc.Splog.Debug("commit error: %v", err)
		return false, nil
	}

	rc.Splog.Newline()
	rc.Splog.Page(output.RenderSuccess(title) + "\n")
	return true, nil
}
