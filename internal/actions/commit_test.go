package actions

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	literrors "lit.dev/lit/internal/errors"
	"lit.dev/lit/internal/git"
	"lit.dev/lit/internal/lingo"
	"lit.dev/lit/internal/output"
	"lit.dev/lit/internal/runtime"
	"lit.dev/lit/internal/tui"
)

type scene struct {
	rc      *runtime.Context
	fake    *git.FakeRunner
	prompt  *tui.ScriptedPrompter
	mock    *lingo.MockClient
	console *bytes.Buffer
}

func newScene(t *testing.T) *scene {
	t.Helper()

	var console bytes.Buffer
	splog, err := output.NewSplogWithConfig(&console, "")
	require.NoError(t, err)

	fake := git.NewFakeRunner()
	fake.Responses["diff --cached --name-only"] = "internal/auth/login.go"
	fake.Responses["diff --cached"] = "diff --git a/internal/auth/login.go b/internal/auth/login.go\n+check password\n"

	mock := lingo.NewMockClient()
	mock.SetMockResponse(`{"type": "fix", "title": "correct login validation", "body": "add required field checks"}`)

	prompt := &tui.ScriptedPrompter{Action: tui.ActionAccept}

	rc := &runtime.Context{
		Git:       fake,
		Generator: lingo.NewGeneratorWithClient(mock, splog),
		Prompt:    prompt,
		Splog:     splog,
		IsRepo:    func() bool { return true },
		Spin:      func(_ string, fn func() error) error { return fn() },
	}

	return &scene{rc: rc, fake: fake, prompt: prompt, mock: mock, console: &console}
}

func TestCommitActionAccept(t *testing.T) {
	s := newScene(t)

	committed, err := CommitAction(context.Background(), "login ka bug fix", s.rc)
	require.NoError(t, err)
	require.True(t, committed)

	require.Len(t, s.fake.InteractiveCalls, 1)
	require.Equal(t,
		[]string{"commit", "-m", "fix: correct login validation", "-m", "add required field checks"},
		s.fake.InteractiveCalls[0])
	require.Contains(t, s.console.String(), "Commit Preview")
	require.Contains(t, s.console.String(), "Commit successful!")
}

func TestCommitActionAbortsOutsideRepository(t *testing.T) {
	s := newScene(t)
	s.rc.IsRepo = func() bool { return false }

	committed, err := CommitAction(context.Background(), "anything", s.rc)
	require.ErrorIs(t, err, literrors.ErrNotARepository)
	require.False(t, committed)
	require.Empty(t, s.fake.InteractiveCalls)
	require.Contains(t, s.console.String(), "Not inside a git repository")
}

func TestCommitActionAbortsWithNothingStaged(t *testing.T) {
	s := newScene(t)
	s.fake.Responses["diff --cached --name-only"] = ""

	committed, err := CommitAction(context.Background(), "anything", s.rc)
	require.ErrorIs(t, err, literrors.ErrNothingStaged)
	require.False(t, committed)
	require.Contains(t, s.console.String(), "No staged files")
}

func TestCommitActionWarnsOnEmptyDiff(t *testing.T) {
	s := newScene(t)
	s.fake.Responses["diff --cached"] = ""

	committed, err := CommitAction(context.Background(), "login ka bug fix", s.rc)
	require.NoError(t, err)
	require.True(t, committed)
	require.Contains(t, s.console.String(), "Staged changes are empty")
}

func TestCommitActionCancel(t *testing.T) {
	s := newScene(t)
	s.prompt.Action = tui.ActionCancel

	committed, err := CommitAction(context.Background(), "login ka bug fix", s.rc)
	require.NoError(t, err)
	require.False(t, committed)
	require.Empty(t, s.fake.InteractiveCalls)
	require.Contains(t, s.console.String(), "Commit cancelled")
}

func TestCommitActionEdit(t *testing.T) {
	s := newScene(t)
	s.prompt.Action = tui.ActionEdit
	s.prompt.EditTitle = "tighten login checks"
	s.prompt.EditBody = "reject empty passwords"

	committed, err := CommitAction(context.Background(), "login ka bug fix", s.rc)
	require.NoError(t, err)
	require.True(t, committed)
	require.Equal(t, 1, s.prompt.EditCalls)
	require.Equal(t,
		[]string{"commit", "-m", "fix: tighten login checks", "-m", "reject empty passwords"},
		s.fake.InteractiveCalls[0])
}

func TestCommitActionEmptyEditKeepsOriginal(t *testing.T) {
	s := newScene(t)
	s.prompt.Action = tui.ActionEdit
	s.prompt.EditTitle = ""
	s.prompt.EditBody = "only a body"

	committed, err := CommitAction(context.Background(), "login ka bug fix", s.rc)
	require.NoError(t, err)
	require.True(t, committed)
	require.Equal(t,
		[]string{"commit", "-m", "fix: correct login validation", "-m", "add required field checks"},
		s.fake.InteractiveCalls[0])
}

func TestCommitActionFallsBackWhenEngineFails(t *testing.T) {
	s := newScene(t)
	s.mock.SetMockError(literrors.NewEngineRequestError(errors.New("connection refused")))

	committed, err := CommitAction(context.Background(), "fixed the login bug", s.rc)
	require.NoError(t, err)
	require.True(t, committed)
	require.Contains(t, s.console.String(), "Translation failed")
	require.Equal(t,
		[]string{"commit", "-m", "fix: fixed the login bug", "-m", "Original message: fixed the login bug"},
		s.fake.InteractiveCalls[0])
}

func TestCommitActionInterruptedWait(t *testing.T) {
	s := newScene(t)
	s.rc.Spin = func(string, func() error) error { return tui.ErrInterrupted }

	committed, err := CommitAction(context.Background(), "login ka bug fix", s.rc)
	require.NoError(t, err)
	require.False(t, committed)
	require.Empty(t, s.fake.InteractiveCalls)
	require.Equal(t, 0, s.prompt.ChooseCalls)
	require.Contains(t, s.console.String(), "Interrupted")
}

func TestCommitActionEditInterruptKeepsOriginal(t *testing.T) {
	s := newScene(t)
	s.prompt.Action = tui.ActionEdit
	s.prompt.EditInterrupt = true

	committed, err := CommitAction(context.Background(), "login ka bug fix", s.rc)
	require.NoError(t, err)
	require.True(t, committed)
	require.Equal(t, 1, s.prompt.EditCalls)
	require.Equal(t,
		[]string{"commit", "-m", "fix: correct login validation", "-m", "add required field checks"},
		s.fake.InteractiveCalls[0])
}

func TestCommitActionReportsCommitFailure(t *testing.T) {
	s := newScene(t)
	s.fake.InteractiveErr = errors.New("exit status 1")

	committed, err := CommitAction(context.Background(), "login ka bug fix", s.rc)
	require.NoError(t, err)
	require.False(t, committed)
	require.Contains(t, s.console.String(), "Commit failed")
}
