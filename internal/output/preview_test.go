package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Force a deterministic color profile so rendered output is stable
	// regardless of the terminal running the tests.
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestRenderCommitPreview(t *testing.T) {
	out := RenderCommitPreview("fix: correct validation logic", "detailed explanation")

	require.Contains(t, out, "Commit Preview")
	require.Contains(t, out, "fix: correct validation logic")
	require.Contains(t, out, "detailed explanation")
}

func TestRenderCommitPreviewKeepsBodyNewlines(t *testing.T) {
	out := RenderCommitPreview("feat: add feature", "line 1\nline 2\nline 3")

	require.Contains(t, out, "line 1")
	require.Contains(t, out, "line 2")
	require.Contains(t, out, "line 3")
}

func TestRenderSuccess(t *testing.T) {
	out := RenderSuccess("feat: add oauth integration")

	require.Contains(t, out, "Commit successful!")
	require.Contains(t, out, "feat: add oauth integration")
}
