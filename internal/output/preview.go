package output

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	commitTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// RenderCommitPreview renders a bordered preview panel for the commit message
// that is about to be created. The title line is highlighted; the body is
// printed verbatim below it.
func RenderCommitPreview(title, body string) string {
	content := commitTitleStyle.Render(title) + "\n\n" + body
	return panelTitleStyle.Render("Commit Preview") + "\n" + panelStyle.Render(content)
}

// RenderSuccess renders the post-commit confirmation line
func RenderSuccess(title string) string {
	return successStyle.Render("✓ Commit successful!") + "\n" + commitTitleStyle.Render(title)
}
