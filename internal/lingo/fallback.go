package lingo

import "strings"

var (
	fixKeywords  = []string{"fix", "bug", "issue", "correct", "resolve"}
	featKeywords = []string{"feat", "new", "add", "feature"}

	// All three must appear in the diff for the chore classification.
	choreKeywords = []string{"whitespace", "formatting", "style"}
)

// Fallback generates a best-effort Conventional Commit from keyword
// heuristics on the message and diff. It is deterministic and never fails;
// it is used whenever the engine is unavailable or returns unusable output.
func Fallback(rawMessage, diff string) ConventionalCommit {
	messageLower := strings.ToLower(rawMessage)
	diffLower := strings.ToLower(diff)

	commitType := "refactor"
	switch {
	case containsAny(messageLower, fixKeywords):
		commitType = "fix"
	case containsAny(messageLower, featKeywords):
		commitType = "feat"
	case strings.Contains(diffLower, "new file:"):
		commitType = "feat"
	case containsAll(diffLower, choreKeywords):
		commitType = "chore"
	}

	title := truncateTitle(rawMessage)
	// Users sometimes type "type: message" themselves; keep only the message.
	if idx := strings.Index(title, ":"); idx >= 0 {
		title = strings.TrimSpace(title[idx+1:])
	}

	return ConventionalCommit{
		Type:  commitType,
		Title: title,
		Body:  "Original message: " + rawMessage,
	}
}

// truncateTitle keeps messages of up to 70 characters verbatim; longer ones
// are cut to 67 characters plus an ellipsis marker.
func truncateTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= 70 {
		return message
	}
	return string(runes[:67]) + "..."
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func containsAll(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if !strings.Contains(s, keyword) {
			return false
		}
	}
	return true
}
