package lingo

import (
	"encoding/json"
	"regexp"
	"strings"
)

// jsonObjectPattern matches from the first "{" to the last "}" in the text,
// so a JSON object survives any surrounding prose the engine emits.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseResponse extracts a Conventional Commit from free-form engine
// response text. The text is expected to contain one JSON object with
// string fields "type", "title", and "body". Returns nil when no valid
// commit can be extracted; the caller falls back to heuristic generation.
func ParseResponse(response string) *ConventionalCommit {
	jsonStr := jsonObjectPattern.FindString(response)
	if jsonStr == "" {
		return nil
	}

	var data struct {
		Type  *string `json:"type"`
		Title *string `json:"title"`
		Body  *string `json:"body"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return nil
	}
	if data.Type == nil || data.Title == nil || data.Body == nil {
		return nil
	}

	commitType := strings.ToLower(*data.Type)
	title := strings.TrimSpace(*data.Title)
	body := strings.TrimSpace(*data.Body)

	if !ValidateCommitType(commitType) {
		return nil
	}
	if !ValidateCommitTitle(title) {
		return nil
	}
	if body == "" {
		return nil
	}

	return &ConventionalCommit{Type: commitType, Title: title, Body: body}
}
