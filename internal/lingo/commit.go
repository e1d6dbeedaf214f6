// Package lingo generates Conventional Commit messages from free-form,
// possibly mixed-language input and a staged diff, using the Lingo.dev
// engine with a deterministic keyword heuristic as fallback.
package lingo

import (
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the maximum length of a Conventional Commit title
const MaxTitleLength = 72

// CommitTypes is the fixed set of allowed Conventional Commit types
var CommitTypes = map[string]bool{
	"feat":     true,
	"fix":      true,
	"refactor": true,
	"docs":     true,
	"chore":    true,
	"test":     true,
	"perf":     true,
}

// ConventionalCommit represents a Conventional Commit with type, title, and body
type ConventionalCommit struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// FormatMessage formats the commit as (title, body) for git commit
func (c ConventionalCommit) FormatMessage() (string, string) {
	return c.Type + ": " + c.Title, c.Body
}

// ValidateCommitType reports whether commitType is one of the allowed
// Conventional Commit types. The check is case-insensitive.
func ValidateCommitType(commitType string) bool {
	return CommitTypes[strings.ToLower(commitType)]
}

// ValidateCommitTitle reports whether the title is at most 72 characters
// and does not end with a period.
func ValidateCommitTitle(title string) bool {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return false
	}
	if strings.HasSuffix(title, ".") {
		return false
	}
	return true
}
