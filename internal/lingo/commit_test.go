package lingo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCommitType(t *testing.T) {
	t.Run("accepts every allowed type", func(t *testing.T) {
		for _, commitType := range []string{"feat", "fix", "refactor", "docs", "chore", "test", "perf"} {
			require.True(t, ValidateCommitType(commitType), "type %q should be valid", commitType)
		}
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		require.True(t, ValidateCommitType("Fix"))
		require.True(t, ValidateCommitType("FEAT"))
	})

	t.Run("rejects anything outside the set", func(t *testing.T) {
		for _, commitType := range []string{"feature", "bug", "update", "wip", "hotfix", ""} {
			require.False(t, ValidateCommitType(commitType), "type %q should be invalid", commitType)
		}
	})
}

func TestValidateCommitTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{"short title", "add validation checks to login", true},
		{"exactly 72 characters", strings.Repeat("a", 72), true},
		{"73 characters", strings.Repeat("a", 73), false},
		{"trailing period", "add validation checks.", false},
		{"empty title", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, ValidateCommitTitle(tt.title))
		})
	}
}

func TestFormatMessage(t *testing.T) {
	t.Run("prefixes title with type", func(t *testing.T) {
		commit := ConventionalCommit{
			Type:  "fix",
			Title: "correct validation logic",
			Body:  "detailed explanation",
		}
		title, body := commit.FormatMessage()
		require.Equal(t, "fix: correct validation logic", title)
		require.Equal(t, "detailed explanation", body)
	})

	t.Run("preserves multiline body", func(t *testing.T) {
		commit := ConventionalCommit{
			Type:  "feat",
			Title: "add feature",
			Body:  "line 1\nline 2\nline 3",
		}
		_, body := commit.FormatMessage()
		require.Equal(t, "line 1\nline 2\nline 3", body)
	})
}
