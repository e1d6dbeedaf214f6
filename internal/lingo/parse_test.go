package lingo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("parses a bare JSON object", func(t *testing.T) {
		response := `{
			"type": "fix",
			"title": "correct login validation logic",
			"body": "add required field checks\nresolve null pointer issue"
		}`

		commit := ParseResponse(response)
		require.NotNil(t, commit)
		require.Equal(t, "fix", commit.Type)
		require.Equal(t, "correct login validation logic", commit.Title)
		require.Equal(t, "add required field checks\nresolve null pointer issue", commit.Body)
	})

	t.Run("parses JSON embedded in surrounding text", func(t *testing.T) {
		response := `Here's the commit:

		{
			"type": "feat",
			"title": "add oauth integration",
			"body": "implement oauth 2.0 flow"
		}

		Done!`

		commit := ParseResponse(response)
		require.NotNil(t, commit)
		require.Equal(t, "feat", commit.Type)
		require.Equal(t, "add oauth integration", commit.Title)
	})

	t.Run("lowercases the type and trims title and body", func(t *testing.T) {
		response := `{"type": "Docs", "title": "  update readme  ", "body": " explain setup "}`

		commit := ParseResponse(response)
		require.NotNil(t, commit)
		require.Equal(t, "docs", commit.Type)
		require.Equal(t, "update readme", commit.Title)
		require.Equal(t, "explain setup", commit.Body)
	})

	t.Run("returns nil for non-JSON text", func(t *testing.T) {
		require.Nil(t, ParseResponse("not valid json"))
	})

	t.Run("returns nil for malformed JSON", func(t *testing.T) {
		require.Nil(t, ParseResponse(`{"type": "fix", "title": `))
	})

	t.Run("returns nil when a field is missing", func(t *testing.T) {
		require.Nil(t, ParseResponse(`{"type": "fix", "title": "test"}`))
		require.Nil(t, ParseResponse(`{"type": "fix", "body": "test body"}`))
		require.Nil(t, ParseResponse(`{"title": "test", "body": "test body"}`))
	})

	t.Run("returns nil for an invalid type", func(t *testing.T) {
		require.Nil(t, ParseResponse(`{"type": "invalid", "title": "test", "body": "test body"}`))
	})

	t.Run("returns nil for an overlong title", func(t *testing.T) {
		longTitle := strings.Repeat("x", 73)
		require.Nil(t, ParseResponse(`{"type": "fix", "title": "`+longTitle+`", "body": "test body"}`))
	})

	t.Run("returns nil for a title ending in a period", func(t *testing.T) {
		require.Nil(t, ParseResponse(`{"type": "fix", "title": "fix it.", "body": "test body"}`))
	})

	t.Run("returns nil for an empty body", func(t *testing.T) {
		require.Nil(t, ParseResponse(`{"type": "fix", "title": "fix it", "body": "   "}`))
	})
}
