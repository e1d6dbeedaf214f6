package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIKey(t *testing.T) {
	t.Run("returns empty string when unset", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "")
		require.Empty(t, APIKey())
	})

	t.Run("returns the configured key", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "api_test_123")
		require.Equal(t, "api_test_123", APIKey())
	})
}

func TestEngineURL(t *testing.T) {
	t.Run("defaults to the production engine", func(t *testing.T) {
		t.Setenv(engineURLEnv, "")
		require.Equal(t, DefaultEngineURL, EngineURL())
	})

	t.Run("honors the override", func(t *testing.T) {
		t.Setenv(engineURLEnv, "http://localhost:8080")
		require.Equal(t, "http://localhost:8080", EngineURL())
	})
}
