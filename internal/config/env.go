// Package config provides environment-backed configuration for lit.
//
// The only required setting is the Lingo.dev API key; everything else has a
// sensible default. A .env file in the working directory is honored so the
// key does not need to live in the shell profile.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	apiKeyEnv    = "LINGODOTDEV_API_KEY"
	engineURLEnv = "LINGODOTDEV_API_URL"

	// DefaultEngineURL is the production Lingo.dev engine endpoint
	DefaultEngineURL = "https://engine.lingo.dev"
)

// LoadDotEnv loads variables from a .env file in the current directory, if
// one exists. Variables already present in the environment take precedence.
func LoadDotEnv() {
	// A missing .env file is the common case, not an error.
	_ = godotenv.Load()
}

// APIKey returns the configured Lingo.dev API key, or "" when unset.
func APIKey() string {
	return os.Getenv(apiKeyEnv)
}

// EngineURL returns the Lingo.dev engine base URL, honoring the
// LINGODOTDEV_API_URL override.
func EngineURL() string {
	if url := os.Getenv(engineURLEnv); url != "" {
		return url
	}
	return DefaultEngineURL
}
