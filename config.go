// =============================================================================
// config.go - Runtime Configuration
// =============================================================================
//
// Resolves the settings the CLI needs before it can talk to the Mastermind
// service: the API base URL, the HTTP timeout, and the log level.
//
// Resolution order for each setting:
//   1. Command-line flag (--api-url), applied in main.go
//   2. Environment variable (optionally loaded from a .env file)
//   3. Built-in default
//
// A .env file in the working directory is loaded via godotenv when present,
// which keeps local development settings out of the shell profile. Variables
// already exported in the real environment win over .env values.
//
// =============================================================================

package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/amirhoseinsalami/MastermindGame/mastermindapi"
)

// Environment variable names recognized by the CLI.
const (
	envAPIURL      = "MASTERMIND_API_URL"
	envHTTPTimeout = "MASTERMIND_HTTP_TIMEOUT"
	envLogLevel    = "LOG_LEVEL"
)

// defaultLogLevel keeps diagnostic logging off unless explicitly requested,
// so log lines never interleave with the game transcript.
const defaultLogLevel = "disabled"

// config holds the resolved runtime settings.
type config struct {
	apiURL      string
	httpTimeout time.Duration
	logLevel    string
}

// loadConfig resolves settings from a .env file (if present) and the
// environment, falling back to defaults. It never fails: a missing .env
// file is the same as an empty one, and malformed values fall back to
// their defaults.
func loadConfig() config {
	// godotenv.Load never overwrites variables already exported in the
	// environment, so real env vars take precedence over the .env file.
	_ = godotenv.Load()

	return config{
		apiURL:      envString(envAPIURL, mastermindapi.DefaultBaseURL),
		httpTimeout: envDuration(envHTTPTimeout, mastermindapi.DefaultTimeout),
		logLevel:    envString(envLogLevel, defaultLogLevel),
	}
}

// envString returns the value of the named environment variable, or def if
// the variable is unset or empty.
func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDuration returns the named environment variable parsed as a
// time.Duration ("10s", "1m30s"), or def if unset or unparseable.
func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

// homeDir returns the current user's home directory, or "" if it cannot be
// determined. Used for the line editor's history file.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
