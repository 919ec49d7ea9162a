// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultAPIAddress      = "http://localhost:8080"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultSessionDSN      = "vault-keeper.db"
	DefaultHandoffTTL      = 10 * time.Minute
	DefaultOAuthPath       = "/auth/google"
	DefaultCallbackAddress = "127.0.0.1:8765"
	DefaultLogLevel        = "debug"
)

// StructuredConfig is the top-level configuration container for the
// go-vault-keeper client. It aggregates all sub-configurations and is
// populated by merging defaults with values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds UI-level settings such as the start location.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote vault API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the session file and handoff cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds the OAuth login settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Log holds the log file destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings of the terminal UI itself.
type App struct {
	// StartURL is the first location the router opens, e.g.
	// "/login?token=...&user_id=..." or "/vault/42". Empty means "/vault"
	// when a session exists and "/login" otherwise.
	// Env: APP_START_URL
	StartURL string `env:"START_URL"`

	// Incognito keeps the session in memory only; nothing is written to the
	// session file.
	// Env: APP_INCOGNITO
	Incognito bool `env:"INCOGNITO"`
}

// Adapter holds configuration of the remote vault API.
type Adapter struct {
	// APIAddress is the base URL of the vault API (e.g. "http://localhost:8080").
	// A missing scheme is completed with http://.
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the client-side stores.
type Storage struct {
	// Session holds the persisted identity store settings.
	Session Session `envPrefix:"SESSION_"`

	// Handoff holds the in-process list-to-detail handoff cache settings.
	Handoff Handoff `envPrefix:"HANDOFF_"`
}

// Session holds settings of the SQLite session file.
type Session struct {
	// DSN is the SQLite file path of the session store.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Handoff holds settings of the handoff cache.
type Handoff struct {
	// TTL is how long an unconsumed handoff entry is kept.
	// Env: STORAGE_HANDOFF_TTL
	TTL time.Duration `env:"TTL"`
}

// Auth holds settings of the OAuth login flow.
type Auth struct {
	// OAuthPath is the path of the OAuth initiation endpoint relative to
	// the API address.
	// Env: AUTH_OAUTH_PATH
	OAuthPath string `env:"OAUTH_PATH"`

	// CallbackAddress is the loopback host:port the callback listener binds.
	// Empty disables the listener.
	// Env: AUTH_CALLBACK_ADDRESS
	CallbackAddress string `env:"CALLBACK_ADDRESS"`

	// NoBrowser disables opening the OAuth page in the system browser; the
	// URL is only shown on the login page.
	// Env: AUTH_NO_BROWSER
	NoBrowser bool `env:"NO_BROWSER"`
}

// Log holds logger settings.
type Log struct {
	// File is the path of the JSON log file. Empty means vault-keeper.log
	// next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			APIAddress:     DefaultAPIAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Session: Session{DSN: DefaultSessionDSN},
			Handoff: Handoff{TTL: DefaultHandoffTTL},
		},
		Auth: Auth{
			OAuthPath:       DefaultOAuthPath,
			CallbackAddress: DefaultCallbackAddress,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
