// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_START_URL": "/login?user_id=u1",
		"APP_INCOGNITO": "true",

		"ADAPTER_API_ADDRESS":     "https://vault.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + SESSION_ / HANDOFF_
		"STORAGE_SESSION_DSN": "/tmp/session.db",
		"STORAGE_HANDOFF_TTL": "5m",

		"AUTH_OAUTH_PATH":       "/auth/github",
		"AUTH_CALLBACK_ADDRESS": "127.0.0.1:9000",
		"AUTH_NO_BROWSER":       "true",

		"LOG_FILE":  "/tmp/client.log",
		"LOG_LEVEL": "warn",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/login?user_id=u1", cfg.App.StartURL)
	assert.True(t, cfg.App.Incognito)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.APIAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/tmp/session.db", cfg.Storage.Session.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Storage.Handoff.TTL)

	assert.Equal(t, "/auth/github", cfg.Auth.OAuthPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.Auth.CallbackAddress)
	assert.True(t, cfg.Auth.NoBrowser)

	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_API_ADDRESS": "localhost:8080",
		"LOG_LEVEL":           "info",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.APIAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)

	// Others untouched
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Auth{}, cfg.Auth)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"STORAGE_HANDOFF_TTL": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_INCOGNITO": "maybe"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_START_URL",
	"APP_INCOGNITO",

	"ADAPTER_API_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",

	"STORAGE_SESSION_DSN",
	"STORAGE_HANDOFF_TTL",

	"AUTH_OAUTH_PATH",
	"AUTH_CALLBACK_ADDRESS",
	"AUTH_NO_BROWSER",

	"LOG_FILE",
	"LOG_LEVEL",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
