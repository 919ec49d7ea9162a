package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	content := `{
		"app": {"start_url": "/vault/7", "incognito": true},
		"adapter": {"api_address": "http://10.0.0.1:8080", "request_timeout": "45s"},
		"storage": {"session": {"dsn": "/data/s.db"}, "handoff": {"ttl": "2m"}},
		"auth": {"oauth_path": "/auth/google", "callback_address": "127.0.0.1:7000", "no_browser": true},
		"log": {"file": "/var/log/vk.log", "level": "info"}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/vault/7", cfg.App.StartURL)
	assert.True(t, cfg.App.Incognito)
	assert.Equal(t, "http://10.0.0.1:8080", cfg.Adapter.APIAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/s.db", cfg.Storage.Session.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Storage.Handoff.TTL)
	assert.Equal(t, "/auth/google", cfg.Auth.OAuthPath)
	assert.Equal(t, "127.0.0.1:7000", cfg.Auth.CallbackAddress)
	assert.True(t, cfg.Auth.NoBrowser)
	assert.Equal(t, "/var/log/vk.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "nanoseconds number", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(15 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"15s"`, string(b))
}
