package config

import (
	"fmt"
	"time"
)

// ClientApp holds UI-level client settings.
type ClientApp struct {
	// StartURL is the first router location; empty means choose by session.
	StartURL string
	// Incognito selects the in-memory session store.
	Incognito bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIAddress is the vault API base URL.
	APIAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SessionDSN is the SQLite session file.
	SessionDSN string
	// HandoffTTL is the lifetime of an unconsumed handoff entry.
	HandoffTTL time.Duration
}

// ClientAuth holds OAuth login settings.
type ClientAuth struct {
	// OAuthPath is the OAuth initiation path relative to the API address.
	OAuthPath string
	// CallbackAddress is the loopback listener address; empty disables it.
	CallbackAddress string
	// OpenBrowser reports whether the OAuth page is opened in the browser.
	OpenBrowser bool
}

// ClientLog holds logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains UI-level client settings.
	App ClientApp
	// Adapter contains the vault API address and timeout.
	Adapter ClientAdapter
	// Storage contains session and handoff settings.
	Storage ClientStorage
	// Auth contains the OAuth settings.
	Auth ClientAuth
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			StartURL:  cfg.App.StartURL,
			Incognito: cfg.App.Incognito,
		},
		Adapter: ClientAdapter{
			APIAddress:     cfg.Adapter.APIAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionDSN: cfg.Storage.Session.DSN,
			HandoffTTL: cfg.Storage.Handoff.TTL,
		},
		Auth: ClientAuth{
			OAuthPath:       cfg.Auth.OAuthPath,
			CallbackAddress: cfg.Auth.CallbackAddress,
			OpenBrowser:     !cfg.Auth.NoBrowser,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
