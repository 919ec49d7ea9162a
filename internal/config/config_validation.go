// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is internally
// consistent before it is projected into a [ClientConfig].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Storage.Handoff.TTL < 0 {
		return ErrNegativeDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.APIAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !cfg.App.Incognito && strings.TrimSpace(cfg.Storage.SessionDSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.HandoffTTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	if !strings.HasPrefix(cfg.Auth.OAuthPath, "/") {
		return ErrInvalidAuthConfigs
	}

	if cfg.App.StartURL != "" {
		if _, err := url.Parse(cfg.App.StartURL); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}
