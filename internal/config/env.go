// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the `env`/`envPrefix` tags, e.g. Storage.Handoff.TTL is read from
// STORAGE_HANDOFF_TTL. Unset variables leave the field at its zero value so
// that the layer does not override defaults when merged.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
