// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the config, so
// APP_USER_ID is set as NOTEKEEPER_APP_USER_ID.
const EnvPrefix = "NOTEKEEPER_"

// parseEnv populates cfg from its `env`/`envPrefix` tags under [EnvPrefix].
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
