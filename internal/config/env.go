// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from envVars through the `env` and `envPrefix` tags of
// [StructuredConfig]. The process environment is not consulted.
func parseEnv(cfg any, envVars map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: envVars}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
