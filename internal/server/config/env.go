package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// CREDVAULT_DATABASE_DSN.
const EnvPrefix = "CREDVAULT_"

// parseEnv overlays variables that are present; absent ones leave the
// current value untouched.
func parseEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
