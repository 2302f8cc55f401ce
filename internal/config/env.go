package config

import "github.com/caarlos0/env/v10"

// parseEnv overlays Config with values from ASTROGID_* environment variables.
// Variables that are unset leave the corresponding field untouched.
//
// Panics on parse errors (caller should recover if desired).
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
