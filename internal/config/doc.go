// Package config loads runtime configuration for the AstroGid CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), prefixed ASTROGID_.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-e string   contact email feedback messages are composed for
//	-r int      feedback message retention count
//
// # JSON schema
//
//	{
//	  "database_path": "data/astrogid.db",
//	  "site_name": "AstroGid",
//	  "contact_email": "info@astrogid.example",
//	  "feedback_retention": 50
//	}
//
// Primary API
//
//   - type Config                     — holds database, site and feedback settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
