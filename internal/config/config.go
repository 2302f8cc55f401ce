package config

// Config holds runtime settings for the AstroGid CLI.
//
// Fields:
//   - DatabasePath: filesystem path of the SQLite database file.
//   - SiteName: display name used in feedback subjects and greetings.
//   - ContactEmail: address feedback messages are composed for.
//   - FeedbackRetention: how many feedback messages are kept, newest first.
type Config struct {
	DatabasePath      string `env:"ASTROGID_DB"`
	SiteName          string `env:"ASTROGID_SITE_NAME"`
	ContactEmail      string `env:"ASTROGID_CONTACT_EMAIL"`
	FeedbackRetention int    `env:"ASTROGID_FEEDBACK_RETENTION"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "data/astrogid.db"
	c.SiteName = "AstroGid"
	c.ContactEmail = "info@astrogid.example"
	c.FeedbackRetention = 50
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
