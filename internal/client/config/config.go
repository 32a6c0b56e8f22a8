package config

// Config holds runtime settings for the badgekeeper CLI.
//
// Fields:
//   - ServerURL: base URL of the badge API.
//   - SessionDBPath: SQLite file that keeps the credential between runs.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL     string
	SessionDBPath string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.SessionDBPath = "session.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
