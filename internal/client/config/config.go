// Package config loads runtime settings for the AutoPort CLI. Sources are
// applied in order of increasing precedence: built-in defaults, environment
// variables (optionally from a .env file), a JSON config file, and finally
// command-line flags.
package config

import "time"

// Config holds runtime settings for the AutoPort CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - DatabasePath: path of the local sqlite cache (session + offline data).
//   - ActivityLimit: number of entries requested from the activity feed.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
	ActivityLimit  int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://saad.waqarulwahab.me/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "autoport.db"
	c.ActivityLimit = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
