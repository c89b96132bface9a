// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the daybook CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - FlushDelay: debounce quiet period before unsaved entries are uploaded.
//   - DatabasePath: path of the local SQLite file holding session state.
type Config struct {
	ServerBaseURL string
	FlushDelay    time.Duration
	DatabasePath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
	c.FlushDelay = 5 * time.Second
	c.DatabasePath = "daybook.db"
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
