package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the authshell client.
//
// Fields:
//   - ServerURL: base URL of the remote authentication service.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: SQLite file holding the session token.
//   - RequestTimeout: per-request HTTP timeout; zero means no timeout.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	ServerURL           string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	RequestTimeout      time.Duration
	LogLevel            string
	LogFormat           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "authshell.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment (including an optional .env file), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	c.ServerURL = strings.TrimRight(strings.TrimSpace(c.ServerURL), "/")
}
