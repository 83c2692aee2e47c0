package config

import "time"

// Config holds runtime settings for the filedesk CLI.
//
// Fields:
//   - BaseURL: root of the file API; request paths are relative to it.
//   - UploadTimeout: client-side limit for a single upload.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
type Config struct {
	BaseURL             string
	UploadTimeout       time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
	LogFormat           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://williamscut.pythonanywhere.com/api/"
	c.UploadTimeout = 30 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
