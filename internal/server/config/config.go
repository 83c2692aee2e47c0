// Package config handles configuration for the server component,
// including defaults, file overlay, and command-line flags.
package config

// Storage drivers.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds runtime settings for the filedesk server.
//
// Fields:
//   - Addr: bind address of the HTTP API.
//   - StorageDriver: "local" or "s3"; selects where file contents go.
//   - StorageDir: root directory of the local driver.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps metadata in memory.
//   - MaxUploadSize: largest accepted file, in bytes.
//   - AllowedTypes: accepted content types; an entry ending in "/" is a prefix.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	Addr           string
	StorageDriver  string
	StorageDir     string
	DatabaseDSN    string
	MaxUploadSize  int64
	AllowedTypes   []string
	LogLevel       string
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with development defaults.
// NOTE: The S3 credentials are insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.StorageDriver = StorageLocal
	c.StorageDir = "uploads"
	c.DatabaseDSN = ""
	c.MaxUploadSize = 10 << 20
	c.AllowedTypes = []string{"image/", "text/", "application/pdf", "application/json", "application/zip"}
	c.LogLevel = "info"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "filedesk"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
