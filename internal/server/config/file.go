package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/filedesk/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config, read from JSON or YAML.
type FileConfig struct {
	Addr           string   `json:"addr" yaml:"addr"`
	StorageDriver  string   `json:"storage_driver" yaml:"storage_driver"`
	StorageDir     string   `json:"storage_dir" yaml:"storage_dir"`
	DatabaseDSN    string   `json:"database_dsn" yaml:"database_dsn"`
	MaxUploadSize  int64    `json:"max_upload_size" yaml:"max_upload_size"`
	AllowedTypes   []string `json:"allowed_types" yaml:"allowed_types"`
	LogLevel       string   `json:"log_level" yaml:"log_level"`
	S3RootUser     string   `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword string   `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket       string   `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region       string   `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint string   `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
}

// parseFile overlays config with the file named by -c or -config. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON. Empty
// fields leave the current value. Panics on read or decode errors.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	setString(&config.Addr, c.Addr)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.StorageDir, c.StorageDir)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.MaxUploadSize > 0 {
		config.MaxUploadSize = c.MaxUploadSize
	}
	if len(c.AllowedTypes) > 0 {
		config.AllowedTypes = c.AllowedTypes
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
