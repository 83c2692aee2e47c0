// Package config loads runtime configuration for the filedesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the file API
//	-t int      upload timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level
//	-f string   log format (text or json)
//
// # File schema
//
// Durations may be strings like "30s" or integer nanoseconds:
//
//	base_url: http://localhost:8080/api/
//	upload_timeout: 30s
//	online_check_interval: 3s
//	log_level: info
//	log_format: text
//
// The same keys are used in JSON.
package config
