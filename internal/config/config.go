// Package config provides centralized configuration management for the
// tool. It loads configuration from environment variables with sensible
// defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import "fmt"

// Config holds all application configuration.
// All settings can be configured via environment variables; CLI flags
// override them.
type Config struct {
	Dataset DatasetConfig
	Export  ExportConfig
	Logging LoggingConfig
}

// DatasetConfig holds source and repair settings.
type DatasetConfig struct {
	// Path is the delimited-text source file to clean.
	Path string `env:"DATASET_PATH"`

	// Key selects the registered dataset spec (default: uci-credit-default)
	Key string `env:"DATASET_KEY" default:"uci-credit-default"`

	// MinLabelFraction is the header-detection threshold: the fraction
	// of row-0 cells that must be non-numeric before the row is treated
	// as the label row (default: 0.8)
	MinLabelFraction float64 `env:"HEADER_MIN_LABEL_FRACTION" default:"0.8"`
}

// ExportConfig holds cleaned-file output settings.
type ExportConfig struct {
	// Path is where the cleaned CSV is written; empty disables export.
	Path string `env:"EXPORT_PATH"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// String returns a string representation of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Dataset: {Path: %q, Key: %q, MinLabelFraction: %v}, Export: {Path: %q}, Logging: {Level: %q, Format: %q}}",
		c.Dataset.Path, c.Dataset.Key, c.Dataset.MinLabelFraction,
		c.Export.Path, c.Logging.Level, c.Logging.Format)
}
