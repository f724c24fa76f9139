// Package config provides configuration management for trip-insights.
//
// Configuration is loaded with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file
// 3. Default values (lowest priority)
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Input dirs: %v\n", cfg.InputDirs)
package config

import (
	"time"
)

// Config represents the complete application configuration.
//
// Invariants:
// - InputDirs must have at least one directory
// - Reports.TopStations must be > 0
// - Watch.Debounce must be > 0
// - Display.Mode, Logging.Level, Logging.Format must be recognized values.
type Config struct {
	// Directories scanned for trip CSV files.
	InputDirs []string `yaml:"input_dirs"`

	// Glob applied to file base names during discovery.
	FilePattern string `yaml:"file_pattern"`

	// Directory the report CSVs are written to.
	OutputDir string `yaml:"output_dir"`

	// Report settings.
	Reports ReportsConfig `yaml:"reports"`

	// Display settings.
	Display DisplayConfig `yaml:"display"`

	// Storage settings.
	Storage StorageConfig `yaml:"storage"`

	// Watch mode settings.
	Watch WatchConfig `yaml:"watch"`

	// Logging settings.
	Logging LoggingConfig `yaml:"logging"`
}

// ReportsConfig contains report tuning.
type ReportsConfig struct {
	// How many stations the top-station rankings keep.
	TopStations int `yaml:"top_stations"`
}

// DisplayConfig contains terminal output settings.
type DisplayConfig struct {
	// Output mode (table, json, none).
	Mode string `yaml:"mode"`
}

// StorageConfig contains storage-related settings.
type StorageConfig struct {
	// Path to the BoltDB run-history file.
	DBPath string `yaml:"db_path"`
}

// WatchConfig contains watch-mode settings.
type WatchConfig struct {
	// How long an input file must stay quiet before re-analysis.
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Log level (debug, info, warn, error).
	Level string `yaml:"level"`

	// Log output destination (stdout, stderr, file path).
	Output string `yaml:"output"`

	// Log format (text, json).
	Format string `yaml:"format"`
}

// Validate checks if the configuration satisfies all invariants.
func (c *Config) Validate() error {
	if len(c.InputDirs) == 0 {
		return ErrNoInputDirs
	}
	if c.Reports.TopStations <= 0 {
		return ErrInvalidTopStations
	}
	if c.Watch.Debounce <= 0 {
		return ErrInvalidDebounce
	}

	switch c.Display.Mode {
	case "table", "json", "none":
	default:
		return ErrInvalidDisplayMode
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}
