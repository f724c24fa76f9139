package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		InputDirs:   []string{defaultInputDir()},
		FilePattern: "Trips_*.csv",
		OutputDir:   defaultOutputDir(),
		Reports: ReportsConfig{
			TopStations: 20,
		},
		Display: DisplayConfig{
			Mode: "table",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stderr",
			Format: "text",
		},
	}
}

// defaultInputDir returns the default raw trip data directory.
//
// Returns: ./data/raw relative to the working directory, the layout the
// analysis project uses.
func defaultInputDir() string {
	return filepath.Join("data", "raw")
}

// defaultOutputDir returns the default processed report directory.
func defaultOutputDir() string {
	return filepath.Join("data", "processed")
}

// defaultDBPath returns the default run-history database path.
//
// Returns: ~/.config/trip-insights/runs.db.
func defaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./runs.db"
	}

	return filepath.Join(homeDir, ".config", "trip-insights", "runs.db")
}

// defaultConfigPath returns the default configuration file path.
//
// Returns: ~/.config/trip-insights/config.yaml.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.yaml"
	}

	return filepath.Join(homeDir, ".config", "trip-insights", "config.yaml")
}
