package config

import "errors"

// Common errors returned by the config package.
var (
	// ErrNoInputDirs is returned when no input directories are specified.
	ErrNoInputDirs = errors.New("no input directories specified")

	// ErrInvalidTopStations is returned when the ranking depth is <= 0.
	ErrInvalidTopStations = errors.New("invalid top_stations: must be > 0")

	// ErrInvalidDebounce is returned when the watch debounce is <= 0.
	ErrInvalidDebounce = errors.New("invalid watch debounce: must be > 0")

	// ErrInvalidDisplayMode is returned when the display mode is not recognized.
	ErrInvalidDisplayMode = errors.New("invalid display mode: must be table, json, or none")

	// ErrInvalidLogLevel is returned when the log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level: must be debug, info, warn, or error")

	// ErrInvalidLogFormat is returned when the log format is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrConfigNotFound is returned when the config file is not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidYAML is returned when the config file has invalid YAML syntax.
	ErrInvalidYAML = errors.New("invalid YAML syntax in config file")
)
