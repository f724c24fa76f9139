// Package main provides the trip-insights CLI application.
//
// Trip Insights is a single-pass analysis tool for bike-share trip CSV
// exports. It aggregates every trip row into summary reports, exports
// them as CSV, and can re-run the analysis automatically when the input
// directories change.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is set during build time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the main application logic.
func run() error {
	// Define global flags.
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "show version information")

	// Parse command.
	flag.Parse()

	// Handle version flag.
	if *showVersion {
		fmt.Printf("trip-insights %s\n", version)
		return nil
	}

	// Get command.
	args := flag.Args()
	if len(args) == 0 {
		return showUsage()
	}

	command := args[0]

	switch command {
	case "analyze":
		return runAnalyzeCommand(*configPath, args[1:])
	case "watch":
		return runWatchCommand(*configPath, args[1:])
	case "runs":
		return runRunsCommand(*configPath, args[1:])
	case "version":
		fmt.Printf("trip-insights %s\n", version)
		return nil
	case "help":
		return showUsage()
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// runAnalyzeCommand runs the analyze command.
func runAnalyzeCommand(configPath string, args []string) error {
	// Define analyze-specific flags.
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	input := fs.String("input", "", "input directories (comma-separated, overrides config)")
	output := fs.String("output", "", "report output directory (overrides config)")
	pattern := fs.String("pattern", "", "input file glob, applied to base names")
	format := fs.String("format", "", "output format (table, json)")
	top := fs.Int("top", 0, "number of stations in the top-station reports")
	noExport := fs.Bool("no-export", false, "print reports without writing CSV files")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := &analyzeCommand{
		inputDirs:  splitDirs(*input),
		outputDir:  *output,
		pattern:    *pattern,
		format:     *format,
		top:        *top,
		noExport:   *noExport,
		configPath: configPath,
	}

	return cmd.Execute()
}

// runWatchCommand runs the watch command.
func runWatchCommand(configPath string, args []string) error {
	// Define watch-specific flags.
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	input := fs.String("input", "", "input directories (comma-separated, overrides config)")
	output := fs.String("output", "", "report output directory (overrides config)")
	format := fs.String("format", "", "output format (table, json)")
	debounce := fs.Duration("debounce", 0, "quiet period after a change before re-running (e.g. 500ms, 2s)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := &watchCommand{
		inputDirs:  splitDirs(*input),
		outputDir:  *output,
		format:     *format,
		debounce:   *debounce,
		configPath: configPath,
	}

	return cmd.Execute()
}

// runRunsCommand runs the runs command.
func runRunsCommand(configPath string, args []string) error {
	// Define runs-specific flags.
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	limit := fs.Int("n", 10, "number of recent runs to show (0 for all)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := &runsCommand{
		limit:      *limit,
		configPath: configPath,
	}

	return cmd.Execute()
}

// splitDirs splits a comma-separated directory list, trimming whitespace.
//
// Returns nil for an empty input so callers can distinguish "not set".
func splitDirs(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	dirs := make([]string, 0, len(parts))
	for _, part := range parts {
		if dir := strings.TrimSpace(part); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// showUsage displays usage information.
func showUsage() error {
	usage := `Trip Insights - bike-share trip CSV analysis tool

Usage:
  trip-insights [flags] <command> [command flags]

Commands:
  analyze     Run one full analysis over the input directories
  watch       Re-run the analysis whenever the inputs change
  runs        Show recent analysis runs
  version     Show version information
  help        Show this help message

Global Flags:
  -config     Path to configuration file
  -version    Show version information

Analyze Command Flags:
  -input      Input directories (comma-separated, overrides config)
  -output     Report output directory (overrides config)
  -pattern    Input file glob, applied to base names (e.g. "Trips_2019_Q*.csv")
  -format     Output format (table, json)
  -top        Number of stations in the top-station reports
  -no-export  Print reports without writing CSV files

Watch Command Flags:
  -input      Input directories (comma-separated, overrides config)
  -output     Report output directory (overrides config)
  -format     Output format (table, json)
  -debounce   Quiet period after a change before re-running (default: 500ms)

Runs Command Flags:
  -n          Number of recent runs to show (default: 10, 0 for all)

Examples:
  # Analyze the configured input directories
  trip-insights analyze

  # Analyze a specific directory, print without exporting
  trip-insights analyze -input ./data/raw -no-export

  # Only the 2019 quarterly exports, top 10 stations
  trip-insights analyze -pattern "Trips_2019_Q*.csv" -top 10

  # JSON output for scripting
  trip-insights analyze -format json

  # Keep the reports current as files are copied in
  trip-insights watch -debounce 2s

  # Show the last 5 analysis runs
  trip-insights runs -n 5

Version: %s
`

	fmt.Printf(usage, version)
	return nil
}
