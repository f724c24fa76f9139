package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benledwon/trip-insights/pkg/config"
	"github.com/benledwon/trip-insights/pkg/discovery"
	"github.com/benledwon/trip-insights/pkg/display"
	"github.com/benledwon/trip-insights/pkg/logger"
	"github.com/benledwon/trip-insights/pkg/pipeline"
	"github.com/benledwon/trip-insights/pkg/reader"
	"github.com/benledwon/trip-insights/pkg/runstore"
	"github.com/benledwon/trip-insights/pkg/watcher"
)

// analyzeCommand runs one full analysis and displays the reports.
type analyzeCommand struct {
	inputDirs  []string
	outputDir  string
	pattern    string
	format     string
	top        int
	noExport   bool
	configPath string
}

// Execute runs the analyze command.
func (c *analyzeCommand) Execute() error {
	cfg, log, err := c.initialize()
	if err != nil {
		return err
	}

	store, err := openRunStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeRunStore(store, log)

	p := pipeline.New(cfg, discovery.New(cfg.InputDirs, cfg.FilePattern, log), reader.New(log), store, log)

	result, err := p.Run(context.Background())
	if err != nil {
		return err
	}

	if len(result.Files) == 0 {
		fmt.Println("No trip files found")
		return nil
	}

	if cfg.Display.Mode != "none" {
		renderer := display.New(display.Config{
			Format: display.Format(cfg.Display.Mode),
		})
		if err := renderer.Render(os.Stdout, result.Tables); err != nil {
			return fmt.Errorf("failed to render reports: %w", err)
		}
	}

	if len(result.WrittenPaths) > 0 {
		fmt.Printf("\nWrote %d report file(s) to %s\n", len(result.WrittenPaths), cfg.OutputDir)
	}

	return nil
}

// initialize loads configuration, applies the command-line overrides,
// and builds the logger.
func (c *analyzeCommand) initialize() (*config.Config, logger.Logger, error) {
	cfg, err := config.NewLoader(c.configPath).Load()
	if err != nil {
		return nil, nil, err
	}

	if len(c.inputDirs) > 0 {
		cfg.InputDirs = c.inputDirs
	}
	if c.outputDir != "" {
		cfg.OutputDir = c.outputDir
	}
	if c.pattern != "" {
		cfg.FilePattern = c.pattern
	}
	if c.format != "" {
		cfg.Display.Mode = c.format
	}
	if c.top > 0 {
		cfg.Reports.TopStations = c.top
	}
	if c.noExport {
		cfg.OutputDir = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	return cfg, log, nil
}

// watchCommand keeps the reports current as input files change.
type watchCommand struct {
	inputDirs  []string
	outputDir  string
	format     string
	debounce   time.Duration
	configPath string
}

// Execute runs the watch command.
func (c *watchCommand) Execute() error {
	cfg, log, err := c.initialize()
	if err != nil {
		return err
	}

	store, err := openRunStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeRunStore(store, log)

	w, err := watcher.New(watcher.Config{
		DebounceInterval: cfg.Watch.Debounce,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to initialize watcher: %w", err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			log.Error("failed to close watcher", "error", closeErr)
		}
	}()

	p := pipeline.New(cfg, discovery.New(cfg.InputDirs, cfg.FilePattern, log), reader.New(log), store, log)

	var renderer display.Renderer
	if cfg.Display.Mode != "none" {
		renderer = display.New(display.Config{
			Format: display.Format(cfg.Display.Mode),
		})
	}

	// Cancel the watch loop on Ctrl+C.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Watching %v (debounce %s) - press Ctrl+C to stop\n\n", cfg.InputDirs, cfg.Watch.Debounce)

	err = p.Watch(ctx, w, func(result *pipeline.Result) {
		if renderer == nil {
			return
		}
		if renderErr := renderer.Render(os.Stdout, result.Tables); renderErr != nil {
			log.Error("failed to render reports", "error", renderErr)
		}
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	fmt.Println("Stopped")
	return nil
}

// initialize loads configuration, applies the command-line overrides,
// and builds the logger.
func (c *watchCommand) initialize() (*config.Config, logger.Logger, error) {
	cfg, err := config.NewLoader(c.configPath).Load()
	if err != nil {
		return nil, nil, err
	}

	if len(c.inputDirs) > 0 {
		cfg.InputDirs = c.inputDirs
	}
	if c.outputDir != "" {
		cfg.OutputDir = c.outputDir
	}
	if c.format != "" {
		cfg.Display.Mode = c.format
	}
	if c.debounce > 0 {
		cfg.Watch.Debounce = c.debounce
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	return cfg, log, nil
}

// runsCommand shows recent analysis runs.
type runsCommand struct {
	limit      int
	configPath string
}

// Execute runs the runs command.
func (c *runsCommand) Execute() error {
	cfg, err := config.NewLoader(c.configPath).Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	store, err := openRunStore(cfg, log)
	if err != nil {
		return err
	}
	if store == nil {
		fmt.Println("Run history is disabled (no database path configured)")
		return nil
	}
	defer closeRunStore(store, log)

	records, err := store.List(c.limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	fmt.Printf("Last %d run(s):\n\n", len(records))
	for _, record := range records {
		fmt.Printf("  %s  (%s)\n",
			record.StartedAt.Format("2006-01-02 15:04:05"),
			record.FinishedAt.Sub(record.StartedAt).Round(time.Millisecond))
		fmt.Printf("    Files: %d  Rows: %d  Bad times: %d  Bad durations: %d\n",
			len(record.Files), record.RowsProcessed, record.BadTimeRows, record.BadDurationRows)
		fmt.Println()
	}

	return nil
}

// openRunStore opens the run-history store, or returns nil when no
// database path is configured.
func openRunStore(cfg *config.Config, log logger.Logger) (runstore.Store, error) {
	if cfg.Storage.DBPath == "" {
		return nil, nil
	}

	store, err := runstore.Open(cfg.Storage.DBPath)
	if err != nil {
		// The analysis itself does not need the history database.
		log.Warn("run history unavailable", "path", cfg.Storage.DBPath, "error", err)
		return nil, nil
	}
	return store, nil
}

// closeRunStore closes the store when one is open.
func closeRunStore(store runstore.Store, log logger.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Error("failed to close run store", "error", err)
	}
}
