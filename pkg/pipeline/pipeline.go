// Package pipeline wires discovery, reading, normalization, and
// aggregation into complete analysis runs.
//
// A run is strictly two-phase: every row of every discovered file is
// ingested first, then the report builders read the final state. Watch
// mode repeats full runs when the input directories change; no
// aggregation state carries across runs.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/benledwon/trip-insights/pkg/config"
	"github.com/benledwon/trip-insights/pkg/discovery"
	"github.com/benledwon/trip-insights/pkg/export"
	"github.com/benledwon/trip-insights/pkg/logger"
	"github.com/benledwon/trip-insights/pkg/reader"
	"github.com/benledwon/trip-insights/pkg/report"
	"github.com/benledwon/trip-insights/pkg/runstore"
	"github.com/benledwon/trip-insights/pkg/schema"
	"github.com/benledwon/trip-insights/pkg/stats"
	"github.com/benledwon/trip-insights/pkg/watcher"
)

// Result is the outcome of one analysis run.
type Result struct {
	// State is the final, read-only aggregation state.
	State *stats.State

	// Tables are the finished reports in output order.
	Tables []report.Table

	// Files are the ingested input files, in order.
	Files []discovery.TripFile

	// WrittenPaths are the exported CSV paths, when export ran.
	WrittenPaths []string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time
}

// Pipeline runs trip analyses.
type Pipeline struct {
	cfg    *config.Config
	disc   discovery.Discoverer
	reader reader.Reader
	store  runstore.Store
	logger logger.Logger
}

// New creates a pipeline. store may be nil to skip run-history
// recording.
func New(cfg *config.Config, disc discovery.Discoverer, r reader.Reader, store runstore.Store, log logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		disc:   disc,
		reader: r,
		store:  store,
		logger: log,
	}
}

// Run executes one full analysis: discover inputs, stream every row
// through the aggregation engine, build all reports, export them, and
// record the run. Every report is emitted even when all input rows were
// rejected.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	startedAt := time.Now()

	files, err := p.disc.Discover()
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}

	p.logger.Info("starting analysis", "files", len(files))

	state := stats.New()
	for _, file := range files {
		fileResult, readErr := p.reader.ReadFile(ctx, file.Path, func(row map[string]string) error {
			state.Ingest(schema.Normalize(row))
			return nil
		})
		if readErr != nil {
			return nil, fmt.Errorf("failed reading %s: %w", file.Path, readErr)
		}

		p.logger.Debug("file ingested",
			"path", file.Path,
			"rows", fileResult.Rows,
			"skipped_lines", fileResult.SkippedLines)
	}

	// Ingestion is done; the state is read-only from here on.
	tables := report.All(state, p.cfg.Reports.TopStations)

	result := &Result{
		State:     state,
		Tables:    tables,
		Files:     files,
		StartedAt: startedAt,
	}

	if p.cfg.OutputDir != "" {
		written, exportErr := export.WriteAll(p.cfg.OutputDir, tables)
		if exportErr != nil {
			return nil, fmt.Errorf("export failed: %w", exportErr)
		}
		result.WrittenPaths = written
	}

	result.FinishedAt = time.Now()

	if p.store != nil {
		record := runstore.RunRecord{
			StartedAt:       result.StartedAt,
			FinishedAt:      result.FinishedAt,
			RowsProcessed:   state.RowsProcessed,
			BadTimeRows:     state.BadTimeRows,
			BadDurationRows: state.BadDurationRows,
		}
		for _, file := range files {
			record.Files = append(record.Files, file.Path)
		}

		if appendErr := p.store.Append(record); appendErr != nil {
			// Run history is best effort; the analysis itself succeeded.
			p.logger.Warn("failed to record run", "error", appendErr)
		}
	}

	p.logger.Info("analysis complete",
		"rows_processed", state.RowsProcessed,
		"bad_time_rows", state.BadTimeRows,
		"bad_duration_rows", state.BadDurationRows,
		"duration", result.FinishedAt.Sub(result.StartedAt))

	return result, nil
}

// Watch runs one analysis immediately, then re-runs the full analysis
// whenever the input directories change. onRun is called after every
// completed run. Watch blocks until the context is cancelled.
func (p *Pipeline) Watch(ctx context.Context, w watcher.Watcher, onRun func(*Result)) error {
	result, err := p.Run(ctx)
	if err != nil {
		return err
	}
	if onRun != nil {
		onRun(result)
	}

	if err := w.Start(ctx, p.cfg.InputDirs); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events():
			if !ok {
				return nil
			}
			p.logger.Info("input changed, re-running analysis", "path", event.Path)

			result, err := p.Run(ctx)
			if err != nil {
				// A half-copied file can make a run fail; keep watching.
				p.logger.Error("analysis failed", "error", err)
				continue
			}
			if onRun != nil {
				onRun(result)
			}
		case watchErr, ok := <-w.Errors():
			if !ok {
				return nil
			}
			p.logger.Warn("watcher error", "error", watchErr)
		}
	}
}
