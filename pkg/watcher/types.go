// Package watcher provides file system monitoring for the input
// directories.
//
// It wraps fsnotify with per-path debouncing so a quarterly CSV being
// copied into the raw directory triggers one re-analysis, not one per
// write syscall.
//
// Example usage:
//
//	w, err := watcher.New(watcher.Config{
//	    DebounceInterval: 500 * time.Millisecond,
//	}, logger.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	if err := w.Start(ctx, []string{"~/bike-share/data/raw"}); err != nil {
//	    log.Fatal(err)
//	}
//	for event := range w.Events() {
//	    fmt.Printf("%s changed\n", event.Path)
//	}
package watcher

import (
	"context"
	"time"
)

// Event represents a debounced file system event.
type Event struct {
	// Path is the path that changed.
	Path string

	// Timestamp is when the last underlying event arrived.
	Timestamp time.Time
}

// Watcher monitors directories for changes.
type Watcher interface {
	// Start begins watching the given directories. It returns once
	// watching is established; events are delivered on Events.
	//
	// Returns ErrAlreadyStarted when called twice and ErrWatcherClosed
	// after Close.
	Start(ctx context.Context, paths []string) error

	// Events returns the debounced event channel. It is closed when the
	// watcher stops.
	Events() <-chan Event

	// Errors returns the channel for non-fatal watcher errors. It is
	// closed when the watcher stops.
	Errors() <-chan error

	// Close stops watching and releases resources.
	Close() error
}

// Config contains watcher configuration.
type Config struct {
	// DebounceInterval is how long a path must stay quiet before its
	// event is emitted. Events within the interval coalesce.
	// Default: 500ms.
	DebounceInterval time.Duration
}
