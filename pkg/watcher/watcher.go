package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/benledwon/trip-insights/pkg/logger"
)

// watcher implements the Watcher interface using fsnotify.
type watcher struct {
	fsw    *fsnotify.Watcher
	logger logger.Logger
	config Config

	// events and errors are sent and closed only by the loop goroutine.
	events chan Event
	errors chan error

	// fired carries debounced paths from timer callbacks to the loop.
	// It is never closed.
	fired chan string

	mu      sync.Mutex
	started bool
	closed  bool

	debounceMu     sync.Mutex
	debounceTimers map[string]*time.Timer

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a file system watcher.
func New(cfg Config, log logger.Logger) (Watcher, error) {
	if cfg.DebounceInterval == 0 {
		cfg.DebounceInterval = 500 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &watcher{
		fsw:            fsw,
		logger:         log,
		config:         cfg,
		events:         make(chan Event, 16),
		errors:         make(chan error, 4),
		fired:          make(chan string, 16),
		debounceTimers: make(map[string]*time.Timer),
		done:           make(chan struct{}),
	}, nil
}

// Start implements Watcher.Start.
func (w *watcher) Start(ctx context.Context, paths []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.started {
		return ErrAlreadyStarted
	}
	if len(paths) == 0 {
		return ErrNoPaths
	}

	for _, path := range paths {
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.logger.Debug("watching directory", "path", path)
	}

	w.started = true
	go w.loop(ctx)

	return nil
}

// loop translates raw fsnotify events into debounced Events until the
// context is cancelled or the watcher closes. It is the only goroutine
// that sends on or closes the public channels.
func (w *watcher) loop(ctx context.Context) {
	defer func() {
		w.stop()

		w.debounceMu.Lock()
		for _, timer := range w.debounceTimers {
			timer.Stop()
		}
		w.debounceTimers = make(map[string]*time.Timer)
		w.debounceMu.Unlock()

		close(w.events)
		close(w.errors)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Only content-changing operations matter for re-analysis.
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce(event.Name)
		case path := <-w.fired:
			select {
			case w.events <- Event{Path: path, Timestamp: time.Now()}:
			default:
				w.logger.Warn("dropping change event, consumer too slow", "path", path)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				w.logger.Warn("dropping watcher error", "error", err)
			}
		}
	}
}

// debounce (re)arms the timer for path; the path is forwarded to the
// loop only after it stays quiet for the debounce interval.
func (w *watcher) debounce(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounceTimers[path]; ok {
		timer.Reset(w.config.DebounceInterval)
		return
	}

	w.debounceTimers[path] = time.AfterFunc(w.config.DebounceInterval, func() {
		w.debounceMu.Lock()
		delete(w.debounceTimers, path)
		w.debounceMu.Unlock()

		select {
		case w.fired <- path:
		case <-w.done:
		}
	})
}

// stop signals shutdown exactly once.
func (w *watcher) stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
}

// Events implements Watcher.Events.
func (w *watcher) Events() <-chan Event {
	return w.events
}

// Errors implements Watcher.Errors.
func (w *watcher) Errors() <-chan error {
	return w.errors
}

// Close implements Watcher.Close.
func (w *watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	w.stop()

	return w.fsw.Close()
}
