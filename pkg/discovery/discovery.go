// Package discovery locates trip CSV files under the configured input
// directories.
//
// Example usage:
//
//	d := discovery.New([]string{"~/bike-share/data/raw"}, "Trips_*.csv", logger.Default())
//	files, err := d.Discover()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range files {
//	    fmt.Println(f.Path)
//	}
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Logger defines the logging interface used by the discovery package.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// TripFile is one discovered input file.
type TripFile struct {
	// Path is the absolute path to the CSV file.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the last modification time.
	ModTime time.Time
}

// Discoverer finds trip CSV files.
type Discoverer interface {
	// Discover scans the configured directories and returns every file
	// whose base name matches the configured pattern, sorted by path so
	// ingestion order is deterministic.
	//
	// A missing directory is skipped with a warning rather than failing
	// the scan; an error is returned only when no directory could be
	// scanned at all.
	Discover() ([]TripFile, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	baseDirs []string
	pattern  string
	logger   Logger
}

// New creates a Discoverer over baseDirs for files matching pattern
// (a filepath.Match glob applied to base names, e.g. "Trips_2019_Q*.csv").
func New(baseDirs []string, pattern string, log Logger) Discoverer {
	if pattern == "" {
		pattern = "*.csv"
	}

	return &discoverer{
		baseDirs: baseDirs,
		pattern:  pattern,
		logger:   log,
	}
}

// Discover implements Discoverer.Discover.
func (d *discoverer) Discover() ([]TripFile, error) {
	var files []TripFile
	scanned := 0

	for _, baseDir := range d.baseDirs {
		dir, err := expandHome(baseDir)
		if err != nil {
			d.logger.Warn("skipping directory", "dir", baseDir, "error", err)
			continue
		}

		if _, statErr := os.Stat(dir); statErr != nil {
			d.logger.Warn("skipping missing directory", "dir", dir, "error", statErr)
			continue
		}
		scanned++

		walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}

			matched, matchErr := filepath.Match(d.pattern, entry.Name())
			if matchErr != nil {
				return fmt.Errorf("invalid file pattern %q: %w", d.pattern, matchErr)
			}
			if !matched {
				return nil
			}

			info, infoErr := entry.Info()
			if infoErr != nil {
				return infoErr
			}

			files = append(files, TripFile{
				Path:    path,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, walkErr)
		}
	}

	if scanned == 0 && len(d.baseDirs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputDirs, strings.Join(d.baseDirs, ", "))
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	d.logger.Debug("discovery complete",
		"dirs", scanned,
		"files", len(files),
		"pattern", d.pattern)

	return files, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
