// Package export persists finished report tables as CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benledwon/trip-insights/pkg/report"
)

// WriteTable writes one table to <dir>/<table.Name>.csv, creating the
// directory if needed. Existing files are overwritten: each run replaces
// the previous run's reports wholesale.
func WriteTable(dir string, table report.Table) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, table.Name+".csv")

	// #nosec G304: dir comes from trusted config
	f, err := os.Create(path) // nolint:gosec
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write header of %s: %w", path, err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write rows of %s: %w", path, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}

// WriteAll writes every table to dir and returns the written paths in
// table order.
func WriteAll(dir string, tables []report.Table) ([]string, error) {
	paths := make([]string, 0, len(tables))
	for _, table := range tables {
		path, err := WriteTable(dir, table)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
