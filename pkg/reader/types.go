// Package reader streams trip CSV files as ordered sequences of
// column-name to cell-value maps.
//
// The reader's only contract with its consumers is "here is the next row
// mapping": it does not know about schemas or parsing. Malformed CSV
// lines are counted and skipped, never fatal.
//
// Example usage:
//
//	r := reader.New(logger.Default())
//	result, err := r.ReadFile(ctx, "Trips_2019_Q1.csv", func(row map[string]string) error {
//	    state.Ingest(schema.Normalize(row))
//	    return nil
//	})
package reader

import "context"

// RowFunc is called once per data row with the header-keyed cell values.
// Returning an error stops the file read and propagates the error.
type RowFunc func(row map[string]string) error

// FileResult summarizes one file read.
type FileResult struct {
	// Path is the file that was read.
	Path string

	// Rows is the number of data rows delivered to the callback.
	Rows int64

	// SkippedLines is the number of lines the CSV decoder rejected.
	SkippedLines int64
}

// Reader streams tabular rows from trip files.
type Reader interface {
	// ReadFile streams every data row of the file at path to fn, in file
	// order. The first record is treated as the header. Rows shorter than
	// the header leave the trailing fields absent; cells beyond the
	// header are dropped.
	//
	// Returns the per-file result and an error only for failures that
	// prevent reading at all (open failure, empty file, callback error,
	// context cancellation). Decoder-level line errors are skipped and
	// counted instead.
	ReadFile(ctx context.Context, path string, fn RowFunc) (*FileResult, error)
}
