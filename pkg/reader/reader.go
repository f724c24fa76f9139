package reader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benledwon/trip-insights/pkg/logger"
)

// csvReader implements the Reader interface on top of encoding/csv.
type csvReader struct {
	logger logger.Logger
}

// New creates a CSV row reader.
func New(log logger.Logger) Reader {
	return &csvReader{
		logger: log,
	}
}

// ReadFile implements Reader.ReadFile.
func (r *csvReader) ReadFile(ctx context.Context, path string, fn RowFunc) (*FileResult, error) {
	// #nosec G304: path comes from discovery over configured directories
	f, err := os.Open(path) // nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open trip file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	dec := csv.NewReader(f)
	dec.FieldsPerRecord = -1 // ragged rows are tolerated
	dec.LazyQuotes = true
	dec.ReuseRecord = true

	header, err := dec.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	// The header is reused across rows, so copy it out.
	columns := make([]string, len(header))
	copy(columns, header)

	result := &FileResult{Path: path}

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		record, readErr := dec.Read()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			var parseErr *csv.ParseError
			if errors.As(readErr, &parseErr) {
				result.SkippedLines++
				r.logger.Warn("skipping malformed csv line",
					"path", path,
					"line", parseErr.Line,
					"error", parseErr.Err)
				continue
			}

			return result, fmt.Errorf("failed to read %s: %w", path, readErr)
		}

		row := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			}
		}

		result.Rows++
		if fnErr := fn(row); fnErr != nil {
			return result, fnErr
		}
	}

	return result, nil
}
