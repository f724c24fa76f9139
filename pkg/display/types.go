// Package display renders report tables for the terminal.
//
// It supports an aligned text format and JSON, and fits table output to
// the terminal width when the destination is a terminal.
package display

import (
	"io"

	"github.com/benledwon/trip-insights/pkg/report"
)

// Format represents an output format.
type Format string

const (
	// FormatTable renders aligned text tables.
	FormatTable Format = "table"

	// FormatJSON renders the tables as a JSON document.
	FormatJSON Format = "json"
)

// Renderer renders report tables to a writer.
type Renderer interface {
	// Render writes every table to w in order.
	//
	// Returns error if writing fails.
	Render(w io.Writer, tables []report.Table) error
}

// Config contains renderer configuration.
type Config struct {
	// Format specifies the output format.
	// Default: FormatTable.
	Format Format

	// MaxWidth caps the rendered table width in characters. Zero means
	// detect from the terminal, falling back to no cap.
	MaxWidth int
}
