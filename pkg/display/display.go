package display

import (
	"io"
)

// New creates a renderer for the configured format.
func New(cfg Config) Renderer {
	switch cfg.Format {
	case FormatJSON:
		return &jsonRenderer{}
	default:
		return &tableRenderer{config: cfg}
	}
}

// writeString writes s to w, returning any write error.
func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
