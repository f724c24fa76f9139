package display

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/benledwon/trip-insights/pkg/report"
)

// minColumnWidth is the narrowest a column is squeezed to before cells
// get truncated with an ellipsis.
const minColumnWidth = 6

// tableRenderer renders aligned text tables.
type tableRenderer struct {
	config Config
}

// Render implements Renderer.Render.
func (r *tableRenderer) Render(w io.Writer, tables []report.Table) error {
	maxWidth := r.config.MaxWidth
	if maxWidth == 0 {
		maxWidth = detectWidth(w)
	}

	for _, table := range tables {
		if err := r.renderTable(w, table, maxWidth); err != nil {
			return err
		}
	}
	return nil
}

// renderTable writes one table: a title, the header, a separator, and
// the data rows, columns padded to a shared width.
func (r *tableRenderer) renderTable(w io.Writer, table report.Table, maxWidth int) error {
	if err := writeString(w, "== "+table.Name+" ==\n"); err != nil {
		return err
	}

	if len(table.Rows) == 0 {
		return writeString(w, "(no rows)\n\n")
	}

	widths := columnWidths(table, maxWidth)

	if err := r.writeRow(w, table.Header, widths); err != nil {
		return err
	}

	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}
	if err := r.writeRow(w, separator, widths); err != nil {
		return err
	}

	for _, row := range table.Rows {
		if err := r.writeRow(w, row, widths); err != nil {
			return err
		}
	}

	return writeString(w, "\n")
}

// writeRow writes one padded row, truncating cells wider than their
// column.
func (r *tableRenderer) writeRow(w io.Writer, cells []string, widths []int) error {
	var b strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if len(cell) > width {
			if width > 3 {
				cell = cell[:width-3] + "..."
			} else {
				cell = cell[:width]
			}
		}

		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", width-len(cell)))
	}
	b.WriteString("\n")
	return writeString(w, b.String())
}

// columnWidths returns per-column widths sized to content and squeezed
// to fit maxWidth when one is set.
func columnWidths(table report.Table, maxWidth int) []int {
	widths := make([]int, len(table.Header))
	for i, h := range table.Header {
		widths[i] = len(h)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if maxWidth <= 0 {
		return widths
	}

	// Shrink the widest column until the table fits or nothing can give.
	for total(widths) > maxWidth {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}

	return widths
}

// total returns the rendered width of a row with the given column widths.
func total(widths []int) int {
	t := 0
	for _, w := range widths {
		t += w
	}
	// Two spaces between adjacent columns.
	if len(widths) > 1 {
		t += 2 * (len(widths) - 1)
	}
	return t
}

// detectWidth returns the terminal width when w is a terminal, else 0.
func detectWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
