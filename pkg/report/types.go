// Package report builds the finished report tables from a final
// aggregation state.
//
// Every builder is a pure function over *stats.State: it performs no I/O,
// never mutates the state, and produces identical output when called
// twice. Dense tables emit the full cross product of their key dimensions
// in fixed order, so output is deterministic and never sparse.
package report

// Table is one finished tabular report, ready for serialization.
type Table struct {
	// Name is the report identifier, used as the output file basename.
	Name string

	// Header holds the column names.
	Header []string

	// Rows holds the data rows; every row has len(Header) cells.
	Rows [][]string
}

// DayNames are the day-of-week labels in table order, indexed by the
// Monday-based weekday used by the aggregation state.
var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
