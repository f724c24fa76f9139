package display

import (
	"encoding/json"
	"io"

	"github.com/benledwon/trip-insights/pkg/report"
)

// jsonRenderer renders tables as one JSON document.
type jsonRenderer struct{}

// jsonTable is the serialized form of a report table.
type jsonTable struct {
	Name   string     `json:"name"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Render implements Renderer.Render.
func (r *jsonRenderer) Render(w io.Writer, tables []report.Table) error {
	out := make([]jsonTable, 0, len(tables))
	for _, table := range tables {
		rows := table.Rows
		if rows == nil {
			rows = [][]string{}
		}
		out = append(out, jsonTable{
			Name:   table.Name,
			Header: table.Header,
			Rows:   rows,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
