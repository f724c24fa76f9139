package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benledwon/trip-insights/pkg/report"
)

func TestWriteTable(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "processed")
	table := report.Table{
		Name:   "round_trip_share",
		Header: []string{"user_type", "round_trip_rides", "total_rides", "round_trip_share"},
		Rows: [][]string{
			{"member", "1", "2", "0.5000"},
			{"casual", "0", "0", "0.0000"},
		},
	}

	path, err := WriteTable(dir, table)
	if err != nil {
		t.Fatalf("WriteTable() error: %v", err)
	}
	if filepath.Base(path) != "round_trip_share.csv" {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "user_type,round_trip_rides,total_rides,round_trip_share\n" +
		"member,1,2,0.5000\n" +
		"casual,0,0,0.0000\n"
	if string(data) != want {
		t.Errorf("file contents:\n%s\nwant:\n%s", data, want)
	}
}

func TestWriteTable_QuotesCommas(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	table := report.Table{
		Name:   "top_start_stations_member",
		Header: []string{"station_name", "ride_count"},
		Rows:   [][]string{{"Clark St & Elm St, Chicago", "12"}},
	}

	path, err := WriteTable(dir, table)
	if err != nil {
		t.Fatalf("WriteTable() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "station_name,ride_count\n\"Clark St & Elm St, Chicago\",12\n"
	if string(data) != want {
		t.Errorf("file contents:\n%s\nwant:\n%s", data, want)
	}
}

func TestWriteAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tables := []report.Table{
		{Name: "a", Header: []string{"x"}, Rows: [][]string{{"1"}}},
		{Name: "b", Header: []string{"y"}, Rows: nil},
	}

	paths, err := WriteAll(dir, tables)
	if err != nil {
		t.Fatalf("WriteAll() error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}

	for _, path := range paths {
		if _, statErr := os.Stat(path); statErr != nil {
			t.Errorf("missing output file %s: %v", path, statErr)
		}
	}
}
