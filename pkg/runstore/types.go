// Package runstore persists the metadata of completed analysis runs.
//
// Each run is stored as one immutable record in a BoltDB file, so the
// runs command can show rejection counts drifting across data drops. No
// aggregation state is carried between runs: every run is a full pass
// over the inputs.
//
// Example usage:
//
//	store, err := runstore.Open("~/.config/trip-insights/runs.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.Append(runstore.RunRecord{...})
package runstore

import "time"

// RunRecord captures one completed analysis run.
type RunRecord struct {
	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Files lists the input files, in ingestion order.
	Files []string `json:"files"`

	// RowsProcessed is the total row count, including rejected rows.
	RowsProcessed int64 `json:"rows_processed"`

	// BadTimeRows counts rows rejected for an unparsable start time.
	BadTimeRows int64 `json:"bad_time_rows"`

	// BadDurationRows counts rows rejected for an unparsable or
	// negative duration.
	BadDurationRows int64 `json:"bad_duration_rows"`
}

// Store persists run records.
type Store interface {
	// Append stores one completed run record.
	//
	// Returns error if persistence fails.
	Append(record RunRecord) error

	// List returns the most recent n records, newest first. n <= 0
	// returns every record.
	//
	// Returns error if the store cannot be read.
	List(n int) ([]RunRecord, error)

	// Close releases the underlying database.
	Close() error
}
