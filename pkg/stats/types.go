// Package stats implements the single-pass aggregation engine for trip
// records.
//
// A State holds every accumulator table for one processing run. It is
// constructed empty with New, mutated exactly once per row by Ingest, and
// read-only once the stream is exhausted. Memory is proportional to the
// number of distinct group keys observed, never to row count.
//
// Example usage:
//
//	state := stats.New()
//	for row := range rows {
//	    state.Ingest(schema.Normalize(row))
//	}
//	summary := report.Summary(state)
package stats

import (
	"sort"

	"github.com/benledwon/trip-insights/pkg/parse"
)

// Ride-length thresholds and the commute window, in the units the rules
// are expressed in. Bounds are inclusive.
const (
	longRide30Seconds = 30 * 60
	longRide60Seconds = 60 * 60

	commuteMorningStart = 7
	commuteMorningEnd   = 9
	commuteEveningStart = 16
	commuteEveningEnd   = 18
)

// OverallStats accumulates per-bucket ride statistics.
//
// DurationMin and DurationMax are only meaningful when Count > 0; the
// first ingested value initializes both.
type OverallStats struct {
	Count        int64
	DurationSum  int64
	DurationMin  int64
	DurationMax  int64
	WeekendCount int64
	WeekdayCount int64
}

// DayStats accumulates per-(day, bucket) ride statistics.
type DayStats struct {
	Count       int64
	DurationSum int64
}

// LongRideStats counts rides over the two length thresholds. The
// thresholds are not exclusive: a ride over 60 minutes increments both.
type LongRideStats struct {
	Over30m int64
	Over60m int64
}

// DayKey keys the by-day table. Day is 0 (Monday) through 6 (Sunday).
type DayKey struct {
	Day    int
	Bucket parse.Bucket
}

// HourKey keys the by-hour table. Hour is 0 through 23.
type HourKey struct {
	Hour   int
	Bucket parse.Bucket
}

// MonthKey keys the by-month table. Month is 1 through 12.
type MonthKey struct {
	Month  int
	Bucket parse.Bucket
}

// Tally is an insertion-ordered string counter. Ranking is by descending
// count with ties broken by first-encountered order, which keeps report
// output deterministic for equal counts.
type Tally struct {
	counts map[string]int64
	order  []string
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{
		counts: make(map[string]int64),
	}
}

// Add increments key by n, recording insertion order on first sight.
func (t *Tally) Add(key string, n int64) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key] += n
}

// Count returns the accumulated count for key (0 when absent).
func (t *Tally) Count(key string) int64 {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Tally) Len() int {
	return len(t.order)
}

// TallyEntry is one ranked tally row.
type TallyEntry struct {
	Key   string
	Count int64
}

// Ranked returns all entries sorted by descending count, ties in
// first-encountered order.
func (t *Tally) Ranked() []TallyEntry {
	entries := make([]TallyEntry, 0, len(t.order))
	for _, key := range t.order {
		entries = append(entries, TallyEntry{Key: key, Count: t.counts[key]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}

// Top returns the n highest-count entries, or every entry when n exceeds
// the tally size. An empty tally yields an empty, non-nil slice.
func (t *Tally) Top(n int) []TallyEntry {
	ranked := t.Ranked()
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// merge folds other into t. Keys unseen by t keep other's relative order
// after t's existing keys.
func (t *Tally) merge(other *Tally) {
	for _, key := range other.order {
		t.Add(key, other.counts[key])
	}
}

// State is the aggregation state for one run. All tables are populated
// lazily: an absent key reads as zero.
type State struct {
	// Overall holds per-bucket count, duration sum/min/max and the
	// weekend/weekday split.
	Overall map[parse.Bucket]*OverallStats

	// ByDay, ByHour, ByMonth are the time-bucketed tables.
	ByDay   map[DayKey]*DayStats
	ByHour  map[HourKey]int64
	ByMonth map[MonthKey]int64

	// Commute counts weekday rides starting inside the commute window.
	Commute map[parse.Bucket]int64

	// RoundTrip counts rides whose start and end station IDs match.
	RoundTrip map[parse.Bucket]int64

	// LongRide counts rides over the 30- and 60-minute thresholds.
	LongRide map[parse.Bucket]*LongRideStats

	// StartStations tallies start station names for member and casual
	// riders only; unknown riders are not tracked per station.
	StartStations map[parse.Bucket]*Tally

	// UserTypeRaw tallies the trimmed raw usertype text of every row
	// reaching the engine, including rows later rejected by the parsers.
	// It is the diagnostic of raw input variety.
	UserTypeRaw *Tally

	// Scalar counters.
	RowsProcessed   int64
	BadTimeRows     int64
	BadDurationRows int64
}

// New creates an empty aggregation state for one run.
func New() *State {
	return &State{
		Overall:   make(map[parse.Bucket]*OverallStats),
		ByDay:     make(map[DayKey]*DayStats),
		ByHour:    make(map[HourKey]int64),
		ByMonth:   make(map[MonthKey]int64),
		Commute:   make(map[parse.Bucket]int64),
		RoundTrip: make(map[parse.Bucket]int64),
		LongRide:  make(map[parse.Bucket]*LongRideStats),
		StartStations: map[parse.Bucket]*Tally{
			parse.BucketMember: NewTally(),
			parse.BucketCasual: NewTally(),
		},
		UserTypeRaw: NewTally(),
	}
}
