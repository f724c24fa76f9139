package stats

import (
	"fmt"
	"testing"

	"github.com/benledwon/trip-insights/pkg/parse"
	"github.com/benledwon/trip-insights/pkg/schema"
)

// commuteRow is a valid Monday 08:15 member round trip of 600 seconds.
func commuteRow() map[string]string {
	return map[string]string{
		"usertype":          "Subscriber",
		"start_time":        "2019-04-01 08:15:00",
		"tripduration":      "600",
		"from_station_id":   "5",
		"to_station_id":     "5",
		"from_station_name": "Station A",
	}
}

func TestIngest_CommuteRoundTrip(t *testing.T) {
	t.Parallel()

	s := New()
	s.Ingest(commuteRow())

	overall := s.Overall[parse.BucketMember]
	if overall == nil || overall.Count != 1 {
		t.Fatalf("Overall[member] = %+v, want count 1", overall)
	}
	if overall.DurationSum != 600 || overall.DurationMin != 600 || overall.DurationMax != 600 {
		t.Errorf("duration stats = %+v, want sum/min/max 600", overall)
	}
	if overall.WeekdayCount != 1 || overall.WeekendCount != 0 {
		t.Errorf("weekday/weekend = %d/%d, want 1/0", overall.WeekdayCount, overall.WeekendCount)
	}

	// 2019-04-01 is a Monday, hour 8, month 4.
	if got := s.ByDay[DayKey{Day: 0, Bucket: parse.BucketMember}]; got == nil || got.Count != 1 {
		t.Errorf("ByDay[Mon,member] = %+v, want count 1", got)
	}
	if got := s.ByHour[HourKey{Hour: 8, Bucket: parse.BucketMember}]; got != 1 {
		t.Errorf("ByHour[8,member] = %d, want 1", got)
	}
	if got := s.ByMonth[MonthKey{Month: 4, Bucket: parse.BucketMember}]; got != 1 {
		t.Errorf("ByMonth[4,member] = %d, want 1", got)
	}
	if got := s.Commute[parse.BucketMember]; got != 1 {
		t.Errorf("Commute[member] = %d, want 1", got)
	}
	if got := s.RoundTrip[parse.BucketMember]; got != 1 {
		t.Errorf("RoundTrip[member] = %d, want 1", got)
	}
	if lr := s.LongRide[parse.BucketMember]; lr != nil && lr.Over30m != 0 {
		t.Errorf("LongRide[member].Over30m = %d, want 0 for a 600s ride", lr.Over30m)
	}
	if got := s.StartStations[parse.BucketMember].Count("Station A"); got != 1 {
		t.Errorf("StartStations[member][Station A] = %d, want 1", got)
	}
}

func TestIngest_NegativeDurationRejected(t *testing.T) {
	t.Parallel()

	s := New()
	s.Ingest(map[string]string{
		"usertype":     "Subscriber",
		"start_time":   "2019-04-01 08:15:00",
		"tripduration": "-5",
	})

	if s.BadDurationRows != 1 {
		t.Errorf("BadDurationRows = %d, want 1", s.BadDurationRows)
	}
	if s.RowsProcessed != 1 {
		t.Errorf("RowsProcessed = %d, want 1", s.RowsProcessed)
	}
	if len(s.Overall) != 0 {
		t.Errorf("Overall touched for rejected row: %v", s.Overall)
	}
	if len(s.ByDay) != 0 || len(s.ByHour) != 0 || len(s.ByMonth) != 0 {
		t.Error("time-bucketed tables touched for rejected row")
	}

	// The raw tally is the one exception: it updates before the gate.
	if got := s.UserTypeRaw.Count("Subscriber"); got != 1 {
		t.Errorf("UserTypeRaw[Subscriber] = %d, want 1", got)
	}
}

func TestIngest_BadTimestampRejected(t *testing.T) {
	t.Parallel()

	s := New()
	s.Ingest(map[string]string{
		"usertype":     "Customer",
		"start_time":   "not a time",
		"tripduration": "600",
	})

	if s.BadTimeRows != 1 {
		t.Errorf("BadTimeRows = %d, want 1", s.BadTimeRows)
	}
	if s.BadDurationRows != 0 {
		t.Errorf("BadDurationRows = %d, want 0", s.BadDurationRows)
	}
	if len(s.Overall) != 0 {
		t.Errorf("Overall touched for rejected row: %v", s.Overall)
	}
}

func TestIngest_RawTallyKeepsDistinctSpellings(t *testing.T) {
	t.Parallel()

	s := New()
	row := commuteRow()
	row["usertype"] = "Customer"
	s.Ingest(row)

	row2 := commuteRow()
	row2["usertype"] = "casual"
	s.Ingest(row2)

	if got := s.Overall[parse.BucketCasual].Count; got != 2 {
		t.Errorf("Overall[casual].Count = %d, want 2", got)
	}
	if s.UserTypeRaw.Len() != 2 {
		t.Errorf("UserTypeRaw.Len() = %d, want 2 distinct spellings", s.UserTypeRaw.Len())
	}
	if s.UserTypeRaw.Count("Customer") != 1 || s.UserTypeRaw.Count("casual") != 1 {
		t.Errorf("UserTypeRaw counts wrong: %v", s.UserTypeRaw.Ranked())
	}
}

func TestIngest_WeekendClassification(t *testing.T) {
	t.Parallel()

	s := New()
	row := commuteRow()
	row["start_time"] = "2019-04-06 08:15:00" // Saturday
	s.Ingest(row)

	overall := s.Overall[parse.BucketMember]
	if overall.WeekendCount != 1 || overall.WeekdayCount != 0 {
		t.Errorf("weekend/weekday = %d/%d, want 1/0", overall.WeekendCount, overall.WeekdayCount)
	}

	// Saturday morning is not a commute even inside the hour window.
	if got := s.Commute[parse.BucketMember]; got != 0 {
		t.Errorf("Commute[member] = %d, want 0 on a weekend", got)
	}
}

func TestIngest_CommuteWindowBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour    int
		commute bool
	}{
		{6, false},
		{7, true},
		{9, true},
		{10, false},
		{15, false},
		{16, true},
		{18, true},
		{19, false},
	}

	for _, tt := range tests {
		s := New()
		row := commuteRow()
		row["start_time"] = fmt.Sprintf("2019-04-01 %02d:30:00", tt.hour)
		s.Ingest(row)

		want := int64(0)
		if tt.commute {
			want = 1
		}
		if got := s.Commute[parse.BucketMember]; got != want {
			t.Errorf("hour %d: Commute = %d, want %d", tt.hour, got, want)
		}
	}
}

func TestIngest_LongRideThresholdsOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		duration string
		over30   int64
		over60   int64
	}{
		{"600", 0, 0},
		{"1800", 0, 0}, // thresholds are strict
		{"1801", 1, 0},
		{"3600", 1, 0},
		{"4000", 1, 1}, // a long ride counts in both
	}

	for _, tt := range tests {
		s := New()
		row := commuteRow()
		row["tripduration"] = tt.duration
		s.Ingest(row)

		lr := s.LongRide[parse.BucketMember]
		var got30, got60 int64
		if lr != nil {
			got30, got60 = lr.Over30m, lr.Over60m
		}
		if got30 != tt.over30 || got60 != tt.over60 {
			t.Errorf("duration %s: over30/over60 = %d/%d, want %d/%d",
				tt.duration, got30, got60, tt.over30, tt.over60)
		}
	}
}

func TestIngest_RoundTripRequiresBothIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fromID    string
		toID      string
		roundTrip int64
	}{
		{"equal ids", "5", "5", 1},
		{"different ids", "5", "6", 0},
		{"missing to", "5", "", 0},
		{"missing from", "", "5", 0},
		{"both blank", "  ", "  ", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New()
			row := commuteRow()
			row["from_station_id"] = tt.fromID
			row["to_station_id"] = tt.toID
			s.Ingest(row)

			if got := s.RoundTrip[parse.BucketMember]; got != tt.roundTrip {
				t.Errorf("RoundTrip = %d, want %d", got, tt.roundTrip)
			}
		})
	}
}

func TestIngest_UnknownBucketSkipsStations(t *testing.T) {
	t.Parallel()

	s := New()
	row := commuteRow()
	row["usertype"] = "Dependent"
	s.Ingest(row)

	if got := s.Overall[parse.BucketUnknown].Count; got != 1 {
		t.Errorf("Overall[unknown].Count = %d, want 1", got)
	}
	if _, ok := s.StartStations[parse.BucketUnknown]; ok {
		t.Error("StartStations should not track the unknown bucket")
	}
}

func TestIngest_AlternateHeaderRowMatchesCanonical(t *testing.T) {
	t.Parallel()

	alt := map[string]string{
		"01 - Rental Details Rental ID":                    "1",
		"01 - Rental Details Local Start Time":             "2019-04-01 08:15:00",
		"01 - Rental Details Duration In Seconds Uncapped": "600",
		"03 - Rental Start Station ID":                     "5",
		"02 - Rental End Station ID":                       "5",
		"03 - Rental Start Station Name":                   "Station A",
		"User Type":                                        "Subscriber",
	}

	fromAlt := New()
	fromAlt.Ingest(schema.Normalize(alt))

	fromCanonical := New()
	fromCanonical.Ingest(commuteRow())

	if *fromAlt.Overall[parse.BucketMember] != *fromCanonical.Overall[parse.BucketMember] {
		t.Errorf("overall differs: %+v vs %+v",
			fromAlt.Overall[parse.BucketMember], fromCanonical.Overall[parse.BucketMember])
	}
	if fromAlt.Commute[parse.BucketMember] != fromCanonical.Commute[parse.BucketMember] {
		t.Error("commute count differs between header conventions")
	}
	if fromAlt.RoundTrip[parse.BucketMember] != fromCanonical.RoundTrip[parse.BucketMember] {
		t.Error("round-trip count differs between header conventions")
	}
	if fromAlt.StartStations[parse.BucketMember].Count("Station A") != 1 {
		t.Error("station tally missing for alternate-header row")
	}
}

// Day partition property: by-day counts sum to the overall count.
func TestDayPartitionSumsToOverall(t *testing.T) {
	t.Parallel()

	s := New()
	days := []string{
		"2019-04-01", "2019-04-02", "2019-04-03", "2019-04-04",
		"2019-04-05", "2019-04-06", "2019-04-07", "2019-04-01",
	}
	for _, d := range days {
		row := commuteRow()
		row["start_time"] = d + " 12:00:00"
		s.Ingest(row)
	}

	for _, bucket := range parse.Buckets {
		overall, ok := s.Overall[bucket]
		if !ok {
			continue
		}

		var dayTotal int64
		for day := 0; day < 7; day++ {
			if d, ok := s.ByDay[DayKey{Day: day, Bucket: bucket}]; ok {
				dayTotal += d.Count
			}
		}
		if dayTotal != overall.Count {
			t.Errorf("bucket %s: sum(ByDay) = %d, want %d", bucket, dayTotal, overall.Count)
		}
		if overall.WeekendCount+overall.WeekdayCount != overall.Count {
			t.Errorf("bucket %s: weekend+weekday = %d, want %d",
				bucket, overall.WeekendCount+overall.WeekdayCount, overall.Count)
		}
	}
}

func TestMerge_EquivalentToSinglePass(t *testing.T) {
	t.Parallel()

	rows := []map[string]string{
		commuteRow(),
		{
			"usertype":          "Customer",
			"start_time":        "2019-07-06 14:00:00",
			"tripduration":      "4000",
			"from_station_id":   "10",
			"to_station_id":     "11",
			"from_station_name": "Station B",
		},
		{
			"usertype":     "Subscriber",
			"start_time":   "bogus",
			"tripduration": "600",
		},
		{
			"usertype":          "Subscriber",
			"start_time":        "2019-04-02 17:30:00",
			"tripduration":      "120",
			"from_station_id":   "7",
			"to_station_id":     "7",
			"from_station_name": "Station A",
		},
	}

	single := New()
	for _, row := range rows {
		single.Ingest(row)
	}

	left, right := New(), New()
	left.Ingest(rows[0])
	left.Ingest(rows[1])
	right.Ingest(rows[2])
	right.Ingest(rows[3])
	left.Merge(right)

	if left.RowsProcessed != single.RowsProcessed ||
		left.BadTimeRows != single.BadTimeRows ||
		left.BadDurationRows != single.BadDurationRows {
		t.Errorf("counters differ after merge: %d/%d/%d vs %d/%d/%d",
			left.RowsProcessed, left.BadTimeRows, left.BadDurationRows,
			single.RowsProcessed, single.BadTimeRows, single.BadDurationRows)
	}

	for _, bucket := range parse.Buckets {
		mergedOverall, singleOverall := left.Overall[bucket], single.Overall[bucket]
		if (mergedOverall == nil) != (singleOverall == nil) {
			t.Fatalf("bucket %s: presence differs after merge", bucket)
		}
		if mergedOverall != nil && *mergedOverall != *singleOverall {
			t.Errorf("bucket %s: overall %+v, want %+v", bucket, *mergedOverall, *singleOverall)
		}
	}

	for key, want := range single.ByHour {
		if got := left.ByHour[key]; got != want {
			t.Errorf("ByHour[%v] = %d, want %d", key, got, want)
		}
	}
	if got, want := left.StartStations[parse.BucketMember].Count("Station A"),
		single.StartStations[parse.BucketMember].Count("Station A"); got != want {
		t.Errorf("merged station count = %d, want %d", got, want)
	}
}

func TestTally_RankedTieBreakIsInsertionOrder(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Add("second", 1)
	tally.Add("first", 2)
	tally.Add("third", 1)

	ranked := tally.Ranked()
	want := []TallyEntry{
		{Key: "first", Count: 2},
		{Key: "second", Count: 1},
		{Key: "third", Count: 1},
	}

	if len(ranked) != len(want) {
		t.Fatalf("Ranked() len = %d, want %d", len(ranked), len(want))
	}
	for i := range want {
		if ranked[i] != want[i] {
			t.Errorf("Ranked()[%d] = %+v, want %+v", i, ranked[i], want[i])
		}
	}
}

func TestTally_TopClamps(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Add("a", 3)
	tally.Add("b", 1)

	if got := tally.Top(1); len(got) != 1 || got[0].Key != "a" {
		t.Errorf("Top(1) = %v, want [a]", got)
	}
	if got := tally.Top(10); len(got) != 2 {
		t.Errorf("Top(10) len = %d, want 2", len(got))
	}
	if got := NewTally().Top(5); got == nil || len(got) != 0 {
		t.Errorf("Top on empty tally = %v, want empty slice", got)
	}
}
