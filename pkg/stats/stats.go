package stats

import (
	"strings"

	"github.com/benledwon/trip-insights/pkg/parse"
	"github.com/benledwon/trip-insights/pkg/schema"
)

// Ingest feeds one normalized row into every accumulator table.
//
// The raw usertype tally updates unconditionally, before the timestamp
// and duration gates, so it reflects the full variety of the input. Rows
// whose start time fails to parse increment BadTimeRows; rows whose
// duration is unparsable or negative increment BadDurationRows. Either
// failure excludes the row from every other accumulator. Ingest never
// fails: a malformed row degrades to a rejection tally increment.
func (s *State) Ingest(row map[string]string) {
	s.RowsProcessed++

	rawUserType := strings.TrimSpace(row[schema.FieldUserType])
	s.UserTypeRaw.Add(rawUserType, 1)
	bucket := parse.UserType(rawUserType)

	startTime, err := parse.Timestamp(row[schema.FieldStartTime])
	if err != nil {
		s.BadTimeRows++
		return
	}

	duration, err := parse.DurationSeconds(row[schema.FieldTripDuration])
	if err != nil {
		s.BadDurationRows++
		return
	}

	day := parse.Weekday(startTime)
	hour := startTime.Hour()
	month := int(startTime.Month())
	weekend := day >= 5

	overall := s.overall(bucket)
	overall.Count++
	overall.DurationSum += duration
	if overall.Count == 1 {
		overall.DurationMin = duration
		overall.DurationMax = duration
	} else {
		if duration < overall.DurationMin {
			overall.DurationMin = duration
		}
		if duration > overall.DurationMax {
			overall.DurationMax = duration
		}
	}
	if weekend {
		overall.WeekendCount++
	} else {
		overall.WeekdayCount++
	}

	dayStats := s.day(DayKey{Day: day, Bucket: bucket})
	dayStats.Count++
	dayStats.DurationSum += duration

	s.ByHour[HourKey{Hour: hour, Bucket: bucket}]++
	s.ByMonth[MonthKey{Month: month, Bucket: bucket}]++

	if !weekend && inCommuteWindow(hour) {
		s.Commute[bucket]++
	}

	// Round trip: both IDs must be non-empty after trimming, but
	// equality is on the raw cell text.
	fromID := row[schema.FieldFromStationID]
	toID := row[schema.FieldToStationID]
	if strings.TrimSpace(fromID) != "" && strings.TrimSpace(toID) != "" && fromID == toID {
		s.RoundTrip[bucket]++
	}

	if duration > longRide30Seconds {
		s.longRide(bucket).Over30m++
	}
	if duration > longRide60Seconds {
		s.longRide(bucket).Over60m++
	}

	if stations, ok := s.StartStations[bucket]; ok {
		if name := strings.TrimSpace(row[schema.FieldFromStationName]); name != "" {
			stations.Add(name, 1)
		}
	}
}

// Merge folds other into s. The combination is associative and
// commutative (counts sum, min/max combine via min/max), so states built
// from partitioned input merge to the same result as a single pass.
func (s *State) Merge(other *State) {
	for bucket, o := range other.Overall {
		cur := s.overall(bucket)
		if cur.Count == 0 {
			cur.DurationMin = o.DurationMin
			cur.DurationMax = o.DurationMax
		} else if o.Count > 0 {
			if o.DurationMin < cur.DurationMin {
				cur.DurationMin = o.DurationMin
			}
			if o.DurationMax > cur.DurationMax {
				cur.DurationMax = o.DurationMax
			}
		}
		cur.Count += o.Count
		cur.DurationSum += o.DurationSum
		cur.WeekendCount += o.WeekendCount
		cur.WeekdayCount += o.WeekdayCount
	}

	for key, o := range other.ByDay {
		cur := s.day(key)
		cur.Count += o.Count
		cur.DurationSum += o.DurationSum
	}
	for key, n := range other.ByHour {
		s.ByHour[key] += n
	}
	for key, n := range other.ByMonth {
		s.ByMonth[key] += n
	}
	for bucket, n := range other.Commute {
		s.Commute[bucket] += n
	}
	for bucket, n := range other.RoundTrip {
		s.RoundTrip[bucket] += n
	}
	for bucket, o := range other.LongRide {
		cur := s.longRide(bucket)
		cur.Over30m += o.Over30m
		cur.Over60m += o.Over60m
	}
	for bucket, tally := range other.StartStations {
		if cur, ok := s.StartStations[bucket]; ok {
			cur.merge(tally)
		}
	}
	s.UserTypeRaw.merge(other.UserTypeRaw)

	s.RowsProcessed += other.RowsProcessed
	s.BadTimeRows += other.BadTimeRows
	s.BadDurationRows += other.BadDurationRows
}

// overall returns the overall accumulator for bucket, creating it lazily.
func (s *State) overall(bucket parse.Bucket) *OverallStats {
	o, ok := s.Overall[bucket]
	if !ok {
		o = &OverallStats{}
		s.Overall[bucket] = o
	}
	return o
}

// day returns the by-day accumulator for key, creating it lazily.
func (s *State) day(key DayKey) *DayStats {
	d, ok := s.ByDay[key]
	if !ok {
		d = &DayStats{}
		s.ByDay[key] = d
	}
	return d
}

// longRide returns the long-ride accumulator for bucket, creating it lazily.
func (s *State) longRide(bucket parse.Bucket) *LongRideStats {
	l, ok := s.LongRide[bucket]
	if !ok {
		l = &LongRideStats{}
		s.LongRide[bucket] = l
	}
	return l
}

// inCommuteWindow reports whether hour falls in the morning or evening
// commute window. Bounds are inclusive.
func inCommuteWindow(hour int) bool {
	return (hour >= commuteMorningStart && hour <= commuteMorningEnd) ||
		(hour >= commuteEveningStart && hour <= commuteEveningEnd)
}
