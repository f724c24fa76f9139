package report

import (
	"strconv"

	"github.com/benledwon/trip-insights/pkg/parse"
	"github.com/benledwon/trip-insights/pkg/stats"
)

// DefaultTopStations is the ranking depth used when no explicit N is
// configured.
const DefaultTopStations = 20

// Summary builds the per-bucket overview: ride count, mean duration
// (2 decimal places, 0 when the bucket is empty), min/max duration
// (empty cells when the bucket is empty), and the weekend/weekday split.
func Summary(s *stats.State) Table {
	rows := make([][]string, 0, len(parse.Buckets))
	for _, bucket := range parse.Buckets {
		var overall stats.OverallStats
		if o, ok := s.Overall[bucket]; ok {
			overall = *o
		}

		mean := 0.0
		minCell, maxCell := "", ""
		if overall.Count > 0 {
			mean = float64(overall.DurationSum) / float64(overall.Count)
			minCell = strconv.FormatInt(overall.DurationMin, 10)
			maxCell = strconv.FormatInt(overall.DurationMax, 10)
		}

		rows = append(rows, []string{
			string(bucket),
			strconv.FormatInt(overall.Count, 10),
			formatFloat(mean, 2),
			minCell,
			maxCell,
			strconv.FormatInt(overall.WeekendCount, 10),
			strconv.FormatInt(overall.WeekdayCount, 10),
		})
	}

	return Table{
		Name: "summary_overall",
		Header: []string{
			"user_type", "ride_count", "avg_ride_seconds",
			"min_ride_seconds", "max_ride_seconds",
			"weekend_rides", "weekday_rides",
		},
		Rows: rows,
	}
}

// RidesByDay builds the dense (day, bucket) ride-count table.
func RidesByDay(s *stats.State) Table {
	rows := make([][]string, 0, len(DayNames)*len(parse.Buckets))
	for day := range DayNames {
		for _, bucket := range parse.Buckets {
			var count int64
			if d, ok := s.ByDay[stats.DayKey{Day: day, Bucket: bucket}]; ok {
				count = d.Count
			}
			rows = append(rows, []string{
				DayNames[day], string(bucket), strconv.FormatInt(count, 10),
			})
		}
	}

	return Table{
		Name:   "rides_by_day_user",
		Header: []string{"day_of_week", "user_type", "ride_count"},
		Rows:   rows,
	}
}

// AvgDurationByDay builds the dense (day, bucket) mean-duration table,
// 2 decimal places, 0 for unobserved combinations.
func AvgDurationByDay(s *stats.State) Table {
	rows := make([][]string, 0, len(DayNames)*len(parse.Buckets))
	for day := range DayNames {
		for _, bucket := range parse.Buckets {
			mean := 0.0
			if d, ok := s.ByDay[stats.DayKey{Day: day, Bucket: bucket}]; ok && d.Count > 0 {
				mean = float64(d.DurationSum) / float64(d.Count)
			}
			rows = append(rows, []string{
				DayNames[day], string(bucket), formatFloat(mean, 2),
			})
		}
	}

	return Table{
		Name:   "avg_ride_seconds_by_day_user",
		Header: []string{"day_of_week", "user_type", "avg_ride_seconds"},
		Rows:   rows,
	}
}

// RidesByHour builds the dense (hour, bucket) ride-count table.
func RidesByHour(s *stats.State) Table {
	rows := make([][]string, 0, 24*len(parse.Buckets))
	for hour := 0; hour < 24; hour++ {
		for _, bucket := range parse.Buckets {
			count := s.ByHour[stats.HourKey{Hour: hour, Bucket: bucket}]
			rows = append(rows, []string{
				strconv.Itoa(hour), string(bucket), strconv.FormatInt(count, 10),
			})
		}
	}

	return Table{
		Name:   "rides_by_hour_user",
		Header: []string{"hour_of_day", "user_type", "ride_count"},
		Rows:   rows,
	}
}

// RidesByMonth builds the dense (month, bucket) ride-count table.
func RidesByMonth(s *stats.State) Table {
	rows := make([][]string, 0, 12*len(parse.Buckets))
	for month := 1; month <= 12; month++ {
		for _, bucket := range parse.Buckets {
			count := s.ByMonth[stats.MonthKey{Month: month, Bucket: bucket}]
			rows = append(rows, []string{
				strconv.Itoa(month), string(bucket), strconv.FormatInt(count, 10),
			})
		}
	}

	return Table{
		Name:   "rides_by_month_user",
		Header: []string{"month", "user_type", "ride_count"},
		Rows:   rows,
	}
}

// CommuteShare builds the commute-window share table: commute rides over
// weekday rides per bucket, 4 decimal places, 0 on a zero denominator.
func CommuteShare(s *stats.State) Table {
	rows := make([][]string, 0, len(parse.Buckets))
	for _, bucket := range parse.Buckets {
		var weekday int64
		if o, ok := s.Overall[bucket]; ok {
			weekday = o.WeekdayCount
		}
		commute := s.Commute[bucket]

		rows = append(rows, []string{
			string(bucket),
			strconv.FormatInt(commute, 10),
			strconv.FormatInt(weekday, 10),
			formatFloat(ratio(commute, weekday), 4),
		})
	}

	return Table{
		Name:   "commute_share_weekday",
		Header: []string{"user_type", "commute_rides", "weekday_rides", "commute_share"},
		Rows:   rows,
	}
}

// RoundTripShare builds the round-trip share table: round trips over all
// rides per bucket.
func RoundTripShare(s *stats.State) Table {
	rows := make([][]string, 0, len(parse.Buckets))
	for _, bucket := range parse.Buckets {
		var total int64
		if o, ok := s.Overall[bucket]; ok {
			total = o.Count
		}
		roundTrips := s.RoundTrip[bucket]

		rows = append(rows, []string{
			string(bucket),
			strconv.FormatInt(roundTrips, 10),
			strconv.FormatInt(total, 10),
			formatFloat(ratio(roundTrips, total), 4),
		})
	}

	return Table{
		Name:   "round_trip_share",
		Header: []string{"user_type", "round_trip_rides", "total_rides", "round_trip_share"},
		Rows:   rows,
	}
}

// LongRideShare builds the long-ride share table with the two independent
// threshold ratios per bucket.
func LongRideShare(s *stats.State) Table {
	rows := make([][]string, 0, len(parse.Buckets))
	for _, bucket := range parse.Buckets {
		var total int64
		if o, ok := s.Overall[bucket]; ok {
			total = o.Count
		}
		var over30, over60 int64
		if lr, ok := s.LongRide[bucket]; ok {
			over30, over60 = lr.Over30m, lr.Over60m
		}

		rows = append(rows, []string{
			string(bucket),
			strconv.FormatInt(over30, 10),
			strconv.FormatInt(over60, 10),
			strconv.FormatInt(total, 10),
			formatFloat(ratio(over30, total), 4),
			formatFloat(ratio(over60, total), 4),
		})
	}

	return Table{
		Name: "long_ride_share",
		Header: []string{
			"user_type", "rides_over_30m", "rides_over_60m",
			"total_rides", "share_over_30m", "share_over_60m",
		},
		Rows: rows,
	}
}

// TopStations builds the ranked start-station table for one of the
// tracked buckets (member or casual). Ranking is by descending count with
// ties in first-encountered order; a bucket with no observed stations
// yields an empty table, not an error.
func TopStations(s *stats.State, bucket parse.Bucket, n int) Table {
	rows := [][]string{}
	if tally, ok := s.StartStations[bucket]; ok {
		for _, entry := range tally.Top(n) {
			rows = append(rows, []string{
				entry.Key, strconv.FormatInt(entry.Count, 10),
			})
		}
	}

	return Table{
		Name:   "top_start_stations_" + string(bucket),
		Header: []string{"station_name", "ride_count"},
		Rows:   rows,
	}
}

// Metadata builds the run metadata table: the scalar counters followed by
// the full raw-usertype tally in descending count order.
func Metadata(s *stats.State) Table {
	rows := [][]string{
		{"rows_processed", strconv.FormatInt(s.RowsProcessed, 10)},
		{"bad_time_rows", strconv.FormatInt(s.BadTimeRows, 10)},
		{"bad_duration_rows", strconv.FormatInt(s.BadDurationRows, 10)},
	}

	for _, entry := range s.UserTypeRaw.Ranked() {
		rows = append(rows, []string{
			"usertype_raw:" + entry.Key, strconv.FormatInt(entry.Count, 10),
		})
	}

	return Table{
		Name:   "analysis_metadata",
		Header: []string{"metric", "value"},
		Rows:   rows,
	}
}

// All builds every report in the fixed output order.
func All(s *stats.State, topStations int) []Table {
	if topStations <= 0 {
		topStations = DefaultTopStations
	}

	return []Table{
		Summary(s),
		RidesByDay(s),
		AvgDurationByDay(s),
		RidesByHour(s),
		RidesByMonth(s),
		CommuteShare(s),
		RoundTripShare(s),
		LongRideShare(s),
		TopStations(s, parse.BucketMember, topStations),
		TopStations(s, parse.BucketCasual, topStations),
		Metadata(s),
	}
}

// ratio divides num by den, returning exactly 0 on a zero denominator.
func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// formatFloat renders v with exactly prec decimal places.
func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
