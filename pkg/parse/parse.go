package parse

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// timestampFormats are tried in order. The bulk of the data uses the ISO
// form; the fallback formats cover the older export tooling.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// Timestamp parses a trip timestamp cell.
//
// Returns ErrMissingValue for an empty or absent cell and ErrBadTimestamp
// when no known format matches. Weekday, hour of day, and month are
// derivable from the returned time.
func Timestamp(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, ErrMissingValue
	}

	for _, format := range timestampFormats {
		if t, err := time.Parse(format, v); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrBadTimestamp
}

// DurationSeconds parses a trip duration cell into whole seconds.
//
// Thousands separators are stripped and decimal text is accepted; the
// value is truncated toward zero. Returns ErrMissingValue for an empty
// cell, ErrDurationSyntax when the cell is not numeric, and
// ErrDurationNegative when the truncated value is below zero.
func DurationSeconds(value string) (int64, error) {
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if v == "" {
		return 0, ErrMissingValue
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrDurationSyntax
	}

	seconds := int64(f)
	if seconds < 0 {
		return 0, ErrDurationNegative
	}

	return seconds, nil
}

// Weekday returns the day-of-week index for t with Monday as 0 and
// Sunday as 6, matching the ordering of the report tables.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
