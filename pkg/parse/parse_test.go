package parse

import (
	"errors"
	"testing"
	"time"
)

func TestTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{
			name:  "iso format",
			input: "2019-04-01 08:15:00",
			want:  time.Date(2019, 4, 1, 8, 15, 0, 0, time.UTC),
		},
		{
			name:  "us format without seconds",
			input: "4/1/2019 08:15",
			want:  time.Date(2019, 4, 1, 8, 15, 0, 0, time.UTC),
		},
		{
			name:  "us format zero padded",
			input: "04/01/2019 08:15",
			want:  time.Date(2019, 4, 1, 8, 15, 0, 0, time.UTC),
		},
		{
			name:  "us format with seconds",
			input: "12/31/2019 23:59:59",
			want:  time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  2019-04-01 08:15:00  ",
			want:  time.Date(2019, 4, 1, 8, 15, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrMissingValue,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrMissingValue,
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: ErrBadTimestamp,
		},
		{
			name:    "date without time",
			input:   "2019-04-01",
			wantErr: ErrBadTimestamp,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Timestamp(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Timestamp(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Timestamp(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Timestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDurationSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "integer", input: "600", want: 600},
		{name: "decimal truncates", input: "446.9", want: 446},
		{name: "thousands separator", input: "1,783.0", want: 1783},
		{name: "zero", input: "0", want: 0},
		{name: "negative decimal truncates to zero", input: "-0.5", want: 0},
		{name: "empty", input: "", wantErr: ErrMissingValue},
		{name: "whitespace", input: "  ", wantErr: ErrMissingValue},
		{name: "negative", input: "-5", wantErr: ErrDurationNegative},
		{name: "not a number", input: "ten", wantErr: ErrDurationSyntax},
		{name: "nan", input: "NaN", wantErr: ErrDurationSyntax},
		{name: "infinity", input: "Inf", wantErr: ErrDurationSyntax},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DurationSeconds(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DurationSeconds(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("DurationSeconds(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("DurationSeconds(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestUserType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Bucket
	}{
		{"Subscriber", BucketMember},
		{"subscriber", BucketMember},
		{"  MEMBER  ", BucketMember},
		{"Customer", BucketCasual},
		{"casual", BucketCasual},
		{"", BucketUnknown},
		{"   ", BucketUnknown},
		{"Dependent", BucketUnknown},
	}

	for _, tt := range tests {
		if got := UserType(tt.input); got != tt.want {
			t.Errorf("UserType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	// 2019-04-01 was a Monday.
	monday := time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC)
	if got := Weekday(monday); got != 0 {
		t.Errorf("Weekday(Monday) = %d, want 0", got)
	}

	// 2019-04-07 was a Sunday.
	sunday := time.Date(2019, 4, 7, 0, 0, 0, 0, time.UTC)
	if got := Weekday(sunday); got != 6 {
		t.Errorf("Weekday(Sunday) = %d, want 6", got)
	}
}
