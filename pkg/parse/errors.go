package parse

import "errors"

// Common errors returned by the parse package.
var (
	// ErrMissingValue is returned when a cell is empty or absent.
	ErrMissingValue = errors.New("missing value")

	// ErrBadTimestamp is returned when a timestamp matches none of the
	// known formats.
	ErrBadTimestamp = errors.New("unparsable timestamp")

	// ErrDurationSyntax is returned when a duration cell is not numeric.
	ErrDurationSyntax = errors.New("unparsable duration")

	// ErrDurationNegative is returned when a duration parses but is
	// negative. Callers that only care about validity can treat this the
	// same as ErrDurationSyntax; the engine routes both to one tally.
	ErrDurationNegative = errors.New("negative duration")
)
