// Package parse turns raw trip CSV cells into typed values.
//
// Parsers never panic on bad input: each returns a sentinel error
// classifying the failure so the aggregation engine can decide which
// rejection tally a row belongs to.
package parse

import "strings"

// Bucket is the three-way rider classification.
type Bucket string

// Rider buckets. The two naming eras of the source data use different
// vocabularies for the same pair of concepts (Subscriber/Customer vs
// member/casual); both collapse to these values.
const (
	BucketMember  Bucket = "member"
	BucketCasual  Bucket = "casual"
	BucketUnknown Bucket = "unknown"
)

// Buckets lists all buckets in the fixed order used by reports.
var Buckets = []Bucket{BucketMember, BucketCasual, BucketUnknown}

// UserType classifies a raw usertype cell into a Bucket.
//
// Matching is case-insensitive on the whitespace-trimmed value.
// Anything outside the two known vocabularies, including the empty
// string, is BucketUnknown.
func UserType(raw string) Bucket {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "subscriber", "member":
		return BucketMember
	case "customer", "casual":
		return BucketCasual
	default:
		return BucketUnknown
	}
}
