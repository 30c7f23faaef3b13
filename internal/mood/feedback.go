package mood

import "fmt"

// Midpoint splits ratings into the low and high commentary buckets.
const Midpoint = 5.0

const (
	lowCommentary     = "cheer up, tomorrow is a new day"
	highCommentary    = "chill out, you're doing great"
	neutralCommentary = "right in the middle, steady as it goes"
)

// Commentary returns a short remark for the given rating.
func Commentary(value float64) string {
	switch {
	case value < Midpoint:
		return lowCommentary
	case value > Midpoint:
		return highCommentary
	default:
		return neutralCommentary
	}
}

// FormatResult renders the one-line summary printed after a successful insert.
func FormatResult(rows int64, value float64) string {
	return fmt.Sprintf("%d row inserted - %s", rows, Commentary(value))
}

// FormatFailure renders the one-line summary printed when storage fails.
func FormatFailure(err error) string {
	return fmt.Sprintf("update failed: %v", err)
}
