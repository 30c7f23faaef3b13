package mood

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Allowed mood value range, inclusive on both ends.
const (
	MinValue = 0.0
	MaxValue = 10.0
)

// DBExtension is the only accepted database file extension.
const DBExtension = ".db"

// ValidationError reports input that parsed but is not acceptable.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ParseError reports a datetime that is not valid RFC 3339.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse datetime %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InRange reports whether v lies within [MinValue, MaxValue]. NaN is never in range.
func InRange(v float64) bool {
	return v >= MinValue && v <= MaxValue
}

// ParseValue parses a mood rating and checks it against the allowed range.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{
			Input:  s,
			Reason: fmt.Sprintf("`%s` is non-numeric", s),
		}
	}
	if !InRange(v) {
		return 0, &ValidationError{
			Input:  s,
			Reason: fmt.Sprintf("invalid value `%s`. value not in range %g-%g", s, MinValue, MaxValue),
		}
	}
	return v, nil
}

// ParseDatetime converts an RFC 3339 timestamp to Unix seconds. The "T" and
// "Z" designators may be lower case, and a leap second (:60) maps to the
// preceding second.
func ParseDatetime(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339, normalizeDatetime(s))
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return t.Unix(), nil
}

func normalizeDatetime(s string) string {
	n := strings.ToUpper(s)
	// YYYY-MM-DDTHH:MM:SS, seconds at [17:19]
	if len(n) >= 19 && n[16] == ':' && n[17:19] == "60" {
		n = n[:17] + "59" + n[19:]
	}
	return n
}

// ValidateDBPath accepts only paths whose extension is exactly ".db".
func ValidateDBPath(p string) (string, error) {
	ext := filepath.Ext(p)
	// a bare dotfile such as ".db" has no extension
	if base := filepath.Base(p); ext == base {
		ext = ""
	}
	switch ext {
	case DBExtension:
		return p, nil
	case "":
		return "", &ValidationError{
			Input:  p,
			Reason: "invalid dbpath. `.db` extension not found",
		}
	default:
		return "", &ValidationError{
			Input:  p,
			Reason: fmt.Sprintf("invalid dbpath. invalid extension `%s` use .db", ext),
		}
	}
}
