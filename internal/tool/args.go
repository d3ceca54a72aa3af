package tool

import (
	"fmt"
	"math"
	"time"
)

// Optional maps the text sentinels "None" and "none" to an absent value.
// Models that only ever emit strings use them to mean "not given".
func Optional(s *string) *string {
	if s == nil || IsNone(*s) {
		return nil
	}
	return s
}

// IsNone reports whether s is a "no value" sentinel.
func IsNone(s string) bool {
	return s == "None" || s == "none"
}

// Timeout converts an optional seconds value into a duration, falling back
// to def when absent. Non-positive and non-finite values are rejected.
func Timeout(seconds *float64, def time.Duration) (time.Duration, error) {
	if seconds == nil {
		return def, nil
	}
	s := *seconds
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return 0, &ArgumentError{Name: "timeout", Reason: fmt.Sprintf("must be a positive number of seconds, got %v", s)}
	}
	return time.Duration(s * float64(time.Second)), nil
}
