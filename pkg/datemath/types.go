package datemath

import "time"

// Result is a resolved day. Day is midnight in the parser's location.
type Result struct {
	Day      time.Time
	Relative bool // false when the phrase was already an absolute date
}
