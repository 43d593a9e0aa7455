package timefmt

import (
	"strconv"
	"strings"
	"time"
)

// Timestamp is a count of seconds since the Unix epoch.
// Zero means "absent"; negative values are invalid.
type Timestamp int64

// FromTime converts t to a Timestamp, dropping sub-second precision.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Valid reports whether ts is present and not before the epoch.
func (ts Timestamp) Valid() bool {
	return ts > 0
}

// Time returns ts as a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts), 0).UTC()
}

// Normalize reads values of 1e10 and above as milliseconds and returns them
// in seconds. Smaller values, negatives included, are returned unchanged.
func (ts Timestamp) Normalize() Timestamp {
	if ts >= millisThreshold {
		return ts / 1000
	}
	return ts
}

// ParseTimestamp parses a decimal Unix timestamp in seconds.
// Values of 1e10 and above are taken as milliseconds, matching what browsers
// send from Date.now().
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidTimestamp
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, ErrInvalidTimestamp
	}
	return Timestamp(n).Normalize(), nil
}

// millisThreshold separates second and millisecond epochs (year 2286 in seconds).
const millisThreshold = 10_000_000_000
