package timefmt

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/chatstamp/pkg/cache"
)

// Clock supplies "now" and projects timestamps into time zones.
// Implementations must be safe for concurrent use.
type Clock interface {
	Now() Timestamp
	Zoned(ts Timestamp, tz string) (ZonedInstant, error)
	// DayDifference returns a - b in calendar days, signed.
	DayDifference(a, b ZonedInstant) int
}

// SystemClock is the Clock backed by the time package and the zoneinfo
// database. Loaded locations are kept in a bounded LRU cache.
type SystemClock struct {
	zones *cache.LRU[*time.Location]
	now   func() time.Time
}

// ClockOption configures a SystemClock.
type ClockOption func(*SystemClock)

// WithZoneCacheSize bounds the number of cached locations. Default: 256.
func WithZoneCacheSize(n int) ClockOption {
	return func(c *SystemClock) {
		c.zones = cache.NewLRU[*time.Location](cache.WithMaxEntries(n))
	}
}

// WithNowFunc replaces time.Now as the source of the current time.
func WithNowFunc(now func() time.Time) ClockOption {
	return func(c *SystemClock) {
		if now != nil {
			c.now = now
		}
	}
}

// NewSystemClock creates a Clock reading the wall clock.
func NewSystemClock(opts ...ClockOption) *SystemClock {
	c := &SystemClock{
		zones: cache.NewLRU[*time.Location](),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFixedClock creates a SystemClock whose Now always returns now.
func NewFixedClock(now Timestamp, opts ...ClockOption) *SystemClock {
	frozen := now.Time()
	return NewSystemClock(append(opts, WithNowFunc(func() time.Time { return frozen }))...)
}

// Now returns the current Timestamp.
func (c *SystemClock) Now() Timestamp {
	return FromTime(c.now())
}

// Location resolves an IANA zone name such as "Asia/Shanghai".
// The empty name and "Local" are rejected: output must never depend on the
// host's zone configuration.
func (c *SystemClock) Location(tz string) (*time.Location, error) {
	if tz == "" || tz == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, tz)
	}
	return c.zones.GetOrLoad(context.Background(), tz, func(context.Context) (*time.Location, error) {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", ErrUnknownTimezone, tz, err)
		}
		return loc, nil
	})
}

// Zoned projects ts into tz.
func (c *SystemClock) Zoned(ts Timestamp, tz string) (ZonedInstant, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return ZonedInstant{}, err
	}
	return Zone(ts.Time().In(loc)), nil
}

// DayDifference returns a - b in calendar days.
func (c *SystemClock) DayDifference(a, b ZonedInstant) int {
	return CalendarDayDifference(a, b)
}

var _ Clock = (*SystemClock)(nil)
