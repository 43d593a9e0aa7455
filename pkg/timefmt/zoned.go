package timefmt

import "time"

// ZonedInstant holds the calendar and clock fields of a Timestamp as seen in
// a specific time zone. It is derived on demand and never stored.
type ZonedInstant struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
	// Offset is the zone offset in seconds east of UTC at that instant.
	Offset int
}

// Zone projects t into its own location.
func Zone(t time.Time) ZonedInstant {
	_, offset := t.Zone()
	return ZonedInstant{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
		Offset:  offset,
	}
}

// Time rebuilds the wall-clock time in a fixed zone with the recorded offset.
func (z ZonedInstant) Time() time.Time {
	return time.Date(z.Year, z.Month, z.Day, z.Hour, z.Minute, z.Second, 0, time.FixedZone("", z.Offset))
}

// SameDate reports whether z and other fall on the same calendar date.
func (z ZonedInstant) SameDate(other ZonedInstant) bool {
	return z.Year == other.Year && z.Month == other.Month && z.Day == other.Day
}

// civilDay numbers calendar dates consecutively, ignoring zones and DST.
func (z ZonedInstant) civilDay() int64 {
	return time.Date(z.Year, z.Month, z.Day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// CalendarDayDifference returns a - b in whole calendar dates.
// 23:59 and 00:01 of the next day are one day apart; 00:01 and 23:59 of the
// same day are zero days apart.
func CalendarDayDifference(a, b ZonedInstant) int {
	return int(a.civilDay() - b.civilDay())
}

const secondsPerDay = 24 * 60 * 60
