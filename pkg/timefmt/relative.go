package timefmt

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Style selects the relative-phrase variant.
type Style int

const (
	// Verbose phrases read like "about 3 hours ago".
	Verbose Style = iota
	// Short phrases read like "3h ago".
	Short
)

func (s Style) String() string {
	if s == Short {
		return "short"
	}
	return "verbose"
}

// Phrase keys of the relative vocabulary. Verbose keys follow the date-fns
// formatDistance thresholds; short keys are plain unit counts.
const (
	PhraseLessThanMinute = "less_than_a_minute"
	PhraseMinutes        = "minutes"
	PhraseAboutHours     = "about_hours"
	PhraseHours          = "hours"
	PhraseDays           = "days"
	PhraseAboutMonths    = "about_months"
	PhraseMonths         = "months"
	PhraseYears          = "years"
	PhraseAboutYears     = "about_years"
	PhraseOverYears      = "over_years"
	PhraseAlmostYears    = "almost_years"
	PhraseNow            = "now"
)

const (
	minutesPerHour  = 60
	minutesPerDay   = 24 * minutesPerHour
	minutesPerMonth = 30 * minutesPerDay
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// shortMagnitudes render "<key> <count>" so the humanize output maps back
// onto a vocabulary key. Twelve 30-day months come before a full 365-day
// year, so that gap reads as one year.
var shortMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: PhraseNow, DivBy: 1},
	{D: time.Hour, Format: PhraseMinutes + " %d", DivBy: time.Minute},
	{D: day, Format: PhraseHours + " %d", DivBy: time.Hour},
	{D: month, Format: PhraseDays + " %d", DivBy: day},
	{D: 12 * month, Format: PhraseMonths + " %d", DivBy: month},
	{D: year, Format: PhraseYears + " 1", DivBy: 1},
	{D: math.MaxInt64, Format: PhraseYears + " %d", DivBy: year},
}

// Distance is a relative age reduced to a vocabulary key and a count.
type Distance struct {
	Key   string
	Count int
}

// Measure reduces an elapsed duration in seconds to a Distance.
// Negative durations are treated as zero. Minutes are floored, so 59 seconds
// is still under a minute. Months are 30 days long.
func Measure(deltaSeconds int64, style Style) Distance {
	if deltaSeconds < 0 {
		deltaSeconds = 0
	}
	if style == Short {
		return measureShort(deltaSeconds)
	}
	return measureVerbose(deltaSeconds / 60)
}

func measureVerbose(minutes int64) Distance {
	switch {
	case minutes < 1:
		return Distance{Key: PhraseLessThanMinute, Count: 1}
	case minutes < 45:
		return Distance{Key: PhraseMinutes, Count: int(minutes)}
	case minutes < 90:
		return Distance{Key: PhraseAboutHours, Count: 1}
	case minutes < minutesPerDay:
		return Distance{Key: PhraseAboutHours, Count: int(roundDiv(minutes, minutesPerHour))}
	case minutes < 2520:
		return Distance{Key: PhraseDays, Count: 1}
	case minutes < minutesPerMonth:
		return Distance{Key: PhraseDays, Count: int(roundDiv(minutes, minutesPerDay))}
	case minutes < 2*minutesPerMonth:
		return Distance{Key: PhraseAboutMonths, Count: int(roundDiv(minutes, minutesPerMonth))}
	}

	months := minutes / minutesPerMonth
	if months < 12 {
		return Distance{Key: PhraseMonths, Count: int(roundDiv(minutes, minutesPerMonth))}
	}

	years, rem := months/12, months%12
	switch {
	case rem < 3:
		return Distance{Key: PhraseAboutYears, Count: int(years)}
	case rem < 9:
		return Distance{Key: PhraseOverYears, Count: int(years)}
	default:
		return Distance{Key: PhraseAlmostYears, Count: int(years + 1)}
	}
}

// measureShort floors the elapsed time to its largest whole unit. Durations
// past the time.Duration range saturate at about 292 years.
func measureShort(deltaSeconds int64) Distance {
	epoch := time.Unix(0, 0)
	out := humanize.CustomRelTime(epoch, epoch.Add(secondsToDuration(deltaSeconds)), "", "", shortMagnitudes)

	key, count, _ := strings.Cut(out, " ")
	n, _ := strconv.Atoi(count)
	return Distance{Key: key, Count: n}
}

func secondsToDuration(s int64) time.Duration {
	if s > int64(math.MaxInt64/time.Second) {
		return math.MaxInt64
	}
	return time.Duration(s) * time.Second
}

func roundDiv(a, b int64) int64 {
	return (a + b/2) / b
}
