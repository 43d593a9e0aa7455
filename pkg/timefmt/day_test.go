package timefmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

func TestFormatter_DayBounds(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)

	tests := []struct {
		name  string
		ts    string
		tz    string
		start string
		end   string
	}{
		{
			name:  "fixed offset",
			ts:    "2024-06-15T15:30:00+08:00",
			tz:    shanghai,
			start: "2024-06-15T00:00:00+08:00",
			end:   "2024-06-15T23:59:59+08:00",
		},
		{
			name:  "just after midnight",
			ts:    "2024-06-15T00:00:00+08:00",
			tz:    shanghai,
			start: "2024-06-15T00:00:00+08:00",
			end:   "2024-06-15T23:59:59+08:00",
		},
		{
			name:  "UTC",
			ts:    "2024-06-15T15:30:00+08:00",
			tz:    "UTC",
			start: "2024-06-15T00:00:00Z",
			end:   "2024-06-15T23:59:59Z",
		},
		{
			name:  "spring forward",
			ts:    "2024-03-10T12:00:00-04:00",
			tz:    "America/New_York",
			start: "2024-03-10T00:00:00-05:00",
			end:   "2024-03-10T23:59:59-04:00",
		},
		{
			name:  "fall back",
			ts:    "2024-11-03T12:00:00-05:00",
			tz:    "America/New_York",
			start: "2024-11-03T00:00:00-04:00",
			end:   "2024-11-03T23:59:59-05:00",
		},
		{
			name:  "skipped midnight",
			ts:    "2024-09-08T12:00:00-03:00",
			tz:    "America/Santiago",
			start: "2024-09-08T01:00:00-03:00",
			end:   "2024-09-08T23:59:59-03:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, end, err := f.DayBounds(at(t, tt.ts), tt.tz)
			require.NoError(t, err)
			require.Equal(t, at(t, tt.start), start)
			require.Equal(t, at(t, tt.end), end)
		})
	}

	t.Run("DST days keep their length", func(t *testing.T) {
		t.Parallel()
		start, end, err := f.DayBounds(at(t, "2024-03-10T12:00:00-04:00"), "America/New_York")
		require.NoError(t, err)
		require.Equal(t, timefmt.Timestamp(23*3600-1), end-start)

		start, end, err = f.DayBounds(at(t, "2024-11-03T12:00:00-05:00"), "America/New_York")
		require.NoError(t, err)
		require.Equal(t, timefmt.Timestamp(25*3600-1), end-start)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, _, err := f.DayBounds(0, shanghai)
		require.ErrorIs(t, err, timefmt.ErrInvalidTimestamp)
		_, _, err = f.DayBounds(at(t, "2024-06-15T15:30:00+08:00"), "Nowhere/City")
		require.ErrorIs(t, err, timefmt.ErrUnknownTimezone)
	})

	t.Run("bounds contain ts on its date", func(t *testing.T) {
		t.Parallel()
		clock := timefmt.NewSystemClock()
		zones := []string{shanghai, "UTC", "America/New_York", "Europe/London", "Australia/Lord_Howe"}
		rapid.Check(t, func(rt *rapid.T) {
			ts := timefmt.Timestamp(rapid.Int64Range(86400*2, 4_000_000_000).Draw(rt, "ts"))
			tz := rapid.SampledFrom(zones).Draw(rt, "tz")

			start, end, err := f.DayBounds(ts, tz)
			require.NoError(rt, err)
			require.LessOrEqual(rt, start, ts)
			require.GreaterOrEqual(rt, end, ts)

			zt, _ := clock.Zoned(ts, tz)
			zs, _ := clock.Zoned(start, tz)
			ze, _ := clock.Zoned(end, tz)
			require.True(rt, zs.SameDate(zt))
			require.True(rt, ze.SameDate(zt))

			before, _ := clock.Zoned(start-1, tz)
			after, _ := clock.Zoned(end+1, tz)
			require.False(rt, before.SameDate(zt))
			require.False(rt, after.SameDate(zt))
		})
	})
}

func TestFormatter_DaySeparator(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	now := at(t, "2024-06-15T00:30:00+08:00")

	tests := []struct {
		name string
		ts   string
		zh   string
		en   string
		ja   string
	}{
		{name: "today", ts: "2024-06-15T00:10:00+08:00", zh: "今天", en: "Today", ja: "今日"},
		{name: "yesterday across midnight", ts: "2024-06-14T23:50:00+08:00", zh: "昨天", en: "Yesterday", ja: "昨日"},
		{name: "older", ts: "2024-06-12T09:00:00+08:00", zh: "2024年6月12日", en: "Jun 12, 2024", ja: "2024年6月12日"},
		{name: "later today", ts: "2024-06-15T08:00:00+08:00", zh: "今天", en: "Today", ja: "今日"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := at(t, tt.ts)
			require.Equal(t, tt.zh, f.DaySeparator(ts, now, shanghai, "zh-CN"))
			require.Equal(t, tt.en, f.DaySeparator(ts, now, shanghai, "en"))
			require.Equal(t, tt.ja, f.DaySeparator(ts, now, shanghai, "ja"))
		})
	}

	t.Run("zone decides the day", func(t *testing.T) {
		t.Parallel()
		// In UTC both ts and now fall on June 14.
		ts := at(t, "2024-06-15T00:10:00+08:00")
		require.Equal(t, "Today", f.DaySeparator(ts, now, "UTC", "en"))
		require.Equal(t, "Yesterday", f.DaySeparator(at(t, "2024-06-13T23:00:00Z"), now, "UTC", "en"))
	})

	t.Run("empty on bad input", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, f.DaySeparator(0, now, shanghai, "en"))
		require.Empty(t, f.DaySeparator(now, now, "Nowhere/City", "en"))
	})
}

func TestFormatter_FormatLayout(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	ts := at(t, "2024-06-14T20:15:00+08:00")

	require.Equal(t, "Jun 14, 2024", f.FormatLayout(ts, shanghai, "Jan 02, 2006"))
	require.Equal(t, "2024-06-14 12:15", f.FormatLayout(ts, "UTC", "2006-01-02 15:04"))
	require.Empty(t, f.FormatLayout(0, shanghai, "2006"))
	require.Empty(t, f.FormatLayout(ts, "Nowhere/City", "2006"))
}

func TestIsTimeAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		h1, m1, h2, m2 int
		want           bool
	}{
		{9, 0, 9, 0, true},
		{9, 30, 9, 0, true},
		{9, 0, 9, 30, false},
		{10, 0, 9, 59, true},
		{8, 59, 9, 0, false},
		{0, 0, 23, 59, false},
		{23, 59, 0, 0, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, timefmt.IsTimeAfter(tt.h1, tt.m1, tt.h2, tt.m2), "%02d:%02d vs %02d:%02d", tt.h1, tt.m1, tt.h2, tt.m2)
	}
}
