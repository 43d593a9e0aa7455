package timefmt_test

import (
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

const shanghai = "Asia/Shanghai"

func at(t testing.TB, s string) timefmt.Timestamp {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return timefmt.FromTime(tm)
}

func newFormatter(t testing.TB, opts ...timefmt.Option) *timefmt.Formatter {
	t.Helper()
	f, err := timefmt.New(append([]timefmt.Option{timefmt.WithFallbackLocale("zh-CN")}, opts...)...)
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires fallback locale", func(t *testing.T) {
		t.Parallel()
		_, err := timefmt.New()
		require.ErrorIs(t, err, timefmt.ErrNoFallbackLocale)

		_, err = timefmt.New(timefmt.WithFallbackLocale(""))
		require.ErrorIs(t, err, timefmt.ErrNoFallbackLocale)
	})

	t.Run("rejects unsupported fallback locale", func(t *testing.T) {
		t.Parallel()
		_, err := timefmt.New(timefmt.WithFallbackLocale("fr"))
		require.ErrorIs(t, err, timefmt.ErrUnsupportedLocale)
	})

	t.Run("rejects nil collaborators", func(t *testing.T) {
		t.Parallel()
		_, err := timefmt.New(timefmt.WithFallbackLocale("en"), timefmt.WithClock(nil))
		require.ErrorIs(t, err, timefmt.ErrNilClock)

		_, err = timefmt.New(timefmt.WithFallbackLocale("en"), timefmt.WithLocalizer(nil))
		require.ErrorIs(t, err, timefmt.ErrNilLocalizer)
	})

	t.Run("rejects invalid rule order", func(t *testing.T) {
		t.Parallel()
		_, err := timefmt.New(timefmt.WithFallbackLocale("en"), timefmt.WithRuleOrder(timefmt.RuleOrder{}))
		require.ErrorIs(t, err, timefmt.ErrInvalidRuleOrder)

		_, err = timefmt.New(
			timefmt.WithFallbackLocale("en"),
			timefmt.WithRuleOrder(timefmt.RuleOrder{timefmt.RuleToday, timefmt.RuleToday}),
		)
		require.ErrorIs(t, err, timefmt.ErrInvalidRuleOrder)
	})

	t.Run("resolves fallback locale", func(t *testing.T) {
		t.Parallel()
		f := newFormatter(t, timefmt.WithFallbackLocale("zh_Hans_CN"))
		require.Equal(t, "zh-CN", f.FallbackLocale())
		require.Equal(t, timefmt.DefaultRuleOrder, f.RuleOrder())
	})
}

func TestFormatter_ResolveLocale(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)

	tests := map[string]string{
		"zh-CN":      "zh-CN",
		"zh_CN":      "zh-CN",
		"zh-Hans-CN": "zh-CN",
		"en":         "en",
		"en-US":      "en",
		"en-GB":      "en-GB",
		"ja-JP":      "ja",
		"fr":         "zh-CN",
		"":           "zh-CN",
		"!!":         "zh-CN",
	}
	for in, want := range tests {
		require.Equal(t, want, f.ResolveLocale(in), "locale %q", in)
	}
}

func TestFormatter_Classify(t *testing.T) {
	t.Parallel()

	calendarFirst := newFormatter(t, timefmt.WithRuleOrder(timefmt.CalendarFirstRuleOrder))
	f := newFormatter(t)

	tests := []struct {
		name          string
		now, ts       string
		want          timefmt.Bucket
		calendarFirst timefmt.Bucket
	}{
		{
			name: "seconds ago",
			now:  "2024-03-10T10:00:00Z", ts: "2024-03-10T09:59:30Z",
			want: timefmt.WithinHour, calendarFirst: timefmt.Today,
		},
		{
			name: "minutes after midnight same day",
			now:  "2024-01-02T00:30:00+08:00", ts: "2024-01-02T00:05:00+08:00",
			want: timefmt.WithinHour, calendarFirst: timefmt.Today,
		},
		{
			name: "minutes across midnight",
			now:  "2024-06-15T00:20:00+08:00", ts: "2024-06-14T23:25:00+08:00",
			want: timefmt.WithinHour, calendarFirst: timefmt.Yesterday,
		},
		{
			name: "late yesterday less than a day ago",
			now:  "2024-06-15T23:50:00+08:00", ts: "2024-06-14T23:55:00+08:00",
			want: timefmt.Yesterday, calendarFirst: timefmt.Yesterday,
		},
		{
			name: "earlier today",
			now:  "2024-06-15T15:00:00+08:00", ts: "2024-06-15T09:00:00+08:00",
			want: timefmt.Today, calendarFirst: timefmt.Today,
		},
		{
			name: "few hours ago but yesterday",
			now:  "2024-06-15T02:00:00+08:00", ts: "2024-06-14T22:00:00+08:00",
			want: timefmt.Yesterday, calendarFirst: timefmt.Yesterday,
		},
		{
			name: "this week",
			now:  "2024-06-15T12:00:00+08:00", ts: "2024-06-11T10:00:00+08:00",
			want: timefmt.WithinWeek, calendarFirst: timefmt.WithinWeek,
		},
		{
			name: "seven calendar days ago",
			now:  "2024-06-15T12:00:00+08:00", ts: "2024-06-08T23:00:00+08:00",
			want: timefmt.Older, calendarFirst: timefmt.Older,
		},
		{
			name: "future timestamp",
			now:  "2024-06-15T12:00:00+08:00", ts: "2024-06-15T13:00:00+08:00",
			want: timefmt.WithinHour, calendarFirst: timefmt.WithinHour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			now, ts := at(t, tt.now), at(t, tt.ts)

			got, err := f.Classify(ts, now, shanghai)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			got, err = calendarFirst.Classify(ts, now, shanghai)
			require.NoError(t, err)
			require.Equal(t, tt.calendarFirst, got)
		})
	}

	t.Run("calendar dates depend on zone", func(t *testing.T) {
		t.Parallel()
		now := at(t, "2024-06-15T02:00:00+08:00")
		ts := at(t, "2024-06-14T22:00:00+08:00")

		got, err := f.Classify(ts, now, "UTC")
		require.NoError(t, err)
		require.Equal(t, timefmt.Today, got)
	})

	t.Run("invalid timestamps", func(t *testing.T) {
		t.Parallel()
		now := at(t, "2024-06-15T12:00:00Z")

		_, err := f.Classify(0, now, shanghai)
		require.ErrorIs(t, err, timefmt.ErrInvalidTimestamp)

		_, err = f.Classify(-5, now, shanghai)
		require.ErrorIs(t, err, timefmt.ErrInvalidTimestamp)

		_, err = f.Classify(now, 0, shanghai)
		require.ErrorIs(t, err, timefmt.ErrInvalidTimestamp)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Parallel()
		now := at(t, "2024-06-15T12:00:00Z")
		_, err := f.Classify(now-10, now, "Mars/Olympus_Mons")
		require.ErrorIs(t, err, timefmt.ErrUnknownTimezone)
	})
}

func TestFormatter_Classify_Properties(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	calendarFirst := newFormatter(t, timefmt.WithRuleOrder(timefmt.CalendarFirstRuleOrder))
	loc, err := time.LoadLocation(shanghai)
	require.NoError(t, err)

	t.Run("under a minute is within the hour", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(rt *rapid.T) {
			now := timefmt.Timestamp(rapid.Int64Range(1e9, 2e9).Draw(rt, "now"))
			delta := rapid.Int64Range(0, 59).Draw(rt, "delta")

			got, err := f.Classify(now-timefmt.Timestamp(delta), now, shanghai)
			require.NoError(rt, err)
			require.Equal(rt, timefmt.WithinHour, got)
		})
	})

	t.Run("future is within the hour under any order", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(rt *rapid.T) {
			now := timefmt.Timestamp(rapid.Int64Range(1e9, 2e9).Draw(rt, "now"))
			ahead := rapid.Int64Range(1, 1e8).Draw(rt, "ahead")

			for _, fm := range []*timefmt.Formatter{f, calendarFirst} {
				got, err := fm.Classify(now+timefmt.Timestamp(ahead), now, shanghai)
				require.NoError(rt, err)
				require.Equal(rt, timefmt.WithinHour, got)
				require.Equal(rt, "刚刚", fm.MessageListStamp(now+timefmt.Timestamp(ahead), now, shanghai, "zh-CN"))
			}
		})
	})

	t.Run("same zoned date is today when calendar rules come first", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(rt *rapid.T) {
			day := time.Date(2024, time.January, 1, 0, 0, 0, 0, loc).AddDate(0, 0, rapid.IntRange(0, 365).Draw(rt, "day"))
			a := rapid.IntRange(0, 86399).Draw(rt, "a")
			b := rapid.IntRange(a, 86399).Draw(rt, "b")

			ts := timefmt.FromTime(day.Add(time.Duration(a) * time.Second))
			now := timefmt.FromTime(day.Add(time.Duration(b) * time.Second))

			got, err := calendarFirst.Classify(ts, now, shanghai)
			require.NoError(rt, err)
			require.Equal(rt, timefmt.Today, got)
		})
	})
}

func TestFormatter_MessageListStamp(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	now := at(t, "2024-06-15T15:30:00+08:00")

	tests := []struct {
		name string
		ts   string
		zh   string
		en   string
	}{
		{name: "just now", ts: "2024-06-15T15:29:30+08:00", zh: "刚刚", en: "just now"},
		{name: "one minute", ts: "2024-06-15T15:29:00+08:00", zh: "1分钟前", en: "1 minute ago"},
		{name: "minutes", ts: "2024-06-15T15:25:00+08:00", zh: "5分钟前", en: "5 minutes ago"},
		{name: "today", ts: "2024-06-15T09:05:00+08:00", zh: "09:05", en: "09:05"},
		{name: "yesterday", ts: "2024-06-14T20:15:00+08:00", zh: "昨天 20:15", en: "Yesterday 20:15"},
		{name: "weekday", ts: "2024-06-11T10:00:00+08:00", zh: "星期二 10:00", en: "Tuesday 10:00"},
		{name: "older", ts: "2024-06-01T10:00:00+08:00", zh: "2024/06/01", en: "2024/06/01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := at(t, tt.ts)
			require.Equal(t, tt.zh, f.MessageListStamp(ts, now, shanghai, "zh-CN"))
			require.Equal(t, tt.en, f.MessageListStamp(ts, now, shanghai, "en-US"))
		})
	}

	t.Run("older dates are year first in every locale", func(t *testing.T) {
		t.Parallel()
		ts := at(t, "2024-03-09T10:00:00+08:00")
		for _, lang := range []string{"zh-CN", "en-US", "en-GB", "ja"} {
			require.Equal(t, "2024/03/09", f.MessageListStamp(ts, now, shanghai, lang), lang)
		}
	})

	t.Run("12-hour clock", func(t *testing.T) {
		t.Parallel()
		f12 := newFormatter(t, timefmt.With24Hour(false))
		ts := at(t, "2024-06-14T20:15:00+08:00")
		require.Equal(t, "昨天 下午8:15", f12.MessageListStamp(ts, now, shanghai, "zh-CN"))
		require.Equal(t, "Yesterday 8:15 PM", f12.MessageListStamp(ts, now, shanghai, "en"))
		require.Equal(t, "Yesterday 8:15 pm", f12.MessageListStamp(ts, now, shanghai, "en-GB"))
	})

	t.Run("unsupported locale uses fallback", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "昨天 20:15", f.MessageListStamp(at(t, "2024-06-14T20:15:00+08:00"), now, shanghai, "fr-FR"))
	})

	t.Run("empty on bad input", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, f.MessageListStamp(0, now, shanghai, "zh-CN"))
		require.Empty(t, f.MessageListStamp(-1, now, shanghai, "zh-CN"))
		require.Empty(t, f.MessageListStamp(now, now, "Nowhere/City", "zh-CN"))
		require.Empty(t, f.MessageListStamp(now, now, "", "zh-CN"))
	})
}

func TestFormatter_MessageBubbleStamp(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	now := at(t, "2024-12-10T12:00:00+08:00")

	t.Run("same year", func(t *testing.T) {
		t.Parallel()
		ts := at(t, "2024-12-04T15:30:00+08:00")
		require.Equal(t, "12月4日 15:30", f.MessageBubbleStamp(ts, now, shanghai, "zh-CN"))
		require.Equal(t, "Dec 4 15:30", f.MessageBubbleStamp(ts, now, shanghai, "en"))
		require.Equal(t, "4 Dec 15:30", f.MessageBubbleStamp(ts, now, shanghai, "en-GB"))
	})

	t.Run("other year", func(t *testing.T) {
		t.Parallel()
		ts := at(t, "2023-12-04T15:30:00+08:00")
		require.Equal(t, "2023年12月4日 15:30", f.MessageBubbleStamp(ts, now, shanghai, "zh-CN"))
		require.Equal(t, "Dec 4, 2023 15:30", f.MessageBubbleStamp(ts, now, shanghai, "en"))
	})

	t.Run("year compared in the requested zone", func(t *testing.T) {
		t.Parallel()
		newYear := at(t, "2025-01-01T08:30:00+08:00")
		ts := at(t, "2025-01-01T07:50:00+08:00")
		require.Equal(t, "1月1日 07:50", f.MessageBubbleStamp(ts, newYear, shanghai, "zh-CN"))
		require.Equal(t, "2024年12月31日 23:50", f.MessageBubbleStamp(ts, newYear, "UTC", "zh-CN"))
	})

	t.Run("empty on bad input", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, f.MessageBubbleStamp(0, now, shanghai, "zh-CN"))
		require.Empty(t, f.MessageBubbleStamp(now, 0, shanghai, "zh-CN"))
	})
}

func TestFormatter_AbsoluteDate(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	ts := at(t, "2024-06-15T23:50:00+08:00")

	require.Equal(t, "2024年6月15日", f.AbsoluteDate(ts, shanghai, "zh-CN"))
	require.Equal(t, "Jun 15, 2024", f.AbsoluteDate(ts, shanghai, "en"))
	require.Equal(t, "15 Jun 2024", f.AbsoluteDate(ts, shanghai, "en-GB"))
	require.Equal(t, "2024年6月15日", f.AbsoluteDate(ts, shanghai, "ja"))
	require.Equal(t, "Jun 15, 2024", f.AbsoluteDate(ts, "UTC", "en"))
	require.Equal(t, "Jun 16, 2024", f.AbsoluteDate(ts, "Asia/Tokyo", "en"))
	require.Empty(t, f.AbsoluteDate(0, shanghai, "en"))
	require.Empty(t, f.AbsoluteDate(ts, "Bad/Zone", "en"))

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		tzs := []string{shanghai, "UTC", "America/New_York", "Europe/London"}
		langs := []string{"zh-CN", "en", "en-GB", "ja"}

		rapid.Check(t, func(rt *rapid.T) {
			ts := timefmt.Timestamp(rapid.Int64Range(1, 4e9).Draw(rt, "ts"))
			tz := rapid.SampledFrom(tzs).Draw(rt, "tz")
			lang := rapid.SampledFrom(langs).Draw(rt, "lang")

			first := f.AbsoluteDate(ts, tz, lang)
			require.NotEmpty(rt, first)
			require.Equal(rt, first, f.AbsoluteDate(ts, tz, lang))
		})
	})
}

func TestFormatter_DateTime(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	ts := at(t, "2024-06-15T23:50:00+08:00")

	require.Equal(t, "2024/06/15 23:50:00", f.DateTime(ts, shanghai, "zh-CN"))
	require.Equal(t, "06/15/2024 15:50:00", f.DateTime(ts, "UTC", "en"))
	require.Equal(t, "15/06/2024 15:50:00", f.DateTime(ts, "UTC", "en-GB"))
	require.Empty(t, f.DateTime(0, shanghai, "zh-CN"))
}

func TestFormatter_Relative(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	now := at(t, "2024-03-10T10:00:00Z")

	tests := []struct {
		name    string
		ago     int64
		short   string
		verbose string
		zhShort string
	}{
		{name: "59 seconds", ago: 59, short: "now", verbose: "less than a minute ago", zhShort: "刚刚"},
		{name: "61 seconds", ago: 61, short: "1m ago", verbose: "1 minute ago", zhShort: "1分钟前"},
		{name: "minutes", ago: 44 * 60, short: "44m ago", verbose: "44 minutes ago", zhShort: "44分钟前"},
		{name: "three hours", ago: 3 * 3600, short: "3h ago", verbose: "about 3 hours ago", zhShort: "3小时前"},
		{name: "two days", ago: 2 * 86400, short: "2d ago", verbose: "2 days ago", zhShort: "2天前"},
		{name: "five months", ago: 150 * 86400, short: "5mo ago", verbose: "5 months ago", zhShort: "5个月前"},
		{name: "over a year", ago: 400 * 86400, short: "1y ago", verbose: "about 1 year ago", zhShort: "1年前"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := now - timefmt.Timestamp(tt.ago)
			require.Equal(t, tt.short, f.Relative(ts, now, "en", timefmt.Short, true))
			require.Equal(t, tt.verbose, f.Relative(ts, now, "en", timefmt.Verbose, true))
			require.Equal(t, tt.zhShort, f.Relative(ts, now, "zh-CN", timefmt.Short, true))
		})
	}

	t.Run("without suffix", func(t *testing.T) {
		t.Parallel()
		ts := now - 3*3600
		require.Equal(t, "3h", f.Relative(ts, now, "en", timefmt.Short, false))
		require.Equal(t, "about 3 hours", f.Relative(ts, now, "en", timefmt.Verbose, false))
		require.Equal(t, "大约 3 小时", f.Relative(ts, now, "zh-CN", timefmt.Verbose, false))
		require.Equal(t, "大约 3 小时前", f.Relative(ts, now, "zh-CN", timefmt.Verbose, true))
	})

	t.Run("future reads as now", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "now", f.Relative(now+3600, now, "en", timefmt.Short, true))
		require.Equal(t, "less than a minute ago", f.Relative(now+3600, now, "en", timefmt.Verbose, true))
	})

	t.Run("empty on bad input", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, f.Relative(0, now, "en", timefmt.Short, true))
		require.Empty(t, f.Relative(now, -1, "en", timefmt.Short, true))
	})
}

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	now := at(t, "2024-06-15T15:30:00+08:00")
	ts := at(t, "2024-06-15T12:30:00+08:00")

	tests := map[timefmt.Policy]string{
		timefmt.MessageListStamp:   "12:30",
		timefmt.MessageBubbleStamp: "6月15日 12:30",
		timefmt.RelativeShort:      "3小时前",
		timefmt.RelativeVerbose:    "大约 3 小时前",
		timefmt.AbsoluteDate:       "2024年6月15日",
		timefmt.DateTime:           "2024/06/15 12:30:00",
		timefmt.DaySeparator:       "今天",
	}
	for policy, want := range tests {
		require.Equal(t, want, f.Format(ts, now, shanghai, "zh-CN", policy), policy.String())
	}

	require.Empty(t, f.Format(ts, now, shanghai, "zh-CN", timefmt.Policy(99)))
	require.Empty(t, f.Format(0, now, shanghai, "zh-CN", timefmt.DateTime))
}

func TestFormatter_Stamp(t *testing.T) {
	t.Parallel()

	now := at(t, "2024-06-15T15:30:00+08:00")
	f := newFormatter(t, timefmt.WithClock(timefmt.NewFixedClock(now)))

	t.Run("fills every field", func(t *testing.T) {
		t.Parallel()
		s, err := f.Stamp(timefmt.Request{
			Timestamp: at(t, "2024-06-14T20:15:00+08:00"),
			Timezone:  shanghai,
			Locale:    "zh_CN",
		})
		require.NoError(t, err)
		require.Equal(t, "昨天 20:15", s.Text)
		require.Equal(t, timefmt.Yesterday, s.Bucket)
		require.Equal(t, timefmt.MessageListStamp, s.Policy)
		require.Equal(t, "zh-CN", s.Locale)
		require.Equal(t, shanghai, s.Timezone)
		require.Equal(t, "2024-06-14T20:15:00+08:00", s.ISO)
		require.Equal(t, "2024/06/14 20:15:00", s.Title)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, err := f.Stamp(timefmt.Request{Timestamp: 0, Timezone: shanghai})
		require.ErrorIs(t, err, timefmt.ErrInvalidTimestamp)

		_, err = f.Stamp(timefmt.Request{Timestamp: now, Timezone: "Nope/Nope"})
		require.ErrorIs(t, err, timefmt.ErrUnknownTimezone)

		_, err = f.Stamp(timefmt.Request{Timestamp: now, Timezone: shanghai, Policy: timefmt.Policy(42)})
		require.ErrorIs(t, err, timefmt.ErrUnknownPolicy)
	})

	t.Run("batch", func(t *testing.T) {
		t.Parallel()
		stamps, err := f.Stamps(timefmt.Request{Timezone: shanghai, Locale: "en", Policy: timefmt.RelativeShort, WithSuffix: true},
			[]timefmt.Timestamp{now - 120, 0, now - 7200})
		require.NoError(t, err)
		require.Len(t, stamps, 3)
		require.Equal(t, "2m ago", stamps[0].Text)
		require.Empty(t, stamps[1].Text)
		require.Equal(t, "en", stamps[1].Locale)
		require.Equal(t, "2h ago", stamps[2].Text)

		_, err = f.Stamps(timefmt.Request{Timezone: "Bad/Zone"}, []timefmt.Timestamp{now})
		require.ErrorIs(t, err, timefmt.ErrUnknownTimezone)
	})
}

func TestFormatter_HasOneDayElapsed(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	now := at(t, "2024-06-15T00:01:00+08:00")

	require.True(t, f.HasOneDayElapsed(0, now, shanghai))
	require.True(t, f.HasOneDayElapsed(-10, now, shanghai))
	require.True(t, f.HasOneDayElapsed(now, now, "Bad/Zone"))
	require.True(t, f.HasOneDayElapsed(at(t, "2024-06-14T23:59:00+08:00"), now, shanghai))
	require.False(t, f.HasOneDayElapsed(at(t, "2024-06-15T00:00:30+08:00"), now, shanghai))
	require.False(t, f.HasOneDayElapsed(now+3600, now, shanghai))

	t.Run("absent timestamp always elapsed", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(rt *rapid.T) {
			anyNow := timefmt.Timestamp(rapid.Int64().Draw(rt, "now"))
			require.True(rt, f.HasOneDayElapsed(0, anyNow, shanghai))
		})
	})
}

func TestFormatter_Concurrent(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	now := at(t, "2024-06-15T15:30:00+08:00")
	ts := at(t, "2024-06-14T20:15:00+08:00")

	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			for range 100 {
				assert.Equal(t, "昨天 20:15", f.MessageListStamp(ts, now, shanghai, "zh-CN"))
			}
		})
	}
	wg.Wait()
}
