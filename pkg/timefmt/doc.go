// Package timefmt turns Unix timestamps into the display strings of a chat UI:
// conversation-list stamps, message-bubble stamps, relative ages and calendar
// dates.
//
// Every formatting method is a pure function of its arguments and of the
// configuration given to New. The timestamp, "now", the IANA zone and the
// locale are passed on each call; nothing is read from the host.
//
// # Basic Usage
//
//	f, err := timefmt.New(timefmt.WithFallbackLocale("zh-CN"))
//	if err != nil {
//		return err
//	}
//
//	now := timefmt.FromTime(time.Now())
//	f.MessageListStamp(ts, now, "Asia/Shanghai", "zh-CN")   // "5分钟前", "15:30", "昨天 15:30"
//	f.MessageBubbleStamp(ts, now, "Asia/Shanghai", "zh-CN") // "12月4日 15:30"
//	f.AbsoluteDate(ts, "Asia/Shanghai", "en")                // "Jun 15, 2024"
//	f.Relative(ts, now, "en", timefmt.Short, true)           // "3h ago"
//
// String formatters return "" for an absent or invalid timestamp or an unknown
// zone. Use Classify or Stamp to get the reason as an error.
//
// # Buckets and Rule Order
//
// Classify sorts a timestamp into WithinHour, Today, Yesterday, WithinWeek or
// Older. Calendar rules compare zoned dates, so 23:55 yesterday is Yesterday
// even five minutes later. Whether elapsed minutes or calendar dates win is
// set with WithRuleOrder:
//
//	timefmt.DefaultRuleOrder       // within_hour,today,yesterday,within_week
//	timefmt.CalendarFirstRuleOrder // today,yesterday,within_hour,within_week
//
// Timestamps in the future are always WithinHour and read as "just now".
//
// # Relative Phrases
//
// Relative renders verbose ("about 3 hours ago") or short ("3h ago") phrases
// straight from the elapsed seconds, using one phrase table per language.
// Verbose thresholds follow date-fns formatDistance with minutes floored.
// ShortenRelativePhrase is kept for callers that only hold a verbose English
// phrase.
//
// # Localization
//
// A Localizer supplies the vocabulary. DefaultLocalizer ships en, en-GB, zh-CN
// and ja, loaded from embedded YAML through package i18n. Unsupported locales
// fall back to the locale given to WithFallbackLocale.
//
// # Clock
//
// SystemClock projects timestamps with the time package and caches loaded
// locations. NewFixedClock pins "now" for tests and tools.
package timefmt
