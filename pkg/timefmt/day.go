package timefmt

// hoursPastStart lands inside the next calendar day from any day start:
// days run 23 to 25 hours across DST changes.
const hoursPastStart = 36 * 60 * 60

// DayBounds returns the first and last second of the calendar day holding ts
// in tz. Days shortened or lengthened by a DST change keep their real length.
func (f *Formatter) DayBounds(ts Timestamp, tz string) (start, end Timestamp, err error) {
	start, err = f.startOfDay(ts, tz)
	if err != nil {
		return 0, 0, err
	}
	next, err := f.startOfDay(start+hoursPastStart, tz)
	if err != nil {
		return 0, 0, err
	}
	return start, next - 1, nil
}

// startOfDay steps back by the wall-clock time since midnight, then corrects
// for an offset change between midnight and ts. When midnight itself is
// skipped the result is the first wall-clock instant of the day.
func (f *Formatter) startOfDay(ts Timestamp, tz string) (Timestamp, error) {
	z, err := f.zoned(ts, tz)
	if err != nil {
		return 0, err
	}
	start := ts - Timestamp(z.Hour*3600+z.Minute*60+z.Second)

	zs, err := f.clock.Zoned(start, tz)
	if err != nil {
		return 0, err
	}
	return start + Timestamp(z.Offset-zs.Offset), nil
}

// DaySeparator renders the label of the date divider shown above the first
// message of a day: the word for today, the word for yesterday, or the date
// with year. Returns "" for an invalid timestamp or zone.
func (f *Formatter) DaySeparator(ts, now Timestamp, tz, locale string) string {
	c, err := f.classify(ts, now, tz)
	if err != nil {
		return ""
	}
	return f.separatorText(c, f.ResolveLocale(locale))
}

func (f *Formatter) separatorText(c classification, lang string) string {
	switch f.clock.DayDifference(c.now, c.ts) {
	case 0:
		return f.localizer.TodayLabel(lang)
	case 1:
		return f.localizer.YesterdayLabel(lang)
	default:
		return f.localizer.DateLabel(c.ts, lang)
	}
}

// FormatLayout renders ts in tz with a Go reference-time layout.
// Returns "" for an invalid timestamp or zone.
func (f *Formatter) FormatLayout(ts Timestamp, tz, layout string) string {
	z, err := f.zoned(ts, tz)
	if err != nil {
		return ""
	}
	return z.Time().Format(layout)
}

// IsTimeAfter reports whether h1:m1 is at or after h2:m2 on a 24-hour clock.
func IsTimeAfter(h1, m1, h2, m2 int) bool {
	if h1 != h2 {
		return h1 > h2
	}
	return m1 >= m2
}
