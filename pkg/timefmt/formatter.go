package timefmt

import (
	"fmt"
	"slices"
)

// Formatter renders timestamps for a chat UI.
// Immutable after New and safe for concurrent use.
type Formatter struct {
	clock     Clock
	localizer Localizer
	order     RuleOrder
	use24h    bool
	fallback  string
}

// Option configures a Formatter.
type Option func(*Formatter) error

// WithClock sets the clock used for zone projection and for "now" when a
// request leaves it empty.
func WithClock(c Clock) Option {
	return func(f *Formatter) error {
		if c == nil {
			return ErrNilClock
		}
		f.clock = c
		return nil
	}
}

// WithLocalizer sets the vocabulary source.
func WithLocalizer(l Localizer) Option {
	return func(f *Formatter) error {
		if l == nil {
			return ErrNilLocalizer
		}
		f.localizer = l
		return nil
	}
}

// WithRuleOrder sets the bucket rule precedence. Default: DefaultRuleOrder.
func WithRuleOrder(order RuleOrder) Option {
	return func(f *Formatter) error {
		if err := order.Validate(); err != nil {
			return err
		}
		f.order = slices.Clone(order)
		return nil
	}
}

// With24Hour selects the 24-hour (default) or 12-hour clock.
func With24Hour(enabled bool) Option {
	return func(f *Formatter) error {
		f.use24h = enabled
		return nil
	}
}

// WithFallbackLocale sets the locale used when a requested one is unsupported.
// Required.
func WithFallbackLocale(lang string) Option {
	return func(f *Formatter) error {
		if lang == "" {
			return ErrNoFallbackLocale
		}
		f.fallback = lang
		return nil
	}
}

// New creates a Formatter. A fallback locale must be given with
// WithFallbackLocale; every other option has a default.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		order:  slices.Clone(DefaultRuleOrder),
		use24h: true,
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	if f.fallback == "" {
		return nil, ErrNoFallbackLocale
	}
	if f.clock == nil {
		f.clock = NewSystemClock()
	}
	if f.localizer == nil {
		l, err := DefaultLocalizer()
		if err != nil {
			return nil, err
		}
		f.localizer = l
	}

	resolved, ok := f.localizer.Resolve(f.fallback)
	if !ok {
		return nil, fmt.Errorf("%w: fallback %q", ErrUnsupportedLocale, f.fallback)
	}
	f.fallback = resolved

	return f, nil
}

// Clock returns the formatter's clock.
func (f *Formatter) Clock() Clock {
	return f.clock
}

// Localizer returns the formatter's vocabulary source.
func (f *Formatter) Localizer() Localizer {
	return f.localizer
}

// RuleOrder returns a copy of the configured rule precedence.
func (f *Formatter) RuleOrder() RuleOrder {
	return slices.Clone(f.order)
}

// FallbackLocale returns the resolved fallback locale.
func (f *Formatter) FallbackLocale() string {
	return f.fallback
}

// ResolveLocale maps lang to a supported locale, or the fallback.
func (f *Formatter) ResolveLocale(lang string) string {
	if resolved, ok := f.localizer.Resolve(lang); ok {
		return resolved
	}
	return f.fallback
}

// classification is everything the list and bubble stamps need from one
// pass over the inputs.
type classification struct {
	bucket       Bucket
	deltaMinutes int64
	ts           ZonedInstant
	now          ZonedInstant
}

// Classify returns the age bucket of ts relative to now in tz.
func (f *Formatter) Classify(ts, now Timestamp, tz string) (Bucket, error) {
	c, err := f.classify(ts, now, tz)
	if err != nil {
		return 0, err
	}
	return c.bucket, nil
}

func (f *Formatter) classify(ts, now Timestamp, tz string) (classification, error) {
	if !ts.Valid() || !now.Valid() {
		return classification{}, ErrInvalidTimestamp
	}

	zt, err := f.clock.Zoned(ts, tz)
	if err != nil {
		return classification{}, err
	}
	zn, err := f.clock.Zoned(now, tz)
	if err != nil {
		return classification{}, err
	}

	c := classification{ts: zt, now: zn}

	// Timestamps from the future read as "just now" whatever the order.
	if ts > now {
		c.bucket = WithinHour
		return c, nil
	}

	c.deltaMinutes = int64(now-ts) / 60
	deltaDays := f.clock.DayDifference(zn, zt)

	c.bucket = Older
	for _, rule := range f.order {
		if rule.matches(c.deltaMinutes, deltaDays) {
			c.bucket = rule.bucket()
			break
		}
	}
	return c, nil
}

// MessageListStamp renders the conversation-list stamp: "just now",
// "5 minutes ago", "15:30", "Yesterday 15:30", "Tuesday 15:30" or the
// numeric date, by age. Returns "" for an invalid timestamp or zone.
func (f *Formatter) MessageListStamp(ts, now Timestamp, tz, locale string) string {
	c, err := f.classify(ts, now, tz)
	if err != nil {
		return ""
	}
	return f.listText(c, f.ResolveLocale(locale))
}

func (f *Formatter) listText(c classification, lang string) string {
	switch c.bucket {
	case WithinHour:
		return f.localizer.MinutesAgo(int(c.deltaMinutes), lang)
	case Today:
		return f.localizer.TimeOfDayLabel(c.ts, lang, f.use24h)
	case Yesterday:
		return f.localizer.YesterdayLabel(lang) + " " + f.localizer.TimeOfDayLabel(c.ts, lang, f.use24h)
	case WithinWeek:
		return f.localizer.WeekdayName(c.ts.Weekday, lang) + " " + f.localizer.TimeOfDayLabel(c.ts, lang, f.use24h)
	default:
		return f.localizer.NumericDateLabel(c.ts, lang)
	}
}

// MessageBubbleStamp renders month, day and time of day, with the year when
// it differs from the year of now. Returns "" for an invalid timestamp or zone.
func (f *Formatter) MessageBubbleStamp(ts, now Timestamp, tz, locale string) string {
	c, err := f.classify(ts, now, tz)
	if err != nil {
		return ""
	}
	return f.bubbleText(c, f.ResolveLocale(locale))
}

func (f *Formatter) bubbleText(c classification, lang string) string {
	withYear := c.ts.Year != c.now.Year
	return f.localizer.MonthDayLabel(c.ts, lang, withYear) + " " + f.localizer.TimeOfDayLabel(c.ts, lang, f.use24h)
}

// AbsoluteDate renders the calendar date with year and no time.
func (f *Formatter) AbsoluteDate(ts Timestamp, tz, locale string) string {
	z, err := f.zoned(ts, tz)
	if err != nil {
		return ""
	}
	return f.localizer.DateLabel(z, f.ResolveLocale(locale))
}

// DateTime renders the full numeric date and time with seconds.
func (f *Formatter) DateTime(ts Timestamp, tz, locale string) string {
	z, err := f.zoned(ts, tz)
	if err != nil {
		return ""
	}
	return f.localizer.DateTimeLabel(z, f.ResolveLocale(locale))
}

// Relative renders the age of ts as a phrase. It needs no zone: only elapsed
// seconds matter. Future timestamps read as zero elapsed.
func (f *Formatter) Relative(ts, now Timestamp, locale string, style Style, withSuffix bool) string {
	if !ts.Valid() || !now.Valid() {
		return ""
	}
	return f.localizer.RelativePhrase(int64(now-ts), f.ResolveLocale(locale), style, withSuffix)
}

// Format renders ts under policy. Relative policies carry the suffix.
func (f *Formatter) Format(ts, now Timestamp, tz, locale string, policy Policy) string {
	s, err := f.Stamp(Request{
		Timestamp:  ts,
		Now:        now,
		Timezone:   tz,
		Locale:     locale,
		Policy:     policy,
		WithSuffix: true,
	})
	if err != nil {
		return ""
	}
	return s.Text
}

// HasOneDayElapsed reports whether ts lies at least one calendar day before
// now in tz. An absent or invalid timestamp, or an unknown zone, counts as
// elapsed.
func (f *Formatter) HasOneDayElapsed(ts, now Timestamp, tz string) bool {
	if !ts.Valid() || !now.Valid() {
		return true
	}
	zt, err := f.clock.Zoned(ts, tz)
	if err != nil {
		return true
	}
	zn, err := f.clock.Zoned(now, tz)
	if err != nil {
		return true
	}
	return f.clock.DayDifference(zn, zt) >= 1
}

func (f *Formatter) zoned(ts Timestamp, tz string) (ZonedInstant, error) {
	if !ts.Valid() {
		return ZonedInstant{}, ErrInvalidTimestamp
	}
	return f.clock.Zoned(ts, tz)
}
