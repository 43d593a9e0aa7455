package i18n

import "time"

// LocaleFormat holds the calendar and clock layouts of a locale as Go time
// layouts. It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	dateFormat         string
	numericDateFormat  string
	monthDayFormat     string
	monthDayYearFormat string
	time24Format       string
	time12Format       string
	dateTimeFormat     string
	amMarker           string
	pmMarker           string
	meridiemFirst      bool
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a LocaleFormat. Without options it uses US English layouts,
// except for the numeric date, which is year-first ("2006/01/02") in every locale.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		dateFormat:         "Jan 2, 2006",
		numericDateFormat:  "2006/01/02",
		monthDayFormat:     "Jan 2",
		monthDayYearFormat: "Jan 2, 2006",
		time24Format:       "15:04",
		time12Format:       "3:04",
		dateTimeFormat:     "01/02/2006 15:04:05",
		amMarker:           "AM",
		pmMarker:           "PM",
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithDateFormat sets the layout of a full calendar date.
func WithDateFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormat = layout
	}
}

// WithNumericDateFormat sets the layout of an all-digits date ("2006/01/02").
func WithNumericDateFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.numericDateFormat = layout
	}
}

// WithMonthDayFormat sets the layouts of a month-day label without and with year.
func WithMonthDayFormat(layout, withYear string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.monthDayFormat = layout
		lf.monthDayYearFormat = withYear
	}
}

// WithTimeFormat sets the 24-hour and 12-hour clock layouts.
// The 12-hour layout must not contain "PM"; markers come from WithMeridiem.
func WithTimeFormat(h24, h12 string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.time24Format = h24
		lf.time12Format = h12
	}
}

// WithDateTimeFormat sets the layout of a full date and time.
func WithDateTimeFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateTimeFormat = layout
	}
}

// WithMeridiem sets the AM/PM markers of the 12-hour clock.
// When first is true the marker precedes the time ("下午3:04").
func WithMeridiem(am, pm string, first bool) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.amMarker = am
		lf.pmMarker = pm
		lf.meridiemFirst = first
	}
}

// FormatDate formats a full calendar date.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.dateFormat)
}

// FormatNumericDate formats an all-digits date.
func (lf *LocaleFormat) FormatNumericDate(t time.Time) string {
	return t.Format(lf.numericDateFormat)
}

// FormatMonthDay formats a month-day label, optionally with the year.
func (lf *LocaleFormat) FormatMonthDay(t time.Time, withYear bool) string {
	if withYear {
		return t.Format(lf.monthDayYearFormat)
	}
	return t.Format(lf.monthDayFormat)
}

// FormatTime formats the time of day on a 24-hour or 12-hour clock.
func (lf *LocaleFormat) FormatTime(t time.Time, use24h bool) string {
	if use24h {
		return t.Format(lf.time24Format)
	}

	marker := lf.amMarker
	if t.Hour() >= 12 {
		marker = lf.pmMarker
	}
	clock := t.Format(lf.time12Format)
	switch {
	case marker == "":
		return clock
	case lf.meridiemFirst:
		return marker + clock
	default:
		return clock + " " + marker
	}
}

// FormatDateTime formats a full date and time.
func (lf *LocaleFormat) FormatDateTime(t time.Time) string {
	return t.Format(lf.dateTimeFormat)
}
