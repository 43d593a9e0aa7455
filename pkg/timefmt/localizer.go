package timefmt

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/dmitrymomot/chatstamp/pkg/i18n"
)

// Localizer supplies the vocabulary and calendar layouts for a language.
// Every method except Resolve expects a tag already returned by Resolve.
type Localizer interface {
	// Resolve maps a requested tag to a supported one.
	Resolve(lang string) (string, bool)
	RelativePhrase(deltaSeconds int64, lang string, style Style, withSuffix bool) string
	// MinutesAgo renders the message-list phrase for n whole minutes; n < 1 is "just now".
	MinutesAgo(n int, lang string) string
	WeekdayName(wd time.Weekday, lang string) string
	YesterdayLabel(lang string) string
	TodayLabel(lang string) string
	MonthDayLabel(z ZonedInstant, lang string, withYear bool) string
	DateLabel(z ZonedInstant, lang string) string
	NumericDateLabel(z ZonedInstant, lang string) string
	DateTimeLabel(z ZonedInstant, lang string) string
	TimeOfDayLabel(z ZonedInstant, lang string, use24h bool) string
}

// Namespace is the i18n namespace holding the timefmt vocabulary.
const Namespace = "timefmt"

//go:embed locales
var localesFS embed.FS

// CatalogLocalizer implements Localizer over an i18n catalog and a set of
// calendar formats, with one translator per supported language.
type CatalogLocalizer struct {
	catalog     *i18n.I18n
	formats     map[string]*i18n.LocaleFormat
	languages   []string
	translators map[string]*i18n.Translator
}

// NewCatalogLocalizer pairs a catalog with calendar formats. A language
// without a format of its own uses the closest configured tag, then the
// format of the catalog's default language, which must exist.
func NewCatalogLocalizer(catalog *i18n.I18n, formats map[string]*i18n.LocaleFormat) (*CatalogLocalizer, error) {
	if catalog == nil {
		return nil, ErrNilLocalizer
	}

	l := &CatalogLocalizer{
		catalog:     catalog,
		formats:     make(map[string]*i18n.LocaleFormat, len(formats)),
		languages:   catalog.Languages(),
		translators: make(map[string]*i18n.Translator),
	}
	for lang, format := range formats {
		if format != nil {
			l.formats[i18n.Canonical(lang)] = format
		}
	}

	for _, lang := range l.languages {
		format := l.format(lang)
		if format == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingFormat, lang)
		}
		l.translators[lang] = i18n.NewTranslator(catalog, lang, Namespace, format)
	}

	return l, nil
}

// DefaultLocalizer returns the localizer for the vocabularies shipped with the
// package: en, en-GB, zh-CN and ja.
func DefaultLocalizer() (*CatalogLocalizer, error) {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return nil, err
	}

	catalog, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithLanguages("en-GB"),
		i18n.WithYAMLDir(sub),
	)
	if err != nil {
		return nil, fmt.Errorf("loading embedded locales: %w", err)
	}

	return NewCatalogLocalizer(catalog, i18n.PredefinedFormats())
}

// Languages returns the supported tags.
func (l *CatalogLocalizer) Languages() []string {
	return append([]string(nil), l.languages...)
}

// Resolve maps lang to the closest supported tag.
func (l *CatalogLocalizer) Resolve(lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	return i18n.Match(lang, l.languages)
}

// RelativePhrase renders an elapsed duration from the phrase table.
func (l *CatalogLocalizer) RelativePhrase(deltaSeconds int64, lang string, style Style, withSuffix bool) string {
	d := Measure(deltaSeconds, style)
	prefix := "relative." + style.String() + "."

	tr := l.translator(lang)
	phrase := tr.Tn(prefix+d.Key, d.Count)
	if !withSuffix || d.Key == PhraseNow {
		return phrase
	}
	return tr.T(prefix+"past", i18n.M{"value": phrase})
}

// MinutesAgo renders "N minutes ago", or "just now" below one minute.
func (l *CatalogLocalizer) MinutesAgo(n int, lang string) string {
	tr := l.translator(lang)
	if n < 1 {
		return tr.T("just_now")
	}
	return tr.Tn("minutes_ago", n)
}

// WeekdayName returns the full weekday name.
func (l *CatalogLocalizer) WeekdayName(wd time.Weekday, lang string) string {
	return l.translator(lang).T("weekdays." + strconv.Itoa(int(wd)))
}

// YesterdayLabel returns the word for yesterday.
func (l *CatalogLocalizer) YesterdayLabel(lang string) string {
	return l.translator(lang).T("yesterday")
}

// TodayLabel returns the word for today.
func (l *CatalogLocalizer) TodayLabel(lang string) string {
	return l.translator(lang).T("today")
}

// MonthDayLabel renders month and day, optionally with the year.
func (l *CatalogLocalizer) MonthDayLabel(z ZonedInstant, lang string, withYear bool) string {
	return l.translator(lang).FormatMonthDay(z.Time(), withYear)
}

// DateLabel renders the calendar date with year.
func (l *CatalogLocalizer) DateLabel(z ZonedInstant, lang string) string {
	return l.translator(lang).FormatDate(z.Time())
}

// NumericDateLabel renders the all-digits date.
func (l *CatalogLocalizer) NumericDateLabel(z ZonedInstant, lang string) string {
	return l.translator(lang).FormatNumericDate(z.Time())
}

// DateTimeLabel renders the full date and time with seconds.
func (l *CatalogLocalizer) DateTimeLabel(z ZonedInstant, lang string) string {
	return l.translator(lang).FormatDateTime(z.Time())
}

// TimeOfDayLabel renders hours and minutes.
func (l *CatalogLocalizer) TimeOfDayLabel(z ZonedInstant, lang string, use24h bool) string {
	return l.translator(lang).FormatTime(z.Time(), use24h)
}

// translator returns the translator built for lang. A tag outside the
// supported set gets a throwaway one over the nearest format.
func (l *CatalogLocalizer) translator(lang string) *i18n.Translator {
	if tr, ok := l.translators[lang]; ok {
		return tr
	}
	return i18n.NewTranslator(l.catalog, lang, Namespace, l.format(lang))
}

// format finds the calendar format for lang, falling back to the nearest
// configured tag and finally to the catalog's default language.
func (l *CatalogLocalizer) format(lang string) *i18n.LocaleFormat {
	if f, ok := l.formats[lang]; ok {
		return f
	}

	tags := make([]string, 0, len(l.formats))
	for tag := range l.formats {
		tags = append(tags, tag)
	}
	if match, ok := i18n.Match(lang, tags); ok {
		return l.formats[match]
	}

	return l.formats[l.catalog.DefaultLanguage()]
}

var _ Localizer = (*CatalogLocalizer)(nil)
