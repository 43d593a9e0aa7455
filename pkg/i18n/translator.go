package i18n

import "time"

// Translator binds an I18n catalog to one language, one namespace and one
// set of calendar layouts, so callers stop repeating them on every lookup.
type Translator struct {
	i18n      *I18n
	format    *LocaleFormat
	language  string
	namespace string
}

// NewTranslator creates a Translator for language and namespace.
// An empty language means the catalog's default language; a nil format means
// FormatEnUS().
func NewTranslator(i18n *I18n, language, namespace string, format *LocaleFormat) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	if format == nil {
		format = FormatEnUS()
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
		format:    format,
	}
}

// T translates key in the translator's language and namespace.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

// Tn translates key choosing the plural form for n.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.language, t.namespace, key, n, placeholders...)
}

// Has reports whether key resolves for the translator's language.
func (t *Translator) Has(key string) bool {
	return t.i18n.Has(t.language, t.namespace, key)
}

// FormatDate formats a date with year.
func (t *Translator) FormatDate(date time.Time) string {
	return t.format.FormatDate(date)
}

// FormatNumericDate formats an all-digits date.
func (t *Translator) FormatNumericDate(date time.Time) string {
	return t.format.FormatNumericDate(date)
}

// FormatMonthDay formats month and day, with the year when withYear is set.
func (t *Translator) FormatMonthDay(date time.Time, withYear bool) string {
	return t.format.FormatMonthDay(date, withYear)
}

// FormatTime formats hours and minutes on a 24 or 12 hour clock.
func (t *Translator) FormatTime(tm time.Time, use24h bool) string {
	return t.format.FormatTime(tm, use24h)
}

// FormatDateTime formats a full date and time with seconds.
func (t *Translator) FormatDateTime(datetime time.Time) string {
	return t.format.FormatDateTime(datetime)
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the translator's namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}

// Format returns the layouts used by this translator.
func (t *Translator) Format() *LocaleFormat {
	return t.format
}
