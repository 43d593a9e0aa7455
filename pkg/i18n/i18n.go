package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

// I18n is an immutable translation catalog.
// Safe for concurrent use once New returns.
type I18n struct {
	// Flattened translations, keyed by "lang:namespace:key.path".
	translations map[string]string

	pluralRules map[string]PluralRule

	// Called when a key is missing in every language of the fallback chain.
	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
	languages   []string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New builds a catalog from options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		pluralRules:  make(map[string]PluralRule),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the language used as the last fallback.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		lang = Canonical(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages declares supported languages that may have no translations
// of their own yet. Languages with loaded translations are always included.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, lang := range langs {
			if lang = Canonical(lang); lang != "" && !slices.Contains(i.languages, lang) {
				i.languages = append(i.languages, lang)
			}
		}
		return nil
	}
}

// WithTranslations loads translations for a language and namespace.
// Nested maps are flattened into dot-separated keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		lang = Canonical(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.addTranslations(lang, namespace, translations)
		return nil
	}
}

// WithPluralRule overrides the plural rule for a language.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		lang = Canonical(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithMissingKeyHandler sets a hook for keys missing from the whole fallback chain.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// T returns the translation for key, replacing placeholders.
// Lookup order: exact language, base language, default language.
// Returns the key itself when nothing matches.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	translation, ok := i.lookup(Canonical(lang), namespace, key)
	if !ok {
		i.reportMissing(lang, namespace, key)
		return key
	}
	return ReplacePlaceholders(translation, mergePlaceholders(nil, placeholders))
}

// Tn returns the plural form of key matching n. The count is available to
// the template as {{count}}.
func (i *I18n) Tn(lang, namespace, key string, n int, placeholders ...M) string {
	lang = Canonical(lang)

	for _, candidate := range i.fallbackChain(lang) {
		form := i.pluralRule(candidate)(n)
		if translation, ok := i.findPlural(candidate, namespace, key, form); ok {
			return ReplacePlaceholders(translation, mergePlaceholders(M{"count": n}, placeholders))
		}
	}

	i.reportMissing(lang, namespace, key)
	return key
}

// Has reports whether key resolves in lang or any of its fallbacks.
func (i *I18n) Has(lang, namespace, key string) bool {
	_, ok := i.lookup(Canonical(lang), namespace, key)
	return ok
}

// Languages returns the available languages, default first.
func (i *I18n) Languages() []string {
	return slices.Clone(i.languages)
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func (i *I18n) lookup(lang, namespace, key string) (string, bool) {
	for _, candidate := range i.fallbackChain(lang) {
		if translation, ok := i.translations[buildKey(candidate, namespace, key)]; ok {
			return translation, true
		}
	}
	return "", false
}

func (i *I18n) findPlural(lang, namespace, key, form string) (string, bool) {
	if trans, ok := i.translations[buildKey(lang, namespace, key+"."+form)]; ok {
		return trans, true
	}
	for _, fallback := range pluralFallbacks(form) {
		if trans, ok := i.translations[buildKey(lang, namespace, key+"."+fallback)]; ok {
			return trans, true
		}
	}
	// A plain string key serves every count.
	if trans, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return trans, true
	}
	return "", false
}

// fallbackChain returns lang, its base language and the default language,
// without duplicates.
func (i *I18n) fallbackChain(lang string) []string {
	chain := make([]string, 0, 3)
	for _, candidate := range []string{lang, baseLanguage(lang), i.defaultLang} {
		if candidate != "" && !slices.Contains(chain, candidate) {
			chain = append(chain, candidate)
		}
	}
	return chain
}

func (i *I18n) pluralRule(lang string) PluralRule {
	if rule, ok := i.pluralRules[lang]; ok {
		return rule
	}
	if rule, ok := i.pluralRules[baseLanguage(lang)]; ok {
		return rule
	}
	return GetPluralRuleForLanguage(lang)
}

func (i *I18n) reportMissing(lang, namespace, key string) {
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
}

func (i *I18n) addTranslations(lang, namespace string, translations map[string]any) {
	for key, value := range flattenTranslations(translations, "") {
		i.translations[buildKey(lang, namespace, key)] = value
	}
	if _, ok := i.pluralRules[lang]; !ok {
		i.pluralRules[lang] = GetPluralRuleForLanguage(lang)
	}
	i.seen(lang)
}

// seen records a language discovered from loaded translations.
func (i *I18n) seen(lang string) {
	if !slices.Contains(i.languages, lang) {
		i.languages = append(i.languages, lang)
	}
}

// buildLanguagesList puts the default language first, the rest sorted.
func (i *I18n) buildLanguagesList() []string {
	rest := make([]string, 0, len(i.languages))
	for _, lang := range i.languages {
		if lang != i.defaultLang {
			rest = append(rest, lang)
		}
	}
	slices.Sort(rest)
	return append([]string{i.defaultLang}, rest...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

func mergePlaceholders(base M, placeholders []M) M {
	if len(placeholders) == 0 {
		return base
	}
	merged := make(M, len(base))
	maps.Copy(merged, base)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}

// baseLanguage strips everything after the primary subtag ("zh-CN" -> "zh").
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
