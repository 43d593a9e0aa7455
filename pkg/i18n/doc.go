// Package i18n provides an immutable translation catalog and locale-specific
// calendar layouts.
//
// A catalog is built once with options and is safe for concurrent use. Keys are
// grouped by language and namespace; nested maps are flattened into dot
// notation so lookups are a single map access.
//
// # Basic Usage
//
//	catalog, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("zh-CN", "timefmt", map[string]any{
//			"yesterday": "昨天",
//			"minutes_ago": "{{count}}分钟前",
//		}),
//	)
//
//	catalog.T("zh-CN", "timefmt", "yesterday")          // "昨天"
//	catalog.Tn("zh-CN", "timefmt", "minutes_ago", 5)    // "5分钟前"
//
// # File-Based Translations
//
// Translations can be loaded from an fs.FS laid out as {lang}/{namespace}.yaml
// (or .yml, or .json with WithJSONDir):
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	sub, _ := fs.Sub(localesFS, "locales")
//	catalog, err := i18n.New(i18n.WithYAMLDir(sub))
//
// # Pluralization
//
// Tn selects a CLDR plural category with the language's PluralRule and falls
// back to "other", then to a plain string under the same key:
//
//	"minutes": {"one": "1 minute ago", "other": "{{count}} minutes ago"}
//
// # Fallback
//
// Lookups try the exact tag, its primary language ("zh-CN" -> "zh"), then the
// default language. When everything misses the key itself is returned and the
// optional missing-key handler is called.
//
// # Language Negotiation
//
// Canonical, Match and ParseAcceptLanguage use golang.org/x/text/language, so
// "zh_CN", "zh-Hans-CN" and "zh" all find a "zh-CN" catalog.
//
// # Locale Formats
//
// LocaleFormat carries Go time layouts for dates, month-day labels and 12/24
// hour clocks. Predefined formats: FormatEnUS, FormatEnGB, FormatZhCN, FormatJaJP.
package i18n
