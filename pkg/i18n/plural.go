package i18n

import "strings"

// PluralRule picks the CLDR plural category for a count.
type PluralRule func(n int) string

// Plural categories as defined by Unicode CLDR.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// DefaultPluralRule distinguishes only one and other.
var DefaultPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// EnglishPluralRule is DefaultPluralRule plus an explicit zero category,
// so "no messages" style keys can be provided when wanted.
// Missing zero forms fall back to other.
var EnglishPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	return DefaultPluralRule(n)
}

// AsianPluralRule is used by languages without grammatical plural
// (Chinese, Japanese, Korean, ...). Every count maps to other.
var AsianPluralRule PluralRule = func(_ int) string {
	return PluralOther
}

// GetPluralRuleForLanguage returns the plural rule for a language tag.
// Only the primary subtag is considered: "zh-CN" and "zh-TW" share a rule.
func GetPluralRuleForLanguage(lang string) PluralRule {
	switch strings.ToLower(baseLanguage(lang)) {
	case "en":
		return EnglishPluralRule
	case "zh", "ja", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	default:
		return DefaultPluralRule
	}
}

// pluralFallbacks lists the categories tried, in order, when the category
// selected by a rule has no translation.
func pluralFallbacks(form string) []string {
	switch form {
	case PluralOther:
		return nil
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	default:
		return []string{PluralOther}
	}
}
