package timefmt

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/chatstamp/pkg/i18n"
)

// Unit is a calendar unit recognized by ShortenRelativePhrase.
type Unit int

const (
	UnitMinute Unit = iota + 1
	UnitHour
	UnitDay
	UnitMonth
	UnitYear
)

// ShortenRules are the output tokens of ShortenRelativePhrase.
type ShortenRules struct {
	// Now replaces "less than a minute ago". It never takes the suffix.
	Now string
	// Units maps each unit to the token written after the count.
	Units map[Unit]string
	// Suffix is appended when requested, after SuffixSeparator.
	Suffix          string
	SuffixSeparator string
}

// EnglishShortenRules render "3h", "3h ago".
var EnglishShortenRules = ShortenRules{
	Now: "now",
	Units: map[Unit]string{
		UnitMinute: "m",
		UnitHour:   "h",
		UnitDay:    "d",
		UnitMonth:  "mo",
		UnitYear:   "y",
	},
	Suffix:          "ago",
	SuffixSeparator: " ",
}

// ChineseShortenRules render "3小时", "3小时前".
var ChineseShortenRules = ShortenRules{
	Now: "刚刚",
	Units: map[Unit]string{
		UnitMinute: "分钟",
		UnitHour:   "小时",
		UnitDay:    "天",
		UnitMonth:  "个月",
		UnitYear:   "年",
	},
	Suffix: "前",
}

// JapaneseShortenRules render "3時間", "3時間前".
var JapaneseShortenRules = ShortenRules{
	Now: "たった今",
	Units: map[Unit]string{
		UnitMinute: "分",
		UnitHour:   "時間",
		UnitDay:    "日",
		UnitMonth:  "か月",
		UnitYear:   "年",
	},
	Suffix: "前",
}

var shortenPresets = map[string]ShortenRules{
	"en": EnglishShortenRules,
	"zh": ChineseShortenRules,
	"ja": JapaneseShortenRules,
}

// ShortenRulesFor picks the preset closest to locale, English when none is.
func ShortenRulesFor(locale string) ShortenRules {
	if match, ok := i18n.Match(locale, []string{"en", "zh", "ja"}); ok {
		return shortenPresets[match]
	}
	return EnglishShortenRules
}

// exactPhrases are verbose English phrases with an implicit count of one.
var exactPhrases = map[string]Unit{
	"a minute": UnitMinute,
	"an hour":  UnitHour,
	"a day":    UnitDay,
	"a month":  UnitMonth,
	"a year":   UnitYear,
}

var unitWords = map[string]Unit{
	"minute": UnitMinute, "minutes": UnitMinute,
	"hour": UnitHour, "hours": UnitHour,
	"day": UnitDay, "days": UnitDay,
	"month": UnitMonth, "months": UnitMonth,
	"year": UnitYear, "years": UnitYear,
}

var hedges = map[string]bool{"about": true, "over": true, "almost": true}

// ShortenRelativePhrase rewrites a verbose English relative phrase, such as
// "about 3 hours ago" from a date-fns style generator, into its short form.
// Phrases it does not recognize come back unchanged.
//
// This is a string rewrite of already localized text and breaks as soon as
// the verbose phrases change language or wording. New code should call
// Formatter.Relative with the Short style instead.
func ShortenRelativePhrase(phrase string, withSuffix bool, rules ShortenRules) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(phrase), " "))
	body := strings.TrimSuffix(normalized, " ago")

	if body == "less than a minute" {
		return rules.Now
	}

	if unit, ok := exactPhrases[body]; ok {
		return rules.finish(1, unit, withSuffix, phrase)
	}

	words := make([]string, 0, 3)
	for _, w := range strings.Fields(body) {
		if !hedges[w] {
			words = append(words, w)
		}
	}
	if len(words) != 2 {
		return phrase
	}

	n, err := strconv.Atoi(words[0])
	if err != nil || n < 0 {
		return phrase
	}
	unit, ok := unitWords[words[1]]
	if !ok {
		return phrase
	}

	return rules.finish(n, unit, withSuffix, phrase)
}

func (r ShortenRules) finish(n int, unit Unit, withSuffix bool, original string) string {
	token, ok := r.Units[unit]
	if !ok {
		return original
	}

	out := strconv.Itoa(n) + token
	if withSuffix && r.Suffix != "" && !strings.HasSuffix(out, r.Suffix) {
		out += r.SuffixSeparator + r.Suffix
	}
	return out
}
