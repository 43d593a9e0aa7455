package i18n

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// Canonical normalizes a language identifier to its BCP 47 form.
// Underscores are accepted ("zh_CN" -> "zh-CN"). Identifiers that do not
// parse are returned trimmed and otherwise unchanged; empty input yields "".
func Canonical(lang string) string {
	lang = strings.TrimSpace(strings.ReplaceAll(lang, "_", "-"))
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	return tag.String()
}

// ParseAcceptLanguage returns the entry of available that best matches an
// Accept-Language header. Quality values are honored.
// The first available language is returned when nothing matches.
//
//	ParseAcceptLanguage("zh-Hans-CN,zh;q=0.9,en;q=0.8", []string{"en", "zh-CN"}) // "zh-CN"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := parseAcceptLanguage(header)
	if len(tags) == 0 {
		return available[0]
	}

	if match, ok := matchTags(available, tags); ok {
		return match
	}
	return available[0]
}

// parseAcceptLanguage parses each entry on its own so that one malformed
// entry does not discard the rest of the header. Tags are ordered by
// descending quality; equal qualities keep header order.
func parseAcceptLanguage(header string) []language.Tag {
	type weighted struct {
		tag language.Tag
		q   float32
	}

	var entries []weighted
	for part := range strings.SplitSeq(header, ",") {
		tags, qs, err := language.ParseAcceptLanguage(part)
		if err != nil {
			continue
		}
		for i, tag := range tags {
			entries = append(entries, weighted{tag: tag, q: qs[i]})
		}
	}

	slices.SortStableFunc(entries, func(a, b weighted) int {
		return cmp.Compare(b.q, a.q)
	})

	tags := make([]language.Tag, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
	}
	return tags
}

// Match returns the entry of available that best matches lang.
// ok is false when no entry is a reasonable match.
func Match(lang string, available []string) (string, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
	if err != nil {
		return "", false
	}
	return matchTags(available, []language.Tag{tag})
}

func matchTags(available []string, requested []language.Tag) (string, bool) {
	supported := make([]language.Tag, 0, len(available))
	names := make([]string, 0, len(available))
	for _, avail := range available {
		tag, err := language.Parse(avail)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		names = append(names, avail)
	}
	if len(supported) == 0 {
		return "", false
	}

	_, index, confidence := language.NewMatcher(supported).Match(requested...)
	if confidence == language.No {
		return "", false
	}
	return names[index], true
}
