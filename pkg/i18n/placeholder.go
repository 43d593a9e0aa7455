package i18n

import (
	"fmt"
	"strings"
)

// M is a set of placeholder values keyed by placeholder name.
type M map[string]any

// ReplacePlaceholders replaces {{name}} placeholders in template with values
// from placeholders. Unknown placeholders are left untouched.
//
//	ReplacePlaceholders("{{count}}分钟前", M{"count": 5}) // "5分钟前"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "{{"+key+"}}", fmt.Sprintf("%v", value))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
