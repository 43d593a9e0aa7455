package timefmt

import (
	"fmt"
	"slices"
	"strings"
)

// Bucket is the age class of a timestamp relative to "now".
type Bucket int

const (
	WithinHour Bucket = iota + 1
	Today
	Yesterday
	WithinWeek
	Older
)

var bucketNames = map[Bucket]string{
	WithinHour: "within_hour",
	Today:      "today",
	Yesterday:  "yesterday",
	WithinWeek: "within_week",
	Older:      "older",
}

func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the bucket by name.
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Rule is one bucket test. Rules are evaluated in a RuleOrder and the first
// match wins; a timestamp matching none of them is Older.
type Rule int

const (
	// RuleWithinHour matches when fewer than 60 whole minutes elapsed.
	RuleWithinHour Rule = iota + 1
	// RuleToday matches the same zoned calendar date as now.
	RuleToday
	// RuleYesterday matches the zoned calendar date before now.
	RuleYesterday
	// RuleWithinWeek matches fewer than 7 calendar days back.
	RuleWithinWeek
)

var ruleNames = map[Rule]string{
	RuleWithinHour: "within_hour",
	RuleToday:      "today",
	RuleYesterday:  "yesterday",
	RuleWithinWeek: "within_week",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "unknown"
}

func (r Rule) bucket() Bucket {
	switch r {
	case RuleWithinHour:
		return WithinHour
	case RuleToday:
		return Today
	case RuleYesterday:
		return Yesterday
	case RuleWithinWeek:
		return WithinWeek
	default:
		return Older
	}
}

func (r Rule) matches(deltaMinutes int64, deltaDays int) bool {
	switch r {
	case RuleWithinHour:
		return deltaMinutes < 60
	case RuleToday:
		return deltaDays == 0
	case RuleYesterday:
		return deltaDays == 1
	case RuleWithinWeek:
		return deltaDays < 7
	default:
		return false
	}
}

// RuleOrder is the precedence in which rules are tried.
type RuleOrder []Rule

// DefaultRuleOrder checks elapsed minutes before calendar dates: a message
// sent 20 minutes ago, across midnight, reads "20 minutes ago".
var DefaultRuleOrder = RuleOrder{RuleWithinHour, RuleToday, RuleYesterday, RuleWithinWeek}

// CalendarFirstRuleOrder checks calendar dates first: the same message reads
// "Yesterday 23:50", and anything earlier today shows its time of day.
var CalendarFirstRuleOrder = RuleOrder{RuleToday, RuleYesterday, RuleWithinHour, RuleWithinWeek}

// Validate reports whether the order is non-empty, known and free of duplicates.
func (o RuleOrder) Validate() error {
	if len(o) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidRuleOrder)
	}
	seen := make(map[Rule]bool, len(o))
	for _, r := range o {
		if _, ok := ruleNames[r]; !ok {
			return fmt.Errorf("%w: unknown rule %d", ErrInvalidRuleOrder, r)
		}
		if seen[r] {
			return fmt.Errorf("%w: duplicate rule %s", ErrInvalidRuleOrder, r)
		}
		seen[r] = true
	}
	return nil
}

func (o RuleOrder) String() string {
	names := make([]string, len(o))
	for i, r := range o {
		names[i] = r.String()
	}
	return strings.Join(names, ",")
}

// ParseRuleOrder parses a comma-separated list of rule names, e.g.
// "today,yesterday,within_hour,within_week".
func ParseRuleOrder(s string) (RuleOrder, error) {
	var order RuleOrder
	for part := range strings.SplitSeq(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		idx := slices.IndexFunc(allRules, func(r Rule) bool { return ruleNames[r] == part })
		if idx < 0 {
			return nil, fmt.Errorf("%w: unknown rule %q", ErrInvalidRuleOrder, part)
		}
		order = append(order, allRules[idx])
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

var allRules = []Rule{RuleWithinHour, RuleToday, RuleYesterday, RuleWithinWeek}
