package timefmt

import (
	"fmt"
	"strings"
)

// Policy selects the representation a caller wants.
type Policy int

const (
	// MessageListStamp is the conversation-list stamp: "5分钟前", "15:30",
	// "昨天 15:30", "星期二 15:30" or "2024/06/01" by age.
	MessageListStamp Policy = iota + 1
	// MessageBubbleStamp is the in-conversation stamp: "12月4日 15:30",
	// with the year when it differs from now.
	MessageBubbleStamp
	// RelativeShort is a compact age: "now", "3h", "3h ago", "3小时前".
	RelativeShort
	// RelativeVerbose is a spelled-out age: "about 3 hours ago".
	RelativeVerbose
	// AbsoluteDate is the calendar date with year and no time.
	AbsoluteDate
	// DateTime is the full numeric date and time with seconds.
	DateTime
	// DaySeparator is the divider label above a day's first message:
	// "Today", "Yesterday" or the date with year.
	DaySeparator
)

var policyNames = map[Policy]string{
	MessageListStamp:   "message_list",
	MessageBubbleStamp: "message_bubble",
	RelativeShort:      "relative_short",
	RelativeVerbose:    "relative",
	AbsoluteDate:       "date",
	DateTime:           "datetime",
	DaySeparator:       "day_separator",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the policy by name.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a policy name.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePolicy parses a policy name. Hyphens and case are ignored.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}
