package timefmt

import "errors"

// Sentinel errors for the timefmt package.
//
// None of them escape the string formatters, which return "" instead;
// they are returned by Classify, Stamp, New and the Clock.
var (
	ErrInvalidTimestamp  = errors.New("timefmt: invalid timestamp")
	ErrUnknownTimezone   = errors.New("timefmt: unknown timezone")
	ErrUnsupportedLocale = errors.New("timefmt: unsupported locale")
	ErrNoFallbackLocale  = errors.New("timefmt: fallback locale is required")
	ErrInvalidRuleOrder  = errors.New("timefmt: invalid rule order")
	ErrUnknownPolicy     = errors.New("timefmt: unknown policy")
	ErrMissingFormat     = errors.New("timefmt: no calendar format for language")
	ErrNilClock          = errors.New("timefmt: clock cannot be nil")
	ErrNilLocalizer      = errors.New("timefmt: localizer cannot be nil")
)
