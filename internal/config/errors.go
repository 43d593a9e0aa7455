package config

import "errors"

var (
	ErrInvalidTimezone  = errors.New("config: invalid timezone")
	ErrInvalidLocale    = errors.New("config: invalid locale")
	ErrInvalidRuleOrder = errors.New("config: invalid rule order")
	ErrInvalidValue     = errors.New("config: invalid value")
	ErrConfigFile       = errors.New("config: cannot read config file")
)
