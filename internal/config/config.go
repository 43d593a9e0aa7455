package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dmitrymomot/chatstamp/pkg/logger"
	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

const (
	KeyTimezone        = "timezone"
	KeyFallbackLocale  = "locale.fallback"
	KeyUse24Hour       = "clock.use24h"
	KeyRuleOrder       = "rules.order"
	KeyServerAddress   = "server.address"
	KeyShutdownTimeout = "server.shutdown-timeout"
	KeyCORSOrigins     = "server.cors-origins"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeySentryDSN       = "sentry.dsn"
	KeySentryEnv       = "sentry.environment"
)

const (
	// DefaultTimezone is the zone of the original deployment.
	DefaultTimezone = "Asia/Shanghai"
	// DefaultFileName is looked up in the working directory when no file is given.
	DefaultFileName = "chatstamp.yaml"

	envPrefix = "CHATSTAMP"
)

// Config is the process configuration. It is loaded once at startup and
// passed down explicitly; nothing reads it from a global.
type Config struct {
	Timezone       string
	FallbackLocale string
	Use24Hour      bool
	RuleOrder      timefmt.RuleOrder
	Server         ServerConfig
	Log            LogConfig
	Sentry         logger.SentryConfig
	// File is the config file that was read, empty when none was.
	File string
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Address         string
	ShutdownTimeout time.Duration
	// CORSOrigins lists browser origins allowed to call the API. "*" allows
	// any origin; empty disables CORS.
	CORSOrigins []string
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  slog.Level
	Format logger.Format
}

type loadSettings struct {
	file       string
	workingDir string
	overrides  map[string]any
}

// Option configures Load.
type Option func(*loadSettings)

// WithFile reads the given YAML file, which must exist.
func WithFile(path string) Option {
	return func(s *loadSettings) {
		s.file = path
	}
}

// WithWorkingDir sets where DefaultFileName is looked up. Default: the
// process working directory.
func WithWorkingDir(dir string) Option {
	return func(s *loadSettings) {
		s.workingDir = dir
	}
}

// WithOverrides applies values, usually from CLI flags, above every other
// source. Keys are the Key* constants.
func WithOverrides(overrides map[string]any) Option {
	return func(s *loadSettings) {
		if s.overrides == nil {
			s.overrides = make(map[string]any, len(overrides))
		}
		for k, v := range overrides {
			s.overrides[k] = v
		}
	}
}

// Load builds the configuration with the precedence:
// defaults < config file < CHATSTAMP_* environment < overrides.
// The result is validated.
func Load(opts ...Option) (*Config, error) {
	var s loadSettings
	for _, opt := range opts {
		opt(&s)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	file, err := resolveFile(s)
	if err != nil {
		return nil, err
	}
	if file != "" {
		if err := mergeConfigFile(v, file); err != nil {
			return nil, err
		}
	}

	for k, val := range s.overrides {
		v.Set(k, val)
	}

	cfg, err := build(v)
	if err != nil {
		return nil, err
	}
	cfg.File = file

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTimezone, DefaultTimezone)
	v.SetDefault(KeyFallbackLocale, "zh-CN")
	v.SetDefault(KeyUse24Hour, true)
	v.SetDefault(KeyRuleOrder, timefmt.DefaultRuleOrder.String())
	v.SetDefault(KeyServerAddress, ":8080")
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.SetDefault(KeyCORSOrigins, []string{})
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, string(logger.FormatJSON))
	v.SetDefault(KeySentryDSN, "")
	v.SetDefault(KeySentryEnv, "production")
}

// resolveFile returns the explicit file, or DefaultFileName in the working
// directory when it exists.
func resolveFile(s loadSettings) (string, error) {
	if path := strings.TrimSpace(s.file); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrConfigFile, err)
		}
		return path, nil
	}

	dir := strings.TrimSpace(s.workingDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		dir = wd
	}

	candidate := filepath.Join(dir, DefaultFileName)
	info, err := os.Stat(candidate)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("%w: %s", ErrConfigFile, err)
	case info.IsDir():
		return "", fmt.Errorf("%w: %s is a directory", ErrConfigFile, candidate)
	}
	return candidate, nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	//nolint:gosec // G304: the config path comes from the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrConfigFile, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: parse %s: %s", ErrConfigFile, path, err)
	}
	return nil
}

func build(v *viper.Viper) (*Config, error) {
	order, err := timefmt.ParseRuleOrder(v.GetString(KeyRuleOrder))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidRuleOrder, KeyRuleOrder, err)
	}
	level, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidValue, KeyLogLevel, err)
	}
	format, err := logger.ParseFormat(v.GetString(KeyLogFormat))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidValue, KeyLogFormat, err)
	}

	return &Config{
		Timezone:       strings.TrimSpace(v.GetString(KeyTimezone)),
		FallbackLocale: strings.TrimSpace(v.GetString(KeyFallbackLocale)),
		Use24Hour:      v.GetBool(KeyUse24Hour),
		RuleOrder:      order,
		Server: ServerConfig{
			Address:         strings.TrimSpace(v.GetString(KeyServerAddress)),
			ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
			CORSOrigins:     v.GetStringSlice(KeyCORSOrigins),
		},
		Log: LogConfig{Level: level, Format: format},
		Sentry: logger.SentryConfig{
			DSN:         v.GetString(KeySentryDSN),
			Environment: v.GetString(KeySentryEnv),
			MinLevel:    slog.LevelWarn,
		},
	}, nil
}

// Validate checks that the zone loads and every value is usable.
func (c *Config) Validate() error {
	if c.Timezone == "" || c.Timezone == "Local" {
		return fmt.Errorf("%w: %s: %q", ErrInvalidTimezone, KeyTimezone, c.Timezone)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidTimezone, KeyTimezone, err)
	}
	if c.FallbackLocale == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidLocale, KeyFallbackLocale)
	}
	if err := c.RuleOrder.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidRuleOrder, KeyRuleOrder, err)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidValue, KeyServerAddress)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidValue, KeyShutdownTimeout)
	}
	return nil
}

// FormatterOptions translates the configuration into timefmt options.
func (c *Config) FormatterOptions() []timefmt.Option {
	return []timefmt.Option{
		timefmt.WithFallbackLocale(c.FallbackLocale),
		timefmt.WithRuleOrder(c.RuleOrder),
		timefmt.With24Hour(c.Use24Hour),
	}
}
