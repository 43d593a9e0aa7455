package server

import (
	"context"

	"github.com/dmitrymomot/chatstamp/pkg/logger"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	localeKey
	timezoneKey
)

// RequestID returns the request ID stored by the request ID middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Locale returns the locale negotiated for the request.
func Locale(ctx context.Context) string {
	lang, _ := ctx.Value(localeKey).(string)
	return lang
}

// Timezone returns the zone the request renders in: the tz parameter when
// one was given, the configured zone otherwise.
func Timezone(ctx context.Context) string {
	tz, _ := ctx.Value(timezoneKey).(*string)
	if tz == nil {
		return ""
	}
	return *tz
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func withLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey, lang)
}

// withTimezone stores a mutable zone so a handler that reads tz from a body
// can update what the request logger reports.
func withTimezone(ctx context.Context, tz string) context.Context {
	return context.WithValue(ctx, timezoneKey, &tz)
}

func setTimezone(ctx context.Context, tz string) {
	if p, _ := ctx.Value(timezoneKey).(*string); p != nil {
		*p = tz
	}
}

// LogExtractors adds the request ID, negotiated locale and rendering zone to
// every record logged with a request context.
func LogExtractors() []logger.ContextExtractor {
	return []logger.ContextExtractor{
		logger.StringExtractor("request_id", RequestID),
		logger.StringExtractor("locale", Locale),
		logger.StringExtractor("timezone", Timezone),
	}
}
