package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/chatstamp/pkg/health"
	"github.com/dmitrymomot/chatstamp/pkg/stampview"
	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

const (
	// MaxBatchSize bounds the timestamps accepted by POST /v1/stamps.
	MaxBatchSize = 1000
	maxBodyBytes = 1 << 20
)

// requestFromQuery reads ts, now, tz, policy and suffix. The locale and zone
// come from negotiation. A missing ts is an error unless optional is set, in
// which case it reads as zero.
func (s *Server) requestFromQuery(r *http.Request, optional bool) (timefmt.Request, error) {
	q := r.URL.Query()
	req := timefmt.Request{
		Timezone:   s.cfg.Timezone,
		Locale:     Locale(r.Context()),
		Policy:     timefmt.MessageListStamp,
		WithSuffix: true,
	}

	if raw := q.Get("ts"); raw != "" {
		ts, err := timefmt.ParseTimestamp(raw)
		if err != nil {
			return req, badRequest(CodeInvalidTimestamp, "ts must be a non-negative integer", err)
		}
		req.Timestamp = ts
	} else if !optional {
		return req, badRequest(CodeInvalidTimestamp, "ts is required", nil)
	}

	if v := q.Get("now"); v != "" {
		now, err := timefmt.ParseTimestamp(v)
		if err != nil {
			return req, badRequest(CodeInvalidTimestamp, "now must be a non-negative integer", err)
		}
		req.Now = now
	}
	if v := q.Get("tz"); v != "" {
		req.Timezone = v
	}
	if v := q.Get("policy"); v != "" {
		p, err := timefmt.ParsePolicy(v)
		if err != nil {
			return req, formatterError(err)
		}
		req.Policy = p
	}
	if v := q.Get("suffix"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, badRequest(CodeInvalidParameter, "suffix must be a boolean", err)
		}
		req.WithSuffix = b
	}
	return req, nil
}

// stampOne renders a single timestamp. Unrenderable timestamps give a stamp
// with empty text rather than an error.
func (s *Server) stampOne(req timefmt.Request) (timefmt.Stamp, error) {
	stamps, err := s.formatter.Stamps(req, []timefmt.Timestamp{req.Timestamp})
	if err != nil {
		return timefmt.Stamp{}, err
	}
	return stamps[0], nil
}

func (s *Server) handleStamp(w http.ResponseWriter, r *http.Request) error {
	req, err := s.requestFromQuery(r, false)
	if err != nil {
		return err
	}
	stamp, err := s.stampOne(req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, stamp)
	return nil
}

// handleStampHTML renders the <time> fragment. htmx requests get an empty
// 200 on bad input so a swap clears the target instead of failing.
func (s *Server) handleStampHTML(w http.ResponseWriter, r *http.Request) error {
	req, err := s.requestFromQuery(r, false)
	var stamp timefmt.Stamp
	if err == nil {
		stamp, err = s.stampOne(req)
	}
	if err != nil {
		if r.Header.Get("HX-Request") != "true" {
			return err
		}
		stamp = timefmt.Stamp{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	return stampview.Stamp(stamp).Render(r.Context(), w)
}

type stampsRequest struct {
	Timestamps []timefmt.Timestamp `json:"timestamps"`
	Now        timefmt.Timestamp   `json:"now,omitempty"`
	Timezone   string              `json:"tz,omitempty"`
	Policy     string              `json:"policy,omitempty"`
	Lang       string              `json:"lang,omitempty"`
	Suffix     *bool               `json:"suffix,omitempty"`
}

type stampsResponse struct {
	Stamps []timefmt.Stamp `json:"stamps"`
}

func (s *Server) handleStamps(w http.ResponseWriter, r *http.Request) error {
	var body stampsRequest
	if err := decodeJSON(w, r, &body); err != nil {
		return err
	}
	if len(body.Timestamps) > MaxBatchSize {
		return badRequest(CodeTooManyItems, fmt.Sprintf("at most %d timestamps per request", MaxBatchSize), nil)
	}

	if body.Now < 0 {
		return badRequest(CodeInvalidTimestamp, "now must be a non-negative integer", nil)
	}
	req := timefmt.Request{
		Now:        body.Now.Normalize(),
		Timezone:   Timezone(r.Context()),
		Locale:     Locale(r.Context()),
		Policy:     timefmt.MessageListStamp,
		WithSuffix: true,
	}
	if req.Timezone == "" {
		req.Timezone = s.cfg.Timezone
	}
	if body.Timezone != "" {
		req.Timezone = body.Timezone
		setTimezone(r.Context(), body.Timezone)
	}
	if body.Lang != "" {
		req.Locale = body.Lang
	}
	if body.Policy != "" {
		p, err := timefmt.ParsePolicy(body.Policy)
		if err != nil {
			return formatterError(err)
		}
		req.Policy = p
	}
	if body.Suffix != nil {
		req.WithSuffix = *body.Suffix
	}

	timestamps := make([]timefmt.Timestamp, len(body.Timestamps))
	for i, ts := range body.Timestamps {
		timestamps[i] = ts.Normalize()
	}

	stamps, err := s.formatter.Stamps(req, timestamps)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, stampsResponse{Stamps: stamps})
	return nil
}

type shortenRequest struct {
	Phrase string `json:"phrase"`
	Suffix *bool  `json:"suffix,omitempty"`
	Lang   string `json:"lang,omitempty"`
}

type shortenResponse struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

func (s *Server) handleShorten(w http.ResponseWriter, r *http.Request) error {
	var body shortenRequest
	if err := decodeJSON(w, r, &body); err != nil {
		return err
	}
	if strings.TrimSpace(body.Phrase) == "" {
		return badRequest(CodeInvalidBody, "phrase is required", nil)
	}

	lang := Locale(r.Context())
	if body.Lang != "" {
		lang = body.Lang
	}
	withSuffix := body.Suffix == nil || *body.Suffix

	writeJSON(w, http.StatusOK, shortenResponse{
		Text:   timefmt.ShortenRelativePhrase(body.Phrase, withSuffix, timefmt.ShortenRulesFor(lang)),
		Locale: lang,
	})
	return nil
}

type elapsedResponse struct {
	Elapsed bool `json:"elapsed"`
}

// handleElapsed reports whether a calendar day boundary lies between ts and
// now. Unrenderable input, a missing ts included, counts as elapsed.
func (s *Server) handleElapsed(w http.ResponseWriter, r *http.Request) error {
	req, err := s.requestFromQuery(r, true)
	if err != nil {
		return err
	}
	now := req.Now
	if now == 0 {
		now = s.formatter.Clock().Now()
	}
	writeJSON(w, http.StatusOK, elapsedResponse{
		Elapsed: s.formatter.HasOneDayElapsed(req.Timestamp, now, req.Timezone),
	})
	return nil
}

type dayResponse struct {
	Start    timefmt.Timestamp `json:"start"`
	End      timefmt.Timestamp `json:"end"`
	Label    string            `json:"label"`
	Timezone string            `json:"timezone"`
	Locale   string            `json:"locale"`
}

// handleDay reports the bounds of the calendar day holding ts, or now when
// ts is absent, with the day separator label for that day.
func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) error {
	req, err := s.requestFromQuery(r, true)
	if err != nil {
		return err
	}
	now := req.Now
	if now == 0 {
		now = s.formatter.Clock().Now()
	}
	ts := req.Timestamp
	if ts == 0 {
		ts = now
	}

	start, end, err := s.formatter.DayBounds(ts, req.Timezone)
	if err != nil {
		return err
	}
	lang := s.formatter.ResolveLocale(req.Locale)
	writeJSON(w, http.StatusOK, dayResponse{
		Start:    start,
		End:      end,
		Label:    s.formatter.DaySeparator(ts, now, req.Timezone, lang),
		Timezone: req.Timezone,
		Locale:   lang,
	})
	return nil
}

type localesResponse struct {
	Fallback string   `json:"fallback"`
	Locales  []string `json:"locales"`
	Selected string   `json:"selected"`
}

func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, localesResponse{
		Fallback: s.fallback,
		Locales:  s.languages,
		Selected: Locale(r.Context()),
	})
	return nil
}

// readinessChecks verify the configured zone loads and the fallback locale
// still resolves against the localizer.
func (s *Server) readinessChecks() health.Checks {
	return health.Checks{
		"timezone": func(context.Context) error {
			_, err := s.formatter.Clock().Zoned(s.formatter.Clock().Now(), s.cfg.Timezone)
			return err
		},
		"locale": func(context.Context) error {
			if _, ok := s.formatter.Localizer().Resolve(s.fallback); !ok {
				return fmt.Errorf("%w: %s", timefmt.ErrUnsupportedLocale, s.fallback)
			}
			return nil
		},
	}
}

// decodeJSON reads a single JSON object from a size-limited body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewHTTPError(http.StatusRequestEntityTooLarge, CodeInvalidBody, "request body too large")
		}
		return badRequest(CodeInvalidBody, "malformed JSON body", err)
	}
	return nil
}
