package timefmt

import (
	"errors"
	"fmt"
	"time"
)

// Request is one formatting call with every input spelled out.
type Request struct {
	Timestamp Timestamp
	// Now defaults to the formatter's clock when zero.
	Now      Timestamp
	Timezone string
	Locale   string
	Policy   Policy
	// WithSuffix appends "ago" to relative policies.
	WithSuffix bool
}

// Stamp is a rendered timestamp plus the facts behind it, for templates and
// API responses.
type Stamp struct {
	Timestamp Timestamp `json:"ts"`
	Text      string    `json:"text"`
	Bucket    Bucket    `json:"bucket,omitempty"`
	Policy    Policy    `json:"policy"`
	Locale    string    `json:"locale"`
	Timezone  string    `json:"timezone"`
	// ISO is the RFC 3339 form in the requested zone.
	ISO string `json:"iso,omitempty"`
	// Title is the full date-time, suitable for a tooltip.
	Title string `json:"title,omitempty"`
}

// Stamp renders a Request. Unlike the string formatters it reports why
// nothing could be rendered.
func (f *Formatter) Stamp(req Request) (Stamp, error) {
	if req.Policy == 0 {
		req.Policy = MessageListStamp
	}
	if _, ok := policyNames[req.Policy]; !ok {
		return Stamp{}, fmt.Errorf("%w: %d", ErrUnknownPolicy, req.Policy)
	}
	if req.Now == 0 {
		req.Now = f.clock.Now()
	}

	c, err := f.classify(req.Timestamp, req.Now, req.Timezone)
	if err != nil {
		return Stamp{}, err
	}

	lang := f.ResolveLocale(req.Locale)
	s := Stamp{
		Timestamp: req.Timestamp,
		Bucket:    c.bucket,
		Policy:    req.Policy,
		Locale:    lang,
		Timezone:  req.Timezone,
		ISO:       c.ts.Time().Format(time.RFC3339),
		Title:     f.localizer.DateTimeLabel(c.ts, lang),
	}

	switch req.Policy {
	case MessageListStamp:
		s.Text = f.listText(c, lang)
	case MessageBubbleStamp:
		s.Text = f.bubbleText(c, lang)
	case RelativeShort:
		s.Text = f.localizer.RelativePhrase(int64(req.Now-req.Timestamp), lang, Short, req.WithSuffix)
	case RelativeVerbose:
		s.Text = f.localizer.RelativePhrase(int64(req.Now-req.Timestamp), lang, Verbose, req.WithSuffix)
	case AbsoluteDate:
		s.Text = f.localizer.DateLabel(c.ts, lang)
	case DateTime:
		s.Text = s.Title
	case DaySeparator:
		s.Text = f.separatorText(c, lang)
	}

	return s, nil
}

// Stamps renders one Stamp per timestamp with a shared template request.
// Timestamps that cannot be rendered yield a Stamp with empty Text; an
// unknown zone or policy fails the whole batch.
func (f *Formatter) Stamps(tmpl Request, timestamps []Timestamp) ([]Stamp, error) {
	if tmpl.Now == 0 {
		tmpl.Now = f.clock.Now()
	}
	if tmpl.Policy == 0 {
		tmpl.Policy = MessageListStamp
	}

	out := make([]Stamp, 0, len(timestamps))
	for _, ts := range timestamps {
		req := tmpl
		req.Timestamp = ts
		s, err := f.Stamp(req)
		switch {
		case err == nil:
		case errors.Is(err, ErrInvalidTimestamp):
			s = Stamp{Timestamp: ts, Policy: req.Policy, Locale: f.ResolveLocale(req.Locale), Timezone: req.Timezone}
		default:
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
