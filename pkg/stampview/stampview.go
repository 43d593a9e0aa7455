// Package stampview renders timefmt stamps as HTML <time> fragments.
//
//	s, _ := formatter.Stamp(req)
//	_ = stampview.Stamp(s).Render(ctx, w)
//	// <time datetime="2024-06-15T15:30:00+08:00" title="2024/06/15 15:30:00" data-bucket="today" lang="zh-CN">15:30</time>
package stampview

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

// Stamp renders one <time> element. A stamp without text renders nothing.
func Stamp(s timefmt.Stamp) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if s.Text == "" {
			return nil
		}
		_, err := io.WriteString(w, timeTag(s))
		return err
	})
}

// List renders stamps as a <ul class="stamps">, one <li> per stamp.
// Stamps without text keep their slot as an empty <li>.
func List(stamps []timefmt.Stamp) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<ul class="stamps">`)
		for _, s := range stamps {
			b.WriteString("<li>")
			if s.Text != "" {
				b.WriteString(timeTag(s))
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func timeTag(s timefmt.Stamp) string {
	var b strings.Builder
	b.WriteString(`<time datetime="`)
	b.WriteString(templ.EscapeString(s.ISO))
	b.WriteString(`"`)
	if s.Title != "" {
		b.WriteString(` title="`)
		b.WriteString(templ.EscapeString(s.Title))
		b.WriteString(`"`)
	}
	b.WriteString(` data-bucket="`)
	b.WriteString(templ.EscapeString(s.Bucket.String()))
	b.WriteString(`" data-policy="`)
	b.WriteString(templ.EscapeString(s.Policy.String()))
	b.WriteString(`"`)
	if s.Locale != "" {
		b.WriteString(` lang="`)
		b.WriteString(templ.EscapeString(s.Locale))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(templ.EscapeString(s.Text))
	b.WriteString("</time>")
	return b.String()
}
