// Package markup renders the minimal emphasis convention used in education
// content: text wrapped in **double asterisks** is shown in bold.
package markup

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const marker = "**"

// Segment is a run of text that is either emphasized or plain.
type Segment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Segments splits body into plain and bold runs. An opening marker without
// a matching close is kept as literal text. Empty runs are dropped.
func Segments(body string) []Segment {
	segments := make([]Segment, 0)
	rest := body

	for {
		open := strings.Index(rest, marker)
		if open < 0 {
			break
		}
		closeIdx := strings.Index(rest[open+len(marker):], marker)
		if closeIdx < 0 {
			break
		}
		closeIdx += open + len(marker)

		if open > 0 {
			segments = appendPlain(segments, rest[:open])
		}
		if bold := rest[open+len(marker) : closeIdx]; bold != "" {
			segments = append(segments, Segment{Text: bold, Bold: true})
		}
		rest = rest[closeIdx+len(marker):]
	}

	if rest != "" {
		segments = appendPlain(segments, rest)
	}

	return segments
}

// appendPlain merges consecutive plain runs.
func appendPlain(segments []Segment, text string) []Segment {
	if n := len(segments); n > 0 && !segments[n-1].Bold {
		segments[n-1].Text += text
		return segments
	}
	return append(segments, Segment{Text: text})
}

// Renderer turns education bodies into sanitized HTML.
type Renderer struct {
	policy *bluemonday.Policy
}

// NewRenderer creates a Renderer whose output only ever contains p, br and
// strong elements.
func NewRenderer() *Renderer {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong")
	return &Renderer{policy: p}
}

// HTML renders body: blank lines separate paragraphs, single newlines become
// line breaks and bold runs become strong elements. Source text is escaped
// before markup is added and the result is passed through the allow-list
// policy.
func (r *Renderer) HTML(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	var b strings.Builder
	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		b.WriteString("<p>")
		for i, line := range strings.Split(para, "\n") {
			if i > 0 {
				b.WriteString("<br/>")
			}
			for _, seg := range Segments(line) {
				text := html.EscapeString(seg.Text)
				if seg.Bold {
					b.WriteString("<strong>" + text + "</strong>")
				} else {
					b.WriteString(text)
				}
			}
		}
		b.WriteString("</p>")
	}

	return r.policy.Sanitize(b.String())
}
