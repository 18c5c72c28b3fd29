// Package markup models the explanatory text of a guide step as a small,
// restricted document tree and renders it as a templ component.
//
// Only paragraphs, plain text, inline code and links are supported. That is
// all a step body ever needs, and it keeps guide data free of arbitrary HTML.
package markup

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// Kind identifies the type of an Inline node.
type Kind int

const (
	KindText Kind = iota
	KindCode
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCode:
		return "code"
	case KindLink:
		return "link"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Inline is a run of text inside a paragraph.
type Inline struct {
	Kind Kind
	Text string
	Href string // KindLink only
}

// Paragraph is a block of inlines with an optional CSS class.
type Paragraph struct {
	Class   string
	Inlines []Inline
}

// Body is the explanatory text of a step.
type Body []Paragraph

// Text returns a plain text inline.
func Text(s string) Inline { return Inline{Kind: KindText, Text: s} }

// Code returns an inline code span.
func Code(s string) Inline { return Inline{Kind: KindCode, Text: s} }

// Link returns a hyperlink inline.
func Link(text, href string) Inline { return Inline{Kind: KindLink, Text: text, Href: href} }

// P returns a paragraph made of the given inlines.
func P(inlines ...Inline) Paragraph { return Paragraph{Inlines: inlines} }

// WithClass returns a copy of p with its CSS class set.
func (p Paragraph) WithClass(class string) Paragraph {
	p.Class = class
	return p
}

// Clone returns a deep copy of b.
func (b Body) Clone() Body {
	if b == nil {
		return nil
	}
	out := make(Body, len(b))
	for i, p := range b {
		out[i] = Paragraph{Class: p.Class, Inlines: append([]Inline(nil), p.Inlines...)}
	}
	return out
}

var (
	reInline = regexp.MustCompile("`([^`]+)`|\\[([^\\]]+)\\]\\(([^)\\s]+)\\)")
	reClass  = regexp.MustCompile(`^\{\.([A-Za-z0-9_:\-\s.]+)\}\s*`)
)

// Parse builds a Body from the inline syntax used by guide files:
//
//	Paragraphs are separated by blank lines.
//	`code` is an inline code span.
//	[text](url) is a link.
//	A leading {.class} sets the paragraph class, e.g. {.text-sm}.
func Parse(src string) (Body, error) {
	var body Body
	for _, chunk := range splitParagraphs(src) {
		p := Paragraph{}
		if m := reClass.FindStringSubmatch(chunk); m != nil {
			p.Class = strings.Join(strings.Fields(strings.ReplaceAll(m[1], ".", " ")), " ")
			chunk = chunk[len(m[0]):]
		}
		inlines, err := parseInlines(chunk)
		if err != nil {
			return nil, err
		}
		p.Inlines = inlines
		body = append(body, p)
	}
	return body, nil
}

// MustParse is like Parse but panics on error. It is meant for package-level
// guide tables.
func MustParse(src string) Body {
	b, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return b
}

func splitParagraphs(src string) []string {
	var out []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

func parseInlines(s string) ([]Inline, error) {
	var inlines []Inline
	pos := 0
	for _, m := range reInline.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > pos {
			inlines = append(inlines, Text(s[pos:m[0]]))
		}
		switch {
		case m[2] >= 0:
			inlines = append(inlines, Code(s[m[2]:m[3]]))
		default:
			href := s[m[6]:m[7]]
			if !SafeURL(href) {
				return nil, fmt.Errorf("markup: unsafe link target %q", href)
			}
			inlines = append(inlines, Link(s[m[4]:m[5]], href))
		}
		pos = m[1]
	}
	if pos < len(s) {
		inlines = append(inlines, Text(s[pos:]))
	}
	return inlines, nil
}

// SafeURL reports whether raw is acceptable as a link target: a relative
// path, a fragment, or an http, https, mailto or tel URL.
func SafeURL(raw string) bool {
	val := strings.TrimSpace(raw)
	if val == "" {
		return false
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") || strings.HasPrefix(val, "./") {
		return true
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return true
	default:
		return false
	}
}

// Render returns a templ.Component that writes b as HTML.
func Render(b Body) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderHTML(&buf, b)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderHTML writes the HTML representation of b to buf. All text is escaped.
func RenderHTML(buf *bytes.Buffer, b Body) {
	for _, p := range b {
		if p.Class != "" {
			buf.WriteString(`<p class="` + html.EscapeString(p.Class) + `">`)
		} else {
			buf.WriteString("<p>")
		}
		for _, in := range p.Inlines {
			switch in.Kind {
			case KindCode:
				buf.WriteString("<code>")
				buf.WriteString(html.EscapeString(in.Text))
				buf.WriteString("</code>")
			case KindLink:
				if !SafeURL(in.Href) {
					buf.WriteString(html.EscapeString(in.Text))
					continue
				}
				attrs := ""
				if isExternal(in.Href) {
					attrs = ` target="_blank" rel="noopener noreferrer"`
				}
				buf.WriteString(`<a href="` + html.EscapeString(in.Href) + `"` + attrs + `>`)
				buf.WriteString(html.EscapeString(in.Text))
				buf.WriteString("</a>")
			default:
				buf.WriteString(html.EscapeString(in.Text))
			}
		}
		buf.WriteString("</p>")
	}
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// PlainText flattens b to text, one paragraph per blank-line separated block.
func PlainText(b Body) string {
	parts := make([]string, 0, len(b))
	for _, p := range b {
		var sb strings.Builder
		for _, in := range p.Inlines {
			sb.WriteString(in.Text)
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "\n\n")
}
