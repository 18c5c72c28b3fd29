package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/markup"
)

// component builds a templ.Component from a function that fills a buffer.
// Output is only written once the whole tree rendered without error.
func component(fn func(ctx context.Context, buf *bytes.Buffer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := fn(ctx, &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

var esc = html.EscapeString

// DocumentationLayout is the HTML shell for documentation pages: head
// metadata, stylesheets, the sidebar navigation and the main column.
// When allowOverflow is false the main column clips horizontal overflow.
func DocumentationLayout(site SiteConfig, page PageMeta, nav []NavSection, allowOverflow bool, body templ.Component) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		title := page.Title
		if title == "" {
			title = site.Name
		} else if site.Name != "" {
			title += " - " + site.Name
		}
		description := page.Description
		if description == "" {
			description = site.Description
		}
		ogType := page.OGType
		if ogType == "" {
			ogType = "website"
		}

		buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head>")
		buf.WriteString(`<meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		buf.WriteString("<title>" + esc(title) + "</title>")
		if description != "" {
			buf.WriteString(`<meta name="description" content="` + esc(description) + `"/>`)
			buf.WriteString(`<meta property="og:description" content="` + esc(description) + `"/>`)
		}
		buf.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
		buf.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
		if page.URL != "" {
			buf.WriteString(`<link rel="canonical" href="` + esc(page.URL) + `"/>`)
			buf.WriteString(`<meta property="og:url" content="` + esc(page.URL) + `"/>`)
		}
		buf.WriteString(`<link rel="stylesheet" href="/public/docs.css"/>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/highlight.css"/>`)
		if page.JSONLD != "" {
			// json.Marshal escapes <, > and &, so the block cannot close the script early.
			buf.WriteString(`<script type="application/ld+json">` + page.JSONLD + `</script>`)
		}
		buf.WriteString("</head><body>")

		buf.WriteString(`<div class="docs-layout">`)
		buf.WriteString(`<nav class="docs-sidebar" aria-label="Documentation">`)
		buf.WriteString(`<a class="docs-brand" href="/">` + esc(site.Name) + `</a>`)
		for _, section := range nav {
			buf.WriteString(`<h5 class="docs-nav-section">` + esc(section.Title) + `</h5><ul>`)
			for _, l := range section.Links {
				if l.Active {
					buf.WriteString(`<li><a class="active" aria-current="page" href="` + esc(l.Href) + `">` + esc(l.Title) + `</a></li>`)
				} else {
					buf.WriteString(`<li><a href="` + esc(l.Href) + `">` + esc(l.Title) + `</a></li>`)
				}
			}
			buf.WriteString("</ul>")
		}
		buf.WriteString("</nav>")

		mainClass := "docs-main"
		if !allowOverflow {
			mainClass += " overflow-hidden"
		}
		buf.WriteString(`<main class="` + mainClass + `">`)
		if err := body.Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString("</main></div></body></html>")
		return nil
	})
}

// FrameworkGuideLayout renders the guide header above its children.
func FrameworkGuideLayout(title, description string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<article class="framework-guide"><header class="guide-header">`)
		buf.WriteString("<h1>" + esc(title) + "</h1>")
		if description != "" {
			buf.WriteString(`<p class="guide-description">` + esc(description) + "</p>")
		}
		buf.WriteString("</header>")
		if err := body.Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString("</article>")
		return nil
	})
}

// Steps renders the numbered step list. code must be positionally aligned
// with steps, as produced by guide.Prepare. Highlighted snippets are
// inserted as markup; raw snippets are escaped.
func Steps(steps []guide.Step, code []guide.Snippet) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		if len(code) != len(steps) {
			return fmt.Errorf("views: %d code entries for %d steps", len(code), len(steps))
		}
		buf.WriteString(`<ol class="steps">`)
		for i, s := range steps {
			n := strconv.Itoa(i + 1)
			buf.WriteString(`<li class="step" id="step-` + n + `">`)
			buf.WriteString(`<div class="step-text">`)
			buf.WriteString(`<span class="step-number">` + n + `</span>`)
			buf.WriteString("<h4>" + esc(s.Title) + "</h4>")
			markup.RenderHTML(buf, s.Body)
			buf.WriteString("</div>")

			buf.WriteString(`<div class="step-code">`)
			buf.WriteString(`<div class="code-name">` + esc(s.Code.Name) + `</div>`)
			lang := s.Code.Lang
			if lang == "" {
				lang = "text"
			}
			buf.WriteString(`<pre class="chroma language-` + esc(lang) + `"><code>`)
			if code[i].Highlighted {
				buf.WriteString(code[i].Text)
			} else {
				buf.WriteString(esc(code[i].Text))
			}
			buf.WriteString("</code></pre></div></li>")
		}
		buf.WriteString("</ol>")
		return nil
	})
}
