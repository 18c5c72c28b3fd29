package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/docguide/guide"
)

// GuidePage composes a framework guide: the documentation shell, the guide
// layout, and the step list with its prepared code.
func GuidePage(site SiteConfig, nav []NavSection, g guide.Guide, code []guide.Snippet) templ.Component {
	page := PageMeta{
		Title:       g.Meta.Title,
		Description: g.Meta.Description,
		URL:         GuideURL(site, g.Slug),
		OGType:      "article",
		JSONLD:      HowToJsonLD(site, g),
	}
	return DocumentationLayout(site, page, MarkActive(nav, GuidePath(g.Slug)), g.Meta.AllowOverflow,
		FrameworkGuideLayout(g.Meta.Title, g.Meta.Description,
			Steps(g.Steps, code)))
}

// Index lists every guide grouped like the sidebar.
func Index(site SiteConfig, nav []NavSection) templ.Component {
	page := PageMeta{
		Title:  "Framework guides",
		URL:    buildURL(site.URL),
		JSONLD: WebsiteJsonLD(site),
	}
	return DocumentationLayout(site, page, nav, true, component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<section class="guide-index"><h1>Framework guides</h1>`)
		if site.Description != "" {
			buf.WriteString(`<p class="guide-description">` + esc(site.Description) + `</p>`)
		}
		for _, section := range nav {
			buf.WriteString("<h2>" + esc(section.Title) + "</h2><ul>")
			for _, l := range section.Links {
				buf.WriteString(`<li><a href="` + esc(l.Href) + `">` + esc(l.Title) + `</a></li>`)
			}
			buf.WriteString("</ul>")
		}
		buf.WriteString("</section>")
		return nil
	}))
}

// NotFound is the 404 page.
func NotFound(site SiteConfig) templ.Component {
	return errorPage(site, "Page not found", "The page you are looking for does not exist.")
}

// ServerError is the 500 page.
func ServerError(site SiteConfig) templ.Component {
	return errorPage(site, "Something went wrong", "The page could not be rendered. Please try again later.")
}

func errorPage(site SiteConfig, title, message string) templ.Component {
	return DocumentationLayout(site, PageMeta{Title: title}, nil, true, component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<section class="error-page"><h1>` + esc(title) + `</h1>`)
		buf.WriteString("<p>" + esc(message) + `</p><p><a href="/">Back to the guides</a></p></section>`)
		return nil
	}))
}
