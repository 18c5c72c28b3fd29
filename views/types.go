package views

// SiteConfig holds site-wide settings every page template needs.
type SiteConfig struct {
	Name        string // site name (default "Docs")
	URL         string // canonical base URL
	Description string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string // optional structured data block
}

// NavSection is a titled group of links in the documentation sidebar.
type NavSection struct {
	Title string
	Links []NavLink
}

// NavLink is one sidebar entry.
type NavLink struct {
	Title  string
	Href   string
	Active bool
}
