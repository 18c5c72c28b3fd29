package docguide

import (
	"encoding/xml"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// writeSitemap writes the sitemap document for the index and every guide.
func writeSitemap(w io.Writer, site views.SiteConfig, guides []guide.Guide) error {
	urls := []sitemapURL{
		{Loc: BuildURL(site.URL)},
	}
	for _, g := range guides {
		urls = append(urls, sitemapURL{Loc: views.GuideURL(site, g.Slug)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(sitemap)
}

func (a *App) renderSitemap(c echo.Context, guides []guide.Guide) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeSitemap(c.Response(), a.site(), guides)
}
