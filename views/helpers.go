package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/markup"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// GuidePath returns the site-relative path of a guide page.
func GuidePath(slug string) string {
	return "/docs/guides/" + url.PathEscape(slug) + "/"
}

// GuideURL returns the absolute URL of a guide page.
func GuideURL(cfg SiteConfig, slug string) string {
	return buildURL(cfg.URL, "docs", "guides", slug)
}

// MarkActive returns a copy of nav with the link to href flagged active.
func MarkActive(nav []NavSection, href string) []NavSection {
	out := make([]NavSection, len(nav))
	for i, s := range nav {
		links := make([]NavLink, len(s.Links))
		for j, l := range s.Links {
			l.Active = l.Href == href
			links[j] = l
		}
		out[i] = NavSection{Title: s.Title, Links: links}
	}
	return out
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// HowToJsonLD produces a Schema.org HowTo JSON-LD block for a guide, one
// HowToStep per guide step.
func HowToJsonLD(cfg SiteConfig, g guide.Guide) string {
	guideURL := GuideURL(cfg, g.Slug)
	steps := make([]map[string]interface{}, 0, len(g.Steps))
	for i, s := range g.Steps {
		steps = append(steps, map[string]interface{}{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     s.Title,
			"text":     markup.PlainText(s.Body),
		})
	}
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "HowTo",
		"name":        g.Meta.Title,
		"description": g.Meta.Description,
		"url":         guideURL,
		"step":        steps,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   guideURL,
		},
	}
	if g.Meta.Section != "" {
		data["articleSection"] = g.Meta.Section
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
