package docguide

import (
	"time"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/logger"
)

// SiteConfig holds all configuration for a docguide site.
type SiteConfig struct {
	Name        string // Site name (default "Tailwind CSS")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags and the index page

	Addr   string // Listen address (default ":3000")
	OutDir string // Static build output directory (default "dist")

	GuidePatterns []string // Doublestar globs for YAML guide files
	IgnoreFile    string   // gitignore-style file for guide discovery (default ".gitignore")

	HighlightStyle string // Chroma style name (default "github")

	CachePath             string // SQLite highlight cache (default "data/highlight.db")
	DisableHighlightCache bool   // Highlight on every build without persisting results

	PageCacheTTL time.Duration // Prepared page TTL for the server (default 5min)
	RateLimit    int           // Requests per minute per client IP; 0 disables (default 0)

	LogMode string // "dev" or "prod" (default "dev")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Tailwind CSS"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.OutDir == "" {
		c.OutDir = "dist"
	}
	if c.IgnoreFile == "" {
		c.IgnoreFile = ".gitignore"
	}
	if c.HighlightStyle == "" {
		c.HighlightStyle = "github"
	}
	if c.CachePath == "" {
		c.CachePath = "data/highlight.db"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
	if c.LogMode == "" {
		c.LogMode = "dev"
	}
	c.GuidePatterns = FilterEmpty(c.GuidePatterns)
}

// WithDefaults returns a copy of c with every unset field filled in.
func (c SiteConfig) WithDefaults() SiteConfig {
	c.setDefaults()
	return c
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces the default zap logger.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}

// WithHighlighter replaces the chroma highlighter. The SQLite cache wraps it
// only when it has a cache key; see highlight.Keyed.
func WithHighlighter(h guide.Highlighter) Option {
	return func(a *App) {
		a.highlighter = h
	}
}

// WithGuides registers guides in addition to the built-in Phoenix guide and
// any guide files matched by GuidePatterns.
func WithGuides(guides ...guide.Guide) Option {
	return func(a *App) {
		a.extraGuides = append(a.extraGuides, guides...)
	}
}
