package docguide

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/logger"
	"github.com/eringen/docguide/views"
)

// BuildResult describes a finished static export.
type BuildResult struct {
	OutDir   string
	Pages    int
	Files    []string // paths relative to OutDir, in write order
	Duration time.Duration
}

// Builder exports guides as static files.
type Builder struct {
	Site         views.SiteConfig
	OutDir       string
	Registry     *Registry
	Highlighter  guide.Highlighter
	HighlightCSS string
	Log          *logger.Logger

	files []string
}

// Build prepares every guide and writes the site. Preparation happens
// before any file is written, so a highlighter failure leaves OutDir as it
// was. Everything under docs/guides is owned by the build and replaced on
// each run. The first error stops the build.
func (b *Builder) Build(ctx context.Context) (BuildResult, error) {
	start := time.Now()
	log := b.Log
	if log == nil {
		log = logger.Nop()
	}
	b.files = nil

	guides := b.Registry.List()
	pages := make([]Prepared, 0, len(guides))
	for _, g := range guides {
		if err := ctx.Err(); err != nil {
			return BuildResult{}, err
		}
		code, err := guide.Prepare(g, b.Highlighter)
		if err != nil {
			return BuildResult{}, err
		}
		pages = append(pages, Prepared{Guide: g, Code: code})
		log.Debug("prepared guide", "slug", g.Slug, "steps", len(g.Steps))
	}

	// Pages of guides dropped since the last run go too.
	if err := os.RemoveAll(filepath.Join(b.OutDir, "docs", "guides")); err != nil {
		return BuildResult{}, fmt.Errorf("clear guides: %w", err)
	}

	nav := b.Registry.Navigation()
	if err := b.writeComponent(ctx, "index.html", views.Index(b.Site, nav)); err != nil {
		return BuildResult{}, err
	}
	if err := b.writeComponent(ctx, "404.html", views.NotFound(b.Site)); err != nil {
		return BuildResult{}, err
	}

	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return BuildResult{}, err
		}
		dir := filepath.Join("docs", "guides", p.Guide.Slug)
		page := views.GuidePage(b.Site, nav, p.Guide, p.Code)
		if err := b.writeComponent(ctx, filepath.Join(dir, "index.html"), page); err != nil {
			return BuildResult{}, err
		}
		props, err := json.MarshalIndent(buildProps{Code: p.CodeStrings()}, "", "  ")
		if err != nil {
			return BuildResult{}, fmt.Errorf("props %s: %w", p.Guide.Slug, err)
		}
		if err := b.writeFile(filepath.Join(dir, "props.json"), append(props, '\n')); err != nil {
			return BuildResult{}, err
		}
		log.Info("wrote guide", "slug", p.Guide.Slug)
	}

	var sitemap bytes.Buffer
	if err := writeSitemap(&sitemap, b.Site, guides); err != nil {
		return BuildResult{}, fmt.Errorf("sitemap: %w", err)
	}
	if err := b.writeFile("sitemap.xml", sitemap.Bytes()); err != nil {
		return BuildResult{}, err
	}

	if err := b.writeFile(filepath.Join("public", "highlight.css"), []byte(b.HighlightCSS)); err != nil {
		return BuildResult{}, err
	}
	css, err := EmbeddedAssets.ReadFile("embedded/docs.css")
	if err != nil {
		return BuildResult{}, err
	}
	if err := b.writeFile(filepath.Join("public", "docs.css"), css); err != nil {
		return BuildResult{}, err
	}

	return BuildResult{
		OutDir:   b.OutDir,
		Pages:    len(pages),
		Files:    b.files,
		Duration: time.Since(start),
	}, nil
}

func (b *Builder) writeComponent(ctx context.Context, rel string, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render %s: %w", rel, err)
	}
	return b.writeFile(rel, buf.Bytes())
}

func (b *Builder) writeFile(rel string, data []byte) error {
	path := filepath.Join(b.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	b.files = append(b.files, filepath.ToSlash(rel))
	return nil
}
