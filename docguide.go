// Package docguide is a documentation engine for framework install guides.
// It prepares each guide's code samples with a syntax highlighter, renders
// the pages with templ layouts, and either serves them with Echo or exports
// them as a static site.
package docguide

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/highlight"
	"github.com/eringen/docguide/logger"
	"github.com/eringen/docguide/views"
)

// App is the central docguide application. It wires together the guide
// registry, the highlight store, the page cache, handlers and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Log      *logger.Logger
	Registry *Registry
	Store    *Store
	Pages    *PageCache

	limiter      *RateLimiter
	highlighter  guide.Highlighter
	highlightCSS string
	extraGuides  []guide.Guide
	customRoutes []func(*App)

	loadOnce  sync.Once
	loadErr   error
	routeOnce sync.Once
}

// New creates a new docguide App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Log == nil {
		l, err := logger.New(cfg.LogMode, false)
		if err != nil {
			l = logger.Nop()
		}
		a.Log = l
	}
	return a
}

// Load registers guides, opens the highlight store and builds the
// highlighter. It runs once; later calls return the first result.
func (a *App) Load() error {
	a.loadOnce.Do(func() {
		a.loadErr = a.load()
	})
	return a.loadErr
}

func (a *App) load() error {
	guides := []guide.Guide{guide.Phoenix()}
	if len(a.Config.GuidePatterns) > 0 {
		loader := guide.NewLoader(guide.WithIgnoreFile(a.Config.IgnoreFile))
		loaded, err := loader.LoadFiles(a.Config.GuidePatterns)
		if err != nil {
			return fmt.Errorf("docguide: load guides: %w", err)
		}
		guides = append(guides, loaded...)
	}
	guides = append(guides, a.extraGuides...)

	registry, err := NewRegistry(guides...)
	if err != nil {
		return fmt.Errorf("docguide: register guides: %w", err)
	}
	a.Registry = registry

	css, err := highlight.StyleCSS(a.Config.HighlightStyle)
	if err != nil {
		return fmt.Errorf("docguide: highlight style: %w", err)
	}
	a.highlightCSS = css

	h := a.highlighter
	if h == nil {
		h = highlight.New(highlight.WithStyle(a.Config.HighlightStyle), highlight.WithLogger(a.Log))
	}
	switch {
	case a.Config.DisableHighlightCache:
	case !highlight.Cacheable(h):
		a.Log.Debug("highlighter has no cache key, skipping highlight store")
	default:
		store, err := NewStore(a.Config.CachePath)
		if err != nil {
			return fmt.Errorf("docguide: init store: %w", err)
		}
		a.Store = store
		h = highlight.Cached(h, store)
	}
	a.highlighter = h

	a.Pages = NewPageCache(a.Registry, a.highlighter, a.Config.PageCacheTTL)
	a.Log.Debug("guides registered", "count", a.Registry.Len())
	return nil
}

// Handler loads the app and returns the Echo instance with middleware and
// routes installed.
func (a *App) Handler() (http.Handler, error) {
	if err := a.Load(); err != nil {
		return nil, err
	}
	a.routeOnce.Do(func() {
		a.setupMiddleware()
		a.setupRoutes()
		for _, fn := range a.customRoutes {
			fn(a)
		}
	})
	return a.Echo, nil
}

// Start initializes the app and serves it on Config.Addr.
func (a *App) Start() error {
	if _, err := a.Handler(); err != nil {
		return err
	}
	a.Log.Info("serving guides", "addr", a.Config.Addr, "guides", a.Registry.Len())
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Build exports every guide as a static site under Config.OutDir.
func (a *App) Build(ctx context.Context) (BuildResult, error) {
	if err := a.Load(); err != nil {
		return BuildResult{}, err
	}
	b := &Builder{
		Site:         a.site(),
		OutDir:       a.Config.OutDir,
		Registry:     a.Registry,
		Highlighter:  a.highlighter,
		HighlightCSS: a.highlightCSS,
		Log:          a.Log,
	}
	return b.Build(ctx)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func (a *App) site() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
	}
}
