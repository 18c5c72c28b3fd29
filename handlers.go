package docguide

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/views"
)

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/docs.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/highlight.css", a.handleHighlightCSS)

	e.GET("/healthz", a.handleHealth)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/", a.handleIndex)
	e.GET("/docs/guides", handleGuidesRedirect)
	e.GET("/docs/guides/:slug/", a.handleGuide)
	e.GET("/docs/guides/:slug/props.json", a.handleProps)
}

func (a *App) handleIndex(c echo.Context) error {
	return Render(c, views.Index(a.site(), a.Registry.Navigation()))
}

func (a *App) handleGuide(c echo.Context) error {
	p, err := a.Pages.Get(c.Param("slug"))
	if err != nil {
		if errors.Is(err, guide.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		}
		return err
	}
	return Render(c, views.GuidePage(a.site(), a.Registry.Navigation(), p.Guide, p.Code))
}

func (a *App) handleProps(c echo.Context) error {
	p, err := a.Pages.Get(c.Param("slug"))
	if err != nil {
		if errors.Is(err, guide.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "guide not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, buildProps{Code: p.CodeStrings()})
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Registry.List())
}

func (a *App) handleHighlightCSS(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(a.highlightCSS))
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"guides": a.Registry.Len(),
	})
}

func handleGuidesRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound && !isJSONPath(c.Request().URL.Path) {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error", "path", c.Request().URL.Path, "err", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
