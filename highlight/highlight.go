// Package highlight turns guide code samples into syntax-highlighted HTML.
package highlight

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/eringen/docguide/logger"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// diffPrefix marks a diff-flavoured language tag, e.g. "diff-js".
const diffPrefix = "diff-"

// Chroma highlights code with chroma lexers and emits class-based HTML
// without a surrounding <pre>. The page layout owns the <pre> element.
type Chroma struct {
	styleName string
	style     *chroma.Style
	formatter *chromahtml.Formatter
	log       *logger.Logger
	check     bool
}

type Option func(*Chroma)

// WithStyle selects a chroma style by name. Unknown names fall back to
// chroma's default style; use LookupStyle to reject them.
func WithStyle(name string) Option {
	return func(c *Chroma) {
		c.styleName = name
		c.style = styles.Get(name)
	}
}

// WithLogger routes warnings (unknown languages) to log.
func WithLogger(log *logger.Logger) Option {
	return func(c *Chroma) { c.log = log }
}

// WithoutCheck disables the syntax check that runs before highlighting.
func WithoutCheck() Option {
	return func(c *Chroma) { c.check = false }
}

// New returns a chroma-backed highlighter.
func New(opts ...Option) *Chroma {
	c := &Chroma{
		styleName: DefaultStyle,
		style:     styles.Get(DefaultStyle),
		formatter: chromahtml.New(chromahtml.WithClasses(true), chromahtml.PreventSurroundingPre(true)),
		log:       logger.Nop(),
		check:     true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Highlight implements guide.Highlighter. Samples in css, js and html are
// checked for well-formed syntax first; a malformed sample is an error.
func (c *Chroma) Highlight(code, lang string) (string, error) {
	if c.check {
		if err := Check(code, lang); err != nil {
			return "", err
		}
	}

	lexer := lexerFor(lang)
	if lexer == nil {
		c.log.Warn("unrecognised language, emitting plain text", "lang", lang)
		return html.EscapeString(code), nil
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", lang, err)
	}
	var buf bytes.Buffer
	if err := c.formatter.Format(&buf, c.style, it); err != nil {
		return "", fmt.Errorf("format %s: %w", lang, err)
	}
	return buf.String(), nil
}

// CacheKey identifies the markup this highlighter produces. It covers the
// chroma release, the formatter options, the style and the syntax check.
func (c *Chroma) CacheKey() string {
	return fmt.Sprintf("chroma@%s classes=true pre=false style=%s check=%t", chromaVersion(), c.styleName, c.check)
}

var chromaVersion = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == "github.com/alecthomas/chroma/v2" {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "unknown"
})

// WriteCSS writes the stylesheet for the configured style's token classes.
func (c *Chroma) WriteCSS(w io.Writer) error {
	return c.formatter.WriteCSS(w, c.style)
}

// LookupStyle returns the registered chroma style called name.
func LookupStyle(name string) (*chroma.Style, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown highlight style %q", name)
	}
	return style, nil
}

// StyleCSS returns the stylesheet for the named chroma style. Unknown
// names are an error.
func StyleCSS(style string) (string, error) {
	if _, err := LookupStyle(style); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := New(WithStyle(style)).WriteCSS(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// lexerFor resolves a language tag to a chroma lexer, or nil.
func lexerFor(lang string) chroma.Lexer {
	if strings.HasPrefix(lang, diffPrefix) {
		return lexers.Get("diff")
	}
	return lexers.Get(lang)
}

// Known reports whether lang resolves to a chroma lexer.
func Known(lang string) bool {
	return lexerFor(lang) != nil
}
