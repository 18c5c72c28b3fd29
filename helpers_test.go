package docguide

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/views"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Laravel":            "laravel",
		"  Next.js  ":        "next-js",
		"Ruby on Rails!":     "ruby-on-rails",
		"SvelteKit / Vite 5": "sveltekit-vite-5",
		"---":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "http://example.com", BuildURL("http://example.com"))
	assert.Equal(t, "http://example.com/docs/guides/phoenix/", BuildURL("http://example.com", "docs", "guides", "phoenix"))
	assert.Equal(t, "http://example.com/base/x/", BuildURL("http://example.com/base/", "x"))
}

func TestFilterEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, FilterEmpty([]string{" a ", "", "  ", "b"}))
	assert.Nil(t, FilterEmpty(nil))
}

func TestWriteSitemap(t *testing.T) {
	var buf bytes.Buffer
	site := views.SiteConfig{URL: "https://tailwindcss.test"}
	require.NoError(t, writeSitemap(&buf, site, []guide.Guide{guide.Phoenix()}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://tailwindcss.test</loc>")
	assert.Contains(t, out, "<loc>https://tailwindcss.test/docs/guides/phoenix/</loc>")
}
