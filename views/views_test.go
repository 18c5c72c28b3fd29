package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docguide/guide"
)

var testSite = SiteConfig{Name: "Tailwind Docs", URL: "https://docs.example.com", Description: "Guides"}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func upper(t *testing.T, g guide.Guide) []guide.Snippet {
	t.Helper()
	code, err := guide.Prepare(g, guide.HighlighterFunc(func(code, lang string) (string, error) {
		return `<span class="hl">` + strings.ToUpper(code) + `</span>`, nil
	}))
	require.NoError(t, err)
	return code
}

func TestStepsRendersEveryStepInOrder(t *testing.T) {
	g := guide.Phoenix()
	out := render(t, Steps(g.Steps, upper(t, g)))

	last := -1
	for i, s := range g.Steps {
		idx := strings.Index(out, "<h4>"+esc(s.Title)+"</h4>")
		require.GreaterOrEqual(t, idx, 0, "step %d missing", i+1)
		assert.Greater(t, idx, last, "step %d out of order", i+1)
		last = idx
	}
	assert.Contains(t, out, `id="step-11"`)
}

func TestStepsEscapesRawAndKeepsHighlightedMarkup(t *testing.T) {
	steps := []guide.Step{
		{Title: "raw", Code: guide.CodeSample{Name: "Terminal", Lang: guide.LangTerminal, Code: "echo <b>"}},
		{Title: "hl", Code: guide.CodeSample{Name: "a.html", Lang: "html", Code: "<b>"}},
	}
	code := []guide.Snippet{
		{Text: "echo <b>"},
		{Text: `<span class="nt">&lt;b&gt;</span>`, Highlighted: true},
	}
	out := render(t, Steps(steps, code))

	assert.Contains(t, out, "<code>echo &lt;b&gt;</code>")
	assert.Contains(t, out, `<code><span class="nt">&lt;b&gt;</span></code>`)
	assert.Contains(t, out, `<div class="code-name">Terminal</div>`)
	assert.Contains(t, out, `language-terminal`)
}

func TestStepsRejectsMisalignedCode(t *testing.T) {
	g := guide.Phoenix()
	var buf bytes.Buffer
	err := Steps(g.Steps, nil).Render(context.Background(), &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 code entries for 11 steps")
	assert.Zero(t, buf.Len(), "nothing should be written on error")
}

func TestGuidePage(t *testing.T) {
	g := guide.Phoenix()
	nav := []NavSection{{Title: "Installation", Links: []NavLink{
		{Title: "Install Tailwind CSS with Phoenix", Href: GuidePath("phoenix")},
		{Title: "Other", Href: GuidePath("other")},
	}}}
	out := render(t, GuidePage(testSite, nav, g, upper(t, g)))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Install Tailwind CSS with Phoenix - Tailwind Docs</title>")
	assert.Contains(t, out, `<meta name="description" content="Setting up Tailwind CSS in a Phoenix project."/>`)
	assert.Contains(t, out, `<link rel="canonical" href="https://docs.example.com/docs/guides/phoenix/"/>`)
	assert.Contains(t, out, `<main class="docs-main overflow-hidden">`)
	assert.Contains(t, out, `<a class="active" aria-current="page" href="/docs/guides/phoenix/">`)
	assert.Contains(t, out, `<li><a href="/docs/guides/other/">Other</a></li>`)
	assert.Contains(t, out, `<a href="https://hexdocs.pm/phoenix/installation.html" target="_blank" rel="noopener noreferrer">Installation</a>`)
	assert.Contains(t, out, "<code>mix phx.server</code>")
	assert.Contains(t, out, `"@type":"HowTo"`)
}

func TestGuidePageAllowOverflow(t *testing.T) {
	g := guide.Phoenix()
	g.Meta.AllowOverflow = true
	out := render(t, GuidePage(testSite, nil, g, upper(t, g)))
	assert.Contains(t, out, `<main class="docs-main">`)
}

func TestIndexAndErrorPages(t *testing.T) {
	nav := []NavSection{{Title: "Installation", Links: []NavLink{{Title: "Phoenix", Href: "/docs/guides/phoenix/"}}}}
	out := render(t, Index(testSite, nav))
	assert.Contains(t, out, "<h2>Installation</h2>")
	assert.Contains(t, out, `<a href="/docs/guides/phoenix/">Phoenix</a>`)

	assert.Contains(t, render(t, NotFound(testSite)), "Page not found")
	assert.Contains(t, render(t, ServerError(testSite)), "Something went wrong")
}

func TestHowToJsonLD(t *testing.T) {
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(HowToJsonLD(testSite, guide.Phoenix())), &data))

	assert.Equal(t, "HowTo", data["@type"])
	assert.Equal(t, "Install Tailwind CSS with Phoenix", data["name"])
	assert.Equal(t, "Installation", data["articleSection"])
	steps, ok := data["step"].([]interface{})
	require.True(t, ok)
	assert.Len(t, steps, 11)
	first := steps[0].(map[string]interface{})
	assert.Equal(t, "Create your project", first["name"])
	assert.EqualValues(t, 1, first["position"])
}

func TestMarkActiveDoesNotMutateInput(t *testing.T) {
	nav := []NavSection{{Title: "A", Links: []NavLink{{Title: "x", Href: "/x/"}}}}
	got := MarkActive(nav, "/x/")
	assert.True(t, got[0].Links[0].Active)
	assert.False(t, nav[0].Links[0].Active)
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://docs.example.com", buildURL("https://docs.example.com"))
	assert.Equal(t, "https://docs.example.com/docs/guides/phoenix/", GuideURL(testSite, "phoenix"))
	assert.Equal(t, "/docs/guides/a%20b/", GuidePath("a b"))
}
