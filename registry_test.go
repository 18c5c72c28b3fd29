package docguide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/views"
)

func sampleGuide(slug, title, section string) guide.Guide {
	return guide.Guide{
		Slug: slug,
		Meta: guide.Meta{Title: title, Section: section, Layout: guide.LayoutDocumentation},
		Steps: []guide.Step{{
			Title: "Install",
			Code:  guide.CodeSample{Name: "Terminal", Lang: guide.LangTerminal, Code: "npm install"},
		}},
	}
}

func TestRegistryGetAndList(t *testing.T) {
	r, err := NewRegistry(guide.Phoenix(), sampleGuide("vite", "Install with Vite", "Installation"))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	g, err := r.Get("phoenix")
	require.NoError(t, err)
	assert.Equal(t, "Install Tailwind CSS with Phoenix", g.Meta.Title)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "phoenix", list[0].Slug)
	assert.Equal(t, "vite", list[1].Slug)
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	r, err := NewRegistry(guide.Phoenix())
	require.NoError(t, err)

	g, _ := r.Get("phoenix")
	g.Steps[0].Title = "mutated"
	again, _ := r.Get("phoenix")
	assert.Equal(t, "Create your project", again.Steps[0].Title)
}

func TestRegistryUnknownSlug(t *testing.T) {
	r, err := NewRegistry(guide.Phoenix())
	require.NoError(t, err)
	_, err = r.Get("nope")
	assert.ErrorIs(t, err, guide.ErrNotFound)
}

func TestRegistryRejectsDuplicatesAndInvalid(t *testing.T) {
	_, err := NewRegistry(guide.Phoenix(), guide.Phoenix())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate guide slug "phoenix"`)

	_, err = NewRegistry(guide.Guide{Slug: "empty"})
	require.Error(t, err)
}

func TestRegistryNavigation(t *testing.T) {
	r, err := NewRegistry(
		guide.Phoenix(),
		sampleGuide("plugins", "Official plugins", ""),
		sampleGuide("vite", "Install with Vite", "Installation"),
	)
	require.NoError(t, err)

	want := []views.NavSection{
		{Title: "Installation", Links: []views.NavLink{
			{Title: "Install Tailwind CSS with Phoenix", Href: "/docs/guides/phoenix/"},
			{Title: "Install with Vite", Href: "/docs/guides/vite/"},
		}},
		{Title: "Guides", Links: []views.NavLink{
			{Title: "Official plugins", Href: "/docs/guides/plugins/"},
		}},
	}
	assert.Equal(t, want, r.Navigation())
}
