package docguide

import (
	"fmt"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/views"
)

// defaultSection groups guides that do not name a section.
const defaultSection = "Guides"

// Registry is the ordered set of guides a site publishes.
type Registry struct {
	guides []guide.Guide
	bySlug map[string]int
}

// NewRegistry validates guides and indexes them by slug. Registration order
// is kept; duplicate slugs are an error.
func NewRegistry(guides ...guide.Guide) (*Registry, error) {
	r := &Registry{bySlug: make(map[string]int, len(guides))}
	for _, g := range guides {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.bySlug[g.Slug]; dup {
			return nil, fmt.Errorf("duplicate guide slug %q", g.Slug)
		}
		r.bySlug[g.Slug] = len(r.guides)
		r.guides = append(r.guides, g.Clone())
	}
	return r, nil
}

// Len returns the number of registered guides.
func (r *Registry) Len() int { return len(r.guides) }

// Get returns a copy of the guide with the given slug, or guide.ErrNotFound.
func (r *Registry) Get(slug string) (guide.Guide, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return guide.Guide{}, fmt.Errorf("%w: %s", guide.ErrNotFound, slug)
	}
	return r.guides[i].Clone(), nil
}

// List returns copies of all guides in registration order.
func (r *Registry) List() []guide.Guide {
	out := make([]guide.Guide, len(r.guides))
	for i, g := range r.guides {
		out[i] = g.Clone()
	}
	return out
}

// Navigation groups guide metadata by section for the sidebar. Sections
// appear in the order their first guide was registered.
func (r *Registry) Navigation() []views.NavSection {
	var nav []views.NavSection
	index := make(map[string]int)
	for _, g := range r.guides {
		section := g.Meta.Section
		if section == "" {
			section = defaultSection
		}
		i, ok := index[section]
		if !ok {
			i = len(nav)
			index[section] = i
			nav = append(nav, views.NavSection{Title: section})
		}
		nav[i].Links = append(nav[i].Links, views.NavLink{
			Title: g.Meta.Title,
			Href:  views.GuidePath(g.Slug),
		})
	}
	return nav
}
