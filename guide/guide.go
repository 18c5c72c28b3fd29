// Package guide defines framework guides: ordered instructional steps, each
// with explanatory text and a code sample, plus the page metadata the site
// shell uses for navigation.
package guide

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eringen/docguide/markup"
)

// LangTerminal marks a code sample as terminal input. Terminal samples are
// never highlighted.
const LangTerminal = "terminal"

// LayoutDocumentation selects the documentation layout in the site shell.
const LayoutDocumentation = "documentation"

// ErrNotFound is returned when a guide slug is not registered.
var ErrNotFound = errors.New("guide not found")

// CodeSample is a labeled, language-tagged snippet attached to a step.
// Code may contain authoring markers (a leading ">" for added lines, "-" for
// removed lines). They are kept verbatim.
type CodeSample struct {
	Name string
	Lang string
	Code string
}

// Highlightable reports whether the sample should go through a highlighter.
func (c CodeSample) Highlightable() bool {
	return c.Lang != "" && c.Lang != LangTerminal
}

// Step is one numbered instruction.
type Step struct {
	Title string
	Body  markup.Body
	Code  CodeSample
}

// Meta is the page metadata read by the site shell.
type Meta struct {
	Title         string
	Description   string
	Section       string
	Layout        string
	AllowOverflow bool
}

// Guide is a complete framework guide page.
type Guide struct {
	Slug  string
	Meta  Meta
	Steps []Step
}

// Clone returns a deep copy of g.
func (g Guide) Clone() Guide {
	out := g
	out.Steps = make([]Step, len(g.Steps))
	for i, s := range g.Steps {
		out.Steps[i] = Step{Title: s.Title, Body: s.Body.Clone(), Code: s.Code}
	}
	return out
}

// Validate checks that the guide is complete: a slug, a title, and for every
// step a title, a code name and code text. All problems are reported at once.
func (g Guide) Validate() error {
	var errs []error
	if strings.TrimSpace(g.Slug) == "" {
		errs = append(errs, errors.New("missing slug"))
	}
	if strings.TrimSpace(g.Meta.Title) == "" {
		errs = append(errs, errors.New("missing meta title"))
	}
	if len(g.Steps) == 0 {
		errs = append(errs, errors.New("no steps"))
	}
	for i, s := range g.Steps {
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, fmt.Errorf("step %d: missing title", i+1))
		}
		if strings.TrimSpace(s.Code.Name) == "" {
			errs = append(errs, fmt.Errorf("step %d: missing code name", i+1))
		}
		if strings.TrimSpace(s.Code.Code) == "" {
			errs = append(errs, fmt.Errorf("step %d: missing code", i+1))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("guide %q: %w", g.Slug, errors.Join(errs...))
}
