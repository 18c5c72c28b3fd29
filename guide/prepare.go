package guide

import "fmt"

// Highlighter turns source text and a language tag into highlighted markup.
type Highlighter interface {
	Highlight(code, lang string) (string, error)
}

// HighlighterFunc adapts a plain function to the Highlighter interface.
type HighlighterFunc func(code, lang string) (string, error)

func (f HighlighterFunc) Highlight(code, lang string) (string, error) {
	return f(code, lang)
}

// Snippet is one prepared code entry. Text holds highlighted markup when
// Highlighted is true and the raw sample otherwise.
type Snippet struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

// Prepare runs every step's code sample through h, in step order. Terminal
// and untagged samples are passed through unchanged. The result is
// positionally aligned with g.Steps.
//
// The first highlighter error aborts preparation and is returned wrapped.
func Prepare(g Guide, h Highlighter) ([]Snippet, error) {
	out := make([]Snippet, len(g.Steps))
	for i, s := range g.Steps {
		if !s.Code.Highlightable() {
			out[i] = Snippet{Text: s.Code.Code}
			continue
		}
		markup, err := h.Highlight(s.Code.Code, s.Code.Lang)
		if err != nil {
			return nil, fmt.Errorf("guide %s: step %d (%s): %w", g.Slug, i+1, s.Code.Name, err)
		}
		out[i] = Snippet{Text: markup, Highlighted: true}
	}
	return out, nil
}
