package docguide

import "github.com/eringen/docguide/guide"

// Prepared is a guide together with its prepared code, ready to render.
type Prepared struct {
	Guide guide.Guide
	Code  []guide.Snippet
}

// CodeStrings returns the prepared code as the plain string sequence the
// build props expose: markup for highlighted entries, raw text otherwise.
func (p Prepared) CodeStrings() []string {
	out := make([]string, len(p.Code))
	for i, s := range p.Code {
		out[i] = s.Text
	}
	return out
}

// buildProps is the JSON document written next to each guide page.
type buildProps struct {
	Code []string `json:"code"`
}
