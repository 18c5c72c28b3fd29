package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docguide/guide"
)

func TestCheckPhoenixSamples(t *testing.T) {
	for i, s := range guide.Phoenix().Steps {
		assert.NoError(t, Check(s.Code.Code, s.Code.Lang), "step %d (%s)", i+1, s.Code.Name)
	}
}

func TestCheckMalformedJS(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"unterminated string", `const a = "x`},
		{"unbalanced brace", "function f() {"},
		{"stray marker without strip", "module.exports = {\n=> content\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.code, "js")
			require.Error(t, err)
			var syn *SyntaxError
			assert.ErrorAs(t, err, &syn)
		})
	}
}

func TestCheckStripsMarkers(t *testing.T) {
	code := "module.exports = {\n>  content: ['./a.js'],\n}"
	assert.NoError(t, Check(code, "js"))
}

func TestCheckStripsDiffMarkersOnlyForDiffTags(t *testing.T) {
	code := "- import \"./a.css\"\n+ import \"./b.css\""
	assert.NoError(t, Check(code, "diff-js"))
}

func TestCheckSkipsUnparsedLanguages(t *testing.T) {
	assert.NoError(t, Check("defp deps do [ end", "elixir"))
	assert.NoError(t, Check("anything at all {", "terminal"))
}

func TestChecked(t *testing.T) {
	assert.True(t, Checked("css"))
	assert.True(t, Checked("javascript"))
	assert.True(t, Checked("diff-js"))
	assert.False(t, Checked("elixir"))
}

func TestStripMarkers(t *testing.T) {
	assert.Equal(t, "  a\n b", stripMarkers("> a\n b", false))
	assert.Equal(t, "-x", stripMarkers("-x", false))
	assert.Equal(t, " x\n y", stripMarkers("-x\n+y", true))
}

func TestCheckMalformedHTML(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"unterminated attribute", `<div class="x`},
		{"mismatched end tags", `<h1>hi</h2></div></span>`},
		{"unterminated comment", `<!-- unterminated`},
		{"stray brackets", `<<<>>> </ <`},
		{"unclosed element", "<section>\n  <h1>Hello</h1>\n"},
		{"unexpected end tag", `<p>text</p></div>`},
		{"unterminated start tag", `<h1 class="a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.code, "html")
			require.Error(t, err)
			var syn *SyntaxError
			assert.ErrorAs(t, err, &syn)
		})
	}
}

func TestCheckWellFormedHTML(t *testing.T) {
	tests := []string{
		`<h1 class="text-3xl font-bold underline">Hello</h1>`,
		"<!doctype html>\n<html>\n<head><meta charset=\"UTF-8\"><link href=\"/a.css\" rel=\"stylesheet\"></head>\n<body><br/><img src='a.png'></body>\n</html>",
		"<ul>\n  <li>one\n  <li>two\n</ul>",
		"<!-- note --><p>text",
		"<script>if (a < b) { run() }</script>",
	}
	for _, code := range tests {
		assert.NoError(t, Check(code, "html"), code)
	}
}
